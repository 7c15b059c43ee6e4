package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
	LevelCritical
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelError:
		return "ERROR"
	case LevelCritical:
		return "CRITICAL"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

// ParseLevel понимает debug, info, error, critical; всё остальное даёт debug.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "info":
		return LevelInfo
	case "error":
		return LevelError
	case "critical", "fatal":
		return LevelCritical
	default:
		return LevelDebug
	}
}

type Options struct {
	File       string
	MaxSizeMB  int
	MaxBackups int
	Level      string
}

type Logger struct {
	l     *log.Logger
	level Level
	out   io.Closer
}

// New пишет одновременно в stdout и в файл с ротацией по размеру.
func New(opts Options) *Logger {
	file := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		LocalTime:  true,
	}
	lg := NewWithWriter(io.MultiWriter(os.Stdout, file), ParseLevel(opts.Level))
	lg.out = file
	return lg
}

func NewWithWriter(w io.Writer, level Level) *Logger {
	return &Logger{
		l:     log.New(w, "BOT: ", log.Ldate|log.Ltime|log.Lshortfile),
		level: level,
	}
}

// Discard нужен в тестах.
func Discard() *Logger {
	return NewWithWriter(io.Discard, LevelCritical+1)
}

func (lg *Logger) Debugf(format string, args ...any)    { lg.output(LevelDebug, format, args...) }
func (lg *Logger) Infof(format string, args ...any)     { lg.output(LevelInfo, format, args...) }
func (lg *Logger) Errorf(format string, args ...any)    { lg.output(LevelError, format, args...) }
func (lg *Logger) Criticalf(format string, args ...any) { lg.output(LevelCritical, format, args...) }

// Std отдаёт обёрнутый *log.Logger для библиотек, которые принимают только его.
func (lg *Logger) Std() *log.Logger { return lg.l }

func (lg *Logger) Close() error {
	if lg.out == nil {
		return nil
	}
	return lg.out.Close()
}

func (lg *Logger) output(level Level, format string, args ...any) {
	if level < lg.level {
		return
	}
	// 3: output -> Debugf/... -> вызывающий код
	_ = lg.l.Output(3, level.String()+", "+fmt.Sprintf(format, args...))
}
