package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"homework-bot/internal/config"
	"homework-bot/internal/homework"
	"homework-bot/internal/httpserver"
	"homework-bot/internal/logging"
	"homework-bot/internal/notifier"
	"homework-bot/internal/poller"
	"homework-bot/internal/practicum"
)

func main() {
	cfg := config.Load()

	logger := logging.New(logging.Options{
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		Level:      cfg.LogLevel,
	})
	defer logger.Close()

	if err := config.CheckTokens(cfg); err != nil {
		logger.Criticalf("Нет одного из необходимых токенов: %v", err)
		logger.Close()
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		logger.Criticalf("Бот остановлен с ошибкой: %v", err)
		logger.Close()
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *logging.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infof("Бот запущен")

	bot, err := newBot(cfg.TelegramToken, cfg.HTTPTimeout, logger)
	if err != nil {
		return err
	}
	tg, err := notifier.NewTelegram(bot, cfg.TelegramChatID, logger)
	if err != nil {
		return err
	}

	api := practicum.NewClient(cfg.Endpoint, cfg.PracticumToken, practicum.WithTimeout(cfg.HTTPTimeout))
	p := poller.New(api, tg, logger,
		poller.WithInterval(cfg.RetryPeriod),
		poller.WithAdvanceCursor(cfg.AdvanceCursor),
	)

	if cfg.HealthAddr != "" {
		go func() {
			if err := httpserver.Serve(ctx, cfg.HealthAddr, httpserver.NewRouter(p, logger), logger); err != nil {
				logger.Errorf("Сервер состояния остановлен: %v", err)
			}
		}()
	}

	logger.Debugf("Отслеживаемые статусы: %s; период опроса %s; сдвиг курсора: %t",
		strings.Join(homework.Statuses(), ", "), cfg.RetryPeriod, cfg.AdvanceCursor)

	err = p.Run(ctx)
	logger.Infof("Бот остановлен")
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetPrefix("BOT: ")
}
