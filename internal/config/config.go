package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultEndpoint    = "https://practicum.yandex.ru/api/user_api/homework_statuses/"
	DefaultRetryPeriod = 600 * time.Second
	DefaultHTTPTimeout = 30 * time.Second
	DefaultLogFile     = "main.log"
	DefaultLogMaxSize  = 5
	DefaultLogBackups  = 3
	DefaultLogLevel    = "debug"
)

var ErrMissingCredential = errors.New("отсутствуют обязательные переменные окружения")

// MissingCredentialError перечисляет все отсутствующие секреты.
type MissingCredentialError struct {
	Names []string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingCredential, strings.Join(e.Names, ", "))
}

func (e *MissingCredentialError) Unwrap() error { return ErrMissingCredential }

type Config struct {
	PracticumToken string
	TelegramToken  string
	TelegramChatID string

	Endpoint      string
	RetryPeriod   time.Duration
	HTTPTimeout   time.Duration
	AdvanceCursor bool

	LogFile       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogLevel      string

	HealthAddr string
}

// Load читает .env (если он есть) и переменные окружения.
// Секреты не проверяются здесь, для этого есть CheckTokens.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Файл .env не загружен, используются переменные окружения: %v", err)
	}
	return FromEnv()
}

func FromEnv() Config {
	return Config{
		PracticumToken: getEnvAny("PRACTICUM_TOKEN", "API_TOKEN"),
		TelegramToken:  getEnvAny("TELEGRAM_TOKEN", "BOT_TOKEN"),
		TelegramChatID: getEnvAny("TELEGRAM_CHAT_ID", "CHAT_ID"),

		Endpoint:      getEnv("PRACTICUM_ENDPOINT", DefaultEndpoint),
		RetryPeriod:   getDuration("RETRY_PERIOD", DefaultRetryPeriod),
		HTTPTimeout:   getDuration("HTTP_TIMEOUT", DefaultHTTPTimeout),
		AdvanceCursor: getBool("ADVANCE_CURSOR", false),

		LogFile:       getEnv("LOG_FILE", DefaultLogFile),
		LogMaxSizeMB:  getPositiveInt("LOG_MAX_SIZE_MB", DefaultLogMaxSize),
		LogMaxBackups: getPositiveInt("LOG_MAX_BACKUPS", DefaultLogBackups),
		LogLevel:      strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),

		HealthAddr: strings.TrimSpace(os.Getenv("HEALTH_ADDR")),
	}
}

// CheckTokens проверяет наличие трёх обязательных секретов.
func CheckTokens(cfg Config) error {
	var missing []string
	if cfg.PracticumToken == "" {
		missing = append(missing, "PRACTICUM_TOKEN")
	}
	if cfg.TelegramToken == "" {
		missing = append(missing, "TELEGRAM_TOKEN")
	}
	if cfg.TelegramChatID == "" {
		missing = append(missing, "TELEGRAM_CHAT_ID")
	}
	if len(missing) > 0 {
		return &MissingCredentialError{Names: missing}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getEnvAny(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}

func getDuration(key string, def time.Duration) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		// голое число трактуем как секунды
		if secs, errInt := strconv.Atoi(raw); errInt == nil {
			d, err = time.Duration(secs)*time.Second, nil
		}
	}
	if err != nil || d <= 0 {
		log.Printf("Ошибка: значение %s='%s' некорректно. Используется значение по умолчанию: %s", key, raw, def)
		return def
	}
	return d
}

func getBool(key string, def bool) bool {
	raw := getEnv(key, "")
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("Ошибка: значение %s='%s' не является булевым. Используется значение по умолчанию: %t", key, raw, def)
		return def
	}
	return v
}

func getPositiveInt(key string, def int) int {
	raw := getEnv(key, "")
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		log.Printf("Ошибка: значение %s='%s' должно быть положительным числом. Используется значение по умолчанию: %d", key, raw, def)
		return def
	}
	return n
}
