package main

import (
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"

	"homework-bot/internal/logging"
)

// newBot создаёт сессию бота; конструктор сразу проверяет токен через getMe.
func newBot(token string, timeout time.Duration, logger *logging.Logger) (*tgbotapi.BotAPI, error) {
	bot, err := tgbotapi.NewBotAPIWithClient(token, &http.Client{Timeout: timeout})
	if err != nil {
		return nil, err
	}
	bot.Debug = false
	logger.Infof("Авторизован как @%s", bot.Self.UserName)
	return bot, nil
}
