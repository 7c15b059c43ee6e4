package notifier

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"

	"homework-bot/internal/logging"
)

const telegramMessageLimit = 4096

// Sender — часть *tgbotapi.BotAPI, которая нужна для отправки.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Telegram отправляет сообщения в один заранее заданный чат.
//
// Отправка best-effort: ошибка логируется и наружу не выходит,
// повторной отправки нет.
type Telegram struct {
	sender Sender
	chatID int64
	// канал по @username, если chat id не числовой
	channel string
	logger  *logging.Logger
}

func NewTelegram(sender Sender, chat string, logger *logging.Logger) (*Telegram, error) {
	chat = strings.TrimSpace(chat)
	t := &Telegram{sender: sender, logger: logger}
	if id, err := strconv.ParseInt(chat, 10, 64); err == nil {
		t.chatID = id
		return t, nil
	}
	if strings.HasPrefix(chat, "@") && len(chat) > 1 {
		t.channel = chat
		return t, nil
	}
	return nil, fmt.Errorf("некорректный TELEGRAM_CHAT_ID %q: ожидается число или @канал", chat)
}

func (t *Telegram) message(text string) tgbotapi.MessageConfig {
	if r := []rune(text); len(r) > telegramMessageLimit {
		text = string(r[:telegramMessageLimit-3]) + "..."
	}
	if t.channel != "" {
		return tgbotapi.NewMessageToChannel(t.channel, text)
	}
	return tgbotapi.NewMessage(t.chatID, text)
}

// Notify возвращает true, если сообщение доставлено.
func (t *Telegram) Notify(text string) bool {
	if _, err := t.sender.Send(t.message(text)); err != nil {
		t.logger.Errorf("Бот не смог отправить сообщение. Текст ошибки: %v", err)
		return false
	}
	t.logger.Debugf("Бот успешно отправил сообщение: %s", text)
	return true
}
