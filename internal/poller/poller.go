package poller

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"homework-bot/internal/config"
	"homework-bot/internal/homework"
	"homework-bot/internal/logging"
	"homework-bot/internal/practicum"
)

var ErrPanic = errors.New("паника в цикле опроса")

type Fetcher interface {
	GetAPIAnswer(ctx context.Context, fromDate int64) (any, error)
}

type Notifier interface {
	Notify(text string) bool
}

// State — состояние цикла опроса, его же отдаёт /status.
type State struct {
	CycleID             string    `json:"cycle_id"`
	Cycles              int       `json:"cycles"`
	Cursor              int64     `json:"cursor"`
	LastPollAt          time.Time `json:"last_poll_at"`
	LastError           string    `json:"last_error,omitempty"`
	LastSentMessage     string    `json:"last_sent_message"`
	LastSentAt          time.Time `json:"last_sent_at"`
	Notifications       int       `json:"notifications"`
	FailedNotifications int       `json:"failed_notifications"`
}

type Option func(*Poller)

func WithInterval(d time.Duration) Option {
	return func(p *Poller) { p.interval = d }
}

func WithCursor(ts int64) Option {
	return func(p *Poller) { p.state.Cursor = ts }
}

// WithAdvanceCursor включает переход курсора на current_date из ответа.
func WithAdvanceCursor(on bool) Option {
	return func(p *Poller) { p.advanceCursor = on }
}

func WithClock(now func() time.Time) Option {
	return func(p *Poller) { p.now = now }
}

type Poller struct {
	fetcher       Fetcher
	notifier      Notifier
	logger        *logging.Logger
	interval      time.Duration
	advanceCursor bool
	now           func() time.Time

	mu    sync.RWMutex
	state State
}

func New(fetcher Fetcher, notifier Notifier, logger *logging.Logger, opts ...Option) *Poller {
	p := &Poller{
		fetcher:  fetcher,
		notifier: notifier,
		logger:   logger,
		interval: config.DefaultRetryPeriod,
		now:      time.Now,
	}
	p.state.Cursor = -1
	for _, o := range opts {
		o(p)
	}
	if p.state.Cursor < 0 {
		p.state.Cursor = p.now().Unix()
	}
	return p
}

func (p *Poller) Snapshot() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// Run опрашивает API до отмены ctx. Первый цикл выполняется сразу,
// пауза между циклами выдерживается при любом исходе.
func (p *Poller) Run(ctx context.Context) error {
	for {
		if err := p.RunCycle(ctx); err != nil {
			p.logger.Errorf("Сбой в работе программы [%s]: %v", ErrorKind(err), err)
		}

		timer := time.NewTimer(p.interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// RunCycle — один проход: запрос, проверка, форматирование, отправка.
// Ошибка возвращается вызывающему, last sent при ошибке не меняется.
func (p *Poller) RunCycle(ctx context.Context) (err error) {
	cycleID := uuid.NewString()

	p.mu.Lock()
	p.state.CycleID = cycleID
	p.state.Cycles++
	p.state.LastPollAt = p.now()
	cursor := p.state.Cursor
	lastSent := p.state.LastSentMessage
	p.mu.Unlock()

	p.logger.Debugf("Цикл %s: запрос к API с from_date=%d", cycleID, cursor)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanic, r)
		}
		p.mu.Lock()
		if err != nil {
			p.state.LastError = err.Error()
		} else {
			p.state.LastError = ""
		}
		p.mu.Unlock()
	}()

	return p.cycle(ctx, cursor, lastSent)
}

func (p *Poller) cycle(ctx context.Context, cursor int64, lastSent string) error {
	data, err := p.fetcher.GetAPIAnswer(ctx, cursor)
	if err != nil {
		return err
	}
	resp, err := practicum.CheckResponse(data)
	if err != nil {
		return err
	}

	var message string
	if len(resp.Homeworks) == 0 && p.advanceCursor && lastSent != "" {
		// при движущемся курсоре пустой список значит «ничего нового»
		p.logger.Debugf("Новых статусов нет")
		message = lastSent
	} else {
		if len(resp.Homeworks) == 0 {
			p.logger.Debugf("Список домашнего задания пуст")
		}
		message, err = homework.LatestMessage(resp.Homeworks)
		if err != nil {
			return err
		}
	}

	if message != lastSent {
		delivered := p.notifier.Notify(message)
		p.mu.Lock()
		p.state.LastSentMessage = message
		p.state.LastSentAt = p.now()
		if delivered {
			p.state.Notifications++
		} else {
			p.state.FailedNotifications++
		}
		p.mu.Unlock()
	} else {
		p.logger.Debugf("Статус не изменился, сообщение не отправляется")
	}

	if p.advanceCursor && resp.CurrentDate > 0 {
		p.mu.Lock()
		p.state.Cursor = resp.CurrentDate
		p.mu.Unlock()
	}
	return nil
}

// ErrorKind даёт короткое имя класса ошибки для логов.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, practicum.ErrAPIUnavailable):
		return "ApiUnavailable"
	case errors.Is(err, practicum.ErrMalformedResponse):
		return "MalformedResponse"
	case errors.Is(err, practicum.ErrInvalidShape):
		return "InvalidShape"
	case errors.Is(err, practicum.ErrMissingField):
		return "MissingField"
	case errors.Is(err, homework.ErrUnknownStatus):
		return "UnknownStatus"
	case errors.Is(err, ErrPanic):
		return "Panic"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "Canceled"
	default:
		return "Unexpected"
	}
}
