package practicum

import (
	"errors"
	"fmt"
)

var (
	ErrAPIUnavailable    = errors.New("сервис API недоступен")
	ErrMalformedResponse = errors.New("ответ API не является корректным JSON")
	ErrInvalidShape      = errors.New("неверный тип данных в ответе API")
	ErrMissingField      = errors.New("отсутствует обязательное поле")
)

// APIError описывает недоступность эндпоинта. StatusCode равен 0,
// если ответа не было вовсе (таймаут, DNS, обрыв соединения).
type APIError struct {
	StatusCode int
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: код ответа %d", ErrAPIUnavailable, e.StatusCode)
	}
	return fmt.Sprintf("%s: %v", ErrAPIUnavailable, e.Err)
}

func (e *APIError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrAPIUnavailable}
	}
	return []error{ErrAPIUnavailable, e.Err}
}

func missingField(name string) error {
	return fmt.Errorf("%w: %q", ErrMissingField, name)
}

func invalidShape(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidShape, fmt.Sprintf(format, args...))
}
