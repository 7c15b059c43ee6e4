package homework

import (
	"errors"
	"fmt"
	"sort"

	"homework-bot/internal/practicum"
)

const (
	ApprovedStatus  = "approved"
	ReviewingStatus = "reviewing"
	RejectedStatus  = "rejected"

	// NotReviewedMessage отправляется, когда список работ пуст.
	NotReviewedMessage = "Домашка пока что не проверена"
)

var ErrUnknownStatus = errors.New("незадокументированный статус домашней работы")

var homeworkVerdicts = map[string]string{
	ApprovedStatus:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	ReviewingStatus: "Работа взята на проверку ревьюером.",
	RejectedStatus:  "Работа проверена: у ревьюера есть замечания.",
}

func Verdict(status string) (string, bool) {
	v, ok := homeworkVerdicts[status]
	return v, ok
}

// Statuses возвращает известные статусы в отсортированном виде.
func Statuses() []string {
	out := make([]string, 0, len(homeworkVerdicts))
	for k := range homeworkVerdicts {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// ParseStatus формирует сообщение о статусе одной работы.
func ParseStatus(hw practicum.Homework) (string, error) {
	name, ok := hw.Name()
	if !ok {
		return "", fmt.Errorf("%w: %q", practicum.ErrMissingField, "homework_name")
	}
	status, ok := hw.Status()
	if !ok {
		return "", fmt.Errorf("%w: %q", practicum.ErrMissingField, "status")
	}
	verdict, ok := Verdict(status)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}
	return fmt.Sprintf(`Изменился статус проверки работы "%s".%s`, name, verdict), nil
}

// LatestMessage выбирает текст для отправки по ответу API: самая свежая
// работа идёт первой, пустой список даёт NotReviewedMessage.
func LatestMessage(homeworks []practicum.Homework) (string, error) {
	if len(homeworks) == 0 {
		return NotReviewedMessage, nil
	}
	return ParseStatus(homeworks[0])
}
