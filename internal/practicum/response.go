package practicum

import (
	"encoding/json"
	"math"
)

// Homework — одна запись из списка homeworks. Поля не типизированы,
// потому что отсутствие или неверный тип поля проверяется при форматировании.
type Homework map[string]any

func (h Homework) stringField(key string) (string, bool) {
	v, ok := h[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func (h Homework) Name() (string, bool)   { return h.stringField("homework_name") }
func (h Homework) Status() (string, bool) { return h.stringField("status") }

type Response struct {
	Homeworks   []Homework
	CurrentDate int64
}

// CheckResponse проверяет форму ответа API и достаёт список работ.
// Пустой список не ошибка.
func CheckResponse(data any) (Response, error) {
	obj, ok := data.(map[string]any)
	if !ok {
		return Response{}, invalidShape("ответ должен быть словарём, получено %T", data)
	}

	rawHomeworks, ok := obj["homeworks"]
	if !ok {
		return Response{}, missingField("homeworks")
	}
	rawDate, ok := obj["current_date"]
	if !ok {
		return Response{}, missingField("current_date")
	}

	list, ok := rawHomeworks.([]any)
	if !ok {
		return Response{}, invalidShape("поле \"homeworks\" должно быть списком, получено %T", rawHomeworks)
	}
	currentDate, err := toInt64(rawDate)
	if err != nil {
		return Response{}, err
	}

	homeworks := make([]Homework, 0, len(list))
	for i, item := range list {
		hw, ok := item.(map[string]any)
		if !ok {
			return Response{}, invalidShape("элемент homeworks[%d] должен быть словарём, получено %T", i, item)
		}
		homeworks = append(homeworks, Homework(hw))
	}

	return Response{Homeworks: homeworks, CurrentDate: currentDate}, nil
}

func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
		f, err := n.Float64()
		if err != nil {
			return 0, invalidShape("поле \"current_date\" не является числом: %q", n.String())
		}
		return int64(math.Trunc(f)), nil
	case float64:
		return int64(math.Trunc(n)), nil
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	default:
		return 0, invalidShape("поле \"current_date\" должно быть числом, получено %T", v)
	}
}
