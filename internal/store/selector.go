package store

// Selector - фильтр запроса: поле -> точное значение или диапазон Range.
// Несколько полей объединяются по AND, отсутствующее поле не ограничивает.
type Selector map[string]any

// Range - диапазон для строковых полей (ISO-даты сравниваются лексикографически).
// Пустая граница означает отсутствие ограничения.
type Range struct {
	GTE string
	LTE string
}

// Matches проверяет документ против селектора.
func (sel Selector) Matches(doc map[string]any) bool {
	for field, want := range sel {
		got, ok := doc[field]
		if !ok {
			return false
		}
		if !matchValue(want, got) {
			return false
		}
	}
	return true
}

func matchValue(want, got any) bool {
	if r, ok := want.(Range); ok {
		s, isStr := got.(string)
		if !isStr {
			return false
		}
		if r.GTE != "" && s < r.GTE {
			return false
		}
		if r.LTE != "" && s > r.LTE {
			return false
		}
		return true
	}

	return normalize(want) == normalize(got)
}

// normalize приводит числовые значения к float64 (как после json.Unmarshal).
func normalize(v any) any {
	switch x := v.(type) {
	case int:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case float32:
		return float64(x)
	}
	return v
}
