package store

// FieldKind - тип поля документа после JSON-декодирования.
type FieldKind int

const (
	KindString FieldKind = iota
	KindNumber
	KindArray
)

// Schema описывает коллекцию: обязательные поля и типы известных полей.
// Проверяется только при вставке, как в исходных JSON-схемах коллекций.
type Schema struct {
	Required []string
	Fields   map[string]FieldKind
}

// Validate проверяет документ перед вставкой.
func (s Schema) Validate(collection string, doc map[string]any) error {
	for _, field := range s.Required {
		v, ok := doc[field]
		if !ok || v == nil {
			return &ValidationError{Collection: collection, Field: field, Reason: "required field missing"}
		}
		if str, isStr := v.(string); isStr && str == "" {
			return &ValidationError{Collection: collection, Field: field, Reason: "required field empty"}
		}
	}

	for field, kind := range s.Fields {
		v, ok := doc[field]
		if !ok || v == nil {
			continue
		}
		if !kindMatches(kind, v) {
			return &ValidationError{Collection: collection, Field: field, Reason: "type mismatch"}
		}
	}

	return nil
}

func kindMatches(kind FieldKind, v any) bool {
	switch kind {
	case KindString:
		_, ok := v.(string)
		return ok
	case KindNumber:
		_, ok := v.(float64)
		return ok
	case KindArray:
		_, ok := v.([]any)
		return ok
	}
	return false
}
