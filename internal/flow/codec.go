package flow

import (
	"encoding/base64"
	"encoding/json"
	"strings"
)

// Encode упаковывает состояние в URL-безопасный токен: JSON -> base64url
// без паддинга. Токен можно вставлять в query-параметр или кнопку в чате
// без дополнительного экранирования. Кодирование детерминировано и не
// зависит от окружения.
func Encode(state State) string {
	data, err := json.Marshal(state)
	if err != nil {
		// Закрытая структура State сериализуется всегда.
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(data)
}

// Decode распаковывает токен обратно в состояние. Любой битый вход
// (обрезанный, с посторонними символами, не-JSON внутри) дает nil -
// вызывающий трактует это как свежую сессию. Никогда не паникует.
// Терпит стандартный base64-алфавит (+, /) и восстанавливает паддинг.
func Decode(token string) *State {
	if token == "" {
		return nil
	}

	normalized := strings.NewReplacer("+", "-", "/", "_").Replace(token)
	normalized = strings.TrimRight(normalized, "=")

	data, err := base64.RawURLEncoding.DecodeString(normalized)
	if err != nil {
		return nil
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil
	}
	if !IsValidStep(state.Step) {
		return nil
	}

	return &state
}
