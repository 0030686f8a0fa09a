package i18n

import "strings"

// Language - поддерживаемый язык интерфейса.
type Language string

const (
	LangEN Language = "en"
	LangSL Language = "sl"
	LangDE Language = "de"
)

var supported = map[Language]bool{LangEN: true, LangSL: true, LangDE: true}

// IsValid проверяет, поддерживается ли язык.
func IsValid(lang Language) bool {
	return supported[lang]
}

// Detect определяет язык по локали клиента (например "sl-SI" или "de").
// Неизвестные локали дают английский.
func Detect(locale string) Language {
	switch {
	case strings.HasPrefix(locale, "sl"):
		return LangSL
	case strings.HasPrefix(locale, "de"):
		return LangDE
	default:
		return LangEN
	}
}

// T возвращает перевод ключа. Для неизвестного ключа возвращается сам
// ключ - переводы никогда не падают.
func T(key string, lang Language) string {
	if !IsValid(lang) {
		lang = LangEN
	}
	if text, ok := translations[lang][key]; ok {
		return text
	}
	// Английский как запасной вариант.
	if text, ok := translations[LangEN][key]; ok {
		return text
	}
	return key
}
