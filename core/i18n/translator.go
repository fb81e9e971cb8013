package i18n

import "time"

// Translator binds an I18n to one language and namespace.
type Translator struct {
	i18n      *I18n
	language  string
	namespace string
}

// NewTranslator panics on a nil I18n. An empty language means the default.
func NewTranslator(i18n *I18n, language, namespace string) *Translator {
	if i18n == nil {
		panic("i18n: translator needs a non-nil I18n")
	}
	if language == "" {
		language = i18n.DefaultLanguage()
	}
	return &Translator{
		i18n:      i18n,
		language:  language,
		namespace: namespace,
	}
}

func (t *Translator) T(key string, placeholders ...M) string {
	return t.i18n.T(t.language, t.namespace, key, placeholders...)
}

func (t *Translator) Tn(key string, n int, placeholders ...M) string {
	return t.i18n.Tn(t.language, t.namespace, key, n, placeholders...)
}

func (t *Translator) Language() string { return t.language }

func (t *Translator) Namespace() string { return t.namespace }

// Dir returns "rtl" or "ltr" for the translator language.
func (t *Translator) Dir() string { return Direction(t.language) }

// FormatDate formats a date for the translator language.
func (t *Translator) FormatDate(date time.Time) string {
	return FormatDate(date, t.language)
}
