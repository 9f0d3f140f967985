package i18n

import (
	"time"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/messageformat/core/msgformat"
)

// Translator provides a simplified translation interface with a fixed language and namespace context.
// It wraps an I18n instance and eliminates the need to specify language and namespace for each translation.
type Translator struct {
	i18n      *I18n
	language  string
	namespace string
	tag       language.Tag
}

// NewTranslator creates a new Translator with the specified language and namespace context.
func NewTranslator(i18n *I18n, lang, namespace string) *Translator {
	if i18n == nil {
		panic("localization service is not provided")
	}
	if lang == "" {
		lang = i18n.DefaultLanguage()
	}
	return &Translator{
		i18n:      i18n,
		language:  lang,
		namespace: namespace,
		tag:       i18n.tagFor(lang),
	}
}

// T translates a key using the translator's language and namespace context.
func (t *Translator) T(key string, args ...M) string {
	return t.i18n.T(t.language, t.namespace, key, args...)
}

// Tn translates a key with pluralization using the translator's language and namespace context.
func (t *Translator) Tn(key string, n int, args ...M) string {
	return t.i18n.Tn(t.language, t.namespace, key, n, args...)
}

// Format renders a key with typed arguments, reporting failures.
func (t *Translator) Format(key string, args msgformat.Args) (string, error) {
	return t.i18n.Format(t.language, t.namespace, key, args)
}

// Language returns the current language context of the translator.
func (t *Translator) Language() string {
	return t.language
}

// Namespace returns the current namespace context of the translator.
func (t *Translator) Namespace() string {
	return t.namespace
}

// FormatNumber formats a number with CLDR separators for the language.
// For example, in English: 1234.5 -> "1,234.5", in German: "1.234,5"
func (t *Translator) FormatNumber(n float64) string {
	return t.i18n.formats.FormatValue(t.tag, msgformat.Float(n), msgformat.Style{Type: msgformat.StyleNumber})
}

// FormatCurrency formats a currency amount with the language's LocaleFormat.
// For example, in English: 1234.50 -> "$1,234.50", in German: "1.234,50 €"
func (t *Translator) FormatCurrency(amount float64) string {
	return t.i18n.formats.LocaleFormat(t.tag).FormatCurrency(amount)
}

// FormatPercent formats a ratio (0.5 for 50%) as a CLDR percentage.
func (t *Translator) FormatPercent(n float64) string {
	return t.i18n.formats.FormatValue(t.tag, msgformat.Float(n), msgformat.Style{Type: msgformat.StyleNumber, Text: NumberPercent})
}

// FormatDate formats a date with the language's short date layout.
// For example, in US English: "3/5/24", in German: "05.03.24"
func (t *Translator) FormatDate(date time.Time) string {
	return t.i18n.formats.LocaleFormat(t.tag).FormatDate(date)
}

// FormatTime formats a time with the language's short time layout.
// For example, in US English: "3:04 PM", in German: "15:04"
func (t *Translator) FormatTime(tm time.Time) string {
	return t.i18n.formats.LocaleFormat(t.tag).FormatTime(tm)
}

// FormatDateTime formats a datetime with the language's datetime layout.
func (t *Translator) FormatDateTime(datetime time.Time) string {
	return t.i18n.formats.LocaleFormat(t.tag).FormatDateTime(datetime)
}
