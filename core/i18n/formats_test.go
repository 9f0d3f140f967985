package i18n_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/messageformat/core/i18n"
	"github.com/dmitrymomot/messageformat/core/msgformat"
)

func TestLocaleFormat_FormatNumber(t *testing.T) {
	t.Run("English format", func(t *testing.T) {
		lf := i18n.NewEnglishFormat()

		assert.Equal(t, "1,234", lf.FormatNumber(1234))
		assert.Equal(t, "1,234.5", lf.FormatNumber(1234.5))
		assert.Equal(t, "1,234,567.89", lf.FormatNumber(1234567.89))
		assert.Equal(t, "-1,234.5", lf.FormatNumber(-1234.5))
		assert.Equal(t, "123", lf.FormatNumber(123))
		assert.Equal(t, "0", lf.FormatNumber(0))
		assert.Equal(t, "0", lf.FormatNumber(-0.001))
	})

	t.Run("Custom format with options", func(t *testing.T) {
		lf := i18n.NewLocaleFormat(
			i18n.WithDecimalSeparator(","),
			i18n.WithThousandSeparator("."),
		)

		assert.Equal(t, "1.234", lf.FormatNumber(1234))
		assert.Equal(t, "1.234,5", lf.FormatNumber(1234.5))
		assert.Equal(t, "1.234.567,89", lf.FormatNumber(1234567.89))
	})
}

func TestLocaleFormat_FormatCurrency(t *testing.T) {
	t.Run("English/USD format", func(t *testing.T) {
		lf := i18n.NewEnglishFormat()

		assert.Equal(t, "$1,234.50", lf.FormatCurrency(1234.50))
		assert.Equal(t, "$1,234.00", lf.FormatCurrency(1234))
		assert.Equal(t, "-$1,234.50", lf.FormatCurrency(-1234.50))
		assert.Equal(t, "$0.99", lf.FormatCurrency(0.99))
	})

	t.Run("Symbol after amount", func(t *testing.T) {
		lf := i18n.LocaleFormatFor("de")
		assert.Equal(t, "1.234,50 €", lf.FormatCurrency(1234.5))
	})

	t.Run("Spaced symbol before amount", func(t *testing.T) {
		lf := i18n.NewLocaleFormat(i18n.WithCurrencySymbol("CHF"))
		assert.Equal(t, "CHF 10.00", lf.FormatCurrency(10))
	})

	t.Run("Invalid position is ignored", func(t *testing.T) {
		lf := i18n.NewLocaleFormat(i18n.WithCurrencyPosition("middle"))
		assert.Equal(t, "$1.00", lf.FormatCurrency(1))
	})
}

func TestLocaleFormat_FormatPercent(t *testing.T) {
	lf := i18n.NewEnglishFormat()

	assert.Equal(t, "50%", lf.FormatPercent(0.5))
	assert.Equal(t, "12.5%", lf.FormatPercent(0.125))
	assert.Equal(t, "-5%", lf.FormatPercent(-0.05))
	assert.Equal(t, "12,5 %", i18n.LocaleFormatFor("fr").FormatPercent(0.125))
}

func TestLocaleFormat_Dates(t *testing.T) {
	date := time.Date(2024, time.March, 5, 14, 30, 15, 0, time.UTC)

	t.Run("English styles", func(t *testing.T) {
		lf := i18n.NewEnglishFormat()
		assert.Equal(t, "3/5/24", lf.FormatDateStyle(date, i18n.StyleShort))
		assert.Equal(t, "Mar 5, 2024", lf.FormatDateStyle(date, ""))
		assert.Equal(t, "March 5, 2024", lf.FormatDateStyle(date, i18n.StyleLong))
		assert.Equal(t, "Tuesday, March 5, 2024", lf.FormatDateStyle(date, i18n.StyleFull))
		assert.Equal(t, "2:30 PM", lf.FormatTime(date))
		assert.Equal(t, "2:30:15 PM", lf.FormatTimeStyle(date, i18n.StyleMedium))
		assert.Equal(t, "03/05/2024 2:30 PM", lf.FormatDateTime(date))
	})

	t.Run("German presets", func(t *testing.T) {
		lf := i18n.LocaleFormatFor("de-AT")
		assert.Equal(t, "05.03.24", lf.FormatDate(date))
		assert.Equal(t, "05.03.2024", lf.FormatDateStyle(date, i18n.StyleLong))
		assert.Equal(t, "14:30", lf.FormatTime(date))
	})

	t.Run("Go layout as style", func(t *testing.T) {
		lf := i18n.NewEnglishFormat()
		assert.Equal(t, "2024-03-05", lf.FormatDateStyle(date, "2006-01-02"))
	})

	t.Run("Layout options", func(t *testing.T) {
		lf := i18n.NewLocaleFormat(
			i18n.WithDateFormat(i18n.StyleShort, "2006/01/02"),
			i18n.WithTimeFormat(i18n.StyleShort, "15h04"),
			i18n.WithDateTimeFormat("2006/01/02 15h04"),
		)
		assert.Equal(t, "2024/03/05", lf.FormatDate(date))
		assert.Equal(t, "14h30", lf.FormatTime(date))
		assert.Equal(t, "2024/03/05 14h30", lf.FormatDateTime(date))
	})

	t.Run("Unknown language falls back to English", func(t *testing.T) {
		assert.Equal(t, "3/5/24", i18n.LocaleFormatFor("xx").FormatDate(date))
	})
}

func TestFormats(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)
	f := i18n.NewFormats(nil)

	tests := []struct {
		name     string
		locale   language.Tag
		value    msgformat.Value
		style    msgformat.Style
		expected string
	}{
		{"default integer", language.English, msgformat.Int(1234), msgformat.Style{Type: msgformat.StyleNumber}, "1,234"},
		{"default decimal", language.English, msgformat.Float(1234.5), msgformat.Style{Type: msgformat.StyleNumber}, "1,234.5"},
		{"german decimal", language.German, msgformat.Float(1234.5), msgformat.Style{Type: msgformat.StyleNumber}, "1.234,5"},
		{"integer style rounds", language.English, msgformat.Float(1234.7), msgformat.Style{Type: msgformat.StyleNumber, Text: "integer"}, "1,235"},
		{"percent", language.English, msgformat.Float(0.25), msgformat.Style{Type: msgformat.StyleNumber, Text: "percent"}, "25%"},
		{"currency", language.English, msgformat.Float(9.5), msgformat.Style{Type: msgformat.StyleNumber, Text: "currency"}, "$9.50"},
		{"pattern fraction digits", language.English, msgformat.Float(1234.5), msgformat.Style{Type: msgformat.StyleNumber, Text: "#,##0.00"}, "1,234.50"},
		{"pattern without grouping", language.English, msgformat.Float(12345.67), msgformat.Style{Type: msgformat.StyleNumber, Text: "0.0"}, "12345.7"},
		{"skeleton", language.English, msgformat.Int(3), msgformat.Style{Type: msgformat.StyleNumber, Text: "::.00"}, "3.00"},
		{"skeleton keyword", language.English, msgformat.Float(0.5), msgformat.Style{Type: msgformat.StyleNumber, Text: "::percent"}, "50%"},
		{"medium date", language.English, msgformat.Date(date), msgformat.Style{Type: msgformat.StyleDate}, "Mar 5, 2024"},
		{"german short date", language.German, msgformat.Date(date), msgformat.Style{Type: msgformat.StyleDate, Text: "short"}, "05.03.24"},
		{"short time", language.English, msgformat.Date(date), msgformat.Style{Type: msgformat.StyleTime, Text: "short"}, "2:30 PM"},
		{"layout time", language.English, msgformat.Date(date), msgformat.Style{Type: msgformat.StyleTime, Text: "15:04"}, "14:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, f.FormatValue(tt.locale, tt.value, tt.style))
		})
	}
}

func TestFormatsOverrides(t *testing.T) {
	t.Parallel()

	custom := i18n.NewLocaleFormat(i18n.WithCurrencySymbol("£"))
	f := i18n.NewFormats(map[string]*i18n.LocaleFormat{"en-GB": custom})

	assert.Same(t, custom, f.LocaleFormat(language.BritishEnglish))
	assert.Equal(t, "£5.00", f.FormatValue(language.BritishEnglish, msgformat.Float(5), msgformat.Style{Type: msgformat.StyleNumber, Text: "currency"}))
	assert.Equal(t, "$5.00", f.FormatValue(language.AmericanEnglish, msgformat.Float(5), msgformat.Style{Type: msgformat.StyleNumber, Text: "currency"}))
	assert.Equal(t, "05.03.24", f.LocaleFormat(language.MustParse("de-CH")).FormatDate(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)))
}
