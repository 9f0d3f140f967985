package i18n

import (
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/dmitrymomot/messageformat/core/msgformat"
)

// Date and time style names understood by LocaleFormat and Formats.
// Any other style text is used as a Go time layout.
const (
	StyleShort  = "short"
	StyleMedium = "medium"
	StyleLong   = "long"
	StyleFull   = "full"
)

// Number style names understood by Formats. Any other style text is read
// as an ICU decimal pattern such as "#,##0.00" or a "::" skeleton.
const (
	NumberInteger  = "integer"
	NumberPercent  = "percent"
	NumberCurrency = "currency"
)

// LocaleFormat contains formatting rules and methods for locale-specific formatting.
// It is immutable after creation and safe for concurrent use.
type LocaleFormat struct {
	decimalSeparator  string
	thousandSeparator string
	currencySymbol    string
	currencyPosition  string // "before" or "after"
	percentSymbol     string
	dateFormats       map[string]string
	timeFormats       map[string]string
	dateTimeFormat    string
}

// LocaleFormatOption configures a LocaleFormat during construction.
type LocaleFormatOption func(*LocaleFormat)

// NewLocaleFormat creates a new LocaleFormat with the given options.
// If no options are provided, it defaults to US English formatting.
func NewLocaleFormat(opts ...LocaleFormatOption) *LocaleFormat {
	lf := &LocaleFormat{
		decimalSeparator:  ".",
		thousandSeparator: ",",
		currencySymbol:    "$",
		currencyPosition:  "before",
		percentSymbol:     "%",
		dateFormats: map[string]string{
			StyleShort:  "1/2/06",
			StyleMedium: "Jan 2, 2006",
			StyleLong:   "January 2, 2006",
			StyleFull:   "Monday, January 2, 2006",
		},
		timeFormats: map[string]string{
			StyleShort:  "3:04 PM",
			StyleMedium: "3:04:05 PM",
			StyleLong:   "3:04:05 PM MST",
			StyleFull:   "3:04:05 PM MST",
		},
		dateTimeFormat: "01/02/2006 3:04 PM",
	}

	for _, opt := range opts {
		opt(lf)
	}

	return lf
}

// NewEnglishFormat creates a LocaleFormat with standard US English formatting.
func NewEnglishFormat() *LocaleFormat {
	return NewLocaleFormat()
}

// WithDecimalSeparator sets the decimal separator character.
func WithDecimalSeparator(sep string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.decimalSeparator = sep
	}
}

// WithThousandSeparator sets the thousand separator character.
func WithThousandSeparator(sep string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.thousandSeparator = sep
	}
}

// WithCurrencySymbol sets the currency symbol.
func WithCurrencySymbol(symbol string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.currencySymbol = symbol
	}
}

// WithCurrencyPosition sets the currency position ("before" or "after").
func WithCurrencyPosition(pos string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		if pos == "before" || pos == "after" {
			lf.currencyPosition = pos
		}
	}
}

// WithPercentSymbol sets the percent symbol.
func WithPercentSymbol(symbol string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.percentSymbol = symbol
	}
}

// WithDateFormat sets the Go layout used for a date style (short, medium, long, full).
func WithDateFormat(style, layout string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.dateFormats[style] = layout
	}
}

// WithTimeFormat sets the Go layout used for a time style.
func WithTimeFormat(style, layout string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.timeFormats[style] = layout
	}
}

// WithDateTimeFormat sets the datetime layout.
func WithDateTimeFormat(layout string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.dateTimeFormat = layout
	}
}

// FormatNumber formats a number with the locale's separators, up to two decimals.
func (lf *LocaleFormat) FormatNumber(n float64) string {
	negative := n < 0
	if negative {
		n = -n
	}

	n = math.Round(n*100) / 100
	intPart := int64(n)
	result := lf.formatIntegerWithSeparator(intPart)

	if dec := strings.TrimRight(fmt.Sprintf("%.2f", n-float64(intPart))[2:], "0"); dec != "" {
		result += lf.decimalSeparator + dec
	}

	if negative && result != "0" {
		result = "-" + result
	}
	return result
}

// FormatCurrency formats a currency amount with the locale's formatting.
func (lf *LocaleFormat) FormatCurrency(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	amount = math.Round(amount*100) / 100
	intPart := int64(amount)
	numStr := lf.formatIntegerWithSeparator(intPart) + lf.decimalSeparator + fmt.Sprintf("%.2f", amount-float64(intPart))[2:]

	var result string
	switch {
	case lf.currencyPosition == "after":
		result = numStr + " " + lf.currencySymbol
	case tightSymbol(lf.currencySymbol):
		result = lf.currencySymbol + numStr
	default:
		result = lf.currencySymbol + " " + numStr
	}

	if negative {
		result = "-" + result
	}
	return result
}

// FormatPercent formats a ratio (0.5 for 50%) with one decimal at most.
func (lf *LocaleFormat) FormatPercent(n float64) string {
	percentage := math.Round(n*1000) / 10

	negative := percentage < 0
	if negative {
		percentage = -percentage
	}

	intPart := int64(percentage)
	result := fmt.Sprintf("%d", intPart)
	if dec := strings.TrimRight(fmt.Sprintf("%.1f", percentage-float64(intPart))[2:], "0"); dec != "" {
		result += lf.decimalSeparator + dec
	}
	if negative {
		result = "-" + result
	}
	return result + lf.percentSymbol
}

// FormatDate formats a date with the locale's short date layout.
func (lf *LocaleFormat) FormatDate(t time.Time) string {
	return lf.FormatDateStyle(t, StyleShort)
}

// FormatDateStyle formats a date for a named style. An empty style is medium;
// an unknown style is used as a Go layout.
func (lf *LocaleFormat) FormatDateStyle(t time.Time, style string) string {
	return t.Format(layoutFor(lf.dateFormats, style))
}

// FormatTime formats a time with the locale's short time layout.
func (lf *LocaleFormat) FormatTime(t time.Time) string {
	return lf.FormatTimeStyle(t, StyleShort)
}

// FormatTimeStyle formats a time for a named style, like FormatDateStyle.
func (lf *LocaleFormat) FormatTimeStyle(t time.Time, style string) string {
	return t.Format(layoutFor(lf.timeFormats, style))
}

// FormatDateTime formats a datetime with the locale's datetime format.
func (lf *LocaleFormat) FormatDateTime(t time.Time) string {
	return t.Format(lf.dateTimeFormat)
}

func layoutFor(layouts map[string]string, style string) string {
	style = strings.TrimSpace(style)
	if style == "" {
		style = StyleMedium
	}
	if layout, ok := layouts[style]; ok {
		return layout
	}
	return style
}

// formatIntegerWithSeparator adds thousand separators to a non-negative integer.
func (lf *LocaleFormat) formatIntegerWithSeparator(n int64) string {
	str := fmt.Sprintf("%d", n)
	if len(str) <= 3 {
		return str
	}

	var groups []string
	for i := len(str); i > 0; i -= 3 {
		groups = append([]string{str[max(0, i-3):i]}, groups...)
	}
	return strings.Join(groups, lf.thousandSeparator)
}

func tightSymbol(symbol string) bool {
	return strings.HasSuffix(symbol, "$") || symbol == "¥" || symbol == "£"
}

var localePresets = map[string]func() *LocaleFormat{
	"en": NewEnglishFormat,
	"de": func() *LocaleFormat {
		return NewLocaleFormat(
			WithDecimalSeparator(","),
			WithThousandSeparator("."),
			WithCurrencySymbol("€"),
			WithCurrencyPosition("after"),
			WithPercentSymbol(" %"),
			numericDates("02.01.06", "02.01.2006"),
			twentyFourHour(),
			WithDateTimeFormat("02.01.2006 15:04"),
		)
	},
	"fr": func() *LocaleFormat {
		return NewLocaleFormat(
			WithDecimalSeparator(","),
			WithThousandSeparator(" "),
			WithCurrencySymbol("€"),
			WithCurrencyPosition("after"),
			WithPercentSymbol(" %"),
			numericDates("02/01/2006", "02/01/2006"),
			twentyFourHour(),
			WithDateTimeFormat("02/01/2006 15:04"),
		)
	},
	"es": func() *LocaleFormat {
		return NewLocaleFormat(
			WithDecimalSeparator(","),
			WithThousandSeparator("."),
			WithCurrencySymbol("€"),
			WithCurrencyPosition("after"),
			WithPercentSymbol(" %"),
			numericDates("2/1/06", "02/01/2006"),
			twentyFourHour(),
			WithDateTimeFormat("02/01/2006 15:04"),
		)
	},
	"pl": func() *LocaleFormat {
		return NewLocaleFormat(
			WithDecimalSeparator(","),
			WithThousandSeparator(" "),
			WithCurrencySymbol("zł"),
			WithCurrencyPosition("after"),
			numericDates("02.01.2006", "02.01.2006"),
			twentyFourHour(),
			WithDateTimeFormat("02.01.2006 15:04"),
		)
	},
	"uk": func() *LocaleFormat {
		return NewLocaleFormat(
			WithDecimalSeparator(","),
			WithThousandSeparator(" "),
			WithCurrencySymbol("₴"),
			WithCurrencyPosition("after"),
			numericDates("02.01.06", "02.01.2006"),
			twentyFourHour(),
			WithDateTimeFormat("02.01.2006 15:04"),
		)
	},
	"ja": func() *LocaleFormat {
		return NewLocaleFormat(
			WithCurrencySymbol("¥"),
			numericDates("2006/01/02", "2006/01/02"),
			twentyFourHour(),
			WithDateTimeFormat("2006/01/02 15:04"),
		)
	},
}

// numericDates sets every date style to numeric layouts; Go layouts cannot
// render localized month names.
func numericDates(short, other string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.dateFormats[StyleShort] = short
		lf.dateFormats[StyleMedium] = other
		lf.dateFormats[StyleLong] = other
		lf.dateFormats[StyleFull] = other
	}
}

func twentyFourHour() LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.timeFormats[StyleShort] = "15:04"
		lf.timeFormats[StyleMedium] = "15:04:05"
		lf.timeFormats[StyleLong] = "15:04:05 MST"
		lf.timeFormats[StyleFull] = "15:04:05 MST"
	}
}

// LocaleFormatFor returns the preset LocaleFormat for a language code such as
// "de" or "de-AT". Unknown languages get US English formatting.
func LocaleFormatFor(lang string) *LocaleFormat {
	if preset, ok := localePresets[baseLanguage(lang)]; ok {
		return preset()
	}
	return NewEnglishFormat()
}

// Formats is a msgformat.ValueFormatter. Numbers are rendered with CLDR data
// from golang.org/x/text; currency and dates use the LocaleFormat of the locale.
// It is immutable and safe for concurrent use.
type Formats struct {
	locales map[string]*LocaleFormat
}

// NewFormats returns a formatter. overrides replaces the preset LocaleFormat
// for the given language codes.
func NewFormats(overrides map[string]*LocaleFormat) *Formats {
	f := &Formats{locales: make(map[string]*LocaleFormat, len(localePresets)+len(overrides))}
	for lang, preset := range localePresets {
		f.locales[lang] = preset()
	}
	for lang, lf := range overrides {
		if lf != nil {
			f.locales[strings.ToLower(lang)] = lf
		}
	}
	return f
}

// LocaleFormat returns the LocaleFormat used for locale.
func (f *Formats) LocaleFormat(locale language.Tag) *LocaleFormat {
	if lf, ok := f.locales[strings.ToLower(locale.String())]; ok {
		return lf
	}
	base, _ := locale.Base()
	if lf, ok := f.locales[base.String()]; ok {
		return lf
	}
	return f.locales["en"]
}

// FormatValue implements msgformat.ValueFormatter.
func (f *Formats) FormatValue(locale language.Tag, v msgformat.Value, style msgformat.Style) string {
	switch style.Type {
	case msgformat.StyleDate:
		return f.LocaleFormat(locale).FormatDateStyle(v.Time(), style.Text)
	case msgformat.StyleTime:
		return f.LocaleFormat(locale).FormatTimeStyle(v.Time(), style.Text)
	}
	if v.Kind() != msgformat.KindNumber {
		return v.String()
	}
	return f.formatNumber(locale, v, strings.TrimSpace(style.Text))
}

func (f *Formats) formatNumber(locale language.Tag, v msgformat.Value, style string) string {
	p := message.NewPrinter(locale)
	x := numeric(v)

	switch strings.TrimPrefix(style, "::") {
	case "":
		return p.Sprint(number.Decimal(x))
	case NumberInteger:
		return p.Sprint(number.Decimal(x, number.MaxFractionDigits(0)))
	case NumberPercent:
		return p.Sprint(number.Percent(x))
	case NumberCurrency:
		return f.LocaleFormat(locale).FormatCurrency(v.Float64())
	}
	return p.Sprint(number.Decimal(x, patternOptions(strings.TrimPrefix(style, "::"))...))
}

// numeric keeps integers exact when handing them to x/text.
func numeric(v msgformat.Value) any {
	if v.IsInteger() {
		return v.Int64()
	}
	return v.Float64()
}

// patternOptions reads the fraction digits and grouping of a decimal pattern
// such as "#,##0.00", "0.###" or the skeleton form ".00".
func patternOptions(pattern string) []number.Option {
	var opts []number.Option
	intPart, frac, hasFrac := strings.Cut(pattern, ".")
	if !strings.Contains(intPart, ",") && strings.ContainsAny(intPart, "#0") {
		opts = append(opts, number.NoSeparator())
	}
	if !hasFrac {
		return append(opts, number.MaxFractionDigits(0))
	}

	minDigits, maxDigits := 0, 0
	for _, r := range frac {
		switch r {
		case '0':
			minDigits++
			maxDigits++
		case '#':
			maxDigits++
		}
	}
	return append(opts, number.MinFractionDigits(minDigits), number.MaxFractionDigits(maxDigits))
}
