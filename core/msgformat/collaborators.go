package msgformat

import "golang.org/x/text/language"

// Category is a CLDR plural category keyword.
type Category string

// Plural categories as defined by Unicode CLDR.
const (
	CategoryZero  Category = "zero"
	CategoryOne   Category = "one"
	CategoryTwo   Category = "two"
	CategoryFew   Category = "few"
	CategoryMany  Category = "many"
	CategoryOther Category = "other"
)

// IsCategory reports whether s is one of the six plural category keywords.
func IsCategory(s string) bool {
	switch Category(s) {
	case CategoryZero, CategoryOne, CategoryTwo, CategoryFew, CategoryMany, CategoryOther:
		return true
	}
	return false
}

// PluralKind selects cardinal ("plural") or ordinal ("selectordinal") rules.
type PluralKind uint8

const (
	Cardinal PluralKind = iota
	Ordinal
)

// String returns the argument type keyword for the kind.
func (k PluralKind) String() string {
	if k == Ordinal {
		return "selectordinal"
	}
	return "plural"
}

// PluralSelector maps a number to its plural category in a locale.
// The value passed is always a number and already offset-adjusted.
type PluralSelector interface {
	SelectPlural(locale language.Tag, value Value, kind PluralKind) Category
}

// PluralSelectorFunc adapts a function to PluralSelector.
type PluralSelectorFunc func(locale language.Tag, value Value, kind PluralKind) Category

// SelectPlural calls f.
func (f PluralSelectorFunc) SelectPlural(locale language.Tag, value Value, kind PluralKind) Category {
	return f(locale, value, kind)
}

// StyleType tells the ValueFormatter which argument type is being rendered.
type StyleType uint8

const (
	StyleNumber StyleType = iota
	StyleDate
	StyleTime
)

// String returns the argument type keyword for the style type.
func (t StyleType) String() string {
	switch t {
	case StyleDate:
		return "date"
	case StyleTime:
		return "time"
	default:
		return "number"
	}
}

// Style is the formatting hint attached to number, date and time arguments.
// Text is passed through verbatim from the pattern and may be empty.
type Style struct {
	Type StyleType
	Text string
}

// ValueFormatter renders numbers, dates and times for a locale.
type ValueFormatter interface {
	FormatValue(locale language.Tag, value Value, style Style) string
}

// ValueFormatterFunc adapts a function to ValueFormatter.
type ValueFormatterFunc func(locale language.Tag, value Value, style Style) string

// FormatValue calls f.
func (f ValueFormatterFunc) FormatValue(locale language.Tag, value Value, style Style) string {
	return f(locale, value, style)
}
