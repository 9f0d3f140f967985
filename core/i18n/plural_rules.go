package i18n

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/messageformat/core/msgformat"
)

// PluralRule maps an integer count to a CLDR plural category.
// Rules registered with WithPluralRule take precedence over CLDR data
// for integer cardinal plurals.
type PluralRule func(n int) msgformat.Category

// Plural category aliases for rule authors.
const (
	PluralZero  = msgformat.CategoryZero
	PluralOne   = msgformat.CategoryOne
	PluralTwo   = msgformat.CategoryTwo
	PluralFew   = msgformat.CategoryFew
	PluralMany  = msgformat.CategoryMany
	PluralOther = msgformat.CategoryOther
)

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// EnglishPluralRule: one (1), other.
var EnglishPluralRule PluralRule = func(n int) msgformat.Category {
	if abs(n) == 1 {
		return PluralOne
	}
	return PluralOther
}

// SlavicPluralRule covers Polish, Czech, Ukrainian, Croatian, Serbian and similar:
// one (1), few (2-4 except 12-14), many.
var SlavicPluralRule PluralRule = func(n int) msgformat.Category {
	n = abs(n)
	if n == 1 {
		return PluralOne
	}
	mod10, mod100 := n%10, n%100
	if mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14) {
		return PluralFew
	}
	return PluralMany
}

// RomancePluralRule covers French, Italian and Portuguese:
// one (0, 1), many (1,000,000+), other.
var RomancePluralRule PluralRule = func(n int) msgformat.Category {
	n = abs(n)
	if n <= 1 {
		return PluralOne
	}
	if n >= 1000000 {
		return PluralMany
	}
	return PluralOther
}

// SpanishPluralRule: one (1), many (1,000,000+), other.
var SpanishPluralRule PluralRule = func(n int) msgformat.Category {
	n = abs(n)
	if n == 1 {
		return PluralOne
	}
	if n >= 1000000 {
		return PluralMany
	}
	return PluralOther
}

// GermanicPluralRule covers German, Dutch and the Scandinavian languages:
// one (1), other (including 0).
var GermanicPluralRule PluralRule = EnglishPluralRule

// AsianPluralRule covers languages with no plural distinction.
var AsianPluralRule PluralRule = func(int) msgformat.Category {
	return PluralOther
}

// ArabicPluralRule: zero, one, two, few (3-10), many (11-99), other.
var ArabicPluralRule PluralRule = func(n int) msgformat.Category {
	n = abs(n)
	switch n {
	case 0:
		return PluralZero
	case 1:
		return PluralOne
	case 2:
		return PluralTwo
	}
	mod100 := n % 100
	if mod100 >= 3 && mod100 <= 10 {
		return PluralFew
	}
	if mod100 >= 11 {
		return PluralMany
	}
	return PluralOther
}

// DefaultPluralRule approximates languages with no family rule:
// zero, one, few (2-4), many (5-19), other.
var DefaultPluralRule PluralRule = func(n int) msgformat.Category {
	n = abs(n)
	switch {
	case n == 0:
		return PluralZero
	case n == 1:
		return PluralOne
	case n <= 4:
		return PluralFew
	case n < 20:
		return PluralMany
	}
	return PluralOther
}

// GetPluralRuleForLanguage returns the family rule for a language code
// such as "en", "pl" or "pt-BR". Unknown languages get DefaultPluralRule.
func GetPluralRuleForLanguage(lang string) PluralRule {
	switch baseLanguage(lang) {
	case "en":
		return EnglishPluralRule
	case "pl", "ru", "cs", "uk", "hr", "sr", "sk", "sl", "bg":
		return SlavicPluralRule
	case "fr", "it", "pt":
		return RomancePluralRule
	case "es":
		return SpanishPluralRule
	case "de", "nl", "sv", "no", "da", "is":
		return GermanicPluralRule
	case "ja", "zh", "ko", "th", "vi", "id", "ms":
		return AsianPluralRule
	case "ar":
		return ArabicPluralRule
	default:
		return DefaultPluralRule
	}
}

// SupportedPluralForms returns the categories a rule produces over a
// representative sample of counts, in CLDR order.
func SupportedPluralForms(rule PluralRule) []msgformat.Category {
	seen := make(map[msgformat.Category]bool)
	for _, n := range []int{0, 1, 2, 3, 4, 5, 10, 11, 12, 13, 14, 20, 21, 22, 100, 1000, 1000000} {
		seen[rule(n)] = true
	}

	var forms []msgformat.Category
	for _, form := range []msgformat.Category{PluralZero, PluralOne, PluralTwo, PluralFew, PluralMany, PluralOther} {
		if seen[form] {
			forms = append(forms, form)
		}
	}
	return forms
}

// Plurals is a msgformat.PluralSelector backed by CLDR data from
// golang.org/x/text/feature/plural. It is immutable and safe for concurrent use.
type Plurals struct {
	rules map[string]PluralRule
}

// NewPlurals returns a selector. rules overrides CLDR for integer cardinals,
// keyed by language tag ("pt-BR") or base language ("pt").
func NewPlurals(rules map[string]PluralRule) *Plurals {
	p := &Plurals{rules: make(map[string]PluralRule, len(rules))}
	for lang, rule := range rules {
		if rule != nil {
			p.rules[strings.ToLower(lang)] = rule
		}
	}
	return p
}

// SelectPlural implements msgformat.PluralSelector.
func (p *Plurals) SelectPlural(locale language.Tag, v msgformat.Value, kind msgformat.PluralKind) msgformat.Category {
	if kind == msgformat.Cardinal && v.IsInteger() {
		if rule, ok := p.rule(locale); ok {
			return rule(clampInt(v.Int64()))
		}
	}

	rules := plural.Cardinal
	if kind == msgformat.Ordinal {
		rules = plural.Ordinal
	}
	i, vis, w, f, t := operands(v)
	return category(rules.MatchPlural(locale, i, vis, w, f, t))
}

func (p *Plurals) rule(locale language.Tag) (PluralRule, bool) {
	if len(p.rules) == 0 {
		return nil, false
	}
	if rule, ok := p.rules[strings.ToLower(locale.String())]; ok {
		return rule, true
	}
	base, _ := locale.Base()
	rule, ok := p.rules[base.String()]
	return rule, ok
}

// operands returns the CLDR plural operands i, v, w, f and t of the absolute value.
func operands(v msgformat.Value) (i, vis, w, f, t int) {
	if v.IsInteger() {
		return clampInt(v.Int64()), 0, 0, 0, 0
	}

	s := strconv.FormatFloat(math.Abs(v.Float64()), 'f', -1, 64)
	intPart, frac, _ := strings.Cut(s, ".")
	i = integerDigits(intPart)
	if frac == "" {
		return i, 0, 0, 0, 0
	}
	// Shortest formatting leaves no trailing zeros, so v == w and f == t.
	vis = len(frac)
	f = digitsInt(frac)
	return i, vis, vis, f, f
}

// digitsInt parses a decimal digit string, keeping only the last nine digits
// of longer inputs. CLDR rules depend on low-order digits only.
func digitsInt(s string) int {
	if len(s) > 9 {
		s = s[len(s)-9:]
	}
	n, _ := strconv.Atoi(s)
	return n
}

// integerDigits parses the integer part the way clampInt reduces integers, so
// Int(n) and Float(n) select the same category at any magnitude.
func integerDigits(s string) int {
	if len(s) > 9 {
		return digitsInt(s) + 1000000000
	}
	return digitsInt(s)
}

func clampInt(n int64) int {
	if n < 0 {
		n = -n
	}
	if n < 0 || n > math.MaxInt32 {
		// Keep the low-order digits the rules look at; 1e9 preserves them.
		return int(n%1000000000) + 1000000000
	}
	return int(n)
}

func category(form plural.Form) msgformat.Category {
	switch form {
	case plural.Zero:
		return PluralZero
	case plural.One:
		return PluralOne
	case plural.Two:
		return PluralTwo
	case plural.Few:
		return PluralFew
	case plural.Many:
		return PluralMany
	default:
		return PluralOther
	}
}

// baseLanguage lowercases a language code and strips region and script.
func baseLanguage(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if idx := strings.IndexAny(lang, "-_"); idx != -1 {
		lang = lang[:idx]
	}
	return lang
}
