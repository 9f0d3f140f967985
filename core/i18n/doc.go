// Package i18n bundles ICU MessageFormat translations with CLDR plural rules,
// locale-aware value formatting and language fallback.
//
// Every pattern is compiled once by New using the msgformat package. The
// resulting I18n is immutable and safe for concurrent use; all lookups are
// map reads on flattened "lang:namespace:key" entries.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/messageformat/core/i18n"
//
//	bundle, err := i18n.New(
//		i18n.WithDefaultLanguage("en"),
//		i18n.WithLanguages("en", "es"),
//		i18n.WithTranslations("en", "app", map[string]any{
//			"welcome": "Welcome to our application",
//			"goodbye": "Goodbye, {name}!",
//		}),
//		i18n.WithTranslations("es", "app", map[string]any{
//			"welcome": "Bienvenido a nuestra aplicación",
//			"goodbye": "¡Adiós, {name}!",
//		}),
//	)
//	if err != nil {
//		// every pattern that failed to compile, as *TranslationError values
//		log.Fatal(err)
//	}
//
//	bundle.T("es", "app", "goodbye", i18n.M{"name": "Juan"})
//	// "¡Adiós, Juan!"
//
// # Nested Translations
//
// Nested maps are flattened with dots:
//
//	i18n.WithTranslations("en", "ui", map[string]any{
//		"buttons": map[string]any{
//			"save":   "Save",
//			"cancel": "Cancel",
//		},
//	})
//
//	bundle.T("en", "ui", "buttons.save") // "Save"
//
// # Plurals, Ordinals and Select
//
// Patterns use the full ICU syntax. Plural categories come from CLDR data in
// golang.org/x/text/feature/plural, so fractional counts and ordinals work
// in every language CLDR knows:
//
//	i18n.WithTranslations("pl", "shop", map[string]any{
//		"items": "{count, plural, =0{Brak produktów} one{# produkt} few{# produkty} many{# produktów} other{# produktu}}",
//		"place": "{pos, selectordinal, other{#.}}",
//		"owner": "{gender, select, female{Jej koszyk} male{Jego koszyk} other{Ich koszyk}}",
//	})
//
//	bundle.Tn("pl", "shop", "items", 5) // "5 produktów"
//
// Tn injects n as the "count" argument. When no pattern is stored under key
// itself, Tn picks a flat form instead ("items.one", "items.few", ...) with
// fallbacks towards "other":
//
//	i18n.WithTranslations("en", "shop", map[string]any{
//		"items": map[string]string{
//			"one":   "{count} item",
//			"other": "{count} items",
//		},
//	})
//
// # Custom Plural Rules
//
// WithPluralRule overrides CLDR for integer cardinals in one language.
// WithFamilyPluralRules applies the built-in family rules to every language:
//
//   - EnglishPluralRule: English (one, other)
//   - SlavicPluralRule: Polish, Ukrainian, Czech and others (one, few, many)
//   - RomancePluralRule: French, Italian, Portuguese (one for 0 and 1, many for 1M+)
//   - SpanishPluralRule: Spanish (one, many for 1M+, other)
//   - GermanicPluralRule: German, Dutch, Swedish and others (one, other)
//   - AsianPluralRule: Japanese, Chinese, Korean and others (other only)
//   - ArabicPluralRule: Arabic (zero, one, two, few, many, other)
//   - DefaultPluralRule: unknown languages
//
// # Value Formatting
//
// Number, date and time arguments are rendered by Formats. Number styles are
// "integer", "percent", "currency" or a decimal pattern such as "#,##0.00";
// date and time styles are "short", "medium", "long" and "full". Separators
// and currency symbols come from the LocaleFormat of the language and can be
// replaced with WithLocaleFormat:
//
//	i18n.WithLocaleFormat("en-GB", i18n.NewLocaleFormat(i18n.WithCurrencySymbol("£")))
//
// # Language Fallback
//
// A key missing in the requested language is looked up in the default
// language. A key missing in both makes T and Tn return the key itself and
// call the handler set by WithMissingKeyHandler. Format returns an error
// wrapping ErrTranslationNotFound instead.
//
// T and Tn never fail: when rendering does, the failure is logged through the
// logger set by WithLogger and the pattern text is returned. Use Format with
// msgformat.Args for strict rendering.
//
// # Catalog Files
//
// LoadYAMLDir reads catalogs such as:
//
//	language: en
//	namespace: checkout
//	messages:
//	  items: "{count, plural, one{# item} other{# items}}"
//
// and Lint reports missing, redundant and malformed keys across languages.
//
// # Accept-Language
//
//	lang := i18n.ParseAcceptLanguage(r.Header.Get("Accept-Language"), bundle.Languages())
//	t := i18n.NewTranslator(bundle, lang, "app")
//	t.T("welcome")
package i18n
