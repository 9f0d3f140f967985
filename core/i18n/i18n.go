package i18n

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/messageformat/core/logger"
	"github.com/dmitrymomot/messageformat/core/msgformat"
)

// DefaultLang is the default language code used when no default language is specified.
const DefaultLang = "en"

// I18n holds precompiled translations and the collaborators used to render them.
// It is immutable after creation, making it safe for concurrent use.
type I18n struct {
	// Key format: "lang:namespace:key.path"
	messages map[string]*msgformat.Message

	// Raw patterns collected by options, compiled once in New.
	sources map[string]source

	pluralRules   map[string]PluralRule
	familyRules   bool
	localeFormats map[string]*LocaleFormat
	compileOpts   []msgformat.CompileOption

	defaultLang string
	languages   []string
	tags        map[string]language.Tag

	plurals   *Plurals
	formats   *Formats
	evaluator *msgformat.Evaluator

	missingKeyHandler func(lang, namespace, key string)
	log               *slog.Logger

	frozen bool
}

type source struct {
	lang, namespace, key, pattern string
}

// Option configures the I18n instance during construction.
type Option func(*I18n) error

// New creates a new I18n instance with the given options.
// Every translation is compiled here; all compile failures are returned
// together as *TranslationError values joined with errors.Join.
func New(opts ...Option) (*I18n, error) {
	i := &I18n{
		messages:      make(map[string]*msgformat.Message),
		sources:       make(map[string]source),
		pluralRules:   make(map[string]PluralRule),
		localeFormats: make(map[string]*LocaleFormat),
		defaultLang:   DefaultLang,
		tags:          make(map[string]language.Tag),
		log:           slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if i.defaultLang == "" {
		return nil, ErrEmptyLanguage
	}

	var errs []error
	for _, compositeKey := range slices.Sorted(maps.Keys(i.sources)) {
		src := i.sources[compositeKey]
		msg, err := msgformat.Compile(src.pattern, i.compileOpts...)
		if err != nil {
			errs = append(errs, &TranslationError{Language: src.lang, Namespace: src.namespace, Key: src.key, Err: err})
			continue
		}
		i.messages[compositeKey] = msg
		i.tagFor(src.lang)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	if len(i.languages) == 0 {
		i.languages = []string{i.defaultLang}
	}
	for _, lang := range i.languages {
		i.tagFor(lang)
	}

	if i.familyRules {
		for lang := range i.tags {
			if _, ok := i.pluralRules[lang]; !ok {
				i.pluralRules[lang] = GetPluralRuleForLanguage(lang)
			}
		}
	}
	i.plurals = NewPlurals(i.pluralRules)
	i.formats = NewFormats(i.localeFormats)
	i.evaluator = msgformat.NewEvaluator(i.plurals, i.formats)

	i.sources = nil
	i.frozen = true
	return i, nil
}

// WithDefaultLanguage sets the default/fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		i.defaultLang = lang
		return nil
	}
}

// WithPluralRule registers a plural rule for a language. It overrides CLDR
// data for integer cardinal plurals in that language.
func WithPluralRule(lang string, rule PluralRule) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if rule == nil {
			return ErrNilPluralRule
		}
		i.pluralRules[lang] = rule
		return nil
	}
}

// WithFamilyPluralRules uses GetPluralRuleForLanguage for every known
// language without an explicit rule, instead of CLDR data.
func WithFamilyPluralRules() Option {
	return func(i *I18n) error {
		i.familyRules = true
		return nil
	}
}

// WithLocaleFormat replaces the preset number and date formatting for a language.
func WithLocaleFormat(lang string, lf *LocaleFormat) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if lf != nil {
			i.localeFormats[lang] = lf
		}
		return nil
	}
}

// WithMaxDepth bounds the nesting depth of translation patterns.
func WithMaxDepth(depth int) Option {
	return func(i *I18n) error {
		i.compileOpts = append(i.compileOpts, msgformat.WithMaxDepth(depth))
		return nil
	}
}

// WithLanguages sets the supported languages for the I18n instance.
// The default language will always be included and placed first in the list.
// Other languages will be sorted alphabetically.
func WithLanguages(langs ...string) Option {
	return func(i *I18n) error {
		if len(langs) == 0 {
			return nil
		}

		langSet := make(map[string]bool)
		for _, lang := range langs {
			if lang != "" {
				langSet[lang] = true
			}
		}
		delete(langSet, i.defaultLang)

		others := make([]string, 0, len(langSet))
		for lang := range langSet {
			others = append(others, lang)
		}
		sort.Strings(others)

		i.languages = append([]string{i.defaultLang}, others...)
		return nil
	}
}

// WithMissingKeyHandler sets a handler function that will be called when a translation
// key is not found in any language (including the default fallback).
func WithMissingKeyHandler(handler func(lang, namespace, key string)) Option {
	return func(i *I18n) error {
		i.missingKeyHandler = handler
		return nil
	}
}

// WithLogger sets the logger used to report render failures in T and Tn.
func WithLogger(log *slog.Logger) Option {
	return func(i *I18n) error {
		if log != nil {
			i.log = log
		}
		return nil
	}
}

// WithTranslations loads translations for a specific language and namespace.
// The translations map can be nested; it will be flattened internally.
// Values are message patterns; later options overwrite earlier keys.
func WithTranslations(lang, namespace string, translations map[string]any) Option {
	return func(i *I18n) error {
		if lang == "" {
			return ErrEmptyLanguage
		}
		if namespace == "" {
			return ErrEmptyNamespace
		}

		for key, pattern := range flattenTranslations(translations, "") {
			i.sources[buildKey(lang, namespace, key)] = source{lang: lang, namespace: namespace, key: key, pattern: pattern}
		}
		return nil
	}
}

// WithCatalogs registers every catalog as WithTranslations would.
func WithCatalogs(catalogs ...Catalog) Option {
	return func(i *I18n) error {
		for _, c := range catalogs {
			if err := c.Option()(i); err != nil {
				return fmt.Errorf("catalog %s/%s: %w", c.Language, c.Namespace, err)
			}
		}
		return nil
	}
}

// Message returns the compiled message for a key, falling back to the default language.
func (i *I18n) Message(lang, namespace, key string) (*msgformat.Message, bool) {
	msg, _, ok := i.lookup(lang, namespace, key)
	return msg, ok
}

// lookup also reports the language the message was found in; plural
// categories and number formats follow that language.
func (i *I18n) lookup(lang, namespace, key string) (*msgformat.Message, string, bool) {
	for _, l := range i.fallbackChain(lang) {
		if msg, ok := i.messages[buildKey(l, namespace, key)]; ok {
			return msg, l, true
		}
	}
	return nil, "", false
}

// Format renders a translation with typed arguments. It returns an error
// wrapping ErrTranslationNotFound when the key is missing in both the requested
// and the default language, and a *TranslationError for render failures.
func (i *I18n) Format(lang, namespace, key string, args msgformat.Args) (string, error) {
	msg, found, ok := i.lookup(lang, namespace, key)
	if !ok {
		return "", &TranslationError{Language: lang, Namespace: namespace, Key: key, Err: ErrTranslationNotFound}
	}
	return i.render(found, namespace, key, msg, args)
}

func (i *I18n) render(lang, namespace, key string, msg *msgformat.Message, args msgformat.Args) (string, error) {
	out, err := i.evaluator.Format(msg, i.tagFor(lang), args)
	if err != nil {
		return "", &TranslationError{Language: lang, Namespace: namespace, Key: key, Err: err}
	}
	return out, nil
}

// T renders a translation for the given language, namespace, and key.
// Arguments from the provided maps are merged, later maps winning.
// Falls back to the default language if translation is not found and
// returns the key itself if no translation exists. When rendering fails
// the failure is logged and the pattern text is returned.
func (i *I18n) T(lang, namespace, key string, args ...M) string {
	msg, found, ok := i.lookup(lang, namespace, key)
	if !ok {
		i.missing(lang, namespace, key)
		return key
	}
	return i.renderLoose(found, namespace, key, msg, mergeArgs(nil, args))
}

// Tn renders a pluralized translation for the given count, injected as "count".
//
// A pattern stored under key itself is rendered as is, so it can use
// {count, plural, ...}. Otherwise the category of n picks one of the flat
// forms "key.one", "key.few", "key.other" and so on, with fallbacks.
func (i *I18n) Tn(lang, namespace, key string, n int, args ...M) string {
	merged := mergeArgs(M{"count": n}, args)

	if msg, found, ok := i.lookup(lang, namespace, key); ok {
		return i.renderLoose(found, namespace, key, msg, merged)
	}

	for _, l := range i.fallbackChain(lang) {
		category := i.plurals.SelectPlural(i.tagFor(l), msgformat.Int(int64(n)), msgformat.Cardinal)
		for _, form := range append([]msgformat.Category{category}, getPluralFallbackForms(category)...) {
			formKey := key + "." + string(form)
			if msg, ok := i.messages[buildKey(l, namespace, formKey)]; ok {
				return i.renderLoose(l, namespace, formKey, msg, merged)
			}
		}
	}

	i.missing(lang, namespace, key)
	return key
}

func (i *I18n) renderLoose(lang, namespace, key string, msg *msgformat.Message, args M) string {
	typed, err := msgformat.ArgsFrom(args)
	if err == nil {
		var out string
		if out, err = i.render(lang, namespace, key, msg, typed); err == nil {
			return out
		}
	}

	i.log.Warn("failed to render translation",
		logger.Component("i18n"),
		logger.Locale(lang),
		logger.Namespace(namespace),
		logger.TranslationKey(key),
		logger.Error(err),
	)
	return msg.String()
}

func (i *I18n) missing(lang, namespace, key string) {
	if i.missingKeyHandler != nil {
		i.missingKeyHandler(lang, namespace, key)
	}
}

func (i *I18n) fallbackChain(lang string) []string {
	if lang == i.defaultLang {
		return []string{lang}
	}
	return []string{lang, i.defaultLang}
}

// Languages returns all configured languages in the I18n instance.
// The default language is always returned first, followed by other languages sorted alphabetically.
func (i *I18n) Languages() []string {
	return i.languages
}

// DefaultLanguage returns the default language code configured for the I18n instance.
// If no default language was explicitly set, returns DefaultLang ("en").
func (i *I18n) DefaultLanguage() string {
	return i.defaultLang
}

// Keys returns the sorted keys of a language/namespace pair.
func (i *I18n) Keys(lang, namespace string) []string {
	prefix := buildKey(lang, namespace, "")
	var keys []string
	for compositeKey := range i.messages {
		if key, ok := strings.CutPrefix(compositeKey, prefix); ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

// Formats returns the value formatter used for rendering.
func (i *I18n) Formats() *Formats {
	return i.formats
}

// Plurals returns the plural selector used for rendering.
func (i *I18n) Plurals() *Plurals {
	return i.plurals
}

// tagFor returns the language.Tag for a code. Codes seen in New are cached;
// unknown or malformed codes fall back to language.Make.
func (i *I18n) tagFor(lang string) language.Tag {
	if tag, ok := i.tags[lang]; ok {
		return tag
	}
	tag := language.Make(lang)
	if !i.frozen {
		i.tags[lang] = tag
	}
	return tag
}

// buildKey creates a composite key for the translations map.
func buildKey(lang, namespace, key string) string {
	return lang + ":" + namespace + ":" + key
}

// flattenTranslations recursively flattens a nested map into dot-notation keys.
func flattenTranslations(data map[string]any, prefix string) map[string]string {
	result := make(map[string]string)

	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			maps.Copy(result, flattenTranslations(v, fullKey))
		case map[string]string:
			for subKey, subVal := range v {
				result[fullKey+"."+subKey] = subVal
			}
		case nil:
			result[fullKey] = ""
		default:
			result[fullKey] = fmt.Sprintf("%v", v)
		}
	}

	return result
}

// mergeArgs copies maps into base, later maps winning.
func mergeArgs(base M, args []M) M {
	if base == nil {
		base = make(M)
	}
	for _, a := range args {
		maps.Copy(base, a)
	}
	return base
}

// getPluralFallbackForms returns the fallback hierarchy for a given plural form,
// ending in "other".
func getPluralFallbackForms(form msgformat.Category) []msgformat.Category {
	switch form {
	case PluralTwo:
		return []msgformat.Category{PluralFew, PluralMany, PluralOther}
	case PluralFew:
		return []msgformat.Category{PluralMany, PluralOther}
	case PluralOther:
		return nil
	default:
		return []msgformat.Category{PluralOther}
	}
}
