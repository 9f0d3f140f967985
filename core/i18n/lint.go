package i18n

import (
	"maps"
	"slices"

	"github.com/dmitrymomot/messageformat/core/msgformat"
)

// LintResult reports catalog problems per language. Keys are qualified as
// "namespace:key".
type LintResult struct {
	Languages     []string
	MissingKeys   map[string][]string
	RedundantKeys map[string][]string
	SyntaxErrors  map[string]map[string]error
}

// HasIssues reports whether any language has a problem.
func (r *LintResult) HasIssues() bool {
	for _, lang := range r.Languages {
		if len(r.MissingKeys[lang]) > 0 || len(r.RedundantKeys[lang]) > 0 || len(r.SyntaxErrors[lang]) > 0 {
			return true
		}
	}
	return false
}

// Lint compiles every catalog entry and compares each language's keys with
// defaultLang: keys the default has but a language lacks are missing, keys only
// a translation has are redundant.
func Lint(defaultLang string, catalogs []Catalog, opts ...msgformat.CompileOption) *LintResult {
	res := &LintResult{
		MissingKeys:   make(map[string][]string),
		RedundantKeys: make(map[string][]string),
		SyntaxErrors:  make(map[string]map[string]error),
	}

	keys := make(map[string]map[string]struct{})
	for _, c := range catalogs {
		if keys[c.Language] == nil {
			keys[c.Language] = make(map[string]struct{})
		}
		for key, pattern := range c.Entries() {
			qualified := c.Namespace + ":" + key
			keys[c.Language][qualified] = struct{}{}
			if _, err := msgformat.Compile(pattern, opts...); err != nil {
				if res.SyntaxErrors[c.Language] == nil {
					res.SyntaxErrors[c.Language] = make(map[string]error)
				}
				res.SyntaxErrors[c.Language][qualified] = err
			}
		}
	}

	res.Languages = slices.Sorted(maps.Keys(keys))
	reference := keys[defaultLang]
	for lang, set := range keys {
		if lang == defaultLang {
			continue
		}
		for _, key := range slices.Sorted(maps.Keys(reference)) {
			if _, ok := set[key]; !ok {
				res.MissingKeys[lang] = append(res.MissingKeys[lang], key)
			}
		}
		for _, key := range slices.Sorted(maps.Keys(set)) {
			if _, ok := reference[key]; !ok {
				res.RedundantKeys[lang] = append(res.RedundantKeys[lang], key)
			}
		}
	}
	return res
}
