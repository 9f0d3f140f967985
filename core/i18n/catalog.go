package i18n

import (
	"maps"
	"slices"
)

// DefaultNamespace is used by loaders when a catalog names no namespace.
const DefaultNamespace = "default"

// Catalog is one language/namespace slice of translations as loaded from
// a file or a store. Messages may nest; nested keys join with dots.
type Catalog struct {
	Language  string         `yaml:"language"`
	Namespace string         `yaml:"namespace"`
	Messages  map[string]any `yaml:"messages"`
}

// Option returns the I18n option registering the catalog's messages.
func (c Catalog) Option() Option {
	return WithTranslations(c.Language, c.Namespace, c.Messages)
}

// Entries returns the flattened messages keyed by dotted path.
func (c Catalog) Entries() map[string]string {
	return flattenTranslations(c.Messages, "")
}

// Keys returns the flattened message keys in sorted order.
func (c Catalog) Keys() []string {
	return slices.Sorted(maps.Keys(c.Entries()))
}

// Options converts catalogs into I18n options, in order.
func Options(catalogs ...Catalog) []Option {
	opts := make([]Option, 0, len(catalogs))
	for _, c := range catalogs {
		opts = append(opts, c.Option())
	}
	return opts
}
