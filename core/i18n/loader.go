package i18n

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadYAMLDir reads every .yaml/.yml file under dir, recursively, as a Catalog.
//
// Each file looks like:
//
//	language: en
//	namespace: checkout
//	messages:
//	  items: "{count, plural, one{# item} other{# items}}"
//	  errors:
//	    declined: "Your card was declined."
func LoadYAMLDir(dir string) ([]Catalog, error) {
	var catalogs []Catalog
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if ext := filepath.Ext(path); ext != ".yaml" && ext != ".yml" {
			return nil
		}
		c, err := LoadYAMLFile(path)
		if err != nil {
			return err
		}
		catalogs = append(catalogs, c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return catalogs, nil
}

// LoadYAMLFile reads a single catalog file. A missing namespace defaults
// to DefaultNamespace.
func LoadYAMLFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read %s: %w", path, err)
	}
	return ParseYAML(path, data)
}

// ParseYAML decodes catalog data; name is used in error messages only.
func ParseYAML(name string, data []byte) (Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("%w: %s: %w", ErrInvalidCatalog, name, err)
	}
	if c.Language == "" {
		return Catalog{}, fmt.Errorf("%w: %s: missing 'language' field", ErrInvalidCatalog, name)
	}
	if c.Namespace == "" {
		c.Namespace = DefaultNamespace
	}
	return c, nil
}
