// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/messageformat/core/config"
//
//	type CatalogConfig struct {
//		Locale     string `env:"MSGFMT_LOCALE" envDefault:"en"`
//		CatalogDir string `env:"MSGFMT_CATALOG_DIR" envDefault:"./locales"`
//		MaxDepth   int    `env:"MSGFMT_MAX_DEPTH" envDefault:"64"`
//	}
//
//	func main() {
//		var cfg CatalogConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// Parse failures wrap ErrParsing.
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 CatalogConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 CatalogConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently:
//
//	// Each type has its own cache entry
//	config.MustLoad(&CatalogConfig{})
//	config.MustLoad(&redis.Config{})
package config
