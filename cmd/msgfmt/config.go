package main

// Config is loaded from the environment (and a .env file) with core/config.
// Flags override the matching fields per command.
type Config struct {
	Locale          string `env:"MSGFMT_LOCALE" envDefault:"en"`
	DefaultLanguage string `env:"MSGFMT_DEFAULT_LANGUAGE" envDefault:"en"`
	Namespace       string `env:"MSGFMT_NAMESPACE" envDefault:"default"`
	CatalogDir      string `env:"MSGFMT_CATALOG_DIR" envDefault:"./locales"`
	PluralRules     string `env:"MSGFMT_PLURAL_RULES" envDefault:"cldr"` // cldr or family
	MaxDepth        int    `env:"MSGFMT_MAX_DEPTH" envDefault:"64"`

	// Source selects where catalogs come from: "dir" or "redis".
	// With "redis" the connection is configured by redis.Config (REDIS_URL and friends).
	Source      string `env:"MSGFMT_SOURCE" envDefault:"dir"`
	RedisPrefix string `env:"MSGFMT_REDIS_PREFIX" envDefault:"msgfmt"`

	LogLevel  string `env:"MSGFMT_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"MSGFMT_LOG_FORMAT" envDefault:"text"` // text or json
}

const (
	sourceDir   = "dir"
	sourceRedis = "redis"

	rulesCLDR   = "cldr"
	rulesFamily = "family"
)
