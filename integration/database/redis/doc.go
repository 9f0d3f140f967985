// Package redis connects to Redis with retry and health checking, and stores
// translation catalogs as Redis hashes so a fleet of services can share them.
//
// # Key Features
//
//   - Connect: Creates a Redis client with exponential retry logic and connection verification
//   - Healthcheck: Returns a health check function for monitoring Redis connectivity
//   - LoadCatalog: Reads every catalog hash under a prefix as []i18n.Catalog, skipping foreign keys
//   - SaveCatalog: Atomically replaces one catalog hash with the flattened messages of an i18n.Catalog
//
// # Configuration
//
//	type Config struct {
//		ConnectionURL  string        `env:"REDIS_URL,required" envDefault:"redis://localhost:6379/0"`
//		RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
//		RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
//		ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
//		ScanBatchSize  int           `env:"REDIS_SCAN_BATCH_SIZE" envDefault:"1000"`
//	}
//
// Only redis:// and rediss:// (TLS) URLs are accepted. RetryInterval doubles after
// each failed ping; ConnectTimeout bounds the whole process.
//
// # Catalog Layout
//
// Each language/namespace pair is one hash named "<prefix>:<language>:<namespace>".
// Fields are dotted message keys, values are message patterns:
//
//	HSET msgfmt:en:checkout cart.items "{count, plural, one{# item} other{# items}}"
//	HSET msgfmt:pl:checkout cart.items "{count, plural, one{# produkt} few{# produkty} many{# produktów} other{# produktu}}"
//
// # Usage Example
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	catalogs, err := redis.LoadCatalog(ctx, client, "msgfmt", cfg.ScanBatchSize)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	bundle, err := i18n.New(i18n.WithCatalogs(catalogs...))
//
// # Error Handling
//
// The package defines errors that can be checked using errors.Is():
//
//   - ErrFailedToParseRedisConnString: the Redis connection URL is malformed
//   - ErrRedisNotReady: Redis did not answer a ping within the retry budget
//   - ErrEmptyConnectionURL: no connection URL was provided
//   - ErrHealthcheckFailed: the health check ping failed
//   - ErrInvalidCatalogKey: a key or catalog does not follow the catalog layout (LoadCatalog logs and skips such keys)
//   - ErrCatalogLoadFailed, ErrCatalogSaveFailed: a Redis command failed while reading or writing catalogs
//
// These errors wrap the underlying go-redis client errors.
package redis
