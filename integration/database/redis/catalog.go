package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/messageformat/core/i18n"
	"github.com/dmitrymomot/messageformat/core/logger"
)

const defaultScanBatchSize = 1000

// CatalogReader is the subset of a Redis client LoadCatalog needs.
// *redis.Client and redis.UniversalClient satisfy it.
type CatalogReader interface {
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
}

// CatalogWriter is the subset of a Redis client SaveCatalog needs.
// *redis.Client and redis.UniversalClient satisfy it.
type CatalogWriter interface {
	TxPipelined(ctx context.Context, fn func(redis.Pipeliner) error) ([]redis.Cmder, error)
}

// CatalogKey returns the hash key holding one language/namespace catalog:
// "<prefix>:<language>:<namespace>".
func CatalogKey(prefix, lang, namespace string) string {
	return prefix + ":" + lang + ":" + namespace
}

// ParseCatalogKey splits a key built by CatalogKey. The namespace may itself
// contain colons.
func ParseCatalogKey(prefix, key string) (lang, namespace string, err error) {
	rest, ok := strings.CutPrefix(key, prefix+":")
	if !ok {
		return "", "", fmt.Errorf("%w: %q lacks prefix %q", ErrInvalidCatalogKey, key, prefix)
	}
	lang, namespace, ok = strings.Cut(rest, ":")
	if !ok || lang == "" || namespace == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidCatalogKey, key)
	}
	return lang, namespace, nil
}

// LoadCatalog scans every "<prefix>:<language>:<namespace>" hash and returns
// one catalog per hash, sorted by key. Hash fields are message keys, values
// are patterns. Keys under the prefix that do not follow the catalog layout are
// logged and skipped. batchSize is the SCAN COUNT hint; zero means 1000.
func LoadCatalog(ctx context.Context, client CatalogReader, prefix string, batchSize int) ([]i18n.Catalog, error) {
	if batchSize <= 0 {
		batchSize = defaultScanBatchSize
	}

	var keys []string
	var cursor uint64
	for {
		batch, next, err := client.Scan(ctx, cursor, prefix+":*", int64(batchSize)).Result()
		if err != nil {
			return nil, errors.Join(ErrCatalogLoadFailed, err)
		}
		keys = append(keys, batch...)
		if next == 0 {
			break
		}
		cursor = next
	}
	// SCAN may return a key more than once.
	slices.Sort(keys)
	keys = slices.Compact(keys)

	catalogs := make([]i18n.Catalog, 0, len(keys))
	for _, key := range keys {
		lang, namespace, err := ParseCatalogKey(prefix, key)
		if err != nil {
			slog.WarnContext(ctx, "skipping non-catalog key",
				logger.Component("redis"),
				logger.Key("redis_key", key),
				logger.Error(err),
			)
			continue
		}
		fields, err := client.HGetAll(ctx, key).Result()
		if err != nil {
			return nil, errors.Join(ErrCatalogLoadFailed, fmt.Errorf("%s: %w", key, err))
		}

		messages := make(map[string]any, len(fields))
		for field, pattern := range fields {
			messages[field] = pattern
		}
		catalogs = append(catalogs, i18n.Catalog{Language: lang, Namespace: namespace, Messages: messages})
	}
	return catalogs, nil
}

// SaveCatalog replaces the hash of one catalog with its flattened messages.
// The delete and the write run in one MULTI/EXEC transaction, so readers never
// see an empty or half-written catalog and a failed write keeps the old one.
func SaveCatalog(ctx context.Context, client CatalogWriter, prefix string, c i18n.Catalog) error {
	if c.Language == "" || c.Namespace == "" {
		return fmt.Errorf("%w: catalog needs a language and a namespace", ErrInvalidCatalogKey)
	}
	key := CatalogKey(prefix, c.Language, c.Namespace)

	entries := c.Entries()
	values := make([]any, 0, len(entries)*2)
	for field, pattern := range entries {
		values = append(values, field, pattern)
	}

	_, err := client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		if len(values) > 0 {
			pipe.HSet(ctx, key, values...)
		}
		return nil
	})
	if err != nil {
		return errors.Join(ErrCatalogSaveFailed, fmt.Errorf("%s: %w", key, err))
	}
	return nil
}
