package redis_test

import (
	"context"
	"errors"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/messageformat/core/i18n"
	"github.com/dmitrymomot/messageformat/integration/database/redis"
)

type fakeClient struct {
	pages   [][]string
	cursors []uint64
	hashes  map[string]map[string]string
	scanErr error
	pingErr error
	execErr error
	deleted []string
	calls   []string
}

func (f *fakeClient) Scan(_ context.Context, cursor uint64, match string, count int64) *goredis.ScanCmd {
	f.calls = append(f.calls, match)
	if f.scanErr != nil {
		return goredis.NewScanCmdResult(nil, 0, f.scanErr)
	}
	page := 0
	for i, c := range f.cursors {
		if c == cursor {
			page = i
		}
	}
	next := uint64(0)
	if page+1 < len(f.pages) {
		next = f.cursors[page+1]
	}
	return goredis.NewScanCmdResult(f.pages[page], next, nil)
}

func (f *fakeClient) HGetAll(_ context.Context, key string) *goredis.MapStringStringCmd {
	h, ok := f.hashes[key]
	if !ok {
		return goredis.NewMapStringStringResult(map[string]string{}, nil)
	}
	return goredis.NewMapStringStringResult(h, nil)
}

// TxPipelined queues commands on fakePipe and applies them only when the
// transaction succeeds, the way MULTI/EXEC does.
func (f *fakeClient) TxPipelined(ctx context.Context, fn func(goredis.Pipeliner) error) ([]goredis.Cmder, error) {
	pipe := &fakePipe{}
	if err := fn(pipe); err != nil {
		return nil, err
	}
	if f.execErr != nil {
		return nil, f.execErr
	}
	if f.hashes == nil {
		f.hashes = make(map[string]map[string]string)
	}
	for _, op := range pipe.ops {
		op(f)
	}
	return nil, nil
}

type fakePipe struct {
	goredis.Pipeliner
	ops []func(*fakeClient)
}

func (p *fakePipe) Del(_ context.Context, keys ...string) *goredis.IntCmd {
	p.ops = append(p.ops, func(f *fakeClient) {
		f.deleted = append(f.deleted, keys...)
		for _, k := range keys {
			delete(f.hashes, k)
		}
	})
	return goredis.NewIntResult(0, nil)
}

func (p *fakePipe) HSet(_ context.Context, key string, values ...any) *goredis.IntCmd {
	p.ops = append(p.ops, func(f *fakeClient) {
		h := make(map[string]string)
		for i := 0; i+1 < len(values); i += 2 {
			h[values[i].(string)] = values[i+1].(string)
		}
		f.hashes[key] = h
	})
	return goredis.NewIntResult(0, nil)
}

func (f *fakeClient) Ping(context.Context) *goredis.StatusCmd {
	if f.pingErr != nil {
		return goredis.NewStatusResult("", f.pingErr)
	}
	return goredis.NewStatusResult("PONG", nil)
}

func TestConnect(t *testing.T) {
	t.Parallel()

	t.Run("empty url", func(t *testing.T) {
		t.Parallel()
		_, err := redis.Connect(context.Background(), redis.Config{})
		assert.ErrorIs(t, err, redis.ErrEmptyConnectionURL)
	})

	t.Run("unsupported scheme", func(t *testing.T) {
		t.Parallel()
		_, err := redis.Connect(context.Background(), redis.Config{ConnectionURL: "http://localhost:6379"})
		assert.ErrorIs(t, err, redis.ErrFailedToParseRedisConnString)
	})

	t.Run("malformed url", func(t *testing.T) {
		t.Parallel()
		_, err := redis.Connect(context.Background(), redis.Config{ConnectionURL: "redis://localhost:6379/notadb"})
		assert.ErrorIs(t, err, redis.ErrFailedToParseRedisConnString)
	})

	t.Run("unreachable server", func(t *testing.T) {
		t.Parallel()
		_, err := redis.Connect(context.Background(), redis.Config{
			ConnectionURL:  "redis://127.0.0.1:1/0",
			RetryAttempts:  2,
			RetryInterval:  10 * time.Millisecond,
			ConnectTimeout: 2 * time.Second,
		})
		assert.ErrorIs(t, err, redis.ErrRedisNotReady)
	})
}

func TestHealthcheck(t *testing.T) {
	t.Parallel()

	assert.NoError(t, redis.Healthcheck(&fakeClient{})(context.Background()))

	err := redis.Healthcheck(&fakeClient{pingErr: errors.New("down")})(context.Background())
	assert.ErrorIs(t, err, redis.ErrHealthcheckFailed)
	assert.ErrorContains(t, err, "down")
}

func TestCatalogKey(t *testing.T) {
	t.Parallel()

	key := redis.CatalogKey("msgfmt", "pt-BR", "checkout:v2")
	assert.Equal(t, "msgfmt:pt-BR:checkout:v2", key)

	lang, ns, err := redis.ParseCatalogKey("msgfmt", key)
	require.NoError(t, err)
	assert.Equal(t, "pt-BR", lang)
	assert.Equal(t, "checkout:v2", ns)

	for _, bad := range []string{"other:en:ns", "msgfmt:en", "msgfmt::ns", "msgfmt:en:"} {
		_, _, err := redis.ParseCatalogKey("msgfmt", bad)
		assert.ErrorIs(t, err, redis.ErrInvalidCatalogKey, bad)
	}
}

func TestLoadCatalog(t *testing.T) {
	t.Parallel()

	t.Run("pages and sorts", func(t *testing.T) {
		t.Parallel()
		client := &fakeClient{
			pages:   [][]string{{"msgfmt:pl:app"}, {"msgfmt:en:app", "msgfmt:pl:app"}},
			cursors: []uint64{0, 42},
			hashes: map[string]map[string]string{
				"msgfmt:en:app": {"items": "{n, plural, one{# item} other{# items}}"},
				"msgfmt:pl:app": {"items": "{n, plural, one{# element} few{# elementy} many{# elementów} other{# elementu}}"},
			},
		}

		catalogs, err := redis.LoadCatalog(context.Background(), client, "msgfmt", 0)
		require.NoError(t, err)
		require.Len(t, catalogs, 2)
		assert.Equal(t, "en", catalogs[0].Language)
		assert.Equal(t, "app", catalogs[0].Namespace)
		assert.Equal(t, "pl", catalogs[1].Language)
		assert.Equal(t, []string{"msgfmt:*", "msgfmt:*"}, client.calls)

		bundle, err := i18n.New(i18n.WithCatalogs(catalogs...), i18n.WithLanguages("en", "pl"))
		require.NoError(t, err)
		assert.Equal(t, "5 elementów", bundle.Tn("pl", "app", "items", 5, i18n.M{"n": 5}))
	})

	t.Run("skips keys outside the layout", func(t *testing.T) {
		t.Parallel()
		client := &fakeClient{
			pages:   [][]string{{"msgfmt:junk", "msgfmt:en:app", "msgfmt:de:"}},
			cursors: []uint64{0},
			hashes: map[string]map[string]string{
				"msgfmt:en:app": {"hi": "Hi"},
				"msgfmt:junk":   {"x": "y"},
			},
		}

		catalogs, err := redis.LoadCatalog(context.Background(), client, "msgfmt", 0)
		require.NoError(t, err)
		require.Len(t, catalogs, 1)
		assert.Equal(t, "en", catalogs[0].Language)
		assert.Equal(t, map[string]any{"hi": "Hi"}, catalogs[0].Messages)
	})

	t.Run("scan failure", func(t *testing.T) {
		t.Parallel()
		client := &fakeClient{scanErr: errors.New("timeout")}
		_, err := redis.LoadCatalog(context.Background(), client, "msgfmt", 10)
		assert.ErrorIs(t, err, redis.ErrCatalogLoadFailed)
	})
}

func TestSaveCatalog(t *testing.T) {
	t.Parallel()

	catalog := i18n.Catalog{
		Language:  "en",
		Namespace: "app",
		Messages: map[string]any{
			"greeting": "Hello {name}",
			"cart":     map[string]any{"empty": "Your cart is empty"},
		},
	}

	t.Run("replaces the hash", func(t *testing.T) {
		t.Parallel()
		client := &fakeClient{hashes: map[string]map[string]string{
			"msgfmt:en:app": {"stale": "old"},
		}}
		require.NoError(t, redis.SaveCatalog(context.Background(), client, "msgfmt", catalog))
		assert.Equal(t, []string{"msgfmt:en:app"}, client.deleted)
		assert.Equal(t, map[string]string{
			"greeting":   "Hello {name}",
			"cart.empty": "Your cart is empty",
		}, client.hashes["msgfmt:en:app"])
	})

	t.Run("failed transaction keeps the old hash", func(t *testing.T) {
		t.Parallel()
		client := &fakeClient{
			hashes:  map[string]map[string]string{"msgfmt:en:app": {"stale": "old"}},
			execErr: errors.New("EXECABORT"),
		}
		err := redis.SaveCatalog(context.Background(), client, "msgfmt", catalog)
		assert.ErrorIs(t, err, redis.ErrCatalogSaveFailed)
		assert.ErrorContains(t, err, "EXECABORT")
		assert.Empty(t, client.deleted)
		assert.Equal(t, map[string]string{"stale": "old"}, client.hashes["msgfmt:en:app"])
	})

	t.Run("empty catalog clears the hash", func(t *testing.T) {
		t.Parallel()
		client := &fakeClient{hashes: map[string]map[string]string{
			"msgfmt:en:app": {"stale": "old"},
		}}
		require.NoError(t, redis.SaveCatalog(context.Background(), client, "msgfmt", i18n.Catalog{Language: "en", Namespace: "app"}))
		assert.Equal(t, []string{"msgfmt:en:app"}, client.deleted)
		assert.NotContains(t, client.hashes, "msgfmt:en:app")
	})

	t.Run("needs language and namespace", func(t *testing.T) {
		t.Parallel()
		err := redis.SaveCatalog(context.Background(), &fakeClient{}, "msgfmt", i18n.Catalog{Language: "en"})
		assert.ErrorIs(t, err, redis.ErrInvalidCatalogKey)
	})
}
