package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"maps"
	"slices"
	"strings"

	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/text/language"
	"golang.org/x/text/width"

	"github.com/dmitrymomot/messageformat/core/config"
	"github.com/dmitrymomot/messageformat/core/i18n"
	"github.com/dmitrymomot/messageformat/core/logger"
	"github.com/dmitrymomot/messageformat/core/msgformat"
	"github.com/dmitrymomot/messageformat/integration/database/redis"
)

var (
	errUsage      = errors.New("usage")
	errLintIssues = errors.New("catalogs have issues")
)

func (a *app) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %w", errUsage, err)
}

func (a *app) format(ctx context.Context, args []string) error {
	fs := a.flagSet("format")
	locale := fs.String("locale", a.cfg.Locale, "locale used for plurals and value formats")
	pattern := fs.String("pattern", "", "pattern to render")
	key := fs.String("key", "", "catalog message key to render")
	namespace := fs.String("namespace", a.cfg.Namespace, "catalog namespace of -key")
	dir := fs.String("dir", a.cfg.CatalogDir, "directory of YAML catalogs for -key")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	if (*pattern == "") == (*key == "") {
		return fmt.Errorf("%w: format needs exactly one of -pattern or -key", errUsage)
	}
	if _, err := language.Parse(*locale); err != nil {
		return fmt.Errorf("%w: locale %q: %w", errUsage, *locale, err)
	}
	values, err := parseArgs(fs.Args())
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	var out string
	if *pattern != "" {
		out, err = a.formatPattern(*locale, *pattern, values)
	} else {
		out, err = a.formatKey(ctx, *dir, *locale, *namespace, *key, values)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, out)
	return nil
}

func (a *app) formatPattern(locale, pattern string, values msgformat.Args) (string, error) {
	msg, err := msgformat.Compile(pattern, msgformat.WithMaxDepth(a.cfg.MaxDepth))
	if err != nil {
		var perr *msgformat.ParseError
		if errors.As(err, &perr) {
			fmt.Fprintf(a.stderr, "%s\n%s^\n", pattern, caretPad(pattern, perr.Offset))
			a.log.Debug("pattern rejected", logger.Component("msgformat"), logger.Pattern(pattern), logger.Offset(perr.Offset))
		}
		return "", err
	}

	bundle, err := a.newBundle(nil, locale)
	if err != nil {
		return "", err
	}
	return msgformat.Format(msg, language.Make(locale), values, bundle.Plurals(), bundle.Formats())
}

// caretPad returns the indent that puts a caret under the rune at offset.
// Tabs are kept and East Asian wide runes take two columns.
func caretPad(pattern string, offset int) string {
	var b strings.Builder
	n := 0
	for _, r := range pattern {
		if n == offset {
			break
		}
		n++
		switch {
		case r == '\t':
			b.WriteByte('\t')
		case isWide(r):
			b.WriteString("  ")
		default:
			b.WriteByte(' ')
		}
	}
	b.WriteString(strings.Repeat(" ", offset-n))
	return b.String()
}

func isWide(r rune) bool {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return true
	}
	return false
}

func (a *app) formatKey(ctx context.Context, dir, locale, namespace, key string, values msgformat.Args) (string, error) {
	catalogs, err := a.loadCatalogs(ctx, dir)
	if err != nil {
		return "", err
	}
	bundle, err := a.newBundle(catalogs, locale)
	if err != nil {
		return "", err
	}
	return bundle.Format(locale, namespace, key, values)
}

func (a *app) lint(ctx context.Context, args []string) error {
	fs := a.flagSet("lint")
	dir := fs.String("dir", a.cfg.CatalogDir, "directory of YAML catalogs")
	defaultLang := fs.String("default", a.cfg.DefaultLanguage, "reference language")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	catalogs, err := a.loadCatalogs(ctx, *dir)
	if err != nil {
		return err
	}

	res := i18n.Lint(*defaultLang, catalogs, msgformat.WithMaxDepth(a.cfg.MaxDepth))
	a.printLint(res)
	if res.HasIssues() {
		return errLintIssues
	}
	return nil
}

func (a *app) printLint(res *i18n.LintResult) {
	w := a.stdout
	fmt.Fprintln(w, "=== MSGFMT LINT RESULT ===")
	fmt.Fprintln(w, "Languages:", res.Languages)

	for _, lang := range res.Languages {
		fmt.Fprintf(w, "\n--- [%s] ---\n", lang)
		printKeys(a, "Missing keys", res.MissingKeys[lang])
		printKeys(a, "Redundant keys", res.RedundantKeys[lang])

		errs := res.SyntaxErrors[lang]
		if len(errs) == 0 {
			fmt.Fprintln(w, "Syntax errors: None")
			continue
		}
		fmt.Fprintln(w, "Syntax errors:")
		for _, key := range slices.Sorted(maps.Keys(errs)) {
			fmt.Fprintf(w, "  - %s: %v\n", key, errs[key])
		}
	}
}

func printKeys(a *app, title string, keys []string) {
	if len(keys) == 0 {
		fmt.Fprintf(a.stdout, "%s: None\n", title)
		return
	}
	fmt.Fprintf(a.stdout, "%s:\n", title)
	for _, k := range keys {
		fmt.Fprintln(a.stdout, "  -", k)
	}
}

func (a *app) push(ctx context.Context, args []string) error {
	fs := a.flagSet("push")
	dir := fs.String("dir", a.cfg.CatalogDir, "directory of YAML catalogs")
	prefix := fs.String("prefix", a.cfg.RedisPrefix, "Redis key prefix")
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	catalogs, err := i18n.LoadYAMLDir(*dir)
	if err != nil {
		return err
	}
	// Refuse to publish catalogs that would fail at startup.
	if _, err := a.newBundle(catalogs); err != nil {
		return err
	}

	client, _, err := a.connectRedis(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	for _, c := range catalogs {
		if err := redis.SaveCatalog(ctx, client, *prefix, c); err != nil {
			return err
		}
		a.log.Info("catalog pushed",
			logger.Component("msgfmt"),
			logger.Locale(c.Language),
			logger.Namespace(c.Namespace),
			logger.Count("messages", len(c.Entries())),
		)
	}
	fmt.Fprintf(a.stdout, "pushed %d catalogs\n", len(catalogs))
	return nil
}

func (a *app) loadCatalogs(ctx context.Context, dir string) ([]i18n.Catalog, error) {
	var (
		catalogs []i18n.Catalog
		err      error
	)
	switch a.cfg.Source {
	case sourceDir, "":
		catalogs, err = i18n.LoadYAMLDir(dir)
	case sourceRedis:
		catalogs, err = a.loadRedisCatalogs(ctx)
	default:
		return nil, fmt.Errorf("%w: source %q, want %q or %q", errUsage, a.cfg.Source, sourceDir, sourceRedis)
	}
	if err != nil {
		return nil, err
	}

	a.log.Debug("catalogs loaded",
		logger.Component("msgfmt"),
		logger.Source(a.cfg.Source),
		logger.Count("catalogs", len(catalogs)),
	)
	return catalogs, nil
}

func (a *app) loadRedisCatalogs(ctx context.Context) ([]i18n.Catalog, error) {
	client, rcfg, err := a.connectRedis(ctx)
	if err != nil {
		return nil, err
	}
	defer client.Close()
	return redis.LoadCatalog(ctx, client, a.cfg.RedisPrefix, rcfg.ScanBatchSize)
}

func (a *app) connectRedis(ctx context.Context) (*goredis.Client, redis.Config, error) {
	var rcfg redis.Config
	if err := config.Load(&rcfg); err != nil {
		return nil, rcfg, err
	}
	client, err := redis.Connect(ctx, rcfg)
	if err != nil {
		return nil, rcfg, err
	}
	return client, rcfg, nil
}
