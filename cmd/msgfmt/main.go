// Command msgfmt renders ICU MessageFormat patterns and checks translation catalogs.
//
//	msgfmt format -locale pl -pattern '{n, plural, one{# plik} few{# pliki} many{# plików} other{# pliku}}' n=5
//	msgfmt format -locale de -namespace checkout -key cart.items count=3
//	msgfmt lint -dir ./locales
//	msgfmt push -dir ./locales
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/messageformat/core/config"
	"github.com/dmitrymomot/messageformat/core/i18n"
	"github.com/dmitrymomot/messageformat/core/logger"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

const usage = `usage: msgfmt <command> [flags] [name=value ...]

commands:
  format  render a pattern (-pattern) or a catalog message (-key)
  lint    report missing, redundant and malformed catalog keys
  push    store YAML catalogs in Redis

run "msgfmt <command> -h" for command flags
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg Config
	config.MustLoad(&cfg) // panic on error

	os.Exit(run(ctx, cfg, os.Args[1:], os.Stdout, os.Stderr))
}

type app struct {
	cfg    Config
	log    *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

func run(ctx context.Context, cfg Config, args []string, stdout, stderr io.Writer) int {
	log, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "msgfmt:", err)
		return exitUsage
	}
	a := &app{cfg: cfg, log: log, stdout: stdout, stderr: stderr}

	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return exitUsage
	}

	switch args[0] {
	case "format":
		err = a.format(ctx, args[1:])
	case "lint":
		err = a.lint(ctx, args[1:])
	case "push":
		err = a.push(ctx, args[1:])
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return exitOK
	default:
		fmt.Fprintf(stderr, "msgfmt: unknown command %q\n\n%s", args[0], usage)
		return exitUsage
	}

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, flag.ErrHelp):
		return exitOK
	case errors.Is(err, errUsage):
		fmt.Fprintln(stderr, "msgfmt:", err)
		return exitUsage
	case errors.Is(err, errLintIssues):
		return exitFailed
	default:
		a.log.Error("command failed", logger.Component("msgfmt"), logger.Event(args[0]), logger.Error(err))
		fmt.Fprintln(stderr, "msgfmt:", err)
		return exitFailed
	}
}

func newLogger(cfg Config, w io.Writer) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	opts := []logger.Option{logger.WithLevel(level), logger.WithOutput(w)}
	if cfg.LogFormat == "json" {
		opts = append(opts, logger.WithJSONFormatter())
	}
	return logger.New(opts...), nil
}

// newBundle compiles catalogs with the configured plural rules and depth limit.
func (a *app) newBundle(catalogs []i18n.Catalog, langs ...string) (*i18n.I18n, error) {
	opts := []i18n.Option{
		i18n.WithDefaultLanguage(a.cfg.DefaultLanguage),
		i18n.WithLanguages(langs...),
		i18n.WithMaxDepth(a.cfg.MaxDepth),
		i18n.WithLogger(a.log),
		i18n.WithCatalogs(catalogs...),
	}
	switch a.cfg.PluralRules {
	case rulesCLDR, "":
	case rulesFamily:
		opts = append(opts, i18n.WithFamilyPluralRules())
	default:
		return nil, fmt.Errorf("%w: plural rules %q, want %q or %q", errUsage, a.cfg.PluralRules, rulesCLDR, rulesFamily)
	}
	return i18n.New(opts...)
}
