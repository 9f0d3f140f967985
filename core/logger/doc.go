// Package logger provides structured logging utilities built on Go's standard slog package:
// a small factory for text or JSON loggers and nil-safe attribute helpers for the
// values that show up when compiling and rendering messages.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/messageformat/core/logger"
//
//	// Development: text format, debug level
//	log := logger.New(logger.WithDevelopment("msgfmt"))
//
//	// Production: JSON format, info level
//	log := logger.New(
//		logger.WithProduction("msgfmt"),
//		logger.WithOutput(os.Stdout),
//	)
//
//	// Custom configuration
//	log := logger.New(
//		logger.WithLevel(slog.LevelWarn),
//		logger.WithJSONFormatter(),
//		logger.WithAttr(slog.String("service", "api")),
//	)
//
// Levels read from configuration go through ParseLevel:
//
//	level, err := logger.ParseLevel(cfg.LogLevel) // "debug", "info", "warn", "error"
//
// # Attribute Helpers
//
// Helpers return an empty slog.Attr for nil errors and empty strings, which slog
// drops, so callers never need nil checks:
//
//	log.Warn("failed to render translation",
//		logger.Component("i18n"),
//		logger.Locale("pl"),
//		logger.Namespace("checkout"),
//		logger.TranslationKey("cart.items"),
//		logger.Error(err),
//	)
//
//	log.Error("catalog has syntax errors",
//		logger.Source("./locales"),
//		logger.Pattern(pattern),
//		logger.Offset(perr.Offset),
//	)
//
//	log.Warn("redis not ready, retrying",
//		logger.RetryCount(attempt),
//		logger.Errors(err1, err2),
//		logger.Elapsed(start),
//	)
//
// # Testing with Custom Output
//
//	var buf bytes.Buffer
//	log := logger.New(logger.WithJSONFormatter(), logger.WithOutput(&buf))
//	log.Info("Test message", logger.Component("test"))
//	assert.Contains(t, buf.String(), `"component":"test"`)
package logger
