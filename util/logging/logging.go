package logging

import (
	"context"
	"errors"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	FormatProduction  = "production"
	FormatDevelopment = "development"
)

type contextKey int

var loggerKey = contextKey(0)

var ErrNoLoggerInContext = errors.New("no logger in context")

// Options configures New.
type Options struct {
	// Level is parsed with zap.ParseAtomicLevel, info if invalid or empty.
	Level string

	// Format is either FormatProduction (json) or FormatDevelopment
	// (console).
	Format string

	// App is attached to every entry as the `app` field.
	App string
}

// New builds the application logger.
func New(opts Options) (*zap.Logger, error) {
	var config zap.Config
	if opts.Format == FormatDevelopment {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	if opts.App != "" {
		config.InitialFields = map[string]any{
			"app": opts.App,
		}
	}

	config.Level = parseLevel(opts.Level)

	return config.Build()
}

func parseLevel(lvl string) zap.AtomicLevel {
	if atom, err := zap.ParseAtomicLevel(lvl); err == nil && lvl != "" {
		return atom
	}

	return zap.NewAtomicLevelAt(zap.InfoLevel)
}

func ContextWithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

func LoggerFromContext(ctx context.Context) (*zap.Logger, error) {
	if logger, ok := ctx.Value(loggerKey).(*zap.Logger); ok {
		return logger, nil
	}

	return nil, ErrNoLoggerInContext
}

// DecorateLogger renames the logger for all consumers in an fx module.
func DecorateLogger(name string) fx.Option {
	return fx.Decorate(func(log *zap.Logger) *zap.Logger {
		return log.Named(name)
	})
}
