package di

import (
	"context"
	"errors"
	"grepc/internal/app"
	"grepc/internal/config"
	"grepc/internal/logger"
	"os"
	"syscall"

	"github.com/mattn/go-isatty"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

var Module = fx.Options(
	fx.Provide(
		config.Load,
		logger.ProvideLogger,
		func(log *zap.Logger) *app.CLI {
			return app.NewCLI(log, os.Stdout, os.Stderr, stderrColor(os.Stderr.Fd()))
		},
	),
	fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
		return &fxevent.ZapLogger{Logger: log}
	}),
	fx.Invoke(RegisterLoggerSync),
)

// stderrColor reports whether error messages on fd may be colored.
func stderrColor(fd uintptr) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// RegisterLoggerSync flushes buffered log entries when the container stops.
func RegisterLoggerSync(lc fx.Lifecycle, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return syncLogger(log)
		},
	})
}

// syncLogger ignores the errors a terminal returns for fsync.
func syncLogger(log *zap.Logger) error {
	err := log.Sync()
	if err == nil || errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) {
		return nil
	}
	return err
}
