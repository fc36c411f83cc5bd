package logger

import (
	"grepc/internal/config"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const logFileName = "grepc.log"

func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	var logger *zap.Logger
	switch cfg.Env {
	case "prod":
		// json lines appended to <log_dir>/grepc.log
		if err := os.MkdirAll(cfg.LogDir, 0755); err != nil {
			return nil, err
		}

		file, err := os.OpenFile(filepath.Join(cfg.LogDir, logFileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}

		writer := zapcore.AddSync(file)

		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			writer,
			level,
		)

		logger = zap.New(core)

	default:
		zapCfg := zap.NewDevelopmentConfig()
		zapCfg.Encoding = "console"
		zapCfg.Level = level
		zapCfg.DisableStacktrace = true
		logger, err = zapCfg.Build()
		if err != nil {
			return nil, err
		}
	}

	return logger.With(zap.String("run_id", uuid.NewString())), nil
}
