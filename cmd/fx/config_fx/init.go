package configfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripscout/internal/config"
	"tripscout/pkg/logger"
)

var Module = fx.Provide(config.Load, provideLogger)

func provideLogger(cfg *config.Config) *zap.Logger {
	return logger.New(cfg.Logging.Level, cfg.Logging.Format)
}
