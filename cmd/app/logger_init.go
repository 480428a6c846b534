package main

import (
	"github.com/osse101/RiftStats_Go/internal/config"
	"github.com/osse101/RiftStats_Go/internal/logger"
)

// initStdoutLogger installs a stdout-only logger for failures before the log directory exists
func initStdoutLogger(cfg *config.Config) {
	addSource := logger.IsDevelopmentEnv(cfg.Environment)
	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	))
}
