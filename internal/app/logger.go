package app

import (
	"github.com/sunilmaharaj1991-max/BlinkLean/config"
	"github.com/sunilmaharaj1991-max/BlinkLean/internal/logger"
)

// InitializeLogger configures the global logger from the log section.
func InitializeLogger(cfg config.LogConfig) {
	logger.Init(cfg.Level, cfg.Pretty)
}
