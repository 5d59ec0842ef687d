package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/config"
)

// New builds the process logger. Production uses the JSON encoder; every
// other environment gets the development console encoder. A non-empty
// level overrides the environment default. Outputs, when given, replace
// stderr; the terminal UI logs to a file so it does not tear the screen.
func New(cfg *config.Config, level string, outputs ...string) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.Env == "production" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}

	if level == "" {
		level = cfg.Log.Level
	}
	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		zc.Level = zap.NewAtomicLevelAt(lvl)
	}

	if len(outputs) > 0 {
		zc.OutputPaths = outputs
		zc.ErrorOutputPaths = outputs
	}

	return zc.Build()
}
