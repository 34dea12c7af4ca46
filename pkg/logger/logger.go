package logger

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"jadwal-guru/config"
)

// ServiceName tags every log line
const ServiceName = "jadwal-guru"

// NewLogger builds the zap logger described by cfg. Format "console" is the
// coloured development encoder, anything else JSON with ISO8601 times.
// Output is a comma separated list of sinks ("stdout", "stderr" or paths).
func NewLogger(cfg *config.LogConfig) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapCfg = zap.NewProductionConfig()
		zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		// login attempts are audited, keep every line
		zapCfg.Sampling = nil
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	if sinks := splitSinks(cfg.Output); len(sinks) > 0 {
		zapCfg.OutputPaths = sinks
	}

	logger, err := zapCfg.Build(zap.Fields(zap.String("service", ServiceName)))
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

func splitSinks(output string) []string {
	var sinks []string
	for _, s := range strings.Split(output, ",") {
		if s = strings.TrimSpace(s); s != "" {
			sinks = append(sinks, s)
		}
	}
	return sinks
}
