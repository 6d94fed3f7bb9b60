package logger

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mossleaf/homeops/pkg/config"
)

// New builds the process logger: human-readable in local development, JSON
// everywhere else.
func New(cfg *config.Config) (*zap.SugaredLogger, error) {
	var zcfg zap.Config
	if cfg.Env == "local" || cfg.Env == "dev" {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.EncoderConfig.TimeKey = "time"
	l, err := zcfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}

var Module = fx.Options(
	fx.Provide(New),
)
