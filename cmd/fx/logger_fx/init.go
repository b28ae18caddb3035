package logger_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripboard/pkg/config"
)

var Module = fx.Provide(provideLogger)

func provideLogger(settings *config.Settings) (*zap.Logger, error) {
	if settings.Debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
