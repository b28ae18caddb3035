package config_fx

import (
	"go.uber.org/fx"

	"tripboard/pkg/config"
)

var Module = fx.Provide(config.Load)
