package db_fx

import (
	"go.uber.org/fx"

	"tripboard/internal/infra"
)

var Module = fx.Provide(infra.InitPostgresql)
