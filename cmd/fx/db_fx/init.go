package db_fx

import (
	"go.uber.org/fx"

	"payrecon/internal/infra"
)

var Module = fx.Provide(
	infra.LoadConfig,
	infra.NewPostgres,
)
