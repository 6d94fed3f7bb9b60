package inventory

import "go.uber.org/fx"

// Module exposes the inventory service via Fx.
var Module = fx.Options(
	fx.Provide(NewService),
)
