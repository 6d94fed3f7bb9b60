package household

import "go.uber.org/fx"

// Module exposes the household service via Fx.
var Module = fx.Options(
	fx.Provide(NewService),
)
