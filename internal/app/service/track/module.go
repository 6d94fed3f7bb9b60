package track

import "go.uber.org/fx"

// Module exposes the track service via Fx.
var Module = fx.Options(
	fx.Provide(NewService),
)
