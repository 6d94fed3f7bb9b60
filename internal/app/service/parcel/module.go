package parcel

import "go.uber.org/fx"

// Module exposes the Parcel proxy service via Fx.
var Module = fx.Options(
	fx.Provide(NewService),
)
