package client

import "go.uber.org/fx"

// Module exposes the client service via Fx.
var Module = fx.Options(
	fx.Provide(NewService),
)
