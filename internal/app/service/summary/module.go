package summary

import "go.uber.org/fx"

// Module exposes the financial summary service via Fx.
var Module = fx.Options(
	fx.Provide(NewService),
)
