package expense

import "go.uber.org/fx"

// Module exposes the agency expense service via Fx.
var Module = fx.Options(
	fx.Provide(NewService),
)
