package billing

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/trafficflowprocontato-art/trafficflowpro/internal/platform/stripeapi"
	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/config"
)

// Module exposes the billing service and its Stripe client via Fx.
var Module = fx.Options(
	fx.Provide(func(cfg *config.Config, log *zap.SugaredLogger) stripeapi.Client {
		return stripeapi.NewClient(cfg.Stripe.SecretKey, log)
	}),
	fx.Provide(NewService),
)
