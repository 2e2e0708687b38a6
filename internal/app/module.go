package app

import (
	"time"

	"go.uber.org/fx"

	"github.com/trafficflowprocontato-art/trafficflowpro/internal/app/api/server"
	"github.com/trafficflowprocontato-art/trafficflowpro/internal/app/service/access"
	"github.com/trafficflowprocontato-art/trafficflowpro/internal/app/service/auth"
	"github.com/trafficflowprocontato-art/trafficflowpro/internal/app/service/billing"
	"github.com/trafficflowprocontato-art/trafficflowpro/internal/app/service/client"
	"github.com/trafficflowprocontato-art/trafficflowpro/internal/app/service/commission"
	"github.com/trafficflowprocontato-art/trafficflowpro/internal/app/service/expense"
	"github.com/trafficflowprocontato-art/trafficflowpro/internal/app/service/summary"
	"github.com/trafficflowprocontato-art/trafficflowpro/internal/platform/db"
	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/config"
	"github.com/trafficflowprocontato-art/trafficflowpro/pkg/logger"
)

const (
	DefaultStartTimeout = 15 * time.Second
	DefaultStopTimeout  = 10 * time.Second
)

var Module = fx.Options(
	logger.Module,
	config.Module,
	db.Module,
	server.Module,
	auth.Module,
	access.Module,
	client.Module,
	expense.Module,
	commission.Module,
	summary.Module,
	billing.Module,
)
