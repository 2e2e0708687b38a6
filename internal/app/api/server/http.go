package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/trafficflowprocontato-art/trafficflowpro/docs"
	"github.com/trafficflowprocontato-art/trafficflowpro/internal/app/api/handlers"
	mw "github.com/trafficflowprocontato-art/trafficflowpro/internal/app/api/middleware"
	"github.com/trafficflowprocontato-art/trafficflowpro/internal/app/service/access"
	"github.com/trafficflowprocontato-art/trafficflowpro/internal/app/service/auth"
	"github.com/trafficflowprocontato-art/trafficflowpro/internal/app/service/billing"
	"github.com/trafficflowprocontato-art/trafficflowpro/internal/app/service/client"
	"github.com/trafficflowprocontato-art/trafficflowpro/internal/app/service/commission"
	"github.com/trafficflowprocontato-art/trafficflowpro/internal/app/service/expense"
	"github.com/trafficflowprocontato-art/trafficflowpro/internal/app/service/summary"
	cfgpkg "github.com/trafficflowprocontato-art/trafficflowpro/pkg/config"
	metrics "github.com/trafficflowprocontato-art/trafficflowpro/pkg/metrics"
)

func newEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	// Add request tracing middleware only; request logger & access log are attached per group in registerRoutes
	r.Use(mw.TraceMiddleware())
	return r
}

type routeDeps struct {
	fx.In

	Log         *zap.SugaredLogger
	Cfg         *cfgpkg.Config
	Auth        *auth.Service
	Access      *access.Service
	Clients     *client.Service
	Expenses    *expense.Service
	Commissions *commission.Service
	Summary     *summary.Service
	Billing     *billing.Service
}

func registerRoutes(r *gin.Engine, d routeDeps) {
	// Prometheus metrics
	if d.Cfg != nil && d.Cfg.MetricsAddr != "" {
		p := metrics.NewPrometheus(metrics.NewPrometheusOptions{
			ReqCntURLLabelMappingFn: func(c *gin.Context) string {
				if fp := c.FullPath(); fp != "" {
					return fp
				}
				return c.Request.URL.Path
			},
			Logger: d.Log,
		})
		p.SetListenAddress(d.Cfg.MetricsAddr)
		p.Use(r)

		d.Log.Infow("metrics started", "addr", d.Cfg.MetricsAddr)
	}

	// Public group: request logger + access log
	pub := r.Group("/")
	pub.Use(mw.RequestLoggerMiddleware(d.Log), mw.AccessLogMiddleware())
	handlers.RegisterHealthRoutes(pub)
	// Swagger UI
	docs.SwaggerInfo.BasePath = "/"
	pub.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Payment processor contract endpoints: raw JSON bodies, no envelope.
	// The webhook must see the unmodified request body for signature checks.
	api := r.Group("/api")
	api.Use(mw.RequestLoggerMiddleware(d.Log), mw.AccessLogMiddleware())
	handlers.RegisterBillingRoutes(api, d.Billing)

	// Envelope API. Auth endpoints are public; everything else requires a
	// token, and mutations additionally pass the access gate.
	apiV1 := r.Group("/api/v1")
	apiV1.Use(mw.RequestLoggerMiddleware(d.Log), mw.AccessLogMiddleware())

	authed := apiV1.Group("/")
	authed.Use(mw.AuthMiddleware(d.Auth))
	handlers.RegisterAuthRoutes(apiV1, authed, d.Auth, d.Access)
	handlers.RegisterSummaryRoutes(authed, d.Summary)

	gated := authed.Group("/")
	gated.Use(mw.AccessGateMiddleware(d.Access))
	handlers.RegisterClientRoutes(gated, d.Clients)
	handlers.RegisterExpenseRoutes(gated, d.Expenses)
	handlers.RegisterCommissionRoutes(gated, d.Commissions)
}

func runServer(lc fx.Lifecycle, log *zap.SugaredLogger, cfg *cfgpkg.Config, r *gin.Engine) {
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{Addr: addr, Handler: r, ReadHeaderTimeout: 5 * time.Second}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting HTTP server", "addr", addr)
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Errorf("server error: %v", err)
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Infow("stopping HTTP server")
			shutdownCtx, cancel := context.WithTimeout(ctx, 120*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

var Module = fx.Options(
	fx.Provide(newEngine),
	fx.Invoke(registerRoutes),
	fx.Invoke(runServer),
)
