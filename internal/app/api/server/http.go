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

	"github.com/mossleaf/homeops/docs"
	"github.com/mossleaf/homeops/internal/app/api/handlers"
	mw "github.com/mossleaf/homeops/internal/app/api/middleware"
	"github.com/mossleaf/homeops/internal/app/service/dashboard"
	"github.com/mossleaf/homeops/internal/app/service/document"
	"github.com/mossleaf/homeops/internal/app/service/household"
	"github.com/mossleaf/homeops/internal/app/service/inventory"
	parcelsvc "github.com/mossleaf/homeops/internal/app/service/parcel"
	"github.com/mossleaf/homeops/internal/app/service/track"
	cfgpkg "github.com/mossleaf/homeops/pkg/config"
	metrics "github.com/mossleaf/homeops/pkg/metrics"
)

func newEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	// Request logger & access log are attached per group in registerRoutes
	r.Use(mw.TraceMiddleware())
	return r
}

type routeDeps struct {
	fx.In

	Log       *zap.SugaredLogger
	Cfg       *cfgpkg.Config
	Household *household.Service
	Track     *track.Service
	Inventory *inventory.Service
	Document  *document.Service
	Dashboard *dashboard.Service
	Parcel    *parcelsvc.Service
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

	// Public group: health, swagger, invite preview for the join page
	pub := r.Group("/")
	pub.Use(mw.RequestLoggerMiddleware(d.Log), mw.AccessLogMiddleware())
	handlers.RegisterHealthRoutes(pub)
	docs.SwaggerInfo.BasePath = "/"
	pub.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	handlers.RegisterPublicInviteRoutes(pub.Group("/api/v1"), d.Household)

	// Authenticated API. Registration and invite redemption only need a
	// verified user; everything else also needs a household profile.
	apiV1 := r.Group("/api/v1")
	apiV1.Use(mw.RequestLoggerMiddleware(d.Log), mw.AccessLogMiddleware(), mw.AuthMiddleware(d.Cfg))
	handlers.RegisterHouseholdRoutes(apiV1, d.Household)
	handlers.RegisterInviteRoutes(apiV1, d.Household)

	scoped := apiV1.Group("/")
	scoped.Use(mw.RequireProfile(d.Household))
	handlers.RegisterSubscriptionRoutes(scoped, d.Track)
	handlers.RegisterMaintenanceRoutes(scoped, d.Track)
	handlers.RegisterBillRoutes(scoped, d.Track)
	handlers.RegisterOrderRoutes(scoped, d.Track)
	handlers.RegisterActivityRoutes(scoped, d.Track)
	handlers.RegisterInventoryRoutes(scoped, d.Inventory)
	handlers.RegisterDocumentRoutes(scoped, d.Document)
	handlers.RegisterDashboardRoutes(scoped, d.Dashboard)
	handlers.RegisterParcelRoutes(scoped, d.Parcel)
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
			shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
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
