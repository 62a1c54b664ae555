package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"wanderplan/cmd/fx/account_fx"
	"wanderplan/cmd/fx/config_fx"
	"wanderplan/cmd/fx/controllers_fx"
	"wanderplan/cmd/fx/db_fx"
	"wanderplan/cmd/fx/history_fx"
	"wanderplan/cmd/fx/memcache_fx"
	"wanderplan/cmd/fx/place_fx"
	"wanderplan/cmd/fx/plan_fx"
	"wanderplan/cmd/fx/preference_fx"
	"wanderplan/cmd/fx/prompt_fx"
	"wanderplan/internal/api/controllers"
	"wanderplan/internal/config"
	"wanderplan/pkg/middleware"
)

func main() {
	app := fx.New(
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		preference_fx.Module,
		prompt_fx.Module,
		plan_fx.Module,
		history_fx.Module,
		place_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg config.Config, engine *gin.Engine, logger *zap.Logger) {
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("starting HTTP server", zap.String("addr", server.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return server.Shutdown(ctx)
		},
	})
}

type Controllers struct {
	fx.In

	Account    *controllers.AccountController
	Preference *controllers.PreferenceController
	Plan       *controllers.PlanController
	Live       *controllers.LiveController
	History    *controllers.HistoryController
	Place      *controllers.PlaceController
	Memory     *controllers.MemoryController
}

func ProvideRouter(cfg config.Config, logger *zap.Logger, reg *prometheus.Registry, ctrl Controllers) *gin.Engine {
	if !cfg.IsLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	RegisterRoutes(r, cfg.JWTSecret, ctrl)

	return r
}

func RegisterRoutes(r *gin.Engine, jwtSecret string, ctrl Controllers) {
	accounts := r.Group("/accounts")
	accounts.POST("/register", ctrl.Account.Register)
	accounts.POST("/login", ctrl.Account.Login)

	googleAuth := r.Group("/auth/google")
	googleAuth.GET("/url", ctrl.Account.GoogleAuthURL)
	googleAuth.GET("/callback", ctrl.Account.GoogleCallback)

	api := r.Group("/api")
	api.Use(middleware.JWTAuthMiddleware(jwtSecret))

	api.GET("/accounts/me", ctrl.Account.Me)
	api.GET("/auth/google/link", ctrl.Account.GoogleLinkURL)

	api.GET("/preferences", ctrl.Preference.GetPreferences)
	api.PUT("/preferences", ctrl.Preference.UpdatePreferences)

	plans := api.Group("/plans")
	plans.POST("", ctrl.Plan.GeneratePlan)
	plans.POST("/parse", ctrl.Plan.ParsePlan)
	plans.GET("/:id", ctrl.Plan.GetPlan)

	api.POST("/live/stream", ctrl.Live.Stream)

	history := api.Group("/history")
	history.GET("", ctrl.History.ListHistory)
	history.GET("/:id", ctrl.History.GetHistory)
	history.DELETE("/:id", ctrl.History.DeleteHistory)

	places := api.Group("/places")
	places.POST("/enrich", ctrl.Place.EnrichPlaces)
	places.GET("/weather", ctrl.Place.PlaceWeather)
	places.GET("/photo", ctrl.Place.PlacePhoto)

	memories := api.Group("/memories")
	memories.POST("", ctrl.Memory.UploadMemory)
	memories.GET("", ctrl.Memory.ListMemories)
}
