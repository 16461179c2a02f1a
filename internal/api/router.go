package api

import (
	"errors"
	"time"

	"menu-recommendation/internal/api/handlers/health"
	mealHandler "menu-recommendation/internal/api/handlers/meal"
	"menu-recommendation/internal/api/middleware"
	mealService "menu-recommendation/internal/core/meal"
	"menu-recommendation/internal/infrastructure/config"
	"menu-recommendation/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// SetupRouter 라우터 구성
func SetupRouter(cfg *config.Config, svc *mealService.Service) (*gin.Engine, error) {
	if cfg == nil || svc == nil {
		return nil, errors.New("config and meal service are required")
	}

	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// 기본 미들웨어
	router.Use(middleware.Recovery())
	router.Use(requestid.New())
	router.Use(middleware.Logger())
	if cfg.Metrics.Enabled {
		router.Use(middleware.Metrics())
	}

	// CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if cfg.Server.MaxBodyBytes > 0 {
		router.Use(middleware.BodySizeLimit(cfg.Server.MaxBodyBytes))
	}
	if cfg.RateLimit.Enabled {
		router.Use(middleware.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window).Middleware())
	}
	router.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	// 헬스 체크
	healthHandler := health.NewHandler(cfg, svc, svc.Catalog().Len())
	router.GET("/health", healthHandler.HealthCheck)
	router.GET("/ready", healthHandler.ReadinessCheck)
	router.GET("/live", healthHandler.LivenessCheck)

	if cfg.Metrics.Enabled {
		router.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	// API 라우트
	api := router.Group("/api/v1")
	api.Use(middleware.NewDeduplicator(cfg.DedupWindow).Middleware())
	mealHandler.NewHandler(svc).Register(api)

	common.LogInfo("Router setup completed successfully",
		zap.String("storage", cfg.Storage.Driver),
		zap.Int("catalog_size", svc.Catalog().Len()),
		zap.Bool("cache_enabled", cfg.Cache.Enabled),
		zap.Bool("rate_limit_enabled", cfg.RateLimit.Enabled),
		zap.Bool("metrics_enabled", cfg.Metrics.Enabled),
		zap.Duration("timeout", cfg.Server.RequestTimeout),
		zap.Int64("max_body_size", cfg.Server.MaxBodyBytes),
	)

	return router, nil
}
