package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"menu-recommendation/internal/api"
	"menu-recommendation/internal/core/cache"
	mealService "menu-recommendation/internal/core/meal"
	"menu-recommendation/internal/core/menu"
	"menu-recommendation/internal/infrastructure/config"
	"menu-recommendation/internal/infrastructure/storage"
	"menu-recommendation/internal/pkg/common"

	"go.uber.org/zap"
)

func main() {
	// .env는 LoadConfig가 읽는다
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// logger 초기화 (config 로드 후)
	if err := common.InitLogger(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	common.LogInfo("설정 로드",
		zap.String("storage_driver", cfg.Storage.Driver),
		zap.String("catalog_path", cfg.Catalog.Path),
		zap.String("log_level", cfg.LogLevel),
	)

	catalog, err := menu.LoadCatalogFile(cfg.Catalog.Path)
	if err != nil {
		common.LogFatal("Failed to load menu catalog", zap.Error(err))
	}

	ctx := context.Background()
	store, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		common.LogFatal("Failed to initialize storage", zap.Error(err), zap.String("driver", cfg.Storage.Driver))
	}
	defer store.Close()

	// 캐시가 꺼져 있으면 nil
	cacheManager := cache.NewManager(cfg.Cache)
	defer cacheManager.Close()

	svc := mealService.NewService(store, catalog, mealService.WithCache(cacheManager))

	router, err := api.SetupRouter(cfg, svc)
	if err != nil {
		common.LogError("Failed to setup router", zap.Error(err))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		common.LogInfo(common.MsgServerStarting,
			zap.String("addr", srv.Addr),
			zap.String("version", cfg.App.Version),
			zap.String("env", cfg.App.Env),
			zap.Bool("debug", cfg.App.Debug),
			zap.Int("catalog_size", catalog.Len()),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			common.LogFatal("Failed to start server", zap.Error(err))
		}
	}()

	// 종료 신호 대기
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo(common.MsgServerShutdown)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		common.LogError("Server forced to shutdown", zap.Error(err))
		return
	}

	common.LogInfo(common.MsgServerExited)
}
