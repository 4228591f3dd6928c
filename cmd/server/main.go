package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"propfolio/internal/config"
	cronrunner "propfolio/internal/cron"
	"propfolio/internal/db"
	"propfolio/internal/engine"
	"propfolio/internal/handler"
	"propfolio/internal/logger"
	gormrepository "propfolio/internal/repository/gorm"
	"propfolio/internal/service"

	_ "propfolio/docs"
)

func main() {
	cfgPath := os.Getenv("PF_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}

	envOnly := false
	if envOnlyRaw := os.Getenv("PF_ENV_ONLY"); envOnlyRaw != "" {
		envOnly = strings.EqualFold(envOnlyRaw, "true") || envOnlyRaw == "1"
	}

	cfg, err := config.Load(cfgPath, envOnly)
	if err != nil {
		panic(err)
	}

	logger, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	dbConn, err := db.Open(cfg.DB)
	if err != nil {
		logger.Fatal("db open failed", zap.Error(err))
	}
	defer db.Close(dbConn)

	if err := db.SetTimezone(dbConn, cfg.DB.Timezone); err != nil {
		logger.Warn("failed to set timezone", zap.Error(err))
	}
	if err := db.AutoMigrate(dbConn); err != nil {
		logger.Fatal("auto-migrate failed", zap.Error(err))
	}

	store := gormrepository.New(dbConn.Gorm)

	catalogSvc := &service.CatalogService{Repo: store, Logger: logger}
	if err := catalogSvc.EnsureDefaults(context.Background()); err != nil {
		logger.Warn("seeding default catalogs failed", zap.Error(err))
	}

	projector := engine.ProjectorConfig{
		InstantFundingMarkers: cfg.Engine.InstantFundingMarkers,
		OnePhaseMarkers:       cfg.Engine.OnePhaseMarkers,
		MinColumns:            cfg.Engine.MinPhaseColumns,
	}
	statsSvc := &service.StatsService{Repo: store, Projector: projector, Logger: logger}
	snapshotSvc := &service.SnapshotService{
		Repo:          store,
		Logger:        logger,
		RetentionDays: cfg.Snapshot.RetentionDays,
	}

	if strings.EqualFold(cfg.App.Env, "dev") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	healthHandler := &handler.HealthHandler{DB: dbConn.Gorm}
	healthHandler.Register(router)
	accountHandler := &handler.AccountHandler{Repo: store}
	accountHandler.Register(router)
	catalogHandler := &handler.CatalogHandler{Repo: store, Catalog: catalogSvc}
	catalogHandler.Register(router)
	statsHandler := &handler.StatsHandler{Repo: store, Stats: statsSvc}
	statsHandler.Register(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Cron.Enabled {
		cronRunner := cronrunner.New(logger, ctx)
		_, err = cronRunner.Add(cfg.Cron.Snapshot, func(ctx context.Context) {
			if err := snapshotSvc.Snapshot(ctx); err != nil {
				logger.Warn("stats snapshot failed", zap.Error(err))
			}
		})
		if err != nil {
			logger.Warn("cron register snapshot failed", zap.Error(err))
		}
		_, err = cronRunner.Add(cfg.Cron.Cleanup, func(ctx context.Context) {
			if err := snapshotSvc.Cleanup(ctx); err != nil {
				logger.Warn("snapshot cleanup failed", zap.Error(err))
			}
		})
		if err != nil {
			logger.Warn("cron register cleanup failed", zap.Error(err))
		}
		cronRunner.Start()
		defer cronRunner.Stop()
	}

	errCh := make(chan error, 1)

	go func() {
		logger.Info("http server starting", zap.String("addr", cfg.Server.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
