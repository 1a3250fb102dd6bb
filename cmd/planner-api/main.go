package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/uniplan/course-planner-api/api/swagger"
	"github.com/uniplan/course-planner-api/internal/handler"
	"github.com/uniplan/course-planner-api/internal/middleware"
	"github.com/uniplan/course-planner-api/internal/repository"
	"github.com/uniplan/course-planner-api/internal/service"
	"github.com/uniplan/course-planner-api/pkg/cache"
	"github.com/uniplan/course-planner-api/pkg/config"
	"github.com/uniplan/course-planner-api/pkg/database"
	"github.com/uniplan/course-planner-api/pkg/logger"
	corsmiddleware "github.com/uniplan/course-planner-api/pkg/middleware/cors"
	reqidmiddleware "github.com/uniplan/course-planner-api/pkg/middleware/requestid"
	"github.com/uniplan/course-planner-api/pkg/storage"
)

// @title Course Planner API
// @version 1.0.0
// @description Schedule planning service: conflict filtering, time-block merging, insights and exports
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	validate := validator.New()
	metrics := service.NewMetricsService()

	var cacheSvc *service.CacheService
	if cfg.Catalog.Cached {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, catalog caching disabled", "error", err)
		} else {
			cacheRepo := repository.NewCacheRepository(redisClient, logr)
			cacheSvc = service.NewCacheService(cacheRepo, metrics, cfg.Catalog.CacheTTL, logr, true)
			defer cacheRepo.Close() //nolint:errcheck
		}
	}

	catalogSvc := service.NewCatalogService(cfg.Catalog.BaseURL, cfg.Catalog.Timeout, cacheSvc, cfg.Catalog.CacheTTL, metrics, logr)
	plannerSvc := service.NewPlannerService(validate, logr)
	tokenSvc := service.NewTokenService(cfg.Token.Secret, cfg.Token.Expiration)

	var scheduleSvc *service.ScheduleService
	if cfg.Schedules.Enabled {
		db, err := database.NewPostgres(cfg.Database)
		if err != nil {
			logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
		}
		defer db.Close() //nolint:errcheck
		if err := database.Migrate(db, cfg.Database); err != nil {
			logr.Sugar().Fatalw("failed to run migrations", "error", err)
		}
		scheduleSvc = service.NewScheduleService(repository.NewSavedScheduleRepository(db), validate, logr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var exportSvc *service.ExportService
	scheduler := cron.New()
	if cfg.Exports.Enabled {
		store, err := storage.NewLocalStorage(cfg.Exports.StorageDir)
		if err != nil {
			logr.Sugar().Fatalw("failed to init export storage", "error", err)
		}
		signer := storage.NewSignedURLSigner(cfg.Exports.SignedURLSecret, cfg.Exports.SignedURLTTL)
		exportSvc = service.NewExportService(store, signer, metrics, validate, logr, service.ExportServiceConfig{
			Workers:    cfg.Exports.WorkerConcurrency,
			MaxRetries: cfg.Exports.WorkerRetries,
			RecordTTL:  cfg.Exports.SignedURLTTL,
		})
		exportSvc.Start(ctx)
		defer exportSvc.Stop()

		if _, err := scheduler.AddFunc(cfg.Exports.CleanupSchedule, func() { exportSvc.Cleanup(ctx) }); err != nil {
			logr.Sugar().Fatalw("invalid export cleanup schedule", "schedule", cfg.Exports.CleanupSchedule, "error", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	metricsHandler := handler.NewMetricsHandler(metrics)
	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Health)
	r.GET("/metrics", metricsHandler.Prometheus)
	r.GET("/status", metricsHandler.Status)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	tokenHandler := handler.NewTokenHandler(tokenSvc)
	api.POST("/token", middleware.OptionalDeviceToken(tokenSvc), tokenHandler.Issue)

	catalogHandler := handler.NewCatalogHandler(catalogSvc)
	api.GET("/catalog/:term/:dept", catalogHandler.ListCourses)
	api.GET("/catalog/:term/:dept/:number", catalogHandler.GetCourse)

	plannerHandler := handler.NewPlannerHandler(plannerSvc)
	api.POST("/planner/filter", plannerHandler.Filter)
	api.POST("/planner/blocks/merge", plannerHandler.MergeBlocks)
	api.POST("/planner/insights", plannerHandler.Insights)
	api.POST("/planner/week", plannerHandler.WeekView)

	if scheduleSvc != nil {
		scheduleHandler := handler.NewScheduleHandler(scheduleSvc)
		schedules := api.Group("/schedules", middleware.DeviceToken(tokenSvc))
		schedules.GET("", scheduleHandler.List)
		schedules.POST("", scheduleHandler.Save)
		schedules.GET("/:id", scheduleHandler.Get)
		schedules.DELETE("/:id", scheduleHandler.Delete)
		schedules.PUT("/:id/default", scheduleHandler.SetDefault)
	}

	if exportSvc != nil {
		exportHandler := handler.NewExportHandler(exportSvc)
		api.GET("/exports/download", exportHandler.Download)
		exports := api.Group("/exports", middleware.DeviceToken(tokenSvc))
		exports.POST("", exportHandler.Create)
		exports.GET("/:id", exportHandler.Status)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{Addr: addr, Handler: r}

	go func() {
		logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logr.Sugar().Infow("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logr.Sugar().Errorw("shutdown incomplete", "error", err)
	}
}
