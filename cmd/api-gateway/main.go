package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/sora-rara/bracu-student-hub-sub005/api/swagger"
	"github.com/sora-rara/bracu-student-hub-sub005/internal/handler"
	"github.com/sora-rara/bracu-student-hub-sub005/internal/middleware"
	"github.com/sora-rara/bracu-student-hub-sub005/internal/models"
	"github.com/sora-rara/bracu-student-hub-sub005/internal/repository"
	"github.com/sora-rara/bracu-student-hub-sub005/internal/service"
	"github.com/sora-rara/bracu-student-hub-sub005/pkg/cache"
	"github.com/sora-rara/bracu-student-hub-sub005/pkg/config"
	"github.com/sora-rara/bracu-student-hub-sub005/pkg/database"
	"github.com/sora-rara/bracu-student-hub-sub005/pkg/logger"
	corsmiddleware "github.com/sora-rara/bracu-student-hub-sub005/pkg/middleware/cors"
	reqidmiddleware "github.com/sora-rara/bracu-student-hub-sub005/pkg/middleware/requestid"
)

// @title Student Hub Timetable API
// @version 1.0.0
// @description Timetable composition and conflict detection service
// @BasePath /
// @schemes http

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

	slots := models.DefaultSlotTable()
	if len(cfg.Timetable.Slots) > 0 {
		slots, err = models.ParseSlotTable(cfg.Timetable.Slots)
		if err != nil {
			logr.Sugar().Fatalw("invalid slot table configuration", "error", err)
		}
	}

	clock, err := service.NewClockService(cfg.Timetable.Timezone)
	if err != nil {
		logr.Sugar().Fatalw("invalid timezone configuration", "error", err)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close() //nolint:errcheck

	metricsSvc := service.NewMetricsService()

	cacheEnabled := cfg.Timetable.CacheEnabled
	var cacheRepo service.CacheRepository
	if cacheEnabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, timetable cache disabled", "error", err)
			cacheEnabled = false
		} else {
			cacheRepo = repository.NewCacheRepository(redisClient, logr)
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Timetable.CacheTTL, logr, cacheEnabled)

	validate := validator.New()
	catalogRepo := repository.NewCatalogRepository(db)
	pickRepo := repository.NewPickRepository(db)

	timetableSvc := service.NewTimetableService(catalogRepo, pickRepo, slots, clock, cacheSvc, metricsSvc, logr)
	pickSvc := service.NewPickService(pickRepo, timetableSvc, validate, logr)
	courseSvc := service.NewCourseService(catalogRepo, logr)

	timetableHandler := handler.NewTimetableHandler(timetableSvc)
	pickHandler := handler.NewPickHandler(pickSvc)
	courseHandler := handler.NewCourseHandler(courseSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/students/:id/timetable", timetableHandler.Compose)
		api.GET("/students/:id/timetable/grid", timetableHandler.Grid)
		api.GET("/students/:id/timetable/now", timetableHandler.Now)

		api.GET("/students/:id/picks", pickHandler.List)
		api.PUT("/students/:id/picks", pickHandler.Replace)
		api.DELETE("/students/:id/picks", pickHandler.Clear)

		api.GET("/courses", courseHandler.List)
		api.GET("/courses/:code/sections/:section", courseHandler.Get)
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "timezone", cfg.Timetable.Timezone)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
