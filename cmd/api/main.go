package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/edubot/edubot-api/api/swagger"
	"github.com/edubot/edubot-api/internal/handler"
	"github.com/edubot/edubot-api/internal/middleware"
	"github.com/edubot/edubot-api/internal/repository"
	"github.com/edubot/edubot-api/internal/service"
	"github.com/edubot/edubot-api/pkg/cache"
	"github.com/edubot/edubot-api/pkg/config"
	"github.com/edubot/edubot-api/pkg/database"
	"github.com/edubot/edubot-api/pkg/logger"
	corsmiddleware "github.com/edubot/edubot-api/pkg/middleware/cors"
	reqidmiddleware "github.com/edubot/edubot-api/pkg/middleware/requestid"
)

// @title EduBot API
// @version 1.0.0
// @description Course enrollment backend for the líneas de énfasis program
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

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close() //nolint:errcheck

	cacheRepo := repository.NewCacheRepository(nil, logr)
	cacheEnabled := false
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, continuing without cache", "error", err)
		} else {
			cacheRepo = repository.NewCacheRepository(redisClient, logr)
			cacheEnabled = true
			defer redisClient.Close() //nolint:errcheck
		}
	}

	metricsSvc := service.NewMetricsService()
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.CourseListTTL, logr, cacheEnabled)
	validate := validator.New()

	courseRepo := repository.NewCourseRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	coordinatorRepo := repository.NewCoordinatorRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	notificationSvc := service.NewNotificationService(notificationRepo, cfg.Notifications, logr)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	notificationSvc.Start(ctx)
	defer notificationSvc.Stop()

	courseSvc := service.NewCourseService(courseRepo, enrollmentRepo, coordinatorRepo, studentRepo, cacheSvc, validate, logr)
	enrollmentSvc := service.NewEnrollmentService(enrollmentRepo, courseRepo, studentRepo, notificationSvc, validate, logr)
	studentSvc := service.NewStudentService(studentRepo, validate, logr)
	coordinatorSvc := service.NewCoordinatorService(coordinatorRepo, validate, logr)
	reportSvc := service.NewReportService(studentRepo, enrollmentRepo, cfg.Reports, logr)
	chatSvc := service.NewChatService(courseSvc, enrollmentSvc, reportSvc, service.ChatOptions{DefaultStudentID: cfg.Chat.DefaultStudentID}, logr)

	courseHandler := handler.NewCourseHandler(courseSvc, enrollmentSvc)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentSvc)
	studentHandler := handler.NewStudentHandler(studentSvc, enrollmentSvc, reportSvc, notificationSvc)
	coordinatorHandler := handler.NewCoordinatorHandler(coordinatorSvc)
	notificationHandler := handler.NewNotificationHandler(notificationSvc)
	chatHandler := handler.NewChatHandler(chatSvc)

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
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/cursos", courseHandler.List)
		api.POST("/cursos", courseHandler.Create)
		api.GET("/cursos/:codigo", courseHandler.Get)
		api.GET("/cursos/:codigo/validar", courseHandler.Validate)
		api.PUT("/cursos/:codigo/aprobar", courseHandler.Approve)
		api.PUT("/cursos/:codigo/rechazar", courseHandler.Reject)
		api.GET("/cursos/:codigo/inscripciones", courseHandler.Enrollments)

		api.POST("/inscripciones", enrollmentHandler.Create)
		api.DELETE("/inscripciones/:id", enrollmentHandler.Cancel)

		api.POST("/estudiantes", studentHandler.Create)
		api.GET("/estudiantes", studentHandler.List)
		api.GET("/estudiantes/:id", studentHandler.Get)
		api.GET("/estudiante/:id/inscripciones", studentHandler.Enrollments)
		api.GET("/estudiante/:id/progreso", studentHandler.Progress)
		api.GET("/estudiante/:id/progreso/export", studentHandler.ExportProgress)
		api.GET("/estudiante/:id/notificaciones", studentHandler.Notifications)

		api.POST("/coordinadores", coordinatorHandler.Create)
		api.GET("/coordinadores/:id", coordinatorHandler.Get)

		api.PUT("/notificaciones/:id/leida", notificationHandler.MarkRead)
	}

	r.POST("/chat", chatHandler.Dispatch)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
