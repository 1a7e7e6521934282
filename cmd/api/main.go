package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/vitalogapp/vitalog-backend/internal/ai"
	"github.com/vitalogapp/vitalog-backend/internal/api/handlers"
	"github.com/vitalogapp/vitalog-backend/internal/api/middleware"
	"github.com/vitalogapp/vitalog-backend/internal/api/routes"
	"github.com/vitalogapp/vitalog-backend/internal/domain/dashboard"
	"github.com/vitalogapp/vitalog-backend/internal/domain/dates"
	"github.com/vitalogapp/vitalog-backend/internal/domain/journal"
	"github.com/vitalogapp/vitalog-backend/internal/domain/logs"
	"github.com/vitalogapp/vitalog-backend/internal/domain/user"
	"github.com/vitalogapp/vitalog-backend/internal/infrastructure/cache"
	"github.com/vitalogapp/vitalog-backend/internal/infrastructure/persistence/postgres/connection"
	"github.com/vitalogapp/vitalog-backend/internal/infrastructure/persistence/postgres/migrations"
	"github.com/vitalogapp/vitalog-backend/internal/infrastructure/scheduler"
	"github.com/vitalogapp/vitalog-backend/pkg/config"
	"github.com/vitalogapp/vitalog-backend/pkg/logger"
)

// RequestLoggerMiddleware logs all incoming HTTP requests
func RequestLoggerMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		log.Info("Request started",
			zap.String("path", path),
			zap.String("method", method),
			zap.String("client_ip", c.ClientIP()),
		)

		c.Next()

		log.Info("Request completed",
			zap.String("path", path),
			zap.String("method", method),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("") // Empty string will make it search in default locations
	if err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	log := logger.NewLogger()
	defer log.Sync()

	log.Info("Configuration loaded successfully")
	log.Info("Server mode: " + cfg.Server.Mode)

	// Set up Gin
	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	gin.DefaultWriter = os.Stdout

	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(RequestLoggerMiddleware(log))
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowedOrigins,
		AllowMethods: cfg.CORS.AllowedMethods,
		AllowHeaders: append(cfg.CORS.AllowedHeaders,
			"Accept-Encoding",
			"Content-Encoding",
			"Content-Type",
			"Authorization",
		),
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Encoding",
			"Content-Type",
		},
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	metricsMiddleware := middleware.NewMetricsMiddleware()
	router.Use(metricsMiddleware.CollectMetrics())

	// Add Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Connect to database
	db, err := connection.NewDatabase(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run database migrations
	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to run database migrations", zap.Error(err))
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Initialize the AI insight client when enabled; journal creation works
	// without it, entries just carry no insights.
	var aiClient *ai.Client
	if cfg.AI.Enabled {
		aiClient = ai.NewClient(cfg)
		log.Info("AI insight client enabled", zap.String("model", cfg.AI.Model))
	}

	// Initialize repositories
	userRepo := user.NewRepository(db)
	logsRepo := logs.NewRepository(db)
	journalRepo := journal.NewRepository(db)

	// Initialize services
	userService := user.NewService(userRepo, log.Logger, cfg.Dashboard.DefaultWaterTarget)
	logsService := logs.NewService(logsRepo, redisClient, log.Logger)
	journalService := journal.NewService(journalRepo, aiClient, redisClient, log.Logger)
	dashboardService := dashboard.NewService(logsRepo, journalRepo, userService, log.Logger, dashboard.Options{
		StreakGrace:        cfg.Dashboard.StreakGracePeriod,
		DefaultWaterTarget: cfg.Dashboard.DefaultWaterTarget,
	})

	weekStart := dates.ParseWeekStart(cfg.Dashboard.WeekStart)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService, log.Logger)
	logsHandler := handlers.NewLogsHandler(logsService, log.Logger)
	journalHandler := handlers.NewJournalHandler(journalService, log.Logger, weekStart, cfg.Dashboard.StreakGracePeriod)
	dashboardHandler := handlers.NewDashboardHandler(
		dashboardService,
		redisClient,
		log.Logger,
		cfg.Dashboard.WindowDays,
		cfg.Dashboard.CacheTTL,
	)

	// Root context cancelled on shutdown; stops the scheduler and the
	// dashboard event listener.
	rootCtx, rootCancel := context.WithCancel(context.Background())
	defer rootCancel()

	// Start listening for dashboard events
	dashboardHandler.StartDashboardEventListener(rootCtx)

	// Initialize and start the day rollover scheduler
	rolloverScheduler := scheduler.NewScheduler(redisClient, log)
	rolloverScheduler.Start(rootCtx)
	log.Info("Day rollover scheduler started successfully")

	// Health check routes (no /api prefix as these are system endpoints)
	routes.SetupHealthRoutes(router)
	log.Info("Registered health check routes at /health and /health/ready")

	// Add cache health check
	router.GET("/health/cache", func(c *gin.Context) {
		if err := redisClient.HealthCheck(c); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"component": "cache",
				"error":     err.Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"component": "cache",
		})
	})

	// Dashboard routes (protected)
	dashboardRoutes := routes.NewDashboardRoutes(dashboardHandler, cfg.Auth.JWTSecret)
	dashboardRoutes.RegisterRoutes(router)
	log.Info("Registered dashboard routes at /api/dashboard")

	// Journal routes (protected)
	journalRoutes := routes.NewJournalRoutes(journalHandler, cfg.Auth.JWTSecret)
	journalRoutes.RegisterRoutes(router)
	log.Info("Registered journal routes at /api/journal")

	// Log routes (protected)
	logsRoutes := routes.NewLogsRoutes(logsHandler, cfg.Auth.JWTSecret)
	logsRoutes.RegisterRoutes(router)
	log.Info("Registered log routes at /api/logs")

	// User routes (protected)
	userRoutes := routes.NewUserRoutes(userHandler, cfg.Auth.JWTSecret)
	userRoutes.RegisterRoutes(router)
	log.Info("Registered user routes at /api/users")

	// Start server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info(fmt.Sprintf("Server starting on port %d", cfg.Server.Port))

		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	rootCancel()

	// Shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited properly")
}
