// @title           Bulletin Board API
// @version         1.0
// @description     게시판 회원, 게시글, 댓글, 첨부파일 API
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:5000
// @BasePath  /

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "bulletin-board-api/docs" // Swagger docs import

	"bulletin-board-api/internal/config"
	"bulletin-board-api/internal/database"
	"bulletin-board-api/internal/job"
	"bulletin-board-api/internal/metrics"
	"bulletin-board-api/internal/repository"
	"bulletin-board-api/internal/router"
	"bulletin-board-api/internal/service"
	"bulletin-board-api/internal/storage"
)

const (
	migrationRetries      = 5
	dbStatsInterval       = 15 * time.Second
	businessStatsInterval = time.Minute
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Set Gin mode
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Bulletin Board API",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("db_driver", cfg.Database.Driver),
		zap.String("storage_backend", cfg.Storage.Backend),
	)

	// Initialize metrics
	m := metrics.NewWithLogger(logger)
	logger.Info("Metrics initialized")

	// Initialize database
	db, err := database.New(database.Config{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	logger.Info("Database connected successfully")

	if err := database.RegisterMetricsCallbacks(db, m); err != nil {
		logger.Warn("Failed to register database metrics callbacks", zap.Error(err))
	}
	stopDBStats := database.StartDBStatsCollector(db, m, dbStatsInterval)

	if err := database.AutoMigrateWithRetry(db, logger, migrationRetries); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}
	logger.Info("Database migrations completed")

	// Initialize file storage
	fileStorage, err := newFileStorage(cfg, m)
	if err != nil {
		logger.Fatal("Failed to initialize file storage", zap.Error(err))
	}
	logger.Info("File storage initialized", zap.String("backend", cfg.Storage.Backend))

	// Initialize login guard (optional)
	var redisClient *redis.Client
	var loginGuard service.LoginGuard
	if cfg.Redis.Enabled() {
		redisClient, err = database.NewRedis(cfg.Redis, logger)
		if err != nil {
			logger.Warn("Failed to connect to Redis, login lockout disabled", zap.Error(err))
		} else {
			loginGuard = service.NewRedisLoginGuard(redisClient, cfg.Security.MaxLoginAttempts, cfg.Security.LoginLockWindow)
		}
	} else {
		logger.Info("Redis not configured, login lockout disabled")
	}

	// Start business metrics collector
	collector := metrics.NewBusinessMetricsCollector(db, m, logger, businessStatsInterval)
	collector.Start()

	// Schedule background jobs
	scheduler := job.NewScheduler(logger)
	cleanup := job.NewOrphanCleanupJob(repository.NewFileRepository(db), fileStorage, cfg.Cleanup.MinAge, m, logger)
	if err := scheduler.Register("orphan-file-cleanup", cfg.Cleanup.Schedule, cleanup); err != nil {
		logger.Fatal("Failed to schedule orphan file cleanup", zap.Error(err))
	}
	scheduler.Start()

	// Setup router with all dependencies
	r := router.Setup(router.Config{
		DB:             db,
		Logger:         logger,
		Metrics:        m,
		Storage:        fileStorage,
		LoginGuard:     loginGuard,
		BcryptCost:     cfg.Security.BcryptCost,
		MaxFileSize:    cfg.Upload.MaxFileSize,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Bulletin Board API started successfully",
			zap.String("address", srv.Addr),
			zap.String("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	scheduler.Stop(ctx)
	collector.Stop()
	close(stopDBStats)

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis connection", zap.Error(err))
		}
	}
	if err := database.Close(db); err != nil {
		logger.Warn("Failed to close database connection", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

// newFileStorage builds the configured upload backend
func newFileStorage(cfg *config.Config, m *metrics.Metrics) (storage.FileStorage, error) {
	if cfg.Storage.Backend == "s3" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s3Storage, err := storage.NewS3Storage(ctx, &cfg.S3, m)
		if err != nil {
			return nil, err
		}
		return s3Storage, nil
	}

	local, err := storage.NewLocalStorage(cfg.Upload.Dir)
	if err != nil {
		return nil, err
	}
	return local, nil
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	zapLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		zapLevel = zapcore.InfoLevel
	}

	zapConfig := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return zapConfig.Build()
}
