package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	settlementapp "github.com/broilerlink/backend/internal/application/settlement"
	"github.com/broilerlink/backend/internal/infrastructure/cache"
	"github.com/broilerlink/backend/internal/infrastructure/config"
	"github.com/broilerlink/backend/internal/infrastructure/logger"
	"github.com/broilerlink/backend/internal/infrastructure/persistence"
	"github.com/broilerlink/backend/internal/interfaces/http/handler"
	"github.com/broilerlink/backend/internal/interfaces/http/middleware"
	"github.com/broilerlink/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting BroilerLink Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Balance cache is optional: when redis is unreachable the services
	// recompute balances on every read
	var balanceCache settlementapp.BalanceCache
	redisCache, err := cache.NewRedisBalanceCache(&cfg.Redis)
	if err != nil {
		log.Warn("Redis unavailable, outstanding balances will not be cached", zap.Error(err))
	} else {
		balanceCache = redisCache
		defer func() {
			if err := redisCache.Close(); err != nil {
				log.Error("Error closing redis client", zap.Error(err))
			}
		}()
		log.Info("Balance cache connected", zap.String("addr", cfg.Redis.Addr()))
	}

	// Initialize repositories
	vendorRepo := persistence.NewGormVendorRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	rateRepo := persistence.NewGormDailyRateRepository(db.DB)
	summaryRepo := persistence.NewGormDailySummaryRepository(db.DB)
	paymentRepo := persistence.NewGormVendorPaymentRepository(db.DB)

	// Initialize application services
	rateService := settlementapp.NewRateService(rateRepo, vendorRepo)
	reconciliationService := settlementapp.NewReconciliationService(
		vendorRepo, orderRepo, summaryRepo, rateService, balanceCache)
	ledgerService := settlementapp.NewLedgerService(
		vendorRepo, summaryRepo, paymentRepo, orderRepo, balanceCache)
	financeService := settlementapp.NewVendorFinanceService(
		vendorRepo, summaryRepo, paymentRepo, balanceCache)

	// Initialize handlers
	rateHandler := handler.NewRateHandler(rateService)
	reconciliationHandler := handler.NewReconciliationHandler(reconciliationService)
	ledgerHandler := handler.NewLedgerHandler(ledgerService, financeService)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack, in order: request ID, panic recovery, request
	// logging, tracing, security headers, CORS
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log, "/health"))
	engine.Use(middleware.Tracing())
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSOrigins
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Health check endpoint (outside API versioning)
	engine.GET("/health", healthHandler(db))

	// Register API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(rateHandler).
		Register(reconciliationHandler).
		Register(ledgerHandler)
	r.Setup()

	// Simple ping at root API level for basic liveness checks
	engine.GET("/api/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler returns a handler for health check endpoints
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
