// File: roomcheck/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"roomcheck/config"
	"roomcheck/database"
	inventoryRepo "roomcheck/database/repository/inventory"
	"roomcheck/handlers"
	"roomcheck/middleware"
	"roomcheck/routes"
	"roomcheck/services/availability"
	"roomcheck/utils"

	"github.com/aws/aws-xray-sdk-go/xray"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// inventory store.
	repo, storePing, closeStore := openStore(logger)
	defer closeStore()

	// optional category cache.
	var cachePing utils.Pinger
	if err := utils.InitCache(); err != nil {
		logger.Warn("main: category cache disabled", zap.Error(err))
	} else {
		client := utils.GetCacheClient()
		defer client.Close()
		cachePing = utils.PingFunc(func(ctx context.Context) error { return client.Ping(ctx).Err() })
		repo = inventoryRepo.NewCachedInventoryRepo(repo, client, config.AppConfig.CategoryCacheTTL, logger)
	}

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	utils.StartHealthMonitor(monitorCtx, storePing, cachePing)

	// services.
	engine := availability.NewEngine(repo, logger, config.AppConfig.MaxCategoryFanout)

	availabilityHandler := handlers.NewAvailabilityHandler(engine)
	adminHandler := handlers.NewAdminHandler(utils.GetCacheClient())

	handlerBundle := &handlers.HandlerBundle{
		ValidateAvailability:    availabilityHandler.ValidateAvailabilityHandler,
		AdminToken:              config.AppConfig.AdminToken,
		InvalidateCategoryCache: adminHandler.InvalidateCategoryCacheHandler,
		Health:                  handlers.HealthHandler,
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(middleware.RequestLogger(logger))
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))
	routes.RegisterRoutes(router, handlerBundle)

	var handler http.Handler = router
	if config.AppConfig.EnableTracing {
		handler = xray.Handler(xray.NewFixedSegmentNamer("roomcheck"), router)
	}

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: handler,
	}

	logger.Sugar().Infof("Starting server on %s (store=%s)...", srv.Addr, config.AppConfig.StoreDriver)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), utils.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

// openStore connects the configured backend, bootstraps its indexes or schema
// and returns the repository with a health probe and a close func.
func openStore(logger *zap.Logger) (inventoryRepo.Repository, utils.Pinger, func()) {
	timeout := config.AppConfig.QueryTimeout

	switch config.AppConfig.StoreDriver {
	case config.StorePostgres:
		if err := database.InitPostgres(); err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		db := database.PostgresDB
		ctx, cancel := context.WithTimeout(context.Background(), utils.ShutdownTimeout)
		defer cancel()
		if err := inventoryRepo.EnsureSchema(ctx, db); err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		return inventoryRepo.NewPostgresInventoryRepo(db, timeout),
			utils.PingFunc(db.PingContext),
			func() { db.Close() }

	case config.StoreMongo, "":
		if err := database.InitDB(); err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		db := database.MongoDatabase()
		if err := inventoryRepo.EnsureIndexes(db); err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		client := database.MongoClient
		return inventoryRepo.NewMongoInventoryRepo(db, timeout),
			utils.PingFunc(func(ctx context.Context) error { return client.Ping(ctx, nil) }),
			func() { client.Disconnect(context.Background()) }

	default:
		logger.Sugar().Fatalf("main: unknown STORE_DRIVER %q", config.AppConfig.StoreDriver)
		return nil, nil, nil
	}
}
