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

	"github.com/medloop/doctor-directory/internal/adapters/cache"
	"github.com/medloop/doctor-directory/internal/adapters/navigation"
	"github.com/medloop/doctor-directory/internal/api/handlers"
	"github.com/medloop/doctor-directory/internal/api/middleware"
	"github.com/medloop/doctor-directory/internal/api/routes"
	"github.com/medloop/doctor-directory/internal/application/services"
	"github.com/medloop/doctor-directory/internal/domain/providers"
	"github.com/medloop/doctor-directory/internal/infrastructure/clients/doctorapi"
	redisclient "github.com/medloop/doctor-directory/internal/infrastructure/clients/redis"
	"github.com/medloop/doctor-directory/internal/infrastructure/observability"
	"github.com/medloop/doctor-directory/pkg/config"
)

func main() {

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, os.Getenv("APP_ENV"))

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	var shutdown func(context.Context) error
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err = observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Printf("Warning: Failed to set up OpenTelemetry: %v", err)
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down OpenTelemetry: %v", err)
				}
			}()
			log.Println("OpenTelemetry initialized successfully")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatalf("Failed to initialize metrics: %v", err)
	}

	// Redis is optional: without it the feed is fetched on every boot and
	// responses are served uncached.
	var cacheProvider providers.CacheProvider
	redisClient, err := redisclient.NewClient(&cfg.Redis)
	if err != nil {
		log.Printf("Warning: Failed to initialize Redis client: %v", err)
	} else {
		defer redisClient.Close()
		cacheProvider = cache.NewRedisAdapter(redisClient)
		log.Println("Redis client initialized successfully")
	}

	// Upstream feed client, cache-wrapped when Redis is available
	feedClient := doctorapi.NewHTTPClient(cfg.Source.URL, time.Duration(cfg.Source.TimeoutSeconds)*time.Second)
	var source doctorapi.Client = feedClient
	if cacheProvider != nil {
		source = cache.NewCachedRecordSource(feedClient, cacheProvider, cfg.Source.CacheTTLSeconds)
	}

	// Directory session
	navigator := navigation.NewHistoryNavigator("")
	directory := services.NewDirectoryService(source, navigator)
	if err := directory.Load(ctx); err != nil {
		// Error state is served as-is; a restart retries the load
		log.Printf("Warning: directory loaded in error state: %v", err)
	}
	go directory.Run(ctx)

	directoryHandler := handlers.NewDirectoryHandler(directory)

	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider, metrics)
	}

	router := routes.NewRouter(directoryHandler, cacheMiddleware, metrics)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.SetupRoutes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Starting doctor directory API on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
