package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"model-catalog-service/internal/adapters/primary/http/handlers"
	"model-catalog-service/internal/adapters/primary/http/middleware"
	"model-catalog-service/internal/adapters/secondary/catalogfile"
	"model-catalog-service/internal/adapters/secondary/huggingface"
	"model-catalog-service/internal/adapters/secondary/postgres"
	"model-catalog-service/internal/adapters/secondary/storage"
	"model-catalog-service/internal/config"
	"model-catalog-service/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	pool, err := newPool(cmd.Context(), &cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()
	log.Info("database connection established")

	catalog, err := catalogfile.Load(&cfg.Catalog)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	if cfg.Registry.APIKey == "" {
		log.Warn("registry API key not set, registry lookups will fail")
	}

	// ============================================================================
	// Hexagonal Architecture Wiring
	// ============================================================================

	// Secondary Adapters (Output Ports)
	recordRepo := postgres.NewCatalogRecordRepository(pool)
	imageStore := storage.NewImageStore(&cfg.Store)
	registryClient := huggingface.NewRegistryClient(&cfg.Registry)

	// Core Services (Application Layer)
	detailSvc := services.NewModelDetailService(registryClient)
	recordSvc := services.NewCatalogRecordService(recordRepo, imageStore)
	catalogSvc := services.NewCatalogService(catalog)

	// Primary Adapter (HTTP Handlers)
	h := handlers.New(detailSvc, recordSvc, catalogSvc, cfg.Store.PlaceholderPath, cfg.Server.PublicBaseURL)

	// Setup router
	metrics := middleware.NewHTTPMetrics(prometheus.DefaultRegisterer)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), metrics.Middleware(), gin.Recovery())

	api := router.Group("/api/v1/model-catalog")
	h.RegisterRoutes(api)

	// Health check with DB ping
	router.GET("/healthz", func(c *gin.Context) {
		if err := recordRepo.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
	}).Handler(router)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: corsHandler,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-quit:
	}
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced shutdown: %w", err)
	}

	log.Info("server stopped")
	return nil
}

func newPool(ctx context.Context, cfg *config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}
	poolCfg.MaxConns = int32(cfg.MaxOpenConns)
	poolCfg.MinConns = int32(cfg.MaxIdleConns)
	poolCfg.MaxConnLifetime = cfg.ConnMaxLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create db pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return pool, nil
}
