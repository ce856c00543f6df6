// FilePath: internal/server/server.go
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	nuts "github.com/vaudience/go-nuts"

	"github.com/itsatony/agrisynth/api"
	"github.com/itsatony/agrisynth/internal/cleanup"
	"github.com/itsatony/agrisynth/internal/config"
	"github.com/itsatony/agrisynth/internal/generator"
	"github.com/itsatony/agrisynth/internal/monitoring"
	"github.com/itsatony/agrisynth/internal/repository"
	"github.com/itsatony/agrisynth/internal/repository/memory"
	"github.com/itsatony/agrisynth/internal/repository/redis"
	"github.com/itsatony/agrisynth/internal/schema"
	"github.com/itsatony/agrisynth/internal/service"
)

// Server represents our HTTP server
type Server struct {
	config      *config.Config
	srv         *http.Server
	service     *service.Service
	monitoring  *monitoring.Service
	stopJanitor context.CancelFunc
}

// New creates a new server instance
func New(cfg *config.Config) *Server {
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return &Server{
		config: cfg,
		srv:    srv,
	}
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Initialize services
	s.monitoring = monitoring.NewService(monitoring.Config{
		LogEvents: s.config.Monitoring.LogEvents,
	})
	svc, err := initializeService(s.config, s.monitoring)
	if err != nil {
		return err
	}
	s.service = svc

	// Sweep expired snapshots in the background
	ctx, cancel := context.WithCancel(context.Background())
	s.stopJanitor = cancel
	go s.service.Janitor.Run(ctx)

	// Setup routes
	s.srv.Handler = api.NewRouter(s.service, api.RouterConfig{
		CORSOrigins: s.config.Server.CORSOrigins,
		AccessLog:   os.Stdout,
	})

	// Start server
	go func() {
		nuts.L.Infof("[Server] Starting server on %s (snapshot store: %s)", s.srv.Addr, s.config.Snapshots.Store)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			nuts.L.Errorf("[Server] Error starting server: %v", err)
			os.Exit(1)
		}
	}()

	return s.waitForShutdown()
}

// waitForShutdown waits for interrupt signal and gracefully shuts down the server
func (s *Server) waitForShutdown() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	nuts.L.Infof("[Server] Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	s.stopJanitor()
	if err := s.service.Snapshots.Close(); err != nil {
		nuts.L.Warnf("[Server] Error closing snapshot store: %v", err)
	}

	nuts.L.Infof("[Server] Server shut down successfully")
	return nil
}

// initializeService creates and configures the service
func initializeService(cfg *config.Config, mon *monitoring.Service) (*service.Service, error) {
	snapshots, err := initSnapshotRepository(cfg)
	if err != nil {
		return nil, err
	}

	validator, err := schema.NewValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to compile schemas: %w", err)
	}

	janitor := cleanup.New(snapshots, cfg.Snapshots.CleanupInterval)
	janitor.OnCleanup(cleanup.EventSnapshotExpired, func(id string) {
		nuts.L.Infof("[Cleanup] Snapshot %s expired", id)
	})
	janitor.OnCleanup(cleanup.EventSnapshotDeleted, func(id string) {
		nuts.L.Infof("[Cleanup] Snapshot %s deleted", id)
	})

	svc := service.New(snapshots, janitor, mon, validator, serviceOptions(cfg))
	if err := svc.Validate(); err != nil {
		return nil, err
	}
	return svc, nil
}

// serviceOptions maps configuration onto service limits
func serviceOptions(cfg *config.Config) service.Options {
	d := cfg.Generator.Dataset
	return service.Options{
		DefaultSeed:  cfg.Generator.DefaultSeed,
		Clamp:        cfg.Generator.Clamp,
		MaxCount:     cfg.Generator.MaxCount,
		MaxDays:      cfg.Generator.MaxDays,
		MaxRecords:   cfg.Generator.MaxRecords,
		SnapshotTTL:  cfg.Snapshots.TTL,
		MaxSnapshots: cfg.Snapshots.MaxSnapshots,
		Dataset: generator.DatasetConfig{
			Users:               d.Users,
			Farms:               d.Farms,
			SensorDays:          d.SensorDays,
			PestDetections:      d.PestDetections,
			Livestock:           d.Livestock,
			LivestockHealthDays: d.LivestockHealthDays,
			Products:            d.Products,
			Orders:              d.Orders,
		},
		ValidateOnRead: cfg.Snapshots.Store == config.StoreRedis,
	}
}

func initSnapshotRepository(cfg *config.Config) (repository.SnapshotRepository, error) {
	switch cfg.Snapshots.Store {
	case config.StoreRedis:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		return redis.NewSnapshotRepository(client, cfg.Redis.KeyPrefix), nil
	default:
		nuts.L.Infof("[Server] Keeping snapshots in memory")
		return memory.NewSnapshotRepository(nil), nil
	}
}
