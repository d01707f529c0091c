package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	_ "github.com/noah-isme/soutien-scolaire-api/api/swagger"
	"github.com/noah-isme/soutien-scolaire-api/internal/handler"
	"github.com/noah-isme/soutien-scolaire-api/internal/middleware"
	"github.com/noah-isme/soutien-scolaire-api/internal/repository"
	"github.com/noah-isme/soutien-scolaire-api/internal/repository/memory"
	"github.com/noah-isme/soutien-scolaire-api/internal/server"
	"github.com/noah-isme/soutien-scolaire-api/internal/service"
	"github.com/noah-isme/soutien-scolaire-api/pkg/cache"
	"github.com/noah-isme/soutien-scolaire-api/pkg/config"
	"github.com/noah-isme/soutien-scolaire-api/pkg/database"
	"github.com/noah-isme/soutien-scolaire-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/soutien-scolaire-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/soutien-scolaire-api/pkg/middleware/requestid"
	"github.com/noah-isme/soutien-scolaire-api/pkg/storage"
)

// @title Soutien Scolaire API
// @version 1.0.0
// @description Administration API of a tutoring center
// @BasePath /api
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, checks, closeStore, err := openStore(ctx, cfg, logr)
	if err != nil {
		logr.Fatal("failed to open store", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
	}
	defer closeStore()

	var metricsSvc *service.MetricsService
	if cfg.Metrics.Enabled {
		metricsSvc = service.NewMetricsService()
	}

	var cacheRepo service.CacheRepository
	if cfg.Cache.Enabled {
		client, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, list cache disabled", zap.Error(err))
		} else {
			redisRepo := repository.NewCacheRepository(client)
			defer redisRepo.Close() //nolint:errcheck
			cacheRepo = redisRepo
			checks["redis"] = redisRepo
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Cache.TTL, logr, cacheRepo != nil)

	handlers := server.NewHandlers(server.Dependencies{
		Repos:             repos,
		Cache:             cacheSvc,
		Metrics:           metricsSvc,
		Validator:         validator.New(),
		Logger:            logr,
		OrgName:           cfg.OrgName,
		DefaultHourlyRate: cfg.Payroll.DefaultHourlyRate,
		Checks:            checks,
	})

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	router := server.NewRouter(handlers, server.Options{
		APIPrefix:     cfg.APIPrefix,
		EnableMetrics: cfg.Metrics.Enabled,
		EnableDocs:    cfg.Env != config.EnvProduction,
	},
		gin.Recovery(),
		reqidmiddleware.Middleware(),
		logger.GinMiddleware(logr),
		corsmiddleware.New(cfg.CORS.AllowedOrigins),
		middleware.Metrics(metricsSvc, "/metrics", "/health", "/ready"),
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env), zap.String("storage", cfg.Storage.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logr.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}

// openStore builds the repositories of the configured backend.
func openStore(ctx context.Context, cfg *config.Config, logr *zap.Logger) (server.Repositories, map[string]handler.Pinger, func(), error) {
	checks := map[string]handler.Pinger{}

	if cfg.Storage.Driver == config.StoragePostgres {
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return server.Repositories{}, nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		if cfg.Database.AutoMigrate {
			if err := database.Migrate(ctx, db.DB); err != nil {
				_ = db.Close()
				return server.Repositories{}, nil, nil, err
			}
			if version, err := database.Version(ctx, db.DB); err == nil {
				logr.Info("database migrated", zap.Int64("version", version))
			}
		}
		checks["postgres"] = handler.PingerFunc(db.PingContext)
		repos := server.Repositories{
			Teachers: repository.NewTeacherRepository(db),
			Students: repository.NewStudentRepository(db),
			Courses:  repository.NewCourseRepository(db),
			Rooms:    repository.NewRoomRepository(db),
			Sessions: repository.NewSessionRepository(db),
			Payments: repository.NewPaymentRepository(db),
			Receipts: repository.NewReceiptRepository(db),
			Payslips: repository.NewPayslipRepository(db),
		}
		return repos, checks, func() { _ = db.Close() }, nil
	}

	opts := []memory.Option{memory.WithLogger(logr)}
	closeSnapshots := func() {}
	if path := cfg.Storage.SnapshotPath; path != "" {
		local, err := storage.NewLocalStorage(filepath.Dir(path))
		if err != nil {
			return server.Repositories{}, nil, nil, fmt.Errorf("open snapshot dir: %w", err)
		}
		snapshots := memory.NewAsyncSnapshots(local, logr)
		snapshots.Start(context.Background())
		closeSnapshots = snapshots.Stop
		opts = append(opts, memory.WithSnapshot(snapshots, filepath.Base(path)))
	}
	store := memory.NewStore(opts...)
	if err := store.Load(); err != nil {
		closeSnapshots()
		return server.Repositories{}, nil, nil, fmt.Errorf("load snapshot: %w", err)
	}
	checks["store"] = handler.PingerFunc(func(context.Context) error { return store.Ping() })
	repos := server.Repositories{
		Teachers: memory.NewTeacherRepository(store),
		Students: memory.NewStudentRepository(store),
		Courses:  memory.NewCourseRepository(store),
		Rooms:    memory.NewRoomRepository(store),
		Sessions: memory.NewSessionRepository(store),
		Payments: memory.NewPaymentRepository(store),
		Receipts: memory.NewReceiptRepository(store),
		Payslips: memory.NewPayslipRepository(store),
	}
	return repos, checks, closeSnapshots, nil
}
