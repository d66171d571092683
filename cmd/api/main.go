package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/service-marketplace/internal/audit"
	"github.com/BruksfildServices01/service-marketplace/internal/auth"
	"github.com/BruksfildServices01/service-marketplace/internal/config"
	dbpkg "github.com/BruksfildServices01/service-marketplace/internal/db"
	"github.com/BruksfildServices01/service-marketplace/internal/domain/catalog"
	"github.com/BruksfildServices01/service-marketplace/internal/infra/memory"
	"github.com/BruksfildServices01/service-marketplace/internal/infra/repository"
	"github.com/BruksfildServices01/service-marketplace/internal/routes"
	"github.com/BruksfildServices01/service-marketplace/internal/storage"
	ucAccount "github.com/BruksfildServices01/service-marketplace/internal/usecase/account"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	store, auditStore := openStore(cfg, logger)

	dispatcher := audit.NewDispatcher(audit.New(auditStore), logger)
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)

	deps := routes.Deps{
		Config: cfg,
		Store:  store,
		Tokens: tokens,
		Audit:  dispatcher,
		Logger: logger,
	}

	if cfg.Redis.Enabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unreachable, rate limiting fails open", "addr", cfg.Redis.Addr, "error", err)
		}
		cancel()
		deps.Limiter = rdb
	}

	if cfg.S3.Enabled() {
		deps.Images = storage.NewS3ImageStore(cfg.S3)
	} else {
		logger.Info("S3 not configured, image uploads disabled")
	}

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	created, err := ucAccount.NewEnsureAdmin(store).Execute(seedCtx, cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Password)
	cancelSeed()
	if err != nil {
		logger.Error("failed to seed admin", "error", err)
		os.Exit(1)
	}
	if created {
		logger.Info("admin user created", "email", cfg.Admin.Email)
	}

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server running", "addr", cfg.Addr(), "storage", cfg.StorageDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", "error", err)
	}
	if err := dispatcher.Close(ctx); err != nil {
		logger.Warn("audit queue not drained", "error", err)
	}
}

func openStore(cfg *config.Config, logger *slog.Logger) (routes.Store, audit.Store) {
	if cfg.StorageDriver == "memory" {
		mem := memory.NewStore()
		mem.SeedMasterServices(catalog.DefaultMasterServices()...)
		logger.Warn("using in-memory storage, data is lost on restart")
		return mem, mem
	}

	if cfg.MigrateOnStart {
		if err := dbpkg.Migrate(cfg.DBUrl); err != nil {
			logger.Error("failed to migrate", "error", err)
			os.Exit(1)
		}
	}

	gdb, err := dbpkg.NewDB(cfg)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	repo := repository.NewMarketplaceGormRepository(gdb, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := repo.SeedMasterServices(ctx, catalog.DefaultMasterServices()...); err != nil {
		logger.Error("failed to seed master services", "error", err)
		os.Exit(1)
	}

	return repo, repo
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
