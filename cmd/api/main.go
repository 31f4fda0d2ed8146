package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sefazor/ttravel-backend/internal/config"
	"github.com/sefazor/ttravel-backend/internal/models"
	"github.com/sefazor/ttravel-backend/internal/repository"
	"github.com/sefazor/ttravel-backend/internal/server"
	"github.com/sefazor/ttravel-backend/internal/service"
	"github.com/sefazor/ttravel-backend/internal/session"
	"github.com/sefazor/ttravel-backend/pkg/database"
	"github.com/sefazor/ttravel-backend/pkg/email"
	"github.com/sefazor/ttravel-backend/pkg/events"
	"github.com/sefazor/ttravel-backend/pkg/logger"
	"github.com/sefazor/ttravel-backend/pkg/password"
	"github.com/sefazor/ttravel-backend/pkg/qrcode"
	"github.com/sefazor/ttravel-backend/pkg/storage"
	"github.com/sefazor/ttravel-backend/pkg/utils"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("could not read .env: %v", err)
	}

	cfg := config.LoadConfig()

	zlog, err := logger.New(cfg.Log, cfg.IsProduction())
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	if err := run(cfg, zlog); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, zlog *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Store
	store, closeStore, err := openStore(cfg, zlog)
	if err != nil {
		return err
	}
	defer closeStore()

	hasher, err := password.New(cfg.Admin.PasswordMode)
	if err != nil {
		return err
	}

	if cfg.SeedDefaults {
		stored, err := hasher.Hash(cfg.Admin.Password)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}
		if err := repository.Seed(ctx, store, models.User{Username: cfg.Admin.Username, Password: stored}); err != nil {
			return err
		}
		zlog.Info("seed data ensured", zap.String("admin", cfg.Admin.Username))
	}

	// Sessions
	sessions, closeSessions, err := openSessions(ctx, cfg, zlog)
	if err != nil {
		return err
	}
	defer closeSessions()

	// Email
	var mailer email.Mailer = email.NoopMailer{}
	if cfg.Email.ResendAPIKey != "" && cfg.Email.FromAddress != "" {
		mailer = email.NewResendMailer(cfg.Email.ResendAPIKey, cfg.Email.FromAddress, cfg.Email.FromName, zlog)
		zlog.Info("email delivery enabled", zap.String("from", cfg.Email.FromAddress))
	}

	// Events
	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.NATSURL != "" {
		nats, err := events.NewNATSPublisher(cfg.NATSURL, zlog)
		if err != nil {
			return err
		}
		publisher = nats
		zlog.Info("event publishing enabled", zap.String("url", cfg.NATSURL))
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			zlog.Warn("failed to close event publisher", zap.Error(err))
		}
	}()

	// Object storage
	var objects storage.ObjectStorage
	if cfg.R2.Enabled() {
		bucket, err := storage.NewBucketStorage(ctx, cfg.R2)
		if err != nil {
			return err
		}
		objects = bucket
		zlog.Info("gallery offload enabled", zap.String("bucket", cfg.R2.Bucket))
	}

	validator := utils.NewValidator()

	// Services
	svc := server.Services{
		Auth:        service.NewAuthService(store.Users, sessions, hasher, validator, zlog),
		User:        service.NewUserService(store.Users, hasher, validator, zlog),
		Destination: service.NewDestinationService(store.Destinations, validator, zlog),
		Package:     service.NewPackageService(store.Packages, qrcode.NewQRService(), validator, zlog),
		Content:     service.NewContentService(store.Content, validator, zlog),
		Contact:     service.NewContactService(store.Contacts, store.Content, mailer, publisher, validator, zlog),
		Newsletter:  service.NewNewsletterService(store.Newsletter, store.Content, mailer, publisher, validator, zlog),
		Gallery:     service.NewGalleryService(store.Gallery, objects, publisher, validator, zlog),
		Stats:       service.NewStatsService(store.Contacts, store.Newsletter),
	}

	app := server.New(cfg, svc, zlog)

	errCh := make(chan error, 1)
	go func() {
		zlog.Info("listening", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zlog.Info("shutting down")
	return app.ShutdownWithTimeout(shutdownTimeout)
}

func openStore(cfg *config.Config, zlog *zap.Logger) (*repository.Store, func(), error) {
	if cfg.Database.Driver == "memory" {
		zlog.Warn("using in-memory store; data is lost on restart")
		return repository.NewMemoryStore(), func() {}, nil
	}

	db, err := database.Open(cfg.Database, zlog)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	return repository.NewGormStore(db), func() { _ = sqlDB.Close() }, nil
}

func openSessions(ctx context.Context, cfg *config.Config, zlog *zap.Logger) (session.Store, func(), error) {
	if cfg.Session.Driver != "redis" {
		return session.NewMemoryStore(cfg.Session.TTL), func() {}, nil
	}

	client, err := session.OpenRedis(ctx, cfg.Session.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	zlog.Info("sessions stored in redis")
	return session.NewRedisStore(client, cfg.Session.TTL), closeRedis(client, zlog), nil
}

func closeRedis(client *redis.Client, zlog *zap.Logger) func() {
	return func() {
		if err := client.Close(); err != nil {
			zlog.Warn("failed to close redis client", zap.Error(err))
		}
	}
}
