package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/christian-constantin/commandit/internal/api"
	"github.com/christian-constantin/commandit/internal/core/ports"
	"github.com/christian-constantin/commandit/internal/core/service"
	"github.com/christian-constantin/commandit/internal/infrastructure/db/memory"
	mongodb "github.com/christian-constantin/commandit/internal/infrastructure/db/mongo"
	redisdb "github.com/christian-constantin/commandit/internal/infrastructure/db/redis"
	"github.com/christian-constantin/commandit/internal/infrastructure/mail"
	"github.com/christian-constantin/commandit/internal/pkg/config"
	"github.com/christian-constantin/commandit/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Repositories (swappable backend) ---
	var (
		userRepo     ports.UserRepository
		orderRepo    ports.OrderRepository
		settingsRepo ports.SettingsRepository
		mongoDB      *mongo.Database
	)
	switch cfg.Store {
	case "mongo":
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to mongodb")
		}
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}()
		mongoDB = db
		userRepo = mongodb.NewUserRepository(db)
		orderRepo = mongodb.NewOrderRepository(db)
		settingsRepo = mongodb.NewSettingsRepository(db, cfg.DefaultSettings())
		log.Info().Str("database", cfg.Mongo.Database).Msg("using mongodb store")
	default:
		userRepo = memory.NewUserRepository(memory.SeedUsers())
		orderRepo = memory.NewOrderRepository(memory.SeedOrders())
		settingsRepo = memory.NewSettingsRepository(cfg.DefaultSettings())
		log.Warn().Msg("using in-memory store: all data resets on restart")
	}

	// --- Login limiter (optional, redis-backed) ---
	var (
		rdb     *goredis.Client
		limiter service.LoginLimiter
	)
	if cfg.Redis.Enabled {
		var err error
		rdb, err = redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer rdb.Close()
		limiter = redisdb.NewLoginLimiter(rdb, cfg.MaxLoginAttempts)
	}

	// --- Mail transport ---
	mailer, err := mail.NewSMTPMailer(mail.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Secure:   cfg.SMTP.Secure,
		User:     cfg.SMTP.User,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build smtp mailer")
	}

	// --- Services ---
	sessionTTL := time.Duration(cfg.SessionDurationHours) * time.Hour
	authService := service.NewAuthService(
		userRepo, limiter, cfg.JWTSecret, sessionTTL,
		cfg.EmailDomain, cfg.AdminEmails, logger.With("auth"),
	)
	orderService := service.NewOrderService(
		orderRepo, mailer, cfg.CompanyName, cfg.EmailDomain,
		cfg.SMTP.OperationsEmails, 0, logger.With("orders"),
	)
	userService := service.NewUserService(userRepo, cfg.EmailDomain, logger.With("users"))
	settingsService := service.NewSettingsService(settingsRepo, mailer, logger.With("settings"))

	e := api.NewRouter(api.Dependencies{
		Auth:     authService,
		Orders:   orderService,
		Users:    userService,
		Settings: settingsService,
		Mongo:    mongoDB,
		Redis:    rdb,
		Log:      log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("store", cfg.Store).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
