package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/skyfare/api"
	"github.com/Domenick1991/skyfare/config"
	"github.com/Domenick1991/skyfare/internal/bootstrap"
	"github.com/Domenick1991/skyfare/internal/cache"
	"github.com/Domenick1991/skyfare/internal/kafka"
	"github.com/Domenick1991/skyfare/internal/pricing"
	"github.com/Domenick1991/skyfare/internal/repository"
	"github.com/Domenick1991/skyfare/internal/service/auth"
	"github.com/Domenick1991/skyfare/internal/service/checkout"
	"github.com/Domenick1991/skyfare/internal/service/fleet"
	"github.com/Domenick1991/skyfare/internal/service/flights"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.WithError(err).Fatal("load config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.WithError(err).Fatal("connect postgres")
	}
	defer pool.Close()

	if cfg.Database.MigrationsDir != "" {
		if err := repository.RunMigrations(ctx, pool, cfg.Database.MigrationsDir); err != nil {
			log.WithError(err).Fatal("run migrations")
		}
	}

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Checkout.FlightsCacheTTLSecond)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	userRepo := repository.NewUserRepository(pool)
	walletRepo := repository.NewWalletRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)
	fleetRepo := repository.NewFleetRepository(pool)
	ticketRepo := repository.NewTicketRepository(pool)

	rules := pricing.Rules{
		SurgeTickets: cfg.Checkout.SurgeTickets,
		SurgeWindow:  time.Duration(cfg.Checkout.SurgeWindowMinutes) * time.Minute,
		SurgePercent: cfg.Checkout.SurgePercent,
	}
	if rules.SurgeTickets == 0 {
		rules = pricing.DefaultRules()
	}

	tokenTTL := time.Duration(cfg.Auth.TokenTTLHours) * time.Hour
	authService := auth.NewAuthService(userRepo, cfg.Auth.JWTSecret, tokenTTL, cfg.Auth.StartingBalance)
	flightService := flights.NewFlightService(flightRepo, redisCache)
	fleetService := fleet.NewFleetService(fleetRepo, flightRepo)
	checkoutService := checkout.NewCheckoutService(
		ticketRepo,
		walletRepo,
		flightRepo,
		producer,
		cfg.Kafka.TicketsTopic,
		rules,
		cfg.Checkout.PurchaseRetries,
		log,
		checkout.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	router := api.NewRouter(authService, flightService, checkoutService, fleetService, int(tokenTTL.Seconds()))

	if err := bootstrap.Run(ctx, cfg, router); err != nil {
		log.WithError(err).Fatal("server error")
	}
}
