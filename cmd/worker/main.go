package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Domenick1991/skyfare/config"
	"github.com/Domenick1991/skyfare/internal/email"
	"github.com/Domenick1991/skyfare/internal/kafka"
	"github.com/sirupsen/logrus"
)

// The worker consumes ticket events and delivers receipt emails, so the
// booking path never blocks on notification delivery.
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

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic, log)
	defer consumer.Close()

	sender := email.NewSender(log)

	if err := consumer.Consume(ctx, func(ctx context.Context, event kafka.TicketEvent) error {
		return sender.Send(ctx, event)
	}); err != nil && ctx.Err() == nil {
		log.WithError(err).Error("consumer stopped")
	}
}
