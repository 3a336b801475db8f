package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"walletlink/internal/config"
	"walletlink/internal/messaging"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	amqpCfg := config.LoadAMQPConfig()
	smtpCfg := config.LoadSMTPConfig()

	if amqpCfg.URL == "" {
		logger.Error("AMQP_URL is required for the mail worker")
		os.Exit(1)
	}

	client, err := messaging.Dial(amqpCfg.URL, amqpCfg.ExchangeName, amqpCfg.MailQueue)
	if err != nil {
		logger.Error("Failed to connect to AMQP", "error", err)
		os.Exit(1)
	}
	defer client.Close()

	var sender messaging.Sender
	if smtpCfg.Host != "" {
		sender = messaging.NewSMTPSender(smtpCfg.Host, smtpCfg.Port, smtpCfg.Username, smtpCfg.Password, smtpCfg.From)
		logger.Info("Delivering mail via SMTP", "host", smtpCfg.Host, "port", smtpCfg.Port)
	} else {
		sender = messaging.NewLogSender(logger)
		logger.Warn("SMTP_HOST not set, mail will only be logged")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting mail worker", "queue", amqpCfg.MailQueue)
	if err := client.ConsumeMail(ctx, sender.Send); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Mail consumption failed", "error", err)
		os.Exit(1)
	}

	logger.Info("Mail worker stopped")
}
