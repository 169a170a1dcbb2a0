package cmd

import (
	"fmt"
	"ledgerhook/internal/config"
	"ledgerhook/internal/core"
	"ledgerhook/internal/db"
	"ledgerhook/internal/events"
	eventskafka "ledgerhook/internal/events/kafka"
	"ledgerhook/internal/http/handler"
	"ledgerhook/internal/http/handler/middleware"
	"ledgerhook/internal/http/payload"
	"ledgerhook/internal/http/server"
	"ledgerhook/internal/repository"
	"ledgerhook/pkg/log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("ledgerhook", zapcore.InfoLevel)

	// optional .env for local runs
	_ = godotenv.Load()

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	if config.WebhookSecret == "" {
		logger.Warnw("webhook secret not configured, every delivery will be rejected until it is set")
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// repository
	repo := repository.NewLedgerRepository(dbConn)

	if err = repo.MigrateTables(); err != nil {
		logger.Errorw("failed to migrate ledger tables", "error", err)
		return err
	}

	// secret verifier
	verifier := core.NewSecretVerifier(config.WebhookSecret)

	// event publisher
	var publisher core.EventPublisher = events.NopPublisher{}
	if config.KafkaBroker != "" {
		kafkaPublisher := eventskafka.NewPublisher(config.KafkaBroker, config.KafkaTopic)
		defer func() {
			if err := kafkaPublisher.Close(); err != nil {
				logger.Errorw("failed to close kafka publisher", "error", err)
			}
		}()
		publisher = kafkaPublisher
	}

	// recorder
	recorder := core.NewRecorder(
		logger,
		repo,
		verifier,
		publisher)

	// handler
	webhookHlr := handler.NewWebhookHandler(
		logger,
		payload.Decoder{},
		recorder)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.IngestSubscription, webhookHlr.HandleIngestSubscription)
	mux.HandleFunc(handler.IngestRedemption, webhookHlr.HandleIngestRedemption)
	mux.HandleFunc(handler.GetSubscriptions, webhookHlr.HandleGetSubscriptions)
	mux.HandleFunc(handler.GetRedemptions, webhookHlr.HandleGetRedemptions)
	mux.HandleFunc(handler.GetSubscriptionByTx, webhookHlr.HandleGetSubscriptionByTxHash)
	mux.HandleFunc(handler.GetRedemptionByTx, webhookHlr.HandleGetRedemptionByTxHash)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	runErr := run(srv)

	if err := repo.Close(); err != nil {
		logger.Errorw("failed to close store connection", "error", err)
	}

	return runErr
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
