package config

import (
	"errors"
	"fmt"
	"os"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey       = "API_PORT"
	dbConnEnvKey        = "DB_CONNECTION_URL"
	webhookSecretEnvKey = "GOLDSKY_WEBHOOK_SECRET"
	kafkaBrokerEnvKey   = "KAFKA_BROKER"
	kafkaTopicEnvKey    = "KAFKA_TOPIC"
)

type App struct {
	Port            string
	DBConnectionURL string
	// WebhookSecret may be empty at startup. A missing secret is surfaced
	// per request by the secret verifier so every delivery is rejected
	// until the operator fixes the deployment.
	WebhookSecret string
	KafkaBroker   string
	KafkaTopic    string
}

func NewApp() (App, error) {

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	return App{
		Port:            port,
		DBConnectionURL: dbConn,
		WebhookSecret:   os.Getenv(webhookSecretEnvKey),
		KafkaBroker:     os.Getenv(kafkaBrokerEnvKey),
		KafkaTopic:      os.Getenv(kafkaTopicEnvKey),
	}, nil
}
