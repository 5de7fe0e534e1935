package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/snapbite/coin-ledger/pkg/audit"
	"github.com/snapbite/coin-ledger/pkg/config"
	"github.com/snapbite/coin-ledger/pkg/handlers"
	"github.com/snapbite/coin-ledger/pkg/ledger"
	"github.com/snapbite/coin-ledger/pkg/middleware"
	dydbstore "github.com/snapbite/coin-ledger/pkg/storage/dynamodb"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("unable to load configuration, %v", err)
	}

	// AWS Session
	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(awsCfg)
	store := dydbstore.New(dbClient, cfg.AccountsTable, cfg.LedgerTable, cfg.ReferralsTable, cfg.AuditTable)

	// Audit sink is optional; without a queue the balance path still works.
	var auditSink audit.Publisher
	if cfg.AuditQueueURL != "" {
		auditSink = audit.NewSQSSink(sqs.NewFromConfig(awsCfg), cfg.AuditQueueURL)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	engine := ledger.New(store, auditSink, cfg.Rewards, logger)

	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(middleware.NewStructuredLogger(logger))
	router.Mount("/", handlers.NewRouter(store, engine))

	log.Printf("Starting server on port %s", cfg.HTTPPort)

	if err := http.ListenAndServe(":"+cfg.HTTPPort, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
