package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/snapbite/coin-ledger/pkg/models"
	"github.com/snapbite/coin-ledger/pkg/storage"
	dydbstore "github.com/snapbite/coin-ledger/pkg/storage/dynamodb"
	"github.com/joho/godotenv"
)

var store storage.AuditStore

func init() {
	// Load environment variables from .env file (useful for local testing).
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	accountsTable := os.Getenv("DYNAMODB_ACCOUNTS_TABLE_NAME")
	ledgerTable := os.Getenv("DYNAMODB_LEDGER_TABLE_NAME")
	referralsTable := os.Getenv("DYNAMODB_REFERRALS_TABLE_NAME")
	auditTable := os.Getenv("DYNAMODB_AUDIT_TABLE_NAME")

	if auditTable == "" {
		log.Fatal("DYNAMODB_AUDIT_TABLE_NAME environment variable not set")
	}

	store = dydbstore.New(dbClient, accountsTable, ledgerTable, referralsTable, auditTable)
}

// HandleRequest persists audit records published by the ledger engine.
// Audit record ids make the put idempotent, so SQS redelivery is harmless.
func HandleRequest(ctx context.Context, sqsEvent events.SQSEvent) error {
	for _, message := range sqsEvent.Records {
		log.Printf("Processing message %s", message.MessageId)

		var record models.AuditRecord
		if err := json.Unmarshal([]byte(message.Body), &record); err != nil {
			log.Printf("ERROR: failed to unmarshal audit record from SQS message %s: %v", message.MessageId, err)
			// Returning an error will cause SQS to retry the message, which is appropriate here.
			return err
		}

		if err := store.PutAuditRecord(ctx, &record); err != nil {
			log.Printf("ERROR: failed to persist audit record %s: %v", record.ID, err)
			return err
		}

		log.Printf("Stored audit record %s for user %s", record.ID, record.UserID)
	}

	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
