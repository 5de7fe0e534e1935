package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"
	"github.com/snapbite/coin-ledger/pkg/storage"
	dydbstore "github.com/snapbite/coin-ledger/pkg/storage/dynamodb"
)

var store storage.Storage

func init() {
	// Load environment variables for local testing.
	godotenv.Load()

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	accountsTable := os.Getenv("DYNAMODB_ACCOUNTS_TABLE_NAME")
	ledgerTable := os.Getenv("DYNAMODB_LEDGER_TABLE_NAME")
	referralsTable := os.Getenv("DYNAMODB_REFERRALS_TABLE_NAME")
	auditTable := os.Getenv("DYNAMODB_AUDIT_TABLE_NAME")

	if accountsTable == "" || ledgerTable == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}

	store = dydbstore.New(dbClient, accountsTable, ledgerTable, referralsTable, auditTable)
}

// HandleRequest is triggered by an EventBridge Schedule. It sweeps every
// account and verifies the core ledger invariant: the balance equals the sum
// of the account's ledger entries. Drift can only mean an unrecovered partial
// failure and needs operator attention.
func HandleRequest(ctx context.Context) error {
	log.Println("Starting ledger reconciliation sweep...")

	accounts, err := store.ListAccounts(ctx)
	if err != nil {
		log.Printf("ERROR: failed to list accounts: %v", err)
		return err
	}

	drifted := 0
	for _, account := range accounts {
		entries, err := store.ListTransactionsByAccount(ctx, account.ID, 0)
		if err != nil {
			log.Printf("ERROR: failed to list ledger entries for account %s: %v", account.ID, err)
			// Continue to the next account, don't let one failure stop the whole sweep.
			continue
		}

		var sum int64
		for _, entry := range entries {
			sum += entry.Amount
		}

		if sum != account.Balance {
			drifted++
			log.Printf("DRIFT: account %s balance %d != ledger sum %d (%d entries)",
				account.ID, account.Balance, sum, len(entries))
		}
	}

	if drifted > 0 {
		return fmt.Errorf("reconciliation found %d drifted accounts", drifted)
	}

	log.Printf("Reconciliation sweep finished: %d accounts consistent.", len(accounts))
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
