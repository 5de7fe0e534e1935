package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/snapbite/coin-ledger/pkg/storage"
)

// DynamoDBAPI defines the subset of the DynamoDB client used by the Store.
// It exists so tests can substitute a mock for the real client.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Store implements the Storage interface using AWS DynamoDB.
//
// Layout:
//   - accounts table: account items keyed by id, plus "phone#<number>" guard
//     items that reserve a phone number and point back at the owning account.
//   - ledger table: entries keyed by (account_id, entry_id). Idempotency guard
//     items use entry_id = "idem#<key>" so per-account key uniqueness falls out
//     of a conditional put on the same key schema.
//   - referrals table: referrals keyed by id, plus "sent#<referrer>#<phone>"
//     guard items that dedupe repeat invitations.
//   - audit table: admin adjustment audit records keyed by id.
type Store struct {
	Client             DynamoDBAPI
	AccountsTableName  string
	LedgerTableName    string
	ReferralsTableName string
	AuditTableName     string
}

// New creates a new Store.
func New(client DynamoDBAPI, accountsTable, ledgerTable, referralsTable, auditTable string) *Store {
	return &Store{
		Client:             client,
		AccountsTableName:  accountsTable,
		LedgerTableName:    ledgerTable,
		ReferralsTableName: referralsTable,
		AuditTableName:     auditTable,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)
