package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/yogami9/databaseTier/pkg/events"
	"github.com/yogami9/databaseTier/pkg/storage"
)

// DynamoDBAPI is the subset of the DynamoDB client the store depends on.
// Narrowing the dependency keeps the store mockable in tests.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
	CreateTable(ctx context.Context, params *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
}

// Store implements the Storage interface using AWS DynamoDB. A single Store
// (and therefore a single client) is shared by all concurrent requests; it
// holds no mutable state of its own.
type Store struct {
	Client                DynamoDBAPI
	Publisher             events.Publisher
	AccountsTableName     string
	TransactionsTableName string
}

// New creates a new Store. Publisher may be nil when event publishing is not
// configured.
func New(client DynamoDBAPI, publisher events.Publisher, accountsTable, transactionsTable string) *Store {
	return &Store{
		Client:                client,
		Publisher:             publisher,
		AccountsTableName:     accountsTable,
		TransactionsTableName: transactionsTable,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)
