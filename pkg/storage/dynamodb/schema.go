package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const tableWaitTimeout = 2 * time.Minute

// EnsureSchema creates the accounts and transactions tables and their
// secondary indexes if they do not exist yet. It is idempotent and safe to
// invoke on every startup; any failure here should abort startup, since the
// service must not serve traffic against an unindexed store.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if err := s.ensureTable(ctx, s.accountsTableInput()); err != nil {
		return fmt.Errorf("accounts table: %w", err)
	}
	if err := s.ensureTable(ctx, s.transactionsTableInput()); err != nil {
		return fmt.Errorf("transactions table: %w", err)
	}
	return nil
}

func (s *Store) ensureTable(ctx context.Context, input *dynamodb.CreateTableInput) error {
	_, err := s.Client.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: input.TableName})
	if err == nil {
		return nil
	}

	var notFound *types.ResourceNotFoundException
	if !errors.As(err, &notFound) {
		return fmt.Errorf("failed to describe table: %w", err)
	}

	slog.Info("creating table", "table", aws.ToString(input.TableName))
	if _, err := s.Client.CreateTable(ctx, input); err != nil {
		return fmt.Errorf("failed to create table: %w", err)
	}

	waiter := dynamodb.NewTableExistsWaiter(s.Client)
	if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: input.TableName}, tableWaitTimeout); err != nil {
		return fmt.Errorf("table did not become active: %w", err)
	}

	return nil
}

// accountsTableInput describes the accounts table: account_number is the
// partition key, which doubles as the unique index on account numbers.
func (s *Store) accountsTableInput() *dynamodb.CreateTableInput {
	return &dynamodb.CreateTableInput{
		TableName:   aws.String(s.AccountsTableName),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("account_number"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("account_number"), KeyType: types.KeyTypeHash},
		},
	}
}

// transactionsTableInput describes the transactions table: transaction_id is
// the partition key (the unique index on transaction ids), and three sparse
// GSIs with a timestamp range key back the account-history query.
func (s *Store) transactionsTableInput() *dynamodb.CreateTableInput {
	timestampRange := []types.KeySchemaElement{
		{AttributeName: aws.String("timestamp"), KeyType: types.KeyTypeRange},
	}

	return &dynamodb.CreateTableInput{
		TableName:   aws.String(s.TransactionsTableName),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("transaction_id"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("account_number"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("source_account"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("destination_account"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("timestamp"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("transaction_id"), KeyType: types.KeyTypeHash},
		},
		GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
			{
				IndexName: aws.String(accountNumberIndex),
				KeySchema: append([]types.KeySchemaElement{
					{AttributeName: aws.String("account_number"), KeyType: types.KeyTypeHash},
				}, timestampRange...),
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			},
			{
				IndexName: aws.String(sourceAccountIndex),
				KeySchema: append([]types.KeySchemaElement{
					{AttributeName: aws.String("source_account"), KeyType: types.KeyTypeHash},
				}, timestampRange...),
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			},
			{
				IndexName: aws.String(destinationAccountIndex),
				KeySchema: append([]types.KeySchemaElement{
					{AttributeName: aws.String("destination_account"), KeyType: types.KeyTypeHash},
				}, timestampRange...),
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			},
		},
	}
}
