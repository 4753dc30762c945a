package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/yogami9/databaseTier/pkg/mapping"
	"github.com/yogami9/databaseTier/pkg/models"
	"github.com/yogami9/databaseTier/pkg/storage"
)

// RecordTransaction inserts a new transaction record. The record is
// append-only: the only dedup check is the unique transaction_id key, and a
// server-assigned timestamp is set at insertion time. The caller's
// resulting_balance is stored as supplied, never validated against the
// account.
func (s *Store) RecordTransaction(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	if tx.TransactionId == "" {
		tx.TransactionId = uuid.New().String()
	}
	tx.Timestamp = time.Now()

	slog.Log(ctx, slog.LevelDebug, "recording transaction",
		"transaction_id", tx.TransactionId, "account_number", tx.AccountNumber, "type", tx.TransactionType)

	item, err := attributevalue.MarshalMap(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transaction: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.TransactionsTableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(transaction_id)"),
	}

	_, err = s.Client.PutItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, fmt.Errorf("transaction %s: %w", tx.TransactionId, storage.ErrDuplicateTransaction)
		}
		return nil, fmt.Errorf("failed to record transaction in DynamoDB: %w", err)
	}

	// The record is committed; publishing the event is best-effort.
	if s.Publisher != nil {
		if err := s.Publisher.PublishTransaction(ctx, mapping.ToApiTransaction(tx)); err != nil {
			slog.Error("transaction recorded but event not published",
				"transaction_id", tx.TransactionId, "err", err)
		}
	}

	return tx, nil
}
