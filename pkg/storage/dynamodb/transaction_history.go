package dynamodb

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/yogami9/databaseTier/pkg/models"
)

const (
	accountNumberIndex      = "account_number-timestamp-index"
	sourceAccountIndex      = "source_account-timestamp-index"
	destinationAccountIndex = "destination_account-timestamp-index"
)

// GetTransactionHistory retrieves every record where the account appears as
// the primary account, the source, or the destination, sorted ascending by
// timestamp. The logical OR across the three fields is three sparse-index
// queries merged and deduplicated by transaction_id.
func (s *Store) GetTransactionHistory(ctx context.Context, accountNumber string) ([]models.Transaction, error) {
	queries := []struct {
		index string
		field string
	}{
		{accountNumberIndex, "account_number"},
		{sourceAccountIndex, "source_account"},
		{destinationAccountIndex, "destination_account"},
	}

	seen := make(map[string]bool)
	transactions := []models.Transaction{}

	for _, q := range queries {
		input := &dynamodb.QueryInput{
			TableName:              aws.String(s.TransactionsTableName),
			IndexName:              aws.String(q.index),
			KeyConditionExpression: aws.String(q.field + " = :account"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":account": &types.AttributeValueMemberS{Value: accountNumber},
			},
			ScanIndexForward: aws.Bool(true), // Sort by timestamp in ascending order
		}

		result, err := s.Client.Query(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to query %s for transactions: %w", q.index, err)
		}

		for _, item := range result.Items {
			tx, err := itemToTransaction(item)
			if err != nil {
				// One bad record never fails the whole history.
				slog.Warn("skipping unusable transaction record", "index", q.index, "err", err)
				continue
			}
			if seen[tx.TransactionId] {
				continue
			}
			seen[tx.TransactionId] = true
			transactions = append(transactions, *tx)
		}
	}

	// Each index query comes back sorted, but the merged set does not.
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Timestamp.Before(transactions[j].Timestamp)
	})

	return transactions, nil
}

// itemToTransaction converts a stored item into a domain transaction. It
// fails when the stored transaction_type is outside the recognized set.
func itemToTransaction(item map[string]types.AttributeValue) (*models.Transaction, error) {
	var tx models.Transaction
	if err := attributevalue.UnmarshalMap(item, &tx); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transaction: %w", err)
	}
	if _, err := models.ParseTransactionType(string(tx.TransactionType)); err != nil {
		return nil, err
	}
	return &tx, nil
}
