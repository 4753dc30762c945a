package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/yogami9/databaseTier/pkg/models"
	"github.com/yogami9/databaseTier/pkg/storage"
)

// GetAccount retrieves an account from DynamoDB by its account number.
func (s *Store) GetAccount(ctx context.Context, accountNumber string) (*models.Account, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"account_number": accountNumber})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal account number: %w", err)
	}

	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.AccountsTableName),
		Key:       key,
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get account from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("account %s: %w", accountNumber, storage.ErrAccountNotFound)
	}

	var acct models.Account
	if err := attributevalue.UnmarshalMap(result.Item, &acct); err != nil {
		return nil, fmt.Errorf("failed to unmarshal account: %w", err)
	}

	return &acct, nil
}
