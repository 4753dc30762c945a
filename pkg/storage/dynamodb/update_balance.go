package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/yogami9/databaseTier/pkg/storage"
)

// UpdateBalance sets the stored balance of an account to newBalance. It
// distinguishes ErrAccountNotFound from ErrBalanceUnchanged instead of
// collapsing both into one failure result.
func (s *Store) UpdateBalance(ctx context.Context, accountNumber string, newBalance float64) error {
	balanceAV, err := attributevalue.Marshal(newBalance)
	if err != nil {
		return fmt.Errorf("failed to marshal balance: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.AccountsTableName),
		Key: map[string]types.AttributeValue{
			"account_number": &types.AttributeValueMemberS{Value: accountNumber},
		},
		UpdateExpression:    aws.String("SET balance = :new"),
		ConditionExpression: aws.String("attribute_exists(account_number) AND balance <> :new"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":new": balanceAV,
		},
	}

	_, err = s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			// The condition rejects both a missing account and a no-op
			// update; a follow-up read tells the two apart.
			if _, getErr := s.GetAccount(ctx, accountNumber); getErr != nil {
				if errors.Is(getErr, storage.ErrAccountNotFound) {
					return fmt.Errorf("account %s: %w", accountNumber, storage.ErrAccountNotFound)
				}
				return fmt.Errorf("failed to disambiguate rejected balance update: %w", getErr)
			}
			return fmt.Errorf("account %s: %w", accountNumber, storage.ErrBalanceUnchanged)
		}
		return fmt.Errorf("failed to update balance in DynamoDB: %w", err)
	}

	return nil
}
