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
	"github.com/yogami9/databaseTier/pkg/models"
	"github.com/yogami9/databaseTier/pkg/storage"
)

// CreateAccount inserts a new account record with a server-assigned creation
// date. The unique index on account_number is the partition key, so the
// conditional put is the whole uniqueness check.
func (s *Store) CreateAccount(ctx context.Context, acct *models.Account) (*models.Account, error) {
	acct.CreationDate = time.Now()

	item, err := attributevalue.MarshalMap(acct)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal account: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.AccountsTableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(account_number)"), // Prevent overwriting existing accounts.
	}

	_, err = s.Client.PutItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, fmt.Errorf("account %s: %w", acct.AccountNumber, storage.ErrAccountExists)
		}
		return nil, fmt.Errorf("failed to create account in DynamoDB: %w", err)
	}

	// The account is committed at this point. Recording the initial deposit
	// is a second, independent write: its failure is logged, not surfaced.
	if acct.Balance > 0 {
		deposit := &models.Transaction{
			TransactionId:      uuid.New().String(),
			AccountNumber:      acct.AccountNumber,
			TransactionType:    models.DEPOSIT,
			Amount:             acct.Balance,
			ResultingBalance:   acct.Balance,
			Description:        "Initial deposit",
			DestinationAccount: acct.AccountNumber,
		}
		if _, err := s.RecordTransaction(ctx, deposit); err != nil {
			slog.Error("account created but initial deposit not recorded",
				"account_number", acct.AccountNumber, "err", err)
		}
	}

	return acct, nil
}
