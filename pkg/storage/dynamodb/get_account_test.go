package dynamodb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/yogami9/databaseTier/pkg/models"
	"github.com/yogami9/databaseTier/pkg/storage"
	"github.com/yogami9/databaseTier/pkg/storage/dynamodb/mocks"
)

func TestGetAccount(t *testing.T) {
	acct := &models.Account{AccountNumber: "ACC1", AccountHolderName: "Alice", Balance: 100}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		item, _ := attributevalue.MarshalMap(acct)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: item}, nil)

		store := New(mockClient, nil, "accounts", "transactions")
		retrieved, err := store.GetAccount(context.Background(), "ACC1")

		assert.NoError(t, err)
		assert.Equal(t, "ACC1", retrieved.AccountNumber)
		assert.Equal(t, 100.0, retrieved.Balance)
		mockClient.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: nil}, nil)

		store := New(mockClient, nil, "accounts", "transactions")
		_, err := store.GetAccount(context.Background(), "nope")

		assert.ErrorIs(t, err, storage.ErrAccountNotFound)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(nil, errors.New("some other storage error"))

		store := New(mockClient, nil, "accounts", "transactions")
		_, err := store.GetAccount(context.Background(), "ACC1")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get account from DynamoDB")
	})
}
