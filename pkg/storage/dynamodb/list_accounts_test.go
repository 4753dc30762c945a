package dynamodb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/yogami9/databaseTier/pkg/models"
	"github.com/yogami9/databaseTier/pkg/storage/dynamodb/mocks"
)

func TestListAccounts(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		a, _ := attributevalue.MarshalMap(models.Account{AccountNumber: "ACC1", Balance: 100})
		b, _ := attributevalue.MarshalMap(models.Account{AccountNumber: "ACC2", Balance: 0})
		items := []map[string]types.AttributeValue{a, b}
		mockClient.On("Scan", mock.Anything, mock.Anything).Return(&dynamodb.ScanOutput{Items: items}, nil)

		store := New(mockClient, nil, "accounts", "transactions")
		accounts, err := store.ListAccounts(context.Background())

		assert.NoError(t, err)
		assert.Len(t, accounts, 2)
		assert.Equal(t, "ACC1", accounts[0].AccountNumber)
		assert.Equal(t, "ACC2", accounts[1].AccountNumber)
		mockClient.AssertExpectations(t)
	})

	t.Run("Empty", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("Scan", mock.Anything, mock.Anything).Return(&dynamodb.ScanOutput{}, nil)

		store := New(mockClient, nil, "accounts", "transactions")
		accounts, err := store.ListAccounts(context.Background())

		assert.NoError(t, err)
		assert.Empty(t, accounts)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("Scan", mock.Anything, mock.Anything).Return(nil, errors.New("some other storage error"))

		store := New(mockClient, nil, "accounts", "transactions")
		_, err := store.ListAccounts(context.Background())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to scan accounts table")
	})
}
