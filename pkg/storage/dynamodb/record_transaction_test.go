package dynamodb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	eventmocks "github.com/yogami9/databaseTier/pkg/events/mocks"
	"github.com/yogami9/databaseTier/pkg/models"
	"github.com/yogami9/databaseTier/pkg/storage"
	"github.com/yogami9/databaseTier/pkg/storage/dynamodb/mocks"
)

func TestRecordTransaction(t *testing.T) {
	newTransaction := func() *models.Transaction {
		return &models.Transaction{
			AccountNumber:    "ACC123",
			TransactionType:  models.DEPOSIT,
			Amount:           50.0,
			ResultingBalance: 150.0,
			Description:      "Test deposit",
		}
	}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(&dynamodb.PutItemOutput{}, nil)

		store := New(mockClient, nil, "accounts", "transactions")
		recorded, err := store.RecordTransaction(context.Background(), newTransaction())

		assert.NoError(t, err)
		assert.NotEmpty(t, recorded.TransactionId)
		assert.False(t, recorded.Timestamp.IsZero())
		mockClient.AssertExpectations(t)
	})

	t.Run("Keeps Supplied Id", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(&dynamodb.PutItemOutput{}, nil)

		tx := newTransaction()
		tx.TransactionId = "TXN-1"

		store := New(mockClient, nil, "accounts", "transactions")
		recorded, err := store.RecordTransaction(context.Background(), tx)

		assert.NoError(t, err)
		assert.Equal(t, "TXN-1", recorded.TransactionId)
	})

	t.Run("Publishes Event", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockPublisher := new(eventmocks.Publisher)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(&dynamodb.PutItemOutput{}, nil)
		mockPublisher.On("PublishTransaction", mock.Anything, mock.Anything).Return(nil)

		store := New(mockClient, mockPublisher, "accounts", "transactions")
		_, err := store.RecordTransaction(context.Background(), newTransaction())

		assert.NoError(t, err)
		mockPublisher.AssertExpectations(t)
	})

	t.Run("Publish Failure Is Not Surfaced", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockPublisher := new(eventmocks.Publisher)
		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(&dynamodb.PutItemOutput{}, nil)
		mockPublisher.On("PublishTransaction", mock.Anything, mock.Anything).
			Return(errors.New("queue unavailable"))

		store := New(mockClient, mockPublisher, "accounts", "transactions")
		_, err := store.RecordTransaction(context.Background(), newTransaction())

		assert.NoError(t, err)
		mockPublisher.AssertExpectations(t)
	})

	t.Run("Duplicate", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.Anything).
			Return(nil, &types.ConditionalCheckFailedException{})

		tx := newTransaction()
		tx.TransactionId = "TXN-1"

		store := New(mockClient, nil, "accounts", "transactions")
		_, err := store.RecordTransaction(context.Background(), tx)

		assert.ErrorIs(t, err, storage.ErrDuplicateTransaction)
	})

	t.Run("Storage Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("PutItem", mock.Anything, mock.Anything).
			Return(nil, errors.New("some other storage error"))

		store := New(mockClient, nil, "accounts", "transactions")
		_, err := store.RecordTransaction(context.Background(), newTransaction())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to record transaction")
	})
}
