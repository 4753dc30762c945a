package dynamodb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/yogami9/databaseTier/pkg/storage/dynamodb/mocks"
)

func TestEnsureSchema(t *testing.T) {
	activeTable := &dynamodb.DescribeTableOutput{
		Table: &types.TableDescription{TableStatus: types.TableStatusActive},
	}

	t.Run("Tables Already Exist", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("DescribeTable", mock.Anything, mock.Anything).Return(activeTable, nil).Times(2)

		store := New(mockClient, nil, "accounts", "transactions")
		err := store.EnsureSchema(context.Background())

		assert.NoError(t, err)
		mockClient.AssertNotCalled(t, "CreateTable", mock.Anything, mock.Anything)
		mockClient.AssertExpectations(t)
	})

	t.Run("Creates Missing Tables", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		// Existence checks run without option functions, waiter polls with one.
		mockClient.On("DescribeTable", mock.Anything, mock.Anything).
			Return(nil, &types.ResourceNotFoundException{}).Times(2)
		mockClient.On("CreateTable", mock.Anything, mock.Anything).
			Return(&dynamodb.CreateTableOutput{}, nil).Times(2)
		mockClient.On("DescribeTable", mock.Anything, mock.Anything, mock.Anything).
			Return(activeTable, nil)

		store := New(mockClient, nil, "accounts", "transactions")
		err := store.EnsureSchema(context.Background())

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Describe Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("DescribeTable", mock.Anything, mock.Anything).
			Return(nil, errors.New("some other storage error"))

		store := New(mockClient, nil, "accounts", "transactions")
		err := store.EnsureSchema(context.Background())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to describe table")
		mockClient.AssertNotCalled(t, "CreateTable", mock.Anything, mock.Anything)
	})

	t.Run("Create Error", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("DescribeTable", mock.Anything, mock.Anything).
			Return(nil, &types.ResourceNotFoundException{})
		mockClient.On("CreateTable", mock.Anything, mock.Anything).
			Return(nil, errors.New("some other storage error"))

		store := New(mockClient, nil, "accounts", "transactions")
		err := store.EnsureSchema(context.Background())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create table")
	})
}
