package events

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/yogami9/databaseTier/pkg/api"
	"github.com/yogami9/databaseTier/pkg/events/mocks"
)

func TestSQSPublisher(t *testing.T) {
	tx := &api.Transaction{
		TransactionId:   "TXN-1",
		AccountNumber:   "ACC123",
		TransactionType: "DEPOSIT",
		Amount:          50.0,
	}

	t.Run("Success", func(t *testing.T) {
		mockSQS := new(mocks.SQSAPI)
		mockSQS.On("SendMessage", mock.Anything, mock.MatchedBy(func(input *sqs.SendMessageInput) bool {
			if aws.ToString(input.QueueUrl) != "https://sqs.test/queue" {
				return false
			}
			return strings.Contains(aws.ToString(input.MessageBody), `"transactionId":"TXN-1"`)
		})).Return(&sqs.SendMessageOutput{}, nil)

		publisher := NewSQSPublisher(mockSQS, "https://sqs.test/queue")
		err := publisher.PublishTransaction(context.Background(), tx)

		assert.NoError(t, err)
		mockSQS.AssertExpectations(t)
	})

	t.Run("Send Error", func(t *testing.T) {
		mockSQS := new(mocks.SQSAPI)
		mockSQS.On("SendMessage", mock.Anything, mock.Anything).
			Return(nil, errors.New("queue unavailable"))

		publisher := NewSQSPublisher(mockSQS, "https://sqs.test/queue")
		err := publisher.PublishTransaction(context.Background(), tx)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to send message to SQS")
	})
}
