package mapping

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/yogami9/databaseTier/pkg/api"
	"github.com/yogami9/databaseTier/pkg/models"
)

func TestAccountMapping(t *testing.T) {
	created := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("ToApiAccount", func(t *testing.T) {
		domain := &models.Account{
			AccountNumber:     "ACC123",
			AccountHolderName: "Jane Doe",
			Balance:           100.0,
			CreationDate:      created,
		}

		got := ToApiAccount(domain)

		assert.Equal(t, "ACC123", got.AccountNumber)
		assert.Equal(t, "Jane Doe", got.AccountHolderName)
		assert.Equal(t, 100.0, got.Balance)
		assert.Equal(t, created, got.CreationDate)
	})

	t.Run("ToDomainNewAccount", func(t *testing.T) {
		got := ToDomainNewAccount(&api.NewAccount{
			AccountNumber:     "ACC123",
			AccountHolderName: "Jane Doe",
			Balance:           100.0,
		})

		assert.Equal(t, "ACC123", got.AccountNumber)
		assert.True(t, got.CreationDate.IsZero())
	})
}

func TestTransactionMapping(t *testing.T) {
	t.Run("ToApiTransaction", func(t *testing.T) {
		ts := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		got := ToApiTransaction(&models.Transaction{
			TransactionId:      "TXN-1",
			AccountNumber:      "ACC123",
			TransactionType:    models.TRANSFER_OUT,
			Amount:             25.0,
			ResultingBalance:   75.0,
			SourceAccount:      "ACC123",
			DestinationAccount: "ACC999",
			Timestamp:          ts,
		})

		assert.Equal(t, "TXN-1", got.TransactionId)
		assert.Equal(t, "TRANSFER_OUT", got.TransactionType)
		assert.Equal(t, 25.0, got.Amount)
		assert.Equal(t, "ACC999", got.DestinationAccount)
		assert.Equal(t, ts, got.Timestamp)
	})

	t.Run("ToDomainNewTransaction", func(t *testing.T) {
		amount := 25.0
		balance := 75.0
		got := ToDomainNewTransaction(&api.NewTransaction{
			AccountNumber:    "ACC123",
			TransactionType:  "DEPOSIT",
			Amount:           &amount,
			ResultingBalance: &balance,
			Description:      "Test",
		})

		assert.Empty(t, got.TransactionId)
		assert.Equal(t, models.DEPOSIT, got.TransactionType)
		assert.Equal(t, 25.0, got.Amount)
		assert.Equal(t, 75.0, got.ResultingBalance)
	})

	t.Run("ToDomainNewTransaction Keeps Supplied Id", func(t *testing.T) {
		id := "TXN-1"
		amount := 25.0
		balance := 75.0
		got := ToDomainNewTransaction(&api.NewTransaction{
			TransactionId:    &id,
			AccountNumber:    "ACC123",
			TransactionType:  "DEPOSIT",
			Amount:           &amount,
			ResultingBalance: &balance,
		})

		assert.Equal(t, "TXN-1", got.TransactionId)
	})
}
