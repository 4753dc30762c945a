package models

import (
	"fmt"
	"time"
)

// TransactionType is the closed set of recognized transaction kinds.
type TransactionType string

const (
	DEPOSIT      TransactionType = "DEPOSIT"
	WITHDRAWAL   TransactionType = "WITHDRAWAL"
	TRANSFER_IN  TransactionType = "TRANSFER_IN"
	TRANSFER_OUT TransactionType = "TRANSFER_OUT"
)

// ParseTransactionType maps a stored type string back to the closed
// TransactionType set. Stored records carrying any other value are unusable.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case DEPOSIT, WITHDRAWAL, TRANSFER_IN, TRANSFER_OUT:
		return TransactionType(s), nil
	}
	return "", fmt.Errorf("unrecognized transaction type %q", s)
}

// Account represents the internal domain model for a bank account.
// It includes dynamodbav tags for marshalling; attribute names are the
// persisted snake_case keys.
type Account struct {
	AccountNumber     string    `dynamodbav:"account_number"`
	AccountHolderName string    `dynamodbav:"account_holder_name"`
	Balance           float64   `dynamodbav:"balance"`
	CreationDate      time.Time `dynamodbav:"creation_date"`
}

// Transaction represents the internal domain model for a transaction record.
// Records are append-only: written once at recording time, never mutated.
// SourceAccount and DestinationAccount are omitted when empty so the sparse
// secondary indexes only cover records that actually reference them.
type Transaction struct {
	TransactionId      string          `dynamodbav:"transaction_id"`
	AccountNumber      string          `dynamodbav:"account_number"`
	TransactionType    TransactionType `dynamodbav:"transaction_type"`
	Amount             float64         `dynamodbav:"amount"`
	ResultingBalance   float64         `dynamodbav:"resulting_balance"`
	Description        string          `dynamodbav:"description,omitempty"`
	SourceAccount      string          `dynamodbav:"source_account,omitempty"`
	DestinationAccount string          `dynamodbav:"destination_account,omitempty"`
	Timestamp          time.Time       `dynamodbav:"timestamp"`
}
