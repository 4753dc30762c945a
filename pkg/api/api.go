package api

import "time"

// Account is the wire representation of an account. Field names are the
// camelCase API keys; the snake_case persisted keys live on the domain model.
type Account struct {
	AccountNumber     string    `json:"accountNumber"`
	AccountHolderName string    `json:"accountHolderName"`
	Balance           float64   `json:"balance"`
	CreationDate      time.Time `json:"creationDate"`
}

// NewAccount is the request body for creating an account. CreationDate is
// server-assigned and therefore absent here.
type NewAccount struct {
	AccountNumber     string  `json:"accountNumber"`
	AccountHolderName string  `json:"accountHolderName"`
	Balance           float64 `json:"balance"`
}

// Transaction is the wire representation of a transaction record.
type Transaction struct {
	TransactionId      string    `json:"transactionId"`
	AccountNumber      string    `json:"accountNumber"`
	TransactionType    string    `json:"transactionType"`
	Amount             float64   `json:"amount"`
	ResultingBalance   float64   `json:"resultingBalance"`
	Description        string    `json:"description,omitempty"`
	SourceAccount      string    `json:"sourceAccount,omitempty"`
	DestinationAccount string    `json:"destinationAccount,omitempty"`
	Timestamp          time.Time `json:"timestamp"`
}

// NewTransaction is the request body for recording a transaction. Required
// numeric fields are pointers so a missing field is distinguishable from zero.
type NewTransaction struct {
	TransactionId      *string  `json:"transactionId,omitempty"`
	AccountNumber      string   `json:"accountNumber"`
	TransactionType    string   `json:"transactionType"`
	Amount             *float64 `json:"amount"`
	ResultingBalance   *float64 `json:"resultingBalance"`
	Description        string   `json:"description,omitempty"`
	SourceAccount      string   `json:"sourceAccount,omitempty"`
	DestinationAccount string   `json:"destinationAccount,omitempty"`
}

// UpdateBalance is the request body for the balance update endpoint.
type UpdateBalance struct {
	Balance *float64 `json:"balance"`
}

// CreateAccountResponse confirms a successful account creation.
type CreateAccountResponse struct {
	Message       string `json:"message"`
	AccountNumber string `json:"accountNumber"`
}

// UpdateBalanceResponse confirms a successful balance update.
type UpdateBalanceResponse struct {
	Message       string  `json:"message"`
	AccountNumber string  `json:"accountNumber"`
	NewBalance    float64 `json:"newBalance"`
}

// RecordTransactionResponse confirms a successfully recorded transaction.
type RecordTransactionResponse struct {
	Message       string `json:"message"`
	TransactionId string `json:"transactionId"`
}

// Error is the JSON error body shared by all endpoints.
type Error struct {
	Error         string `json:"error"`
	AccountNumber string `json:"accountNumber,omitempty"`
}
