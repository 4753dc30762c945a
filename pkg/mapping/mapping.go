package mapping

import (
	"github.com/yogami9/databaseTier/pkg/api"
	"github.com/yogami9/databaseTier/pkg/models"
)

// ToApiAccount converts a domain Account model to an API Account model.
func ToApiAccount(acct *models.Account) *api.Account {
	return &api.Account{
		AccountNumber:     acct.AccountNumber,
		AccountHolderName: acct.AccountHolderName,
		Balance:           acct.Balance,
		CreationDate:      acct.CreationDate,
	}
}

// ToDomainNewAccount converts an API NewAccount model to a domain Account.
// CreationDate is left zero; the store assigns it at insertion time.
func ToDomainNewAccount(newAcct *api.NewAccount) *models.Account {
	return &models.Account{
		AccountNumber:     newAcct.AccountNumber,
		AccountHolderName: newAcct.AccountHolderName,
		Balance:           newAcct.Balance,
	}
}

// ToApiTransaction converts a domain Transaction model to an API Transaction model.
func ToApiTransaction(tx *models.Transaction) *api.Transaction {
	return &api.Transaction{
		TransactionId:      tx.TransactionId,
		AccountNumber:      tx.AccountNumber,
		TransactionType:    string(tx.TransactionType),
		Amount:             tx.Amount,
		ResultingBalance:   tx.ResultingBalance,
		Description:        tx.Description,
		SourceAccount:      tx.SourceAccount,
		DestinationAccount: tx.DestinationAccount,
		Timestamp:          tx.Timestamp,
	}
}

// ToDomainNewTransaction converts an API NewTransaction model to a domain
// Transaction. The id may still be empty and the timestamp is left zero; the
// store fills both in. Required pointer fields must be validated before this
// call.
func ToDomainNewTransaction(newTx *api.NewTransaction) *models.Transaction {
	tx := &models.Transaction{
		AccountNumber:      newTx.AccountNumber,
		TransactionType:    models.TransactionType(newTx.TransactionType),
		Description:        newTx.Description,
		SourceAccount:      newTx.SourceAccount,
		DestinationAccount: newTx.DestinationAccount,
	}
	if newTx.TransactionId != nil {
		tx.TransactionId = *newTx.TransactionId
	}
	if newTx.Amount != nil {
		tx.Amount = *newTx.Amount
	}
	if newTx.ResultingBalance != nil {
		tx.ResultingBalance = *newTx.ResultingBalance
	}
	return tx
}
