package storage

import "errors"

// ErrAccountNotFound is returned when no account exists for the given account number.
var ErrAccountNotFound = errors.New("account not found")

// ErrAccountExists is returned when creating an account whose number is already taken.
var ErrAccountExists = errors.New("account already exists")

// ErrDuplicateTransaction is returned when recording a transaction whose id is already taken.
var ErrDuplicateTransaction = errors.New("transaction id already exists")

// ErrBalanceUnchanged is returned when a balance update would be a no-op.
// The original service folded this case into a generic failure; it is kept
// separate from ErrAccountNotFound so callers can tell the two apart.
var ErrBalanceUnchanged = errors.New("balance unchanged")
