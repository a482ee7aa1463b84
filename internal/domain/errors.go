package domain

import "errors"

var ErrRecordNotFound = errors.New("Record not found")
var ErrAccessDenied = errors.New("Access denied")
var ErrInsufficientFunds = errors.New("Insufficient funds")
var ErrDuplicateEmail = errors.New("Email already registered")
var ErrUserHasAccounts = errors.New("Cannot delete user with existing bank accounts")
var ErrAccountHasTransactions = errors.New("Cannot delete account with existing transactions")

// ErrLedgerInconsistent signals that a balance write and its ledger entry
// diverged and the partial write could not be rolled back. Never swallowed.
var ErrLedgerInconsistent = errors.New("Ledger inconsistent with account balance")
