package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal TransactionType = "WITHDRAWAL"
)

// Transaction is an append-only ledger entry. BalanceAfter records the
// account balance immediately after the entry was applied; replaying an
// account's entries in creation order from its opening balance must
// reproduce each snapshot and the current balance.
type Transaction struct {
	ID           string
	AccountID    string
	Amount       decimal.Decimal
	Type         TransactionType
	BalanceAfter decimal.Decimal
	Timestamp    time.Time
}
