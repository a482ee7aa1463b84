package repo_interfaces

import (
	"context"

	"github.com/eaglebank/eagle-bank-api/internal/domain"
	"github.com/shopspring/decimal"
)

type TransactionRepository interface {
	// Apply moves the account balance and appends the matching ledger entry
	// as one unit. Concurrent calls against the same account are serialized
	// by the implementation; a withdrawal that exceeds the balance returns
	// domain.ErrInsufficientFunds and writes nothing.
	Apply(ctx context.Context, accountID string, amount decimal.Decimal, txType domain.TransactionType) (domain.Transaction, error)
	GetByID(ctx context.Context, id string) (domain.Transaction, error)
	GetAllByAccountID(ctx context.Context, accountID string) ([]domain.Transaction, error)
	ExistsByAccountID(ctx context.Context, accountID string) (bool, error)
}
