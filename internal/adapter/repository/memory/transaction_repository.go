package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/eaglebank/eagle-bank-api/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionRepository struct {
	mu           sync.Mutex
	accounts     *AccountRepository
	transactions map[string]domain.Transaction
	order        []string
}

func NewTransactionRepository(accounts *AccountRepository) *TransactionRepository {
	return &TransactionRepository{
		accounts:     accounts,
		transactions: make(map[string]domain.Transaction),
	}
}

// Apply holds the account store lock for the whole read-modify-write, which
// serializes concurrent transactions the way the postgres row lock does.
func (r *TransactionRepository) Apply(_ context.Context, accountID string, amount decimal.Decimal, txType domain.TransactionType) (domain.Transaction, error) {
	r.accounts.mu.Lock()
	defer r.accounts.mu.Unlock()

	account, ok := r.accounts.accounts[accountID]
	if !ok {
		return domain.Transaction{}, domain.ErrRecordNotFound
	}

	var newBalance decimal.Decimal
	switch txType {
	case domain.TransactionTypeDeposit:
		newBalance = account.Balance.Add(amount)
	case domain.TransactionTypeWithdrawal:
		if amount.GreaterThan(account.Balance) {
			return domain.Transaction{}, domain.ErrInsufficientFunds
		}
		newBalance = account.Balance.Sub(amount)
	default:
		return domain.Transaction{}, fmt.Errorf("unsupported transaction type %q", txType)
	}

	now := time.Now().UTC()
	account.Balance = newBalance
	account.UpdatedAt = now
	r.accounts.accounts[accountID] = account

	txn := domain.Transaction{
		ID:           uuid.NewString(),
		AccountID:    accountID,
		Amount:       amount,
		Type:         txType,
		BalanceAfter: newBalance,
		Timestamp:    now,
	}

	r.mu.Lock()
	r.transactions[txn.ID] = txn
	r.order = append(r.order, txn.ID)
	r.mu.Unlock()

	return txn, nil
}

func (r *TransactionRepository) GetByID(_ context.Context, id string) (domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	txn, ok := r.transactions[id]
	if !ok {
		return domain.Transaction{}, domain.ErrRecordNotFound
	}

	return txn, nil
}

// GetAllByAccountID returns the account's ledger newest first.
func (r *TransactionRepository) GetAllByAccountID(_ context.Context, accountID string) ([]domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	transactions := make([]domain.Transaction, 0)
	for i := len(r.order) - 1; i >= 0; i-- {
		txn := r.transactions[r.order[i]]
		if txn.AccountID == accountID {
			transactions = append(transactions, txn)
		}
	}

	return transactions, nil
}

func (r *TransactionRepository) ExistsByAccountID(_ context.Context, accountID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, txn := range r.transactions {
		if txn.AccountID == accountID {
			return true, nil
		}
	}

	return false, nil
}
