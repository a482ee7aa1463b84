package memory

import (
	"context"
	"sync"
	"time"

	"github.com/eaglebank/eagle-bank-api/internal/domain"
	"github.com/google/uuid"
)

type AccountRepository struct {
	mu       sync.Mutex
	accounts map[string]domain.BankAccount
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{accounts: make(map[string]domain.BankAccount)}
}

func (r *AccountRepository) Create(_ context.Context, account domain.BankAccount) (domain.BankAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	account.ID = uuid.NewString()
	account.CreatedAt = now
	account.UpdatedAt = now
	r.accounts[account.ID] = account

	return account, nil
}

func (r *AccountRepository) GetByID(_ context.Context, id string) (domain.BankAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[id]
	if !ok {
		return domain.BankAccount{}, domain.ErrRecordNotFound
	}

	return account, nil
}

func (r *AccountRepository) GetAllByOwnerID(_ context.Context, ownerID string) ([]domain.BankAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	accounts := make([]domain.BankAccount, 0)
	for _, account := range r.accounts {
		if account.OwnerID == ownerID {
			accounts = append(accounts, account)
		}
	}

	return accounts, nil
}

func (r *AccountRepository) ExistsByOwnerID(_ context.Context, ownerID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, account := range r.accounts {
		if account.OwnerID == ownerID {
			return true, nil
		}
	}

	return false, nil
}

func (r *AccountRepository) Update(_ context.Context, account domain.BankAccount) (domain.BankAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.accounts[account.ID]
	if !ok {
		return domain.BankAccount{}, domain.ErrRecordNotFound
	}

	// Money only moves through the transaction repository.
	existing.AccountType = account.AccountType
	existing.UpdatedAt = time.Now().UTC()
	r.accounts[existing.ID] = existing

	return existing, nil
}

func (r *AccountRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[id]; !ok {
		return domain.ErrRecordNotFound
	}
	delete(r.accounts, id)

	return nil
}
