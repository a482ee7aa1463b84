package services_test

import (
	"context"

	"github.com/eaglebank/eagle-bank-api/internal/domain"
	"github.com/shopspring/decimal"
)

type userRepoStub struct {
	createFn     func(ctx context.Context, user domain.User) (domain.User, error)
	getByIDFn    func(ctx context.Context, id string) (domain.User, error)
	getByEmailFn func(ctx context.Context, email string) (domain.User, error)
	updateFn     func(ctx context.Context, user domain.User) (domain.User, error)
	deleteFn     func(ctx context.Context, id string) error
}

func (s userRepoStub) Create(ctx context.Context, user domain.User) (domain.User, error) {
	if s.createFn != nil {
		return s.createFn(ctx, user)
	}
	return domain.User{}, nil
}

func (s userRepoStub) GetByID(ctx context.Context, id string) (domain.User, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return domain.User{}, nil
}

func (s userRepoStub) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	if s.getByEmailFn != nil {
		return s.getByEmailFn(ctx, email)
	}
	return domain.User{}, nil
}

func (s userRepoStub) Update(ctx context.Context, user domain.User) (domain.User, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, user)
	}
	return domain.User{}, nil
}

func (s userRepoStub) Delete(ctx context.Context, id string) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type accountRepoStub struct {
	createFn        func(ctx context.Context, account domain.BankAccount) (domain.BankAccount, error)
	getByIDFn       func(ctx context.Context, id string) (domain.BankAccount, error)
	getAllByOwnerFn func(ctx context.Context, ownerID string) ([]domain.BankAccount, error)
	existsByOwnerFn func(ctx context.Context, ownerID string) (bool, error)
	updateFn        func(ctx context.Context, account domain.BankAccount) (domain.BankAccount, error)
	deleteFn        func(ctx context.Context, id string) error
}

func (s accountRepoStub) Create(ctx context.Context, account domain.BankAccount) (domain.BankAccount, error) {
	if s.createFn != nil {
		return s.createFn(ctx, account)
	}
	return domain.BankAccount{}, nil
}

func (s accountRepoStub) GetByID(ctx context.Context, id string) (domain.BankAccount, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return domain.BankAccount{}, nil
}

func (s accountRepoStub) GetAllByOwnerID(ctx context.Context, ownerID string) ([]domain.BankAccount, error) {
	if s.getAllByOwnerFn != nil {
		return s.getAllByOwnerFn(ctx, ownerID)
	}
	return nil, nil
}

func (s accountRepoStub) ExistsByOwnerID(ctx context.Context, ownerID string) (bool, error) {
	if s.existsByOwnerFn != nil {
		return s.existsByOwnerFn(ctx, ownerID)
	}
	return false, nil
}

func (s accountRepoStub) Update(ctx context.Context, account domain.BankAccount) (domain.BankAccount, error) {
	if s.updateFn != nil {
		return s.updateFn(ctx, account)
	}
	return domain.BankAccount{}, nil
}

func (s accountRepoStub) Delete(ctx context.Context, id string) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil
}

type transactionRepoStub struct {
	applyFn           func(ctx context.Context, accountID string, amount decimal.Decimal, txType domain.TransactionType) (domain.Transaction, error)
	getByIDFn         func(ctx context.Context, id string) (domain.Transaction, error)
	getAllByAccountFn func(ctx context.Context, accountID string) ([]domain.Transaction, error)
	existsByAccountFn func(ctx context.Context, accountID string) (bool, error)
}

func (s transactionRepoStub) Apply(ctx context.Context, accountID string, amount decimal.Decimal, txType domain.TransactionType) (domain.Transaction, error) {
	if s.applyFn != nil {
		return s.applyFn(ctx, accountID, amount, txType)
	}
	return domain.Transaction{}, nil
}

func (s transactionRepoStub) GetByID(ctx context.Context, id string) (domain.Transaction, error) {
	if s.getByIDFn != nil {
		return s.getByIDFn(ctx, id)
	}
	return domain.Transaction{}, nil
}

func (s transactionRepoStub) GetAllByAccountID(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	if s.getAllByAccountFn != nil {
		return s.getAllByAccountFn(ctx, accountID)
	}
	return nil, nil
}

func (s transactionRepoStub) ExistsByAccountID(ctx context.Context, accountID string) (bool, error) {
	if s.existsByAccountFn != nil {
		return s.existsByAccountFn(ctx, accountID)
	}
	return false, nil
}
