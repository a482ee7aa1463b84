package repo_interfaces

import (
	"context"

	"github.com/eaglebank/eagle-bank-api/internal/domain"
)

type AccountRepository interface {
	Create(ctx context.Context, account domain.BankAccount) (domain.BankAccount, error)
	GetByID(ctx context.Context, id string) (domain.BankAccount, error)
	GetAllByOwnerID(ctx context.Context, ownerID string) ([]domain.BankAccount, error)
	ExistsByOwnerID(ctx context.Context, ownerID string) (bool, error)
	Update(ctx context.Context, account domain.BankAccount) (domain.BankAccount, error)
	Delete(ctx context.Context, id string) error
}
