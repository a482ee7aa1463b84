package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/eaglebank/eagle-bank-api/internal/domain"
	"github.com/eaglebank/eagle-bank-api/internal/logger"
)

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, account domain.BankAccount) (domain.BankAccount, error) {
	logger.Info("account repository create", logger.Fields{
		"ownerId":     account.OwnerID,
		"accountType": account.AccountType,
	})

	const query = `
INSERT INTO bank_accounts (
	owner_id,
	account_type,
	balance
) VALUES ($1, $2, $3)
RETURNING id, created_at, updated_at`

	var id string
	var createdAt time.Time
	var updatedAt time.Time

	if err := r.db.QueryRowContext(
		ctx,
		query,
		account.OwnerID,
		account.AccountType,
		account.Balance,
	).Scan(&id, &createdAt, &updatedAt); err != nil {
		logger.Error("account repository create failed", err, logger.Fields{
			"ownerId": account.OwnerID,
		})
		return domain.BankAccount{}, fmt.Errorf("create account: %w", err)
	}

	account.ID = id
	account.CreatedAt = createdAt
	account.UpdatedAt = updatedAt

	logger.Info("account repository create success", logger.Fields{
		"accountId": account.ID,
		"ownerId":   account.OwnerID,
	})

	return account, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (domain.BankAccount, error) {
	const query = `
SELECT id, owner_id, account_type, balance, created_at, updated_at
FROM bank_accounts
WHERE id = $1`

	var account domain.BankAccount
	if err := r.db.QueryRowContext(ctx, query, id).Scan(
		&account.ID,
		&account.OwnerID,
		&account.AccountType,
		&account.Balance,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.BankAccount{}, domain.ErrRecordNotFound
		}
		logger.Error("account repository get by id failed", err, logger.Fields{
			"accountId": id,
		})
		return domain.BankAccount{}, fmt.Errorf("get account by id: %w", err)
	}

	return account, nil
}

func (r *AccountRepository) GetAllByOwnerID(ctx context.Context, ownerID string) ([]domain.BankAccount, error) {
	const query = `
SELECT id, owner_id, account_type, balance, created_at, updated_at
FROM bank_accounts
WHERE owner_id = $1
ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		logger.Error("account repository get all by owner id failed", err, logger.Fields{
			"ownerId": ownerID,
		})
		return nil, fmt.Errorf("get accounts by owner id: %w", err)
	}
	defer rows.Close()

	accounts := make([]domain.BankAccount, 0)
	for rows.Next() {
		var account domain.BankAccount
		if err := rows.Scan(
			&account.ID,
			&account.OwnerID,
			&account.AccountType,
			&account.Balance,
			&account.CreatedAt,
			&account.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan account row: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate account rows: %w", err)
	}

	return accounts, nil
}

func (r *AccountRepository) ExistsByOwnerID(ctx context.Context, ownerID string) (bool, error) {
	const query = `
SELECT EXISTS (
	SELECT 1
	FROM bank_accounts
	WHERE owner_id = $1
)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, ownerID).Scan(&exists); err != nil {
		logger.Error("account repository exists by owner id failed", err, logger.Fields{
			"ownerId": ownerID,
		})
		return false, fmt.Errorf("check accounts by owner id: %w", err)
	}

	return exists, nil
}

func (r *AccountRepository) Update(ctx context.Context, account domain.BankAccount) (domain.BankAccount, error) {
	logger.Info("account repository update", logger.Fields{
		"accountId":   account.ID,
		"accountType": account.AccountType,
	})

	// Balance is intentionally not written here; money only moves through
	// the transaction repository's Apply.
	const query = `
UPDATE bank_accounts
SET account_type = $2,
    updated_at = NOW()
WHERE id = $1
RETURNING balance, created_at, updated_at`

	if err := r.db.QueryRowContext(
		ctx,
		query,
		account.ID,
		account.AccountType,
	).Scan(&account.Balance, &account.CreatedAt, &account.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.BankAccount{}, domain.ErrRecordNotFound
		}
		logger.Error("account repository update failed", err, logger.Fields{
			"accountId": account.ID,
		})
		return domain.BankAccount{}, fmt.Errorf("update account: %w", err)
	}

	return account, nil
}

func (r *AccountRepository) Delete(ctx context.Context, id string) error {
	logger.Info("account repository delete", logger.Fields{
		"accountId": id,
	})

	const query = `DELETE FROM bank_accounts WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("account repository delete failed", err, logger.Fields{
			"accountId": id,
		})
		return fmt.Errorf("delete account: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete account rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
