package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/eaglebank/eagle-bank-api/internal/domain"
	"github.com/eaglebank/eagle-bank-api/internal/logger"
	"github.com/shopspring/decimal"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Apply serializes concurrent transactions per account with a row lock and
// commits the balance update and the ledger entry as one unit.
func (r *TransactionRepository) Apply(ctx context.Context, accountID string, amount decimal.Decimal, txType domain.TransactionType) (domain.Transaction, error) {
	logger.Info("transaction repository apply", logger.Fields{
		"accountId": accountID,
		"amount":    amount.String(),
		"type":      string(txType),
	})

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("begin apply transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const lockQuery = `
SELECT balance
FROM bank_accounts
WHERE id = $1
FOR UPDATE`

	var balance decimal.Decimal
	if scanErr := tx.QueryRowContext(ctx, lockQuery, accountID).Scan(&balance); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			err = domain.ErrRecordNotFound
			return domain.Transaction{}, err
		}
		err = fmt.Errorf("lock account row: %w", scanErr)
		return domain.Transaction{}, err
	}

	var newBalance decimal.Decimal
	switch txType {
	case domain.TransactionTypeDeposit:
		newBalance = balance.Add(amount)
	case domain.TransactionTypeWithdrawal:
		if amount.GreaterThan(balance) {
			err = domain.ErrInsufficientFunds
			return domain.Transaction{}, err
		}
		newBalance = balance.Sub(amount)
	default:
		err = fmt.Errorf("unsupported transaction type %q", txType)
		return domain.Transaction{}, err
	}

	const updateQuery = `
UPDATE bank_accounts
SET balance = $2,
    updated_at = NOW()
WHERE id = $1`

	if _, execErr := tx.ExecContext(ctx, updateQuery, accountID, newBalance); execErr != nil {
		err = fmt.Errorf("update account balance: %w", execErr)
		return domain.Transaction{}, err
	}

	const insertQuery = `
INSERT INTO transactions (
	account_id,
	amount,
	type,
	balance_after
) VALUES ($1, $2, $3, $4)
RETURNING id, created_at`

	var id string
	var createdAt time.Time
	if insertErr := tx.QueryRowContext(
		ctx,
		insertQuery,
		accountID,
		amount,
		txType,
		newBalance,
	).Scan(&id, &createdAt); insertErr != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Error("transaction repository apply rollback failed after balance update", rbErr, logger.Fields{
				"accountId": accountID,
			})
			err = fmt.Errorf("%w: append ledger entry: %v", domain.ErrLedgerInconsistent, insertErr)
			return domain.Transaction{}, err
		}
		err = fmt.Errorf("append ledger entry: %w", insertErr)
		return domain.Transaction{}, err
	}

	if commitErr := tx.Commit(); commitErr != nil {
		err = fmt.Errorf("commit apply transaction: %w", commitErr)
		return domain.Transaction{}, err
	}

	logger.Info("transaction repository apply success", logger.Fields{
		"transactionId": id,
		"accountId":     accountID,
		"balanceAfter":  newBalance.String(),
	})

	return domain.Transaction{
		ID:           id,
		AccountID:    accountID,
		Amount:       amount,
		Type:         txType,
		BalanceAfter: newBalance,
		Timestamp:    createdAt,
	}, nil
}

func (r *TransactionRepository) GetByID(ctx context.Context, id string) (domain.Transaction, error) {
	const query = `
SELECT id, account_id, amount, type, balance_after, created_at
FROM transactions
WHERE id = $1`

	var txn domain.Transaction
	if err := r.db.QueryRowContext(ctx, query, id).Scan(
		&txn.ID,
		&txn.AccountID,
		&txn.Amount,
		&txn.Type,
		&txn.BalanceAfter,
		&txn.Timestamp,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Transaction{}, domain.ErrRecordNotFound
		}
		logger.Error("transaction repository get by id failed", err, logger.Fields{
			"transactionId": id,
		})
		return domain.Transaction{}, fmt.Errorf("get transaction by id: %w", err)
	}

	return txn, nil
}

func (r *TransactionRepository) GetAllByAccountID(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	const query = `
SELECT id, account_id, amount, type, balance_after, created_at
FROM transactions
WHERE account_id = $1
ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		logger.Error("transaction repository get all by account id failed", err, logger.Fields{
			"accountId": accountID,
		})
		return nil, fmt.Errorf("get transactions by account id: %w", err)
	}
	defer rows.Close()

	transactions := make([]domain.Transaction, 0)
	for rows.Next() {
		var txn domain.Transaction
		if err := rows.Scan(
			&txn.ID,
			&txn.AccountID,
			&txn.Amount,
			&txn.Type,
			&txn.BalanceAfter,
			&txn.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		transactions = append(transactions, txn)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction rows: %w", err)
	}

	return transactions, nil
}

func (r *TransactionRepository) ExistsByAccountID(ctx context.Context, accountID string) (bool, error) {
	const query = `
SELECT EXISTS (
	SELECT 1
	FROM transactions
	WHERE account_id = $1
)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, accountID).Scan(&exists); err != nil {
		logger.Error("transaction repository exists by account id failed", err, logger.Fields{
			"accountId": accountID,
		})
		return false, fmt.Errorf("check transactions by account id: %w", err)
	}

	return exists, nil
}
