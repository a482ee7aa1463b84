package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BankAccount struct {
	ID          string
	OwnerID     string
	AccountType string
	Balance     decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
