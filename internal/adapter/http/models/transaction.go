package models

import (
	"errors"
	"strings"

	"github.com/eaglebank/eagle-bank-api/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateTransactionRequest struct {
	Amount *decimal.Decimal `json:"amount"`
	Type   string           `json:"type"`
}

func (r CreateTransactionRequest) Validate() error {
	var errs []string

	if r.Amount == nil {
		errs = append(errs, "amount is required")
	} else if !r.Amount.IsPositive() {
		errs = append(errs, "amount must be a positive number")
	}
	txType := strings.TrimSpace(r.Type)
	if txType == "" {
		errs = append(errs, "type is required")
	} else if txType != string(domain.TransactionTypeDeposit) && txType != string(domain.TransactionTypeWithdrawal) {
		errs = append(errs, "type must be DEPOSIT or WITHDRAWAL")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type TransactionResponse struct {
	TransactionID  string          `json:"transactionId"`
	Type           string          `json:"type"`
	Amount         decimal.Decimal `json:"amount"`
	UpdatedBalance decimal.Decimal `json:"updatedBalance"`
	Timestamp      string          `json:"timestamp"`
}

type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}
