package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type CreateAccountRequest struct {
	AccountType    string           `json:"accountType"`
	InitialBalance *decimal.Decimal `json:"initialBalance"`
}

func (r CreateAccountRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.AccountType) == "" {
		errs = append(errs, "accountType is required")
	}
	if r.InitialBalance == nil {
		errs = append(errs, "initialBalance is required")
	} else if r.InitialBalance.IsNegative() {
		errs = append(errs, "initialBalance cannot be negative")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type UpdateAccountRequest struct {
	AccountType string `json:"accountType"`
}

func (r UpdateAccountRequest) Validate() error {
	if strings.TrimSpace(r.AccountType) == "" {
		return errors.New("accountType is required")
	}

	return nil
}

type AccountResponse struct {
	ID          string          `json:"id"`
	AccountType string          `json:"accountType"`
	Balance     decimal.Decimal `json:"balance"`
}

type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

type DeleteAccountResponse struct {
	ID string `json:"id"`
}
