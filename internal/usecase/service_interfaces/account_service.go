package service_interfaces

import (
	"context"

	"github.com/eaglebank/eagle-bank-api/internal/adapter/http/models"
	"github.com/eaglebank/eagle-bank-api/internal/commons"
)

type AccountService interface {
	CreateAccount(ctx context.Context, ownerID string, req models.CreateAccountRequest) (commons.Response[models.AccountResponse], error)
	GetAccount(ctx context.Context, accountID string, requestingUserID string) (commons.Response[models.AccountResponse], error)
	ListAccounts(ctx context.Context, ownerID string) (commons.Response[models.ListAccountsResponse], error)
	UpdateAccount(ctx context.Context, accountID string, requestingUserID string, req models.UpdateAccountRequest) (commons.Response[models.AccountResponse], error)
	DeleteAccount(ctx context.Context, accountID string, requestingUserID string) (commons.Response[models.DeleteAccountResponse], error)
}
