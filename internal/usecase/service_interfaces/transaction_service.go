package service_interfaces

import (
	"context"

	"github.com/eaglebank/eagle-bank-api/internal/adapter/http/models"
	"github.com/eaglebank/eagle-bank-api/internal/commons"
)

type TransactionService interface {
	CreateTransaction(ctx context.Context, accountID string, requestingUserID string, req models.CreateTransactionRequest) (commons.Response[models.TransactionResponse], error)
	GetTransaction(ctx context.Context, accountID string, requestingUserID string, transactionID string) (commons.Response[models.TransactionResponse], error)
	ListTransactions(ctx context.Context, accountID string, requestingUserID string) (commons.Response[models.ListTransactionsResponse], error)
}
