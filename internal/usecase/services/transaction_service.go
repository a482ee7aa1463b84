package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/eaglebank/eagle-bank-api/internal/adapter/http/models"
	"github.com/eaglebank/eagle-bank-api/internal/adapter/repository/repo_interfaces"
	"github.com/eaglebank/eagle-bank-api/internal/commons"
	"github.com/eaglebank/eagle-bank-api/internal/domain"
	"github.com/eaglebank/eagle-bank-api/internal/logger"
)

type TransactionService struct {
	accountRepo     repo_interfaces.AccountRepository
	transactionRepo repo_interfaces.TransactionRepository
}

func NewTransactionService(accountRepo repo_interfaces.AccountRepository, transactionRepo repo_interfaces.TransactionRepository) *TransactionService {
	return &TransactionService{accountRepo: accountRepo, transactionRepo: transactionRepo}
}

func (s *TransactionService) CreateTransaction(ctx context.Context, accountID string, requestingUserID string, req models.CreateTransactionRequest) (commons.Response[models.TransactionResponse], error) {
	logger.Info("transaction service create transaction request", logger.Fields{
		"accountId":        accountID,
		"requestingUserId": requestingUserID,
		"payload":          logger.SanitizePayload(req),
	})

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.TransactionResponse]("Bank account not found"), err
		}
		logger.Error("transaction service create transaction account fetch failed", err, logger.Fields{
			"accountId": accountID,
		})
		return commons.ErrorResponse[models.TransactionResponse]("failed to process transaction", "Unable to process transaction right now"), err
	}

	if err := domain.ValidateOwnership(account.OwnerID, requestingUserID); err != nil {
		return commons.ErrorResponse[models.TransactionResponse]("Access denied"), err
	}

	if err := req.Validate(); err != nil {
		logger.Error("transaction service create transaction validation failed", err, nil)
		return commons.ErrorResponse[models.TransactionResponse]("validation failed", err.Error()), err
	}

	amount := *req.Amount
	txType := domain.TransactionType(strings.TrimSpace(req.Type))

	// Fail fast against the fetched balance; Apply re-checks under the
	// account lock, which is the authoritative decision.
	if txType == domain.TransactionTypeWithdrawal && amount.GreaterThan(account.Balance) {
		err := domain.ErrInsufficientFunds
		return commons.ErrorResponse[models.TransactionResponse]("Insufficient funds"), err
	}

	txn, err := s.transactionRepo.Apply(ctx, accountID, amount, txType)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInsufficientFunds):
			return commons.ErrorResponse[models.TransactionResponse]("Insufficient funds"), err
		case errors.Is(err, domain.ErrRecordNotFound):
			return commons.ErrorResponse[models.TransactionResponse]("Bank account not found"), err
		case errors.Is(err, domain.ErrLedgerInconsistent):
			logger.Error("transaction service ledger inconsistency detected", err, logger.Fields{
				"accountId": accountID,
			})
			return commons.ErrorResponse[models.TransactionResponse]("transaction failed", "Account state requires manual reconciliation"), err
		default:
			logger.Error("transaction service create transaction apply failed", err, logger.Fields{
				"accountId": accountID,
			})
			return commons.ErrorResponse[models.TransactionResponse]("failed to process transaction", "Unable to process transaction right now"), err
		}
	}

	logger.Info("transaction service create transaction success", logger.Fields{
		"transactionId": txn.ID,
		"accountId":     accountID,
		"type":          string(txn.Type),
	})

	return commons.SuccessResponse("transaction created successfully", mapTransactionToResponse(txn)), nil
}

func (s *TransactionService) GetTransaction(ctx context.Context, accountID string, requestingUserID string, transactionID string) (commons.Response[models.TransactionResponse], error) {
	logger.Info("transaction service get transaction request", logger.Fields{
		"accountId":     accountID,
		"transactionId": transactionID,
	})

	if strings.TrimSpace(transactionID) == "" {
		err := fmt.Errorf("transactionId is required")
		return commons.ErrorResponse[models.TransactionResponse]("validation failed", err.Error()), err
	}

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.TransactionResponse]("Bank account not found"), err
		}
		return commons.ErrorResponse[models.TransactionResponse]("failed to get transaction", "Unable to fetch transaction right now"), err
	}

	if err := domain.ValidateOwnership(account.OwnerID, requestingUserID); err != nil {
		return commons.ErrorResponse[models.TransactionResponse]("Access denied"), err
	}

	txn, err := s.transactionRepo.GetByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.TransactionResponse]("Transaction not found"), err
		}
		logger.Error("transaction service get transaction failed", err, logger.Fields{
			"transactionId": transactionID,
		})
		return commons.ErrorResponse[models.TransactionResponse]("failed to get transaction", "Unable to fetch transaction right now"), err
	}

	// A transaction id belonging to another account must be indistinguishable
	// from a missing one.
	if txn.AccountID != accountID {
		err := domain.ErrRecordNotFound
		return commons.ErrorResponse[models.TransactionResponse]("Transaction does not belong to this account"), err
	}

	return commons.SuccessResponse("transaction fetched successfully", mapTransactionToResponse(txn)), nil
}

func (s *TransactionService) ListTransactions(ctx context.Context, accountID string, requestingUserID string) (commons.Response[models.ListTransactionsResponse], error) {
	logger.Info("transaction service list transactions request", logger.Fields{
		"accountId": accountID,
	})

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.ListTransactionsResponse]("Bank account not found"), err
		}
		return commons.ErrorResponse[models.ListTransactionsResponse]("failed to list transactions", "Unable to fetch transactions right now"), err
	}

	if err := domain.ValidateOwnership(account.OwnerID, requestingUserID); err != nil {
		return commons.ErrorResponse[models.ListTransactionsResponse]("Access denied"), err
	}

	transactions, err := s.transactionRepo.GetAllByAccountID(ctx, accountID)
	if err != nil {
		logger.Error("transaction service list transactions failed", err, logger.Fields{
			"accountId": accountID,
		})
		return commons.ErrorResponse[models.ListTransactionsResponse]("failed to list transactions", "Unable to fetch transactions right now"), err
	}

	response := models.ListTransactionsResponse{Transactions: make([]models.TransactionResponse, 0, len(transactions))}
	for _, txn := range transactions {
		response.Transactions = append(response.Transactions, mapTransactionToResponse(txn))
	}

	return commons.SuccessResponse("transactions fetched successfully", response), nil
}

// mapTransactionToResponse exposes the immutable balanceAfter snapshot, not
// the account's current balance, so a fetched entry stays audit-stable.
func mapTransactionToResponse(txn domain.Transaction) models.TransactionResponse {
	return models.TransactionResponse{
		TransactionID:  txn.ID,
		Type:           string(txn.Type),
		Amount:         txn.Amount,
		UpdatedBalance: txn.BalanceAfter,
		Timestamp:      txn.Timestamp.Format(time.RFC3339),
	}
}
