package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/eaglebank/eagle-bank-api/internal/adapter/http/models"
	"github.com/eaglebank/eagle-bank-api/internal/adapter/repository/repo_interfaces"
	"github.com/eaglebank/eagle-bank-api/internal/commons"
	"github.com/eaglebank/eagle-bank-api/internal/domain"
	"github.com/eaglebank/eagle-bank-api/internal/logger"
)

type AccountService struct {
	accountRepo     repo_interfaces.AccountRepository
	transactionRepo repo_interfaces.TransactionRepository
}

func NewAccountService(accountRepo repo_interfaces.AccountRepository, transactionRepo repo_interfaces.TransactionRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo, transactionRepo: transactionRepo}
}

func (s *AccountService) CreateAccount(ctx context.Context, ownerID string, req models.CreateAccountRequest) (commons.Response[models.AccountResponse], error) {
	logger.Info("account service create account request", logger.Fields{
		"ownerId": ownerID,
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service create account validation failed", err, nil)
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), err
	}

	account := domain.BankAccount{
		OwnerID:     ownerID,
		AccountType: strings.TrimSpace(req.AccountType),
		Balance:     *req.InitialBalance,
	}

	created, err := s.accountRepo.Create(ctx, account)
	if err != nil {
		logger.Error("account service create account repository failed", err, logger.Fields{
			"ownerId": ownerID,
		})
		return commons.ErrorResponse[models.AccountResponse]("failed to create account", "Unable to create account right now"), err
	}

	logger.Info("account service create account success", logger.Fields{
		"accountId": created.ID,
		"ownerId":   created.OwnerID,
	})

	return commons.SuccessResponse("account created successfully", mapAccountToResponse(created)), nil
}

func (s *AccountService) GetAccount(ctx context.Context, accountID string, requestingUserID string) (commons.Response[models.AccountResponse], error) {
	logger.Info("account service get account request", logger.Fields{
		"accountId":        accountID,
		"requestingUserId": requestingUserID,
	})

	if strings.TrimSpace(accountID) == "" {
		err := fmt.Errorf("accountId is required")
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), err
	}

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.AccountResponse]("Bank account not found"), err
		}
		logger.Error("account service get account failed", err, logger.Fields{
			"accountId": accountID,
		})
		return commons.ErrorResponse[models.AccountResponse]("failed to get account", "Unable to fetch account right now"), err
	}

	if err := domain.ValidateOwnership(account.OwnerID, requestingUserID); err != nil {
		return commons.ErrorResponse[models.AccountResponse]("Access denied"), err
	}

	return commons.SuccessResponse("account fetched successfully", mapAccountToResponse(account)), nil
}

func (s *AccountService) ListAccounts(ctx context.Context, ownerID string) (commons.Response[models.ListAccountsResponse], error) {
	logger.Info("account service list accounts request", logger.Fields{
		"ownerId": ownerID,
	})

	accounts, err := s.accountRepo.GetAllByOwnerID(ctx, ownerID)
	if err != nil {
		logger.Error("account service list accounts failed", err, logger.Fields{
			"ownerId": ownerID,
		})
		return commons.ErrorResponse[models.ListAccountsResponse]("failed to list accounts", "Unable to fetch accounts right now"), err
	}

	response := models.ListAccountsResponse{Accounts: make([]models.AccountResponse, 0, len(accounts))}
	for _, account := range accounts {
		response.Accounts = append(response.Accounts, mapAccountToResponse(account))
	}

	return commons.SuccessResponse("accounts fetched successfully", response), nil
}

func (s *AccountService) UpdateAccount(ctx context.Context, accountID string, requestingUserID string, req models.UpdateAccountRequest) (commons.Response[models.AccountResponse], error) {
	logger.Info("account service update account request", logger.Fields{
		"accountId": accountID,
		"payload":   logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service update account validation failed", err, nil)
		return commons.ErrorResponse[models.AccountResponse]("validation failed", err.Error()), err
	}

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.AccountResponse]("Bank account not found"), err
		}
		return commons.ErrorResponse[models.AccountResponse]("failed to update account", "Unable to update account right now"), err
	}

	if err := domain.ValidateOwnership(account.OwnerID, requestingUserID); err != nil {
		return commons.ErrorResponse[models.AccountResponse]("Access denied"), err
	}

	account.AccountType = strings.TrimSpace(req.AccountType)

	updated, err := s.accountRepo.Update(ctx, account)
	if err != nil {
		logger.Error("account service update account repository failed", err, logger.Fields{
			"accountId": accountID,
		})
		return commons.ErrorResponse[models.AccountResponse]("failed to update account", "Unable to update account right now"), err
	}

	return commons.SuccessResponse("account updated successfully", mapAccountToResponse(updated)), nil
}

func (s *AccountService) DeleteAccount(ctx context.Context, accountID string, requestingUserID string) (commons.Response[models.DeleteAccountResponse], error) {
	logger.Info("account service delete account request", logger.Fields{
		"accountId": accountID,
	})

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.DeleteAccountResponse]("Bank account not found"), err
		}
		return commons.ErrorResponse[models.DeleteAccountResponse]("failed to delete account", "Unable to delete account right now"), err
	}

	if err := domain.ValidateOwnership(account.OwnerID, requestingUserID); err != nil {
		return commons.ErrorResponse[models.DeleteAccountResponse]("Access denied"), err
	}

	// The ledger is append-only, so an account with history cannot be removed.
	hasTransactions, err := s.transactionRepo.ExistsByAccountID(ctx, accountID)
	if err != nil {
		logger.Error("account service delete account ledger check failed", err, logger.Fields{
			"accountId": accountID,
		})
		return commons.ErrorResponse[models.DeleteAccountResponse]("failed to delete account", "Unable to delete account right now"), err
	}
	if hasTransactions {
		err := domain.ErrAccountHasTransactions
		return commons.ErrorResponse[models.DeleteAccountResponse]("Cannot delete account with existing transactions"), err
	}

	if err := s.accountRepo.Delete(ctx, accountID); err != nil {
		logger.Error("account service delete account repository failed", err, logger.Fields{
			"accountId": accountID,
		})
		return commons.ErrorResponse[models.DeleteAccountResponse]("failed to delete account", "Unable to delete account right now"), err
	}

	logger.Info("account service delete account success", logger.Fields{
		"accountId": accountID,
	})

	return commons.SuccessResponse("account deleted successfully", models.DeleteAccountResponse{ID: accountID}), nil
}

func mapAccountToResponse(account domain.BankAccount) models.AccountResponse {
	return models.AccountResponse{
		ID:          account.ID,
		AccountType: account.AccountType,
		Balance:     account.Balance,
	}
}
