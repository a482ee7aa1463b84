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
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo    repo_interfaces.UserRepository
	accountRepo repo_interfaces.AccountRepository
}

func NewUserService(userRepo repo_interfaces.UserRepository, accountRepo repo_interfaces.AccountRepository) *UserService {
	return &UserService{userRepo: userRepo, accountRepo: accountRepo}
}

func (s *UserService) CreateUser(ctx context.Context, req models.CreateUserRequest) (commons.Response[models.UserResponse], error) {
	logger.Info("user service create user request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("user service create user validation failed", err, nil)
		return commons.ErrorResponse[models.UserResponse]("validation failed", err.Error()), err
	}

	passwordHash, err := hashPassword(req.Password)
	if err != nil {
		logger.Error("user service create user hash password failed", err, nil)
		return commons.ErrorResponse[models.UserResponse]("failed to create user", "failed to hash password"), err
	}

	user := domain.User{
		FullName:     strings.TrimSpace(req.FullName),
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: passwordHash,
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		logger.Error("user service create user repository failed", err, logger.Fields{
			"email": user.Email,
		})
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return commons.ErrorResponse[models.UserResponse]("Email already registered"), err
		}
		return commons.ErrorResponse[models.UserResponse]("failed to create user", "Unable to create user right now"), err
	}

	logger.Info("user service create user success", logger.Fields{
		"userId": created.ID,
	})

	return commons.SuccessResponse("user created successfully", mapUserToResponse(created)), nil
}

func (s *UserService) GetUser(ctx context.Context, userID string, requestingUserID string) (commons.Response[models.UserResponse], error) {
	logger.Info("user service get user request", logger.Fields{
		"userId":           userID,
		"requestingUserId": requestingUserID,
	})

	if strings.TrimSpace(userID) == "" {
		err := fmt.Errorf("userId is required")
		return commons.ErrorResponse[models.UserResponse]("validation failed", err.Error()), err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.UserResponse]("User not found"), err
		}
		logger.Error("user service get user failed", err, logger.Fields{
			"userId": userID,
		})
		return commons.ErrorResponse[models.UserResponse]("failed to get user", "Unable to fetch user right now"), err
	}

	if err := domain.ValidateOwnership(user.ID, requestingUserID); err != nil {
		return commons.ErrorResponse[models.UserResponse]("Access denied"), err
	}

	return commons.SuccessResponse("user fetched successfully", mapUserToResponse(user)), nil
}

func (s *UserService) UpdateUser(ctx context.Context, userID string, requestingUserID string, req models.UpdateUserRequest) (commons.Response[models.UserResponse], error) {
	logger.Info("user service update user request", logger.Fields{
		"userId":  userID,
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("user service update user validation failed", err, nil)
		return commons.ErrorResponse[models.UserResponse]("validation failed", err.Error()), err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.UserResponse]("User not found"), err
		}
		return commons.ErrorResponse[models.UserResponse]("failed to update user", "Unable to update user right now"), err
	}

	if err := domain.ValidateOwnership(user.ID, requestingUserID); err != nil {
		return commons.ErrorResponse[models.UserResponse]("Access denied"), err
	}

	passwordHash, err := hashPassword(req.Password)
	if err != nil {
		logger.Error("user service update user hash password failed", err, nil)
		return commons.ErrorResponse[models.UserResponse]("failed to update user", "failed to hash password"), err
	}

	// Profile update is a full replace of name, email and password.
	user.FullName = strings.TrimSpace(req.FullName)
	user.Email = strings.TrimSpace(req.Email)
	user.PasswordHash = passwordHash

	updated, err := s.userRepo.Update(ctx, user)
	if err != nil {
		logger.Error("user service update user repository failed", err, logger.Fields{
			"userId": userID,
		})
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return commons.ErrorResponse[models.UserResponse]("Email already registered"), err
		}
		return commons.ErrorResponse[models.UserResponse]("failed to update user", "Unable to update user right now"), err
	}

	return commons.SuccessResponse("user updated successfully", mapUserToResponse(updated)), nil
}

func (s *UserService) DeleteUser(ctx context.Context, userID string, requestingUserID string) (commons.Response[models.DeleteUserResponse], error) {
	logger.Info("user service delete user request", logger.Fields{
		"userId": userID,
	})

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.DeleteUserResponse]("User not found"), err
		}
		return commons.ErrorResponse[models.DeleteUserResponse]("failed to delete user", "Unable to delete user right now"), err
	}

	if err := domain.ValidateOwnership(user.ID, requestingUserID); err != nil {
		return commons.ErrorResponse[models.DeleteUserResponse]("Access denied"), err
	}

	hasAccounts, err := s.accountRepo.ExistsByOwnerID(ctx, userID)
	if err != nil {
		logger.Error("user service delete user account check failed", err, logger.Fields{
			"userId": userID,
		})
		return commons.ErrorResponse[models.DeleteUserResponse]("failed to delete user", "Unable to delete user right now"), err
	}
	if hasAccounts {
		err := domain.ErrUserHasAccounts
		return commons.ErrorResponse[models.DeleteUserResponse]("Cannot delete user with existing bank accounts"), err
	}

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		logger.Error("user service delete user repository failed", err, logger.Fields{
			"userId": userID,
		})
		return commons.ErrorResponse[models.DeleteUserResponse]("failed to delete user", "Unable to delete user right now"), err
	}

	logger.Info("user service delete user success", logger.Fields{
		"userId": userID,
	})

	return commons.SuccessResponse("user deleted successfully", models.DeleteUserResponse{ID: userID}), nil
}

func mapUserToResponse(user domain.User) models.UserResponse {
	return models.UserResponse{
		ID:       user.ID,
		FullName: user.FullName,
		Email:    user.Email,
	}
}

func hashPassword(raw string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	return string(hashed), nil
}
