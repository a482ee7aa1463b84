package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/eaglebank/eagle-bank-api/internal/adapter/http/models"
	"github.com/eaglebank/eagle-bank-api/internal/adapter/repository/repo_interfaces"
	"github.com/eaglebank/eagle-bank-api/internal/auth"
	"github.com/eaglebank/eagle-bank-api/internal/commons"
	"github.com/eaglebank/eagle-bank-api/internal/domain"
	"github.com/eaglebank/eagle-bank-api/internal/logger"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo  repo_interfaces.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(userRepo repo_interfaces.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (commons.Response[models.LoginResponse], error) {
	logger.Info("auth service login request", logger.Fields{
		"email": req.Email,
	})

	if err := req.Validate(); err != nil {
		logger.Error("auth service login validation failed", err, nil)
		return commons.ErrorResponse[models.LoginResponse]("validation failed", err.Error()), err
	}

	// Missing user and wrong password must be indistinguishable.
	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			logger.Info("auth service login unknown email", logger.Fields{
				"email": req.Email,
			})
			invalidErr := fmt.Errorf("invalid credentials")
			return commons.ErrorResponse[models.LoginResponse]("Invalid credentials"), invalidErr
		}
		logger.Error("auth service login user lookup failed", err, logger.Fields{
			"email": req.Email,
		})
		return commons.ErrorResponse[models.LoginResponse]("failed to login", "Unable to login right now"), err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.Info("auth service login invalid password", logger.Fields{
			"email": req.Email,
		})
		invalidErr := fmt.Errorf("invalid credentials")
		return commons.ErrorResponse[models.LoginResponse]("Invalid credentials"), invalidErr
	}

	token, err := auth.GenerateToken(s.jwtSecret, user.ID, user.Email, s.tokenTTL)
	if err != nil {
		logger.Error("auth service login token generation failed", err, logger.Fields{
			"userId": user.ID,
		})
		return commons.ErrorResponse[models.LoginResponse]("failed to login", "Unable to login right now"), err
	}

	logger.Info("auth service login success", logger.Fields{
		"userId": user.ID,
	})

	return commons.SuccessResponse("login successful", models.LoginResponse{Token: token}), nil
}
