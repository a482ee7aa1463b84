package service_interfaces

import (
	"context"

	"github.com/eaglebank/eagle-bank-api/internal/adapter/http/models"
	"github.com/eaglebank/eagle-bank-api/internal/commons"
)

type UserService interface {
	CreateUser(ctx context.Context, req models.CreateUserRequest) (commons.Response[models.UserResponse], error)
	GetUser(ctx context.Context, userID string, requestingUserID string) (commons.Response[models.UserResponse], error)
	UpdateUser(ctx context.Context, userID string, requestingUserID string, req models.UpdateUserRequest) (commons.Response[models.UserResponse], error)
	DeleteUser(ctx context.Context, userID string, requestingUserID string) (commons.Response[models.DeleteUserResponse], error)
}
