package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/eaglebank/eagle-bank-api/internal/adapter/http/models"
	"github.com/eaglebank/eagle-bank-api/internal/adapter/repository/memory"
	"github.com/eaglebank/eagle-bank-api/internal/domain"
	"github.com/eaglebank/eagle-bank-api/internal/usecase/services"
	"golang.org/x/crypto/bcrypt"
)

func TestUserServiceCreateUserHashesPassword(t *testing.T) {
	svc := services.NewUserService(userRepoStub{
		createFn: func(_ context.Context, user domain.User) (domain.User, error) {
			if user.PasswordHash == "" || user.PasswordHash == "hunter2" {
				t.Fatal("expected hashed password before persistence")
			}
			if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter2")); err != nil {
				t.Fatalf("stored hash does not verify against raw password: %v", err)
			}
			user.ID = "u-1"
			user.CreatedAt = time.Now().UTC()
			user.UpdatedAt = time.Now().UTC()
			return user, nil
		},
	}, accountRepoStub{})

	resp, err := svc.CreateUser(context.Background(), models.CreateUserRequest{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "hunter2",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if resp.Data == nil || resp.Data.ID != "u-1" {
		t.Fatalf("unexpected response data: %+v", resp.Data)
	}
	if resp.Data.Email != "ada@example.com" {
		t.Fatalf("unexpected email in response: %q", resp.Data.Email)
	}
}

func TestUserServiceCreateUserValidationError(t *testing.T) {
	svc := services.NewUserService(userRepoStub{}, accountRepoStub{})

	_, err := svc.CreateUser(context.Background(), models.CreateUserRequest{})
	if err == nil {
		t.Fatal("expected validation error for empty create user request")
	}
}

func TestUserServiceCreateUserDuplicateEmailLeavesStoreUnchanged(t *testing.T) {
	userRepo := memory.NewUserRepository()
	svc := services.NewUserService(userRepo, memory.NewAccountRepository())

	req := models.CreateUserRequest{
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "hunter2",
	}
	if _, err := svc.CreateUser(context.Background(), req); err != nil {
		t.Fatalf("first create: %v", err)
	}

	req.FullName = "Another Ada"
	_, err := svc.CreateUser(context.Background(), req)
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
	if userRepo.Count() != 1 {
		t.Fatalf("expected user count 1 after duplicate create, got %d", userRepo.Count())
	}
}

func TestUserServiceGetUserOtherUserDenied(t *testing.T) {
	svc := services.NewUserService(userRepoStub{
		getByIDFn: func(_ context.Context, id string) (domain.User, error) {
			return domain.User{ID: id, FullName: "Ada Lovelace", Email: "ada@example.com"}, nil
		},
	}, accountRepoStub{})

	resp, err := svc.GetUser(context.Background(), "u-1", "u-2")
	if !errors.Is(err, domain.ErrAccessDenied) {
		t.Fatalf("expected ErrAccessDenied, got %v", err)
	}
	if resp.Data != nil {
		t.Fatal("expected no user fields in denied response")
	}
}

func TestUserServiceGetUserNotFound(t *testing.T) {
	svc := services.NewUserService(userRepoStub{
		getByIDFn: func(_ context.Context, _ string) (domain.User, error) {
			return domain.User{}, domain.ErrRecordNotFound
		},
	}, accountRepoStub{})

	_, err := svc.GetUser(context.Background(), "missing", "missing")
	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestUserServiceUpdateUserReplacesProfile(t *testing.T) {
	var updated domain.User
	svc := services.NewUserService(userRepoStub{
		getByIDFn: func(_ context.Context, id string) (domain.User, error) {
			return domain.User{ID: id, FullName: "Ada Lovelace", Email: "ada@example.com", PasswordHash: "old-hash"}, nil
		},
		updateFn: func(_ context.Context, user domain.User) (domain.User, error) {
			updated = user
			return user, nil
		},
	}, accountRepoStub{})

	_, err := svc.UpdateUser(context.Background(), "u-1", "u-1", models.UpdateUserRequest{
		FullName: "Ada King",
		Email:    "ada.king@example.com",
		Password: "new-password",
	})
	if err != nil {
		t.Fatalf("update user: %v", err)
	}
	if updated.FullName != "Ada King" || updated.Email != "ada.king@example.com" {
		t.Fatalf("profile not fully replaced: %+v", updated)
	}
	if updated.PasswordHash == "old-hash" {
		t.Fatal("expected password hash to be replaced")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("new-password")); err != nil {
		t.Fatalf("new hash does not verify: %v", err)
	}
}

func TestUserServiceDeleteUserWithAccountsConflict(t *testing.T) {
	userRepo := memory.NewUserRepository()
	accountRepo := memory.NewAccountRepository()
	svc := services.NewUserService(userRepo, accountRepo)

	created, err := userRepo.Create(context.Background(), domain.User{
		FullName:     "Ada Lovelace",
		Email:        "ada@example.com",
		PasswordHash: "hash",
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if _, err := accountRepo.Create(context.Background(), domain.BankAccount{
		OwnerID:     created.ID,
		AccountType: "personal",
	}); err != nil {
		t.Fatalf("seed account: %v", err)
	}

	_, err = svc.DeleteUser(context.Background(), created.ID, created.ID)
	if !errors.Is(err, domain.ErrUserHasAccounts) {
		t.Fatalf("expected ErrUserHasAccounts, got %v", err)
	}
	if _, err := userRepo.GetByID(context.Background(), created.ID); err != nil {
		t.Fatalf("user row must survive a blocked delete: %v", err)
	}
}

func TestUserServiceDeleteUserWithoutAccounts(t *testing.T) {
	userRepo := memory.NewUserRepository()
	svc := services.NewUserService(userRepo, memory.NewAccountRepository())

	created, err := userRepo.Create(context.Background(), domain.User{
		FullName:     "Ada Lovelace",
		Email:        "ada@example.com",
		PasswordHash: "hash",
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	if _, err := svc.DeleteUser(context.Background(), created.ID, created.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}
	if _, err := userRepo.GetByID(context.Background(), created.ID); !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected user to be gone, got %v", err)
	}
}
