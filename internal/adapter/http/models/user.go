package models

import (
	"errors"
	"strings"
)

type CreateUserRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r CreateUserRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.FullName) == "" {
		errs = append(errs, "fullName is required")
	}
	email := strings.TrimSpace(r.Email)
	if email == "" {
		errs = append(errs, "email is required")
	} else if !looksLikeEmail(email) {
		errs = append(errs, "email format is invalid")
	}
	if strings.TrimSpace(r.Password) == "" {
		errs = append(errs, "password is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

// UpdateUserRequest replaces name, email and password in full.
type UpdateUserRequest = CreateUserRequest

type UserResponse struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

type DeleteUserResponse struct {
	ID string `json:"id"`
}

func looksLikeEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	return !strings.ContainsAny(email, " \t")
}
