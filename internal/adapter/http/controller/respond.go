package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/eaglebank/eagle-bank-api/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// statusForError maps the domain error taxonomy onto HTTP statuses at the
// transport boundary. Unknown errors, including ledger inconsistency, are
// surfaced as 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrDuplicateEmail),
		errors.Is(err, domain.ErrUserHasAccounts),
		errors.Is(err, domain.ErrAccountHasTransactions):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// statusOf distinguishes request-shape and credential failures from the rest:
// services report them with fixed envelope messages.
func statusOf(err error, message string) int {
	if message == "validation failed" {
		return http.StatusBadRequest
	}
	if message == "Invalid credentials" {
		return http.StatusUnauthorized
	}

	return statusForError(err)
}
