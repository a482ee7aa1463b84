package controller

import (
	"encoding/json"
	"net/http"

	"github.com/eaglebank/eagle-bank-api/internal/adapter/http/middleware"
	"github.com/eaglebank/eagle-bank-api/internal/adapter/http/models"
	"github.com/eaglebank/eagle-bank-api/internal/commons"
	"github.com/eaglebank/eagle-bank-api/internal/usecase/service_interfaces"
)

type AccountController struct {
	service service_interfaces.AccountService
}

func NewAccountController(service service_interfaces.AccountService) *AccountController {
	return &AccountController{service: service}
}

func (c *AccountController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	mux.Handle("POST /v1/accounts", authMiddleware(http.HandlerFunc(c.createAccount)))
	mux.Handle("GET /v1/accounts", authMiddleware(http.HandlerFunc(c.listAccounts)))
	mux.Handle("GET /v1/accounts/{accountId}", authMiddleware(http.HandlerFunc(c.getAccount)))
	mux.Handle("PUT /v1/accounts/{accountId}", authMiddleware(http.HandlerFunc(c.updateAccount)))
	mux.Handle("DELETE /v1/accounts/{accountId}", authMiddleware(http.HandlerFunc(c.deleteAccount)))
}

func (c *AccountController) createAccount(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, commons.ErrorResponse[models.AccountResponse]("unauthorized"))
		return
	}

	var req models.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.AccountResponse]("invalid request body", err.Error()))
		return
	}

	response, err := c.service.CreateAccount(r.Context(), identity.UserID, req)
	if err != nil {
		writeJSON(w, statusOf(err, response.Message), response)
		return
	}

	writeJSON(w, http.StatusCreated, response)
}

func (c *AccountController) listAccounts(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, commons.ErrorResponse[models.ListAccountsResponse]("unauthorized"))
		return
	}

	response, err := c.service.ListAccounts(r.Context(), identity.UserID)
	if err != nil {
		writeJSON(w, statusOf(err, response.Message), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (c *AccountController) getAccount(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, commons.ErrorResponse[models.AccountResponse]("unauthorized"))
		return
	}

	response, err := c.service.GetAccount(r.Context(), r.PathValue("accountId"), identity.UserID)
	if err != nil {
		writeJSON(w, statusOf(err, response.Message), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (c *AccountController) updateAccount(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, commons.ErrorResponse[models.AccountResponse]("unauthorized"))
		return
	}

	var req models.UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.AccountResponse]("invalid request body", err.Error()))
		return
	}

	response, err := c.service.UpdateAccount(r.Context(), r.PathValue("accountId"), identity.UserID, req)
	if err != nil {
		writeJSON(w, statusOf(err, response.Message), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (c *AccountController) deleteAccount(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, commons.ErrorResponse[models.DeleteAccountResponse]("unauthorized"))
		return
	}

	response, err := c.service.DeleteAccount(r.Context(), r.PathValue("accountId"), identity.UserID)
	if err != nil {
		writeJSON(w, statusOf(err, response.Message), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}
