package controller

import (
	"encoding/json"
	"net/http"

	"github.com/eaglebank/eagle-bank-api/internal/adapter/http/middleware"
	"github.com/eaglebank/eagle-bank-api/internal/adapter/http/models"
	"github.com/eaglebank/eagle-bank-api/internal/commons"
	"github.com/eaglebank/eagle-bank-api/internal/usecase/service_interfaces"
)

type TransactionController struct {
	service service_interfaces.TransactionService
}

func NewTransactionController(service service_interfaces.TransactionService) *TransactionController {
	return &TransactionController{service: service}
}

func (c *TransactionController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	mux.Handle("POST /v1/accounts/{accountId}/transactions", authMiddleware(http.HandlerFunc(c.createTransaction)))
	mux.Handle("GET /v1/accounts/{accountId}/transactions", authMiddleware(http.HandlerFunc(c.listTransactions)))
	mux.Handle("GET /v1/accounts/{accountId}/transactions/{transactionId}", authMiddleware(http.HandlerFunc(c.getTransaction)))
}

func (c *TransactionController) createTransaction(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, commons.ErrorResponse[models.TransactionResponse]("unauthorized"))
		return
	}

	var req models.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.TransactionResponse]("invalid request body", err.Error()))
		return
	}

	response, err := c.service.CreateTransaction(r.Context(), r.PathValue("accountId"), identity.UserID, req)
	if err != nil {
		writeJSON(w, statusOf(err, response.Message), response)
		return
	}

	writeJSON(w, http.StatusCreated, response)
}

func (c *TransactionController) listTransactions(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, commons.ErrorResponse[models.ListTransactionsResponse]("unauthorized"))
		return
	}

	response, err := c.service.ListTransactions(r.Context(), r.PathValue("accountId"), identity.UserID)
	if err != nil {
		writeJSON(w, statusOf(err, response.Message), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (c *TransactionController) getTransaction(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, commons.ErrorResponse[models.TransactionResponse]("unauthorized"))
		return
	}

	response, err := c.service.GetTransaction(r.Context(), r.PathValue("accountId"), identity.UserID, r.PathValue("transactionId"))
	if err != nil {
		writeJSON(w, statusOf(err, response.Message), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}
