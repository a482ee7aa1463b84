package controller

import (
	"encoding/json"
	"net/http"

	"github.com/eaglebank/eagle-bank-api/internal/adapter/http/models"
	"github.com/eaglebank/eagle-bank-api/internal/commons"
	"github.com/eaglebank/eagle-bank-api/internal/usecase/service_interfaces"
)

type AuthController struct {
	service service_interfaces.AuthService
}

func NewAuthController(service service_interfaces.AuthService) *AuthController {
	return &AuthController{service: service}
}

// Login and signup are the only unauthenticated routes.
func (c *AuthController) RegisterRoutes(mux *http.ServeMux, _ func(http.Handler) http.Handler) {
	mux.Handle("POST /v1/auth/login", http.HandlerFunc(c.login))
}

func (c *AuthController) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.LoginResponse]("invalid request body", err.Error()))
		return
	}

	response, err := c.service.Login(r.Context(), req)
	if err != nil {
		writeJSON(w, statusOf(err, response.Message), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}
