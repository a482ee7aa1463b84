package controller

import (
	"encoding/json"
	"net/http"

	"github.com/eaglebank/eagle-bank-api/internal/adapter/http/middleware"
	"github.com/eaglebank/eagle-bank-api/internal/adapter/http/models"
	"github.com/eaglebank/eagle-bank-api/internal/commons"
	"github.com/eaglebank/eagle-bank-api/internal/usecase/service_interfaces"
)

type UserController struct {
	service service_interfaces.UserService
}

func NewUserController(service service_interfaces.UserService) *UserController {
	return &UserController{service: service}
}

func (c *UserController) RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler) {
	// Signup stays open; everything else requires an authenticated caller.
	mux.Handle("POST /v1/users", http.HandlerFunc(c.createUser))
	mux.Handle("GET /v1/users/{userId}", authMiddleware(http.HandlerFunc(c.getUser)))
	mux.Handle("PUT /v1/users/{userId}", authMiddleware(http.HandlerFunc(c.updateUser)))
	mux.Handle("DELETE /v1/users/{userId}", authMiddleware(http.HandlerFunc(c.deleteUser)))
}

func (c *UserController) createUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.UserResponse]("invalid request body", err.Error()))
		return
	}

	response, err := c.service.CreateUser(r.Context(), req)
	if err != nil {
		writeJSON(w, statusOf(err, response.Message), response)
		return
	}

	writeJSON(w, http.StatusCreated, response)
}

func (c *UserController) getUser(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, commons.ErrorResponse[models.UserResponse]("unauthorized"))
		return
	}

	response, err := c.service.GetUser(r.Context(), r.PathValue("userId"), identity.UserID)
	if err != nil {
		writeJSON(w, statusOf(err, response.Message), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (c *UserController) updateUser(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, commons.ErrorResponse[models.UserResponse]("unauthorized"))
		return
	}

	var req models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[models.UserResponse]("invalid request body", err.Error()))
		return
	}

	response, err := c.service.UpdateUser(r.Context(), r.PathValue("userId"), identity.UserID, req)
	if err != nil {
		writeJSON(w, statusOf(err, response.Message), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

func (c *UserController) deleteUser(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, commons.ErrorResponse[models.DeleteUserResponse]("unauthorized"))
		return
	}

	response, err := c.service.DeleteUser(r.Context(), r.PathValue("userId"), identity.UserID)
	if err != nil {
		writeJSON(w, statusOf(err, response.Message), response)
		return
	}

	writeJSON(w, http.StatusOK, response)
}
