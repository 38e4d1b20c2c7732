package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/banjomaryam17/socialmediaAPP/internal/httputil"
	"github.com/banjomaryam17/socialmediaAPP/internal/model"
	"github.com/banjomaryam17/socialmediaAPP/internal/service"
)

// validate checks the explicit request structs at the boundary, before
// anything reaches a service.
var validate = validator.New()

// AuthHandler groups signup and login endpoints.
type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// Signup handles account creation
// POST /auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		httputil.WriteBadRequest(w, "Username and password are required")
		return
	}

	user, err := h.userService.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrUsernameRequired), errors.Is(err, model.ErrPasswordRequired):
			httputil.WriteBadRequest(w, "Username and password are required")
		case errors.Is(err, model.ErrUsernameExists):
			httputil.WriteConflict(w, "User already exists")
		default:
			log.Printf("[ERROR] Signup handler: %v", err)
			httputil.WriteInternalError(w, "Failed to create user")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "User created successfully",
		"user":    user,
	})
}

// Login handles credential verification
// POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteBadRequest(w, "Invalid request body")
		return
	}

	if err := validate.Struct(&req); err != nil {
		httputil.WriteBadRequest(w, "Username and password are required")
		return
	}

	user, err := h.userService.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrUserNotFound):
			httputil.WriteNotFound(w, "User not found")
		case errors.Is(err, model.ErrInvalidPassword):
			httputil.WriteUnauthorized(w, "Invalid password")
		default:
			log.Printf("[ERROR] Login handler: %v", err)
			httputil.WriteInternalError(w, "Failed to login")
		}
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"user":    user,
	})
}
