package transport

import (
	"errors"
	"net/http"

	"saral-shop/internal/middleware"
	"saral-shop/internal/repository"
	"saral-shop/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SignupRequest represents the registration payload
type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest represents the login payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest represents the token refresh payload
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// SetAdminRequest toggles a user's admin flag
type SetAdminRequest struct {
	IsAdmin *bool `json:"isAdmin" validate:"required"`
}

// UserProfile is the public shape of a user
type UserProfile struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

// LoginResponse is the login result
type LoginResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
	UserID       string `json:"userId"`
	UserName     string `json:"userName"`
	IsAdmin      bool   `json:"isAdmin"`
}

// UserHandler handles HTTP requests for authentication and user
// administration.
type UserHandler struct {
	users  service.UserService
	logger *zap.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(users service.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

// RegisterRoutes registers auth routes
func (h *UserHandler) RegisterRoutes(r chi.Router, authMiddleware, adminMiddleware func(http.Handler) http.Handler) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/signup", h.Signup)
		r.Post("/login", h.Login)
		r.Post("/refresh", h.Refresh)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Post("/logout", h.Logout)

			r.Group(func(r chi.Router) {
				r.Use(adminMiddleware)
				r.Get("/users", h.ListUsers)
				r.Put("/users/{userID}/admin", h.SetAdmin)
			})
		})
	})
}

// Signup handles user registration
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.users.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		respondServiceError(w, h.logger, "signup", err, zap.String("email", req.Email))
		return
	}

	h.logger.Info("User registered", zap.String("user_id", user.ID.String()))
	middleware.RespondWithJSON(w, http.StatusCreated, map[string]string{
		"message": "User registered successfully",
	})
}

// Login authenticates a user and issues tokens
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	accessToken, refreshToken, user, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			middleware.RespondWithError(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		respondServiceError(w, h.logger, "login", err, zap.String("email", req.Email))
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, LoginResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		UserID:       user.ID.String(),
		UserName:     user.Name,
		IsAdmin:      user.IsAdmin(),
	})
}

// Refresh exchanges a refresh token for a new access token
func (h *UserHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	accessToken, err := h.users.RefreshToken(r.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, service.ErrInvalidToken) || errors.Is(err, service.ErrTokenExpired) {
			middleware.RespondWithError(w, http.StatusUnauthorized, err.Error())
			return
		}
		respondServiceError(w, h.logger, "refresh_token", err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"token": accessToken})
}

// Logout revokes the presented refresh token
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.users.Logout(r.Context(), req.RefreshToken); err != nil {
		respondServiceError(w, h.logger, "logout", err)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// ListUsers returns every registered user (admin only)
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, "list_users", err)
		return
	}

	profiles := make([]UserProfile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, UserProfile{
			ID:      u.ID.String(),
			Name:    u.Name,
			Email:   u.Email,
			IsAdmin: u.IsAdmin(),
		})
	}

	middleware.RespondWithJSON(w, http.StatusOK, profiles)
}

// SetAdmin grants or revokes a user's admin role (admin only)
func (h *UserHandler) SetAdmin(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid user ID")
		return
	}

	var req SetAdminRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil || req.IsAdmin == nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid isAdmin value")
		return
	}

	if err := h.users.SetAdmin(r.Context(), userID, *req.IsAdmin); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "user not found")
			return
		}
		respondServiceError(w, h.logger, "set_admin", err,
			zap.String("user_id", userID.String()))
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, map[string]string{
		"message": "User admin status updated successfully",
	})
}
