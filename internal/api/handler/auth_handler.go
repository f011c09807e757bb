package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lendvault/lending-api/internal/api/metrics"
	"github.com/lendvault/lending-api/internal/core/domain"
	"github.com/lendvault/lending-api/internal/core/ports"
)

// AuthHandler handles password login and federated sign-in.
type AuthHandler struct {
	service ports.AuthService
}

func NewAuthHandler(service ports.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type googleAuthRequest struct {
	GoogleID string `json:"google_id" validate:"required"`
	Name     string `json:"name"      validate:"required"`
	Email    string `json:"email"     validate:"required"`
}

// authResponse carries the bearer token and the account it authenticates.
// The entity's credential hash is excluded from serialization.
type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

// GoogleAuth handles POST /api/auth/google.
func (h *AuthHandler) GoogleAuth(c echo.Context) error {
	var req googleAuthRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.service.GoogleUpsert(c.Request().Context(), ports.GoogleUpsertInput{
		GoogleID: req.GoogleID,
		Name:     req.Name,
		Email:    req.Email,
	})
	if err != nil {
		return err
	}

	metrics.FederatedSigninsTotal.Inc()
	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}
