package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yolp/account-service/internal/api/metrics"
	"github.com/yolp/account-service/internal/core/domain"
	"github.com/yolp/account-service/internal/core/ports"
)

// AuthHandler authenticates credentials and hands out bearer tokens.
type AuthHandler struct {
	accounts ports.AccountService
	tokens   ports.TokenService
}

func NewAuthHandler(accounts ports.AccountService, tokens ports.TokenService) *AuthHandler {
	return &AuthHandler{accounts: accounts, tokens: tokens}
}

// Login authenticates a user and returns 202 with the Principal as the body
// and the bearer token in the authorization response header — not a cookie,
// not the body.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      202   {object}  domain.Principal
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	principal, err := h.accounts.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if domain.IsInvalidAuth(err) {
			metrics.LoginsTotal.WithLabelValues("denied").Inc()
		} else {
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	token, err := h.tokens.GenerateToken(*principal)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("generate token: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	c.Response().Header().Set(echo.HeaderAuthorization, token)
	return c.JSON(http.StatusAccepted, principal)
}
