package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/yolp/account-service/internal/api/metrics"
	"github.com/yolp/account-service/internal/core/domain"
	"github.com/yolp/account-service/internal/core/ports"
)

// UserHandler serves signup and the admin-only user listings. The listing
// routes rely on the Guard middleware having already authorized the
// requester; no role checks happen here.
type UserHandler struct {
	accounts ports.AccountService
}

func NewUserHandler(accounts ports.AccountService) *UserHandler {
	return &UserHandler{accounts: accounts}
}

// Signup registers a new account and returns it with 201.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Signup form"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /users [post]
func (h *UserHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.accounts.Signup(c.Request().Context(), ports.SignupInput{
		Username: req.Username,
		Password: req.Password1,
		Confirm:  req.Password2,
	})
	if err != nil {
		if domain.IsInvalidUser(err) {
			metrics.SignupsTotal.WithLabelValues("rejected").Inc()
		} else {
			metrics.SignupsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.SignupsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, user)
}

// GetAllUsers returns every registered user. Admin only.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {array}   domain.User
// @Failure      401  {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) GetAllUsers(c echo.Context) error {
	users, err := h.accounts.GetAllUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// SearchUsers returns users whose username starts with the given prefix.
// Admin only.
//
// @Summary      Search users by username prefix
// @Tags         users
// @Produce      json
// @Param        username  query     string  false  "Username prefix (case-sensitive)"
// @Success      200       {array}   domain.User
// @Failure      401       {object}  errorResponse
// @Router       /users/search [get]
func (h *UserHandler) SearchUsers(c echo.Context) error {
	users, err := h.accounts.GetUsersByUsernamePrefix(c.Request().Context(), c.QueryParam("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}
