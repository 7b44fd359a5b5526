package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"kodbank/internal/errors"
	"kodbank/internal/middleware"
	"kodbank/internal/service"
)

// UserHandler handles authenticated user endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// BalanceResponse represents an account balance response.
type BalanceResponse struct {
	Username string `json:"username"`
	Balance  string `json:"balance"`
}

// GetBalance godoc
// @Summary Get the authenticated user's balance
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} BalanceResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /user/balance [get]
func (h *UserHandler) GetBalance(c echo.Context) error {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "invalid token",
			Code:  "INVALID_TOKEN",
		})
	}

	balance, err := h.userService.GetBalance(c.Request().Context(), identity.Username)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, BalanceResponse{
		Username: identity.Username,
		Balance:  balance.String(),
	})
}
