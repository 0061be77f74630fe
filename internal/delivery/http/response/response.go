package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Body is the wire format of every endpoint, kept byte-compatible with the
// deployed mobile app: {success, message} plus token and user on login.
type Body struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
	User    any    `json:"user,omitempty"`
}

// Success writes a confirmation-only success response.
func Success(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Body{
		Success: true,
		Message: message,
	})
}

// SuccessWithToken writes the login success response carrying the bearer
// token and the public projection of the user.
func SuccessWithToken(c echo.Context, message, token string, user any) error {
	return c.JSON(http.StatusOK, Body{
		Success: true,
		Message: message,
		Token:   token,
		User:    user,
	})
}

// Error writes a failure response. The message is the only detail exposed
// to clients.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Body{
		Success: false,
		Message: message,
	})
}
