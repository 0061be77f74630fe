// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"runclub/internal/delivery/http/response"
	domainerrors "runclub/internal/domain/errors"
	"runclub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Success messages, kept identical to the deployed service.
const (
	signupSuccessMessage = "회원가입 완료"
	loginSuccessMessage  = "로그인 성공"
)

// signupRequest is the wire shape of POST /signup. Only email, password and
// nickname are required; the profile fields pass through as given.
type signupRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
	Nickname string `json:"nickname" validate:"required"`

	FullName            *string  `json:"full_name"`
	BirthYear           *int     `json:"birth_year"`
	Gender              *string  `json:"gender"`
	City                *string  `json:"city"`
	RunningLevel        *string  `json:"running_level"`
	PreferredDistanceKM *float64 `json:"preferred_distance_km"`
	WeeklyGoalRuns      *int     `json:"weekly_goal_runs"`
}

// loginRequest is the wire shape of POST /login.
type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthHandler holds dependencies for the signup and login handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Signup handles the user registration request.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrSignupFieldsMissing
	}
	if err := c.Validate(&req); err != nil {
		// Required fields missing or empty; reject before any store call.
		return domainerrors.ErrSignupFieldsMissing
	}

	input := &usecase.SignupInput{
		Email:               req.Email,
		Password:            req.Password,
		Nickname:            req.Nickname,
		FullName:            req.FullName,
		BirthYear:           req.BirthYear,
		Gender:              req.Gender,
		City:                req.City,
		RunningLevel:        req.RunningLevel,
		PreferredDistanceKM: req.PreferredDistanceKM,
		WeeklyGoalRuns:      req.WeeklyGoalRuns,
	}

	if _, err := h.uc.Signup(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, signupSuccessMessage)
}

// Login handles the user login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrLoginFieldsMissing
	}
	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrLoginFieldsMissing
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithToken(c, loginSuccessMessage, output.Token, output.User)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
