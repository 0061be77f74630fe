// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"runclub/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new runner.
// Email, Password and Nickname are mandatory; the rest of the profile is
// optional and stored verbatim.
type SignupInput struct {
	Email    string
	Password string
	Nickname string

	FullName            *string
	BirthYear           *int
	Gender              *string
	City                *string
	RunningLevel        *string
	PreferredDistanceKM *float64
	WeeklyGoalRuns      *int
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// SignupOutput returns the newly created user. Signup deliberately issues
// no token; login is a separate required step.
type SignupOutput struct {
	User *entity.User
}

// LoginOutput returns the issued bearer token and the client-safe
// projection of the authenticated user.
type LoginOutput struct {
	Token string
	User  *entity.PublicProfile
}

// AuthUsecase defines the interface for the signup and login flows.
// This is the contract that the delivery layer (HTTP handlers) depends on.
type AuthUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
