// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// RunningLevel is the self-reported experience level of a runner.
// The backend stores whatever the client sends; the mobile app is the
// source of truth for the allowed values.
type RunningLevel string

const (
	RunningLevelBeginner     RunningLevel = "BEGINNER"
	RunningLevelIntermediate RunningLevel = "INTERMEDIATE"
	RunningLevelAdvanced     RunningLevel = "ADVANCED"
)

// User is the single persisted entity of the service: one account of the
// running-club app. Email is the login key and is unique across all users.
// PasswordHash is internal to the store and the auth flow and must never
// reach a client.
type User struct {
	ID           int64  // Assigned by the store on creation.
	Email        string // Unique, stored case-sensitive.
	PasswordHash string // bcrypt hash, salt embedded.
	Nickname     string // Display name, required at signup.

	// Optional profile attributes, stored verbatim (nil when absent).
	FullName            *string
	BirthYear           *int
	Gender              *string
	City                *string
	RunningLevel        *RunningLevel
	PreferredDistanceKM *float64
	WeeklyGoalRuns      *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PublicProfile is the client-safe projection of a User returned on login.
type PublicProfile struct {
	ID           int64         `json:"id"`
	Email        string        `json:"email"`
	Nickname     string        `json:"nickname"`
	RunningLevel *RunningLevel `json:"running_level"`
	City         *string       `json:"city"`
}

// Public returns the projection of the user that may be sent to clients.
func (u *User) Public() *PublicProfile {
	return &PublicProfile{
		ID:           u.ID,
		Email:        u.Email,
		Nickname:     u.Nickname,
		RunningLevel: u.RunningLevel,
		City:         u.City,
	}
}
