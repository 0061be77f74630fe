package model

import (
	"time"

	"runclub/internal/domain/entity"
)

// UserModel mirrors the 'users' table. IDs are store-assigned bigserial
// values; the unique index on email backs the duplicate-signup check.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"type:varchar(255);uniqueIndex:idx_users_email;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Nickname     string `gorm:"type:varchar(100);not null"`

	FullName            *string  `gorm:"type:varchar(100)"`
	BirthYear           *int     `gorm:"type:integer"`
	Gender              *string  `gorm:"type:varchar(20)"`
	City                *string  `gorm:"type:varchar(100)"`
	RunningLevel        *string  `gorm:"type:varchar(20)"`
	PreferredDistanceKM *float64 `gorm:"column:preferred_distance_km;type:numeric(6,2)"`
	WeeklyGoalRuns      *int     `gorm:"type:integer"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ToDomain maps the persistence model to the pure domain entity.
func (m *UserModel) ToDomain() *entity.User {
	user := &entity.User{
		ID:                  m.ID,
		Email:               m.Email,
		PasswordHash:        m.PasswordHash,
		Nickname:            m.Nickname,
		FullName:            m.FullName,
		BirthYear:           m.BirthYear,
		Gender:              m.Gender,
		City:                m.City,
		PreferredDistanceKM: m.PreferredDistanceKM,
		WeeklyGoalRuns:      m.WeeklyGoalRuns,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
	if m.RunningLevel != nil {
		level := entity.RunningLevel(*m.RunningLevel)
		user.RunningLevel = &level
	}

	return user
}

// FromDomain maps a domain entity to the persistence model.
func FromDomain(user *entity.User) *UserModel {
	m := &UserModel{
		ID:                  user.ID,
		Email:               user.Email,
		PasswordHash:        user.PasswordHash,
		Nickname:            user.Nickname,
		FullName:            user.FullName,
		BirthYear:           user.BirthYear,
		Gender:              user.Gender,
		City:                user.City,
		PreferredDistanceKM: user.PreferredDistanceKM,
		WeeklyGoalRuns:      user.WeeklyGoalRuns,
		CreatedAt:           user.CreatedAt,
		UpdatedAt:           user.UpdatedAt,
	}
	if user.RunningLevel != nil {
		level := string(*user.RunningLevel)
		m.RunningLevel = &level
	}

	return m
}
