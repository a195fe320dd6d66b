package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID            uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Email         string         `json:"email" gorm:"uniqueIndex;not null"`
	Password      string         `json:"-"`
	AuthProvider  string         `json:"authProvider" gorm:"default:email"`
	Name          string         `json:"name"`
	DisplayName   string         `json:"displayName"`
	AvatarURL     string         `json:"avatarUrl"`
	Timezone      string         `json:"timezone" gorm:"default:UTC"`
	WorkdayStart  string         `json:"workdayStart" gorm:"default:09:00"`
	WorkdayEnd    string         `json:"workdayEnd" gorm:"default:17:00"`
	ActiveThemeID *uuid.UUID     `json:"activeThemeId" gorm:"type:uuid"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
	Hubs          []Hub          `json:"hubs,omitempty" gorm:"foreignKey:Owner"`
	Boards        []Board        `json:"boards,omitempty" gorm:"foreignKey:UserID"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Auth DTOs
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleAuthRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

type UpdateProfileRequest struct {
	DisplayName  *string `json:"displayName"`
	AvatarURL    *string `json:"avatarUrl"`
	Name         *string `json:"name"`
	Timezone     *string `json:"timezone"`
	WorkdayStart *string `json:"workdayStart"`
	WorkdayEnd   *string `json:"workdayEnd"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
