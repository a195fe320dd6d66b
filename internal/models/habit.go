package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Habit struct {
	ID             uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Owner          uuid.UUID      `json:"owner" gorm:"type:uuid;index;not null"`
	Name           string         `json:"name" gorm:"not null"`
	Cadence        string         `json:"cadence" gorm:"not null;default:daily"` // daily, weekly
	Streak         int            `json:"streak" gorm:"not null;default:0"`      // never negative
	CompletedToday bool           `json:"completedToday" gorm:"default:false"`
	Credits        int            `json:"credits" gorm:"not null;default:0"`
	TargetDays     *int           `json:"targetDays"`
	CompletedDays  *int           `json:"completedDays"`
	HubID          *uuid.UUID     `json:"hubId" gorm:"type:uuid;index"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
}

func (h *Habit) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// Habit DTOs
type CreateHabitRequest struct {
	Name       string     `json:"name" validate:"required"`
	Cadence    string     `json:"cadence" validate:"omitempty,oneof=daily weekly"`
	Credits    int        `json:"credits" validate:"gte=0"`
	TargetDays *int       `json:"targetDays" validate:"omitempty,gte=1,lte=7"`
	HubID      *uuid.UUID `json:"hubId"`
}

type UpdateHabitRequest struct {
	Name       *string    `json:"name"`
	Cadence    *string    `json:"cadence" validate:"omitempty,oneof=daily weekly"`
	Credits    *int       `json:"credits" validate:"omitempty,gte=0"`
	TargetDays *int       `json:"targetDays" validate:"omitempty,gte=1,lte=7"`
	HubID      *uuid.UUID `json:"hubId"`
}
