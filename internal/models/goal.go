package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Goal struct {
	ID         uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Owner      uuid.UUID      `json:"owner" gorm:"type:uuid;index;not null"`
	Title      string         `json:"title" gorm:"not null"`
	HubID      *uuid.UUID     `json:"hubId" gorm:"type:uuid;index"`
	TargetDate *string        `json:"targetDate"` // YYYY-MM-DD
	Progress   int            `json:"progress" gorm:"not null;default:0"` // 0..100
	Completed  bool           `json:"completed" gorm:"default:false"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}

func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// Goal DTOs
type CreateGoalRequest struct {
	Title      string     `json:"title" validate:"required"`
	HubID      *uuid.UUID `json:"hubId"`
	TargetDate *string    `json:"targetDate" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateGoalRequest struct {
	Title      *string    `json:"title"`
	HubID      *uuid.UUID `json:"hubId"`
	TargetDate *string    `json:"targetDate" validate:"omitempty,datetime=2006-01-02"`
	Progress   *int       `json:"progress" validate:"omitempty,gte=0,lte=100"`
	Completed  *bool      `json:"completed"`
}
