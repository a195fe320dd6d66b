package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Sprint struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID      `json:"userId" gorm:"type:uuid;index;not null"`
	Name      string         `json:"name" gorm:"not null"`
	Goal      *string        `json:"goal"`
	StartDate string         `json:"startDate" gorm:"not null"` // YYYY-MM-DD
	EndDate   string         `json:"endDate" gorm:"not null"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (s *Sprint) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Sprint DTOs
type CreateSprintRequest struct {
	Name      string  `json:"name" validate:"required"`
	Goal      *string `json:"goal"`
	StartDate string  `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string  `json:"endDate" validate:"required,datetime=2006-01-02"`
}

type UpdateSprintRequest struct {
	Name      *string `json:"name"`
	Goal      *string `json:"goal"`
	StartDate *string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
}
