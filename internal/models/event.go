package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Event struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Owner     uuid.UUID      `json:"owner" gorm:"type:uuid;index;not null"`
	Title     string         `json:"title" gorm:"not null"`
	StartsAt  time.Time      `json:"startsAt" gorm:"not null"`
	EndsAt    *time.Time     `json:"endsAt"`
	HubID     *uuid.UUID     `json:"hubId" gorm:"type:uuid;index"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// Event DTOs
type CreateEventRequest struct {
	Title    string     `json:"title" validate:"required"`
	StartsAt time.Time  `json:"startsAt" validate:"required"`
	EndsAt   *time.Time `json:"endsAt"`
	HubID    *uuid.UUID `json:"hubId"`
}

type UpdateEventRequest struct {
	Title    *string    `json:"title"`
	StartsAt *time.Time `json:"startsAt"`
	EndsAt   *time.Time `json:"endsAt"`
	HubID    *uuid.UUID `json:"hubId"`
}
