package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Task struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Owner       uuid.UUID      `json:"owner" gorm:"type:uuid;index;not null"`
	Title       string         `json:"title" gorm:"not null"`
	Description *string        `json:"description"`
	Status      string         `json:"status" gorm:"not null;default:todo"` // todo, doing, done
	Priority    int            `json:"priority" gorm:"not null;default:2"`  // 1 = high, 3 = low
	DueAt       *time.Time     `json:"dueAt"`
	Credits     int            `json:"credits" gorm:"not null;default:0"`
	HubID       *uuid.UUID     `json:"hubId" gorm:"type:uuid;index"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// Task DTOs
type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required"`
	Description *string    `json:"description"`
	Status      string     `json:"status" validate:"omitempty,oneof=todo doing done"`
	Priority    int        `json:"priority" validate:"omitempty,oneof=1 2 3"`
	DueAt       *time.Time `json:"dueAt"`
	Credits     int        `json:"credits" validate:"gte=0"`
	HubID       *uuid.UUID `json:"hubId"`
}

type UpdateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status" validate:"omitempty,oneof=todo doing done"`
	Priority    *int       `json:"priority" validate:"omitempty,oneof=1 2 3"`
	DueAt       *time.Time `json:"dueAt"`
	Credits     *int       `json:"credits" validate:"omitempty,gte=0"`
	HubID       *uuid.UUID `json:"hubId"`
}
