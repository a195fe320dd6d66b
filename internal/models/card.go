package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Card struct {
	ID            uuid.UUID         `json:"id" gorm:"type:uuid;primaryKey"`
	ListID        uuid.UUID         `json:"listId" gorm:"type:uuid;index;not null"`
	Title         string            `json:"title" gorm:"not null"`
	Description   *string           `json:"description"`
	Priority      string            `json:"priority" gorm:"not null;default:P2"` // P0..P3
	EstimateHours *float64          `json:"estimateHours"`
	DueDate       *time.Time        `json:"dueDate"`
	StartDate     *time.Time        `json:"startDate"`
	Labels        datatypes.JSON    `json:"labels" gorm:"default:'[]'"`
	Attachments   datatypes.JSON    `json:"attachments" gorm:"default:'[]'"`
	Status        string            `json:"status" gorm:"not null;default:todo"` // todo, doing, done
	SprintID      *uuid.UUID        `json:"sprintId" gorm:"type:uuid;index"`
	Position      int               `json:"position" gorm:"not null"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt    `json:"-" gorm:"index"`
	Subtasks      []Subtask         `json:"subtasks,omitempty" gorm:"foreignKey:CardID"`
}

func (c *Card) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type Subtask struct {
	ID            uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	CardID        uuid.UUID      `json:"cardId" gorm:"type:uuid;index;not null"`
	Title         string         `json:"title" gorm:"not null"`
	Done          bool           `json:"done" gorm:"default:false"`
	EstimateHours *float64       `json:"estimateHours"`
	Position      int            `json:"position" gorm:"not null"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `json:"-" gorm:"index"`
}

func (s *Subtask) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Card DTOs
type CreateCardRequest struct {
	Title         string     `json:"title" validate:"required"`
	Description   *string    `json:"description"`
	Priority      string     `json:"priority" validate:"omitempty,oneof=P0 P1 P2 P3"`
	EstimateHours *float64   `json:"estimateHours"`
	DueDate       *time.Time `json:"dueDate"`
	StartDate     *time.Time `json:"startDate"`
	Labels        []string   `json:"labels"`
	SprintID      *uuid.UUID `json:"sprintId"`
}

type UpdateCardRequest struct {
	Title         *string    `json:"title"`
	Description   *string    `json:"description"`
	Priority      *string    `json:"priority" validate:"omitempty,oneof=P0 P1 P2 P3"`
	EstimateHours *float64   `json:"estimateHours"`
	DueDate       *time.Time `json:"dueDate"`
	StartDate     *time.Time `json:"startDate"`
	Labels        []string   `json:"labels"`
	Attachments   []string   `json:"attachments"`
	Status        *string    `json:"status" validate:"omitempty,oneof=todo doing done"`
	SprintID      *uuid.UUID `json:"sprintId"`
}

type CreateSubtaskRequest struct {
	Title         string   `json:"title" validate:"required"`
	EstimateHours *float64 `json:"estimateHours"`
}

type UpdateSubtaskRequest struct {
	Title         *string  `json:"title"`
	Done          *bool    `json:"done"`
	EstimateHours *float64 `json:"estimateHours"`
}
