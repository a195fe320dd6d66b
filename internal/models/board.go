package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Board struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID      `json:"userId" gorm:"type:uuid;index;not null"`
	Name      string         `json:"name" gorm:"not null"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
	Lists     []List         `json:"lists,omitempty" gorm:"foreignKey:BoardID"`
}

func (b *Board) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

type List struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	BoardID   uuid.UUID      `json:"boardId" gorm:"type:uuid;index;not null"`
	Name      string         `json:"name" gorm:"not null"`
	Position  int            `json:"position" gorm:"not null"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
	Cards     []Card         `json:"cards,omitempty" gorm:"foreignKey:ListID"`
}

func (l *List) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// Board DTOs
type CreateBoardRequest struct {
	Name string `json:"name" validate:"required"`
}

type UpdateBoardRequest struct {
	Name *string `json:"name"`
}

type CreateListRequest struct {
	Name string `json:"name" validate:"required"`
}

type UpdateListRequest struct {
	Name *string `json:"name"`
}
