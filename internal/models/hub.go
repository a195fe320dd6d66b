package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Hub rows are hard-deleted: the (owner, slug) unique index must free
// the slug as soon as the hub is gone so it can be re-created.
type Hub struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Owner     uuid.UUID `json:"owner" gorm:"type:uuid;not null;uniqueIndex:idx_hubs_owner_slug"`
	Title     string    `json:"title" gorm:"not null"`
	Slug      string    `json:"slug" gorm:"not null;uniqueIndex:idx_hubs_owner_slug"`
	Color     string    `json:"color"`
	Icon      string    `json:"icon"`
	IsDefault bool      `json:"isDefault" gorm:"default:false"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (h *Hub) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// Hub DTOs
type CreateHubRequest struct {
	Title string `json:"title" validate:"required"`
	Slug  string `json:"slug" validate:"required"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

type UpdateHubRequest struct {
	Title *string `json:"title"`
	Slug  *string `json:"slug"`
	Color *string `json:"color"`
	Icon  *string `json:"icon"`
}
