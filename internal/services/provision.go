package services

import (
	"github.com/arnold/lifehub-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var defaultHubs = []models.Hub{
	{Title: "Academics", Slug: "academics", Color: "hub-academics", Icon: "graduation-cap"},
	{Title: "Tech", Slug: "tech", Color: "hub-tech", Icon: "cpu"},
	{Title: "Fitness", Slug: "fitness", Color: "hub-fitness", Icon: "dumbbell"},
	{Title: "Relationships", Slug: "relationships", Color: "hub-relationships", Icon: "heart"},
	{Title: "Personal", Slug: "personal", Color: "hub-personal", Icon: "sparkles"},
}

var defaultLists = []string{"Backlog", "To Do", "Doing", "Done"}

// EnsureDefaults provisions the starter hubs and the default kanban
// board for a new account. It is idempotent: calling it for an account
// that already has hubs or boards changes nothing. Returns whether
// anything was created.
func EnsureDefaults(db *gorm.DB, userID uuid.UUID) (bool, error) {
	created := false

	err := db.Transaction(func(tx *gorm.DB) error {
		var hubCount int64
		if err := tx.Model(&models.Hub{}).Where("owner = ?", userID).Count(&hubCount).Error; err != nil {
			return err
		}
		if hubCount == 0 {
			hubs := make([]models.Hub, len(defaultHubs))
			for i, h := range defaultHubs {
				h.Owner = userID
				h.IsDefault = true
				hubs[i] = h
			}
			if err := tx.Create(&hubs).Error; err != nil {
				return err
			}
			created = true
		}

		var boardCount int64
		if err := tx.Model(&models.Board{}).Where("user_id = ?", userID).Count(&boardCount).Error; err != nil {
			return err
		}
		if boardCount == 0 {
			board := models.Board{UserID: userID, Name: "My Tasks"}
			if err := tx.Create(&board).Error; err != nil {
				return err
			}
			if err := CreateDefaultLists(tx, board.ID); err != nil {
				return err
			}
			created = true
		}

		return nil
	})

	return created, err
}

// CreateDefaultLists attaches the four standard lists to a board at
// positions 0 through 3.
func CreateDefaultLists(tx *gorm.DB, boardID uuid.UUID) error {
	lists := make([]models.List, len(defaultLists))
	for i, name := range defaultLists {
		lists[i] = models.List{BoardID: boardID, Name: name, Position: i}
	}
	return tx.Create(&lists).Error
}
