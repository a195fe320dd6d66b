package handlers

import (
	"encoding/json"
	"errors"

	"github.com/arnold/lifehub-api/internal/database"
	"github.com/arnold/lifehub-api/internal/middleware"
	"github.com/arnold/lifehub-api/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// listOwned reports whether the list sits on a board owned by the user.
func listOwned(listID, userID uuid.UUID) bool {
	var count int64
	database.DB.Model(&models.List{}).
		Joins("JOIN boards ON boards.id = lists.board_id").
		Where("lists.id = ? AND boards.user_id = ?", listID, userID).
		Count(&count)
	return count > 0
}

func jsonStrings(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	raw, _ := json.Marshal(values)
	return datatypes.JSON(raw)
}

func GetCards(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	listID, ok := parseID(c, "listId")
	if !ok {
		return nil
	}

	if !listOwned(listID, userID) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "List not found",
		})
	}

	var cards []models.Card
	if err := database.DB.Where("list_id = ?", listID).
		Order("position ASC").
		Find(&cards).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch cards",
		})
	}

	return c.JSON(cards)
}

// CreateCard appends the card at position = current count in the list.
func CreateCard(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	listID, ok := parseID(c, "listId")
	if !ok {
		return nil
	}

	if !listOwned(listID, userID) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "List not found",
		})
	}

	var req models.CreateCardRequest
	if !parseBody(c, &req) {
		return nil
	}

	priority := req.Priority
	if priority == "" {
		priority = "P2"
	}

	var card models.Card
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Card{}).Where("list_id = ?", listID).Count(&count).Error; err != nil {
			return err
		}

		card = models.Card{
			ListID:        listID,
			Title:         req.Title,
			Description:   req.Description,
			Priority:      priority,
			EstimateHours: req.EstimateHours,
			DueDate:       req.DueDate,
			StartDate:     req.StartDate,
			Labels:        jsonStrings(req.Labels),
			Attachments:   jsonStrings(nil),
			Status:        "todo",
			SprintID:      req.SprintID,
			Position:      int(count),
		}
		return tx.Create(&card).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create card",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(card)
}

func cardForUser(db *gorm.DB, cardID, userID uuid.UUID) (*models.Card, error) {
	var card models.Card
	err := db.
		Joins("JOIN lists ON lists.id = cards.list_id").
		Joins("JOIN boards ON boards.id = lists.board_id").
		Where("cards.id = ? AND boards.user_id = ?", cardID, userID).
		First(&card).Error
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func UpdateCard(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	cardID, ok := parseID(c, "id")
	if !ok {
		return nil
	}

	card, err := cardForUser(database.DB, cardID, userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Card not found",
		})
	}

	var req models.UpdateCardRequest
	if !parseBody(c, &req) {
		return nil
	}

	if req.Title != nil {
		card.Title = *req.Title
	}
	if req.Description != nil {
		card.Description = req.Description
	}
	if req.Priority != nil {
		card.Priority = *req.Priority
	}
	if req.EstimateHours != nil {
		card.EstimateHours = req.EstimateHours
	}
	if req.DueDate != nil {
		card.DueDate = req.DueDate
	}
	if req.StartDate != nil {
		card.StartDate = req.StartDate
	}
	if req.Labels != nil {
		card.Labels = jsonStrings(req.Labels)
	}
	if req.Attachments != nil {
		card.Attachments = jsonStrings(req.Attachments)
	}
	if req.Status != nil {
		card.Status = *req.Status
	}
	if req.SprintID != nil {
		card.SprintID = req.SprintID
	}

	if err := database.DB.Save(card).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update card",
		})
	}

	return c.JSON(card)
}

func DeleteCard(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	cardID, ok := parseID(c, "id")
	if !ok {
		return nil
	}

	card, err := cardForUser(database.DB, cardID, userID)
	if err != nil {
		// Already gone is fine
		return c.JSON(fiber.Map{"message": "Card deleted"})
	}

	if err := database.DB.Delete(card).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete card",
		})
	}

	return c.JSON(fiber.Map{"message": "Card deleted"})
}

func ToggleCard(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	cardID, ok := parseID(c, "id")
	if !ok {
		return nil
	}

	var card *models.Card
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		card, err = cardForUser(tx, cardID, userID)
		if err != nil {
			return err
		}

		if card.Status == "done" {
			card.Status = "todo"
		} else {
			card.Status = "done"
		}

		return tx.Save(card).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Card not found",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to toggle card",
		})
	}

	return c.JSON(card)
}

func GetSubtasks(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	cardID, ok := parseID(c, "cardId")
	if !ok {
		return nil
	}

	if _, err := cardForUser(database.DB, cardID, userID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Card not found",
		})
	}

	var subtasks []models.Subtask
	if err := database.DB.Where("card_id = ?", cardID).
		Order("position ASC").
		Find(&subtasks).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch subtasks",
		})
	}

	return c.JSON(subtasks)
}

func CreateSubtask(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	cardID, ok := parseID(c, "cardId")
	if !ok {
		return nil
	}

	if _, err := cardForUser(database.DB, cardID, userID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Card not found",
		})
	}

	var req models.CreateSubtaskRequest
	if !parseBody(c, &req) {
		return nil
	}

	var count int64
	database.DB.Model(&models.Subtask{}).Where("card_id = ?", cardID).Count(&count)

	subtask := models.Subtask{
		CardID:        cardID,
		Title:         req.Title,
		EstimateHours: req.EstimateHours,
		Position:      int(count),
	}

	if err := database.DB.Create(&subtask).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create subtask",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(subtask)
}

func UpdateSubtask(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	subtaskID, ok := parseID(c, "id")
	if !ok {
		return nil
	}

	var subtask models.Subtask
	if err := database.DB.
		Joins("JOIN cards ON cards.id = subtasks.card_id").
		Joins("JOIN lists ON lists.id = cards.list_id").
		Joins("JOIN boards ON boards.id = lists.board_id").
		Where("subtasks.id = ? AND boards.user_id = ?", subtaskID, userID).
		First(&subtask).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Subtask not found",
		})
	}

	var req models.UpdateSubtaskRequest
	if !parseBody(c, &req) {
		return nil
	}

	if req.Title != nil {
		subtask.Title = *req.Title
	}
	if req.Done != nil {
		subtask.Done = *req.Done
	}
	if req.EstimateHours != nil {
		subtask.EstimateHours = req.EstimateHours
	}

	if err := database.DB.Save(&subtask).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update subtask",
		})
	}

	return c.JSON(subtask)
}

func DeleteSubtask(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	subtaskID, ok := parseID(c, "id")
	if !ok {
		return nil
	}

	var subtask models.Subtask
	if err := database.DB.
		Joins("JOIN cards ON cards.id = subtasks.card_id").
		Joins("JOIN lists ON lists.id = cards.list_id").
		Joins("JOIN boards ON boards.id = lists.board_id").
		Where("subtasks.id = ? AND boards.user_id = ?", subtaskID, userID).
		First(&subtask).Error; err != nil {
		// Already gone is fine
		return c.JSON(fiber.Map{"message": "Subtask deleted"})
	}

	if err := database.DB.Delete(&subtask).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete subtask",
		})
	}

	return c.JSON(fiber.Map{"message": "Subtask deleted"})
}
