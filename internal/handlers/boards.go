package handlers

import (
	"github.com/arnold/lifehub-api/internal/database"
	"github.com/arnold/lifehub-api/internal/middleware"
	"github.com/arnold/lifehub-api/internal/models"
	"github.com/arnold/lifehub-api/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func GetBoards(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var boards []models.Board
	if err := database.DB.Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&boards).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch boards",
		})
	}

	return c.JSON(boards)
}

func GetBoard(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	boardID, ok := parseID(c, "id")
	if !ok {
		return nil
	}

	var board models.Board
	if err := database.DB.
		Where("id = ? AND user_id = ?", boardID, userID).
		Preload("Lists", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Lists.Cards", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Lists.Cards.Subtasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&board).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Board not found",
		})
	}

	return c.JSON(board)
}

// CreateBoard makes the board and its four standard lists in one
// transaction.
func CreateBoard(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.CreateBoardRequest
	if !parseBody(c, &req) {
		return nil
	}

	board := models.Board{
		UserID: userID,
		Name:   req.Name,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&board).Error; err != nil {
			return err
		}
		return services.CreateDefaultLists(tx, board.ID)
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create board",
		})
	}

	database.DB.Preload("Lists", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).First(&board, board.ID)

	return c.Status(fiber.StatusCreated).JSON(board)
}

func UpdateBoard(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	boardID, ok := parseID(c, "id")
	if !ok {
		return nil
	}

	var board models.Board
	if err := database.DB.Where("id = ? AND user_id = ?", boardID, userID).First(&board).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Board not found",
		})
	}

	var req models.UpdateBoardRequest
	if !parseBody(c, &req) {
		return nil
	}

	if req.Name != nil {
		board.Name = *req.Name
	}

	if err := database.DB.Save(&board).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update board",
		})
	}

	return c.JSON(board)
}

func DeleteBoard(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	boardID, ok := parseID(c, "id")
	if !ok {
		return nil
	}

	if err := database.DB.Where("id = ? AND user_id = ?", boardID, userID).
		Delete(&models.Board{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete board",
		})
	}

	return c.JSON(fiber.Map{"message": "Board deleted"})
}

// boardOwned reports whether the board belongs to the user.
func boardOwned(boardID, userID uuid.UUID) bool {
	var count int64
	database.DB.Model(&models.Board{}).
		Where("id = ? AND user_id = ?", boardID, userID).
		Count(&count)
	return count > 0
}

func GetLists(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	boardID, ok := parseID(c, "boardId")
	if !ok {
		return nil
	}

	if !boardOwned(boardID, userID) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Board not found",
		})
	}

	var lists []models.List
	if err := database.DB.Where("board_id = ?", boardID).
		Order("position ASC").
		Find(&lists).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch lists",
		})
	}

	return c.JSON(lists)
}

func CreateList(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	boardID, ok := parseID(c, "boardId")
	if !ok {
		return nil
	}

	if !boardOwned(boardID, userID) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Board not found",
		})
	}

	var req models.CreateListRequest
	if !parseBody(c, &req) {
		return nil
	}

	// Append after the current lists
	var count int64
	database.DB.Model(&models.List{}).Where("board_id = ?", boardID).Count(&count)

	list := models.List{
		BoardID:  boardID,
		Name:     req.Name,
		Position: int(count),
	}

	if err := database.DB.Create(&list).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create list",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(list)
}

func UpdateList(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	listID, ok := parseID(c, "id")
	if !ok {
		return nil
	}

	var list models.List
	if err := database.DB.
		Joins("JOIN boards ON boards.id = lists.board_id").
		Where("lists.id = ? AND boards.user_id = ?", listID, userID).
		First(&list).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "List not found",
		})
	}

	var req models.UpdateListRequest
	if !parseBody(c, &req) {
		return nil
	}

	if req.Name != nil {
		list.Name = *req.Name
	}

	if err := database.DB.Save(&list).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update list",
		})
	}

	return c.JSON(list)
}

func DeleteList(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	listID, ok := parseID(c, "id")
	if !ok {
		return nil
	}

	var list models.List
	if err := database.DB.
		Joins("JOIN boards ON boards.id = lists.board_id").
		Where("lists.id = ? AND boards.user_id = ?", listID, userID).
		First(&list).Error; err != nil {
		// Already gone is fine
		return c.JSON(fiber.Map{"message": "List deleted"})
	}

	if err := database.DB.Delete(&list).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete list",
		})
	}

	return c.JSON(fiber.Map{"message": "List deleted"})
}
