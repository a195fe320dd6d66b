package handlers

import (
	"github.com/arnold/lifehub-api/internal/database"
	"github.com/arnold/lifehub-api/internal/middleware"
	"github.com/arnold/lifehub-api/internal/models"
	"github.com/gofiber/fiber/v2"
)

func GetSprints(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var sprints []models.Sprint
	if err := database.DB.Where("user_id = ?", userID).
		Order("start_date DESC").
		Find(&sprints).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch sprints",
		})
	}

	return c.JSON(sprints)
}

func CreateSprint(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.CreateSprintRequest
	if !parseBody(c, &req) {
		return nil
	}

	sprint := models.Sprint{
		UserID:    userID,
		Name:      req.Name,
		Goal:      req.Goal,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}

	if err := database.DB.Create(&sprint).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create sprint",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(sprint)
}

func UpdateSprint(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	sprintID, ok := parseID(c, "id")
	if !ok {
		return nil
	}

	var sprint models.Sprint
	if err := database.DB.Where("id = ? AND user_id = ?", sprintID, userID).First(&sprint).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Sprint not found",
		})
	}

	var req models.UpdateSprintRequest
	if !parseBody(c, &req) {
		return nil
	}

	if req.Name != nil {
		sprint.Name = *req.Name
	}
	if req.Goal != nil {
		sprint.Goal = req.Goal
	}
	if req.StartDate != nil {
		sprint.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		sprint.EndDate = *req.EndDate
	}

	if err := database.DB.Save(&sprint).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update sprint",
		})
	}

	return c.JSON(sprint)
}

func DeleteSprint(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	sprintID, ok := parseID(c, "id")
	if !ok {
		return nil
	}

	if err := database.DB.Where("id = ? AND user_id = ?", sprintID, userID).
		Delete(&models.Sprint{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete sprint",
		})
	}

	return c.JSON(fiber.Map{"message": "Sprint deleted"})
}
