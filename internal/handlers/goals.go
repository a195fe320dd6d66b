package handlers

import (
	"github.com/arnold/lifehub-api/internal/database"
	"github.com/arnold/lifehub-api/internal/middleware"
	"github.com/arnold/lifehub-api/internal/models"
	"github.com/gofiber/fiber/v2"
)

func GetGoals(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var goals []models.Goal
	if err := database.DB.Where("owner = ?", userID).
		Order("created_at DESC").
		Find(&goals).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch goals",
		})
	}

	return c.JSON(goals)
}

func CreateGoal(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.CreateGoalRequest
	if !parseBody(c, &req) {
		return nil
	}

	goal := models.Goal{
		Owner:      userID,
		Title:      req.Title,
		HubID:      req.HubID,
		TargetDate: req.TargetDate,
	}

	if err := database.DB.Create(&goal).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create goal",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(goal)
}

func UpdateGoal(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	goalID, ok := parseID(c, "id")
	if !ok {
		return nil
	}

	var goal models.Goal
	if err := database.DB.Where("id = ? AND owner = ?", goalID, userID).First(&goal).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Goal not found",
		})
	}

	var req models.UpdateGoalRequest
	if !parseBody(c, &req) {
		return nil
	}

	if req.Title != nil {
		goal.Title = *req.Title
	}
	if req.HubID != nil {
		goal.HubID = req.HubID
	}
	if req.TargetDate != nil {
		goal.TargetDate = req.TargetDate
	}
	if req.Progress != nil {
		goal.Progress = *req.Progress
		goal.Completed = *req.Progress >= 100
	}
	if req.Completed != nil {
		goal.Completed = *req.Completed
	}

	if err := database.DB.Save(&goal).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update goal",
		})
	}

	return c.JSON(goal)
}

func DeleteGoal(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	goalID, ok := parseID(c, "id")
	if !ok {
		return nil
	}

	if err := database.DB.Where("id = ? AND owner = ?", goalID, userID).
		Delete(&models.Goal{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete goal",
		})
	}

	return c.JSON(fiber.Map{"message": "Goal deleted"})
}
