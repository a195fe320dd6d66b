package handlers

import (
	"github.com/arnold/lifehub-api/internal/config"
	"github.com/arnold/lifehub-api/internal/database"
	"github.com/arnold/lifehub-api/internal/metrics"
	"github.com/arnold/lifehub-api/internal/middleware"
	"github.com/arnold/lifehub-api/internal/models"
	"github.com/arnold/lifehub-api/internal/services"
	"github.com/gofiber/fiber/v2"
)

// Events and mood are placeholder factors until those trackers carry
// real data; see config.
var dashboardConfig = config.Load()

// GetDashboardSummary computes the life score and headline numbers from
// the user's current rows. Nothing here is persisted.
func GetDashboardSummary(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var tasks []models.Task
	if err := database.DB.Where("owner = ?", userID).Find(&tasks).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch tasks",
		})
	}

	var habits []models.Habit
	if err := database.DB.Where("owner = ?", userID).Find(&habits).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch habits",
		})
	}

	balance, err := services.CreditsBalance(database.DB, userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch credits",
		})
	}

	taskRate := metrics.TaskCompletionRate(tasks)
	habitRate := metrics.HabitCompletionRate(habits)
	score := metrics.LifeScore(taskRate, habitRate, dashboardConfig.EventsFactor, dashboardConfig.MoodFactor)

	return c.JSON(fiber.Map{
		"lifeScore": score,
		"breakdown": fiber.Map{
			"tasks":  taskRate,
			"habits": habitRate,
			"events": dashboardConfig.EventsFactor,
			"mood":   dashboardConfig.MoodFactor,
		},
		"tasksCompleted":      metrics.CompletedCount(tasks),
		"tasksTotal":          len(tasks),
		"habitsCompletedToday": metrics.CompletedTodayCount(habits),
		"habitsTotal":         len(habits),
		"currentStreak":       metrics.MaxStreak(habits),
		"credits":             balance,
	})
}
