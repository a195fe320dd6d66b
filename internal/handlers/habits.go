package handlers

import (
	"errors"

	"github.com/arnold/lifehub-api/internal/database"
	"github.com/arnold/lifehub-api/internal/middleware"
	"github.com/arnold/lifehub-api/internal/models"
	"github.com/arnold/lifehub-api/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func GetHabits(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	query := database.DB.Where("owner = ?", userID).Order("created_at DESC")

	if hub := c.Query("hub_id"); hub != "" {
		hubID, err := uuid.Parse(hub)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid hub ID",
			})
		}
		query = query.Where("hub_id = ?", hubID)
	}

	var habits []models.Habit
	if err := query.Find(&habits).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch habits",
		})
	}

	return c.JSON(habits)
}

func CreateHabit(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.CreateHabitRequest
	if !parseBody(c, &req) {
		return nil
	}

	cadence := req.Cadence
	if cadence == "" {
		cadence = "daily"
	}

	habit := models.Habit{
		Owner:      userID,
		Name:       req.Name,
		Cadence:    cadence,
		Credits:    req.Credits,
		TargetDays: req.TargetDays,
		HubID:      req.HubID,
	}
	if cadence == "weekly" {
		zero := 0
		habit.CompletedDays = &zero
	}

	if err := database.DB.Create(&habit).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create habit",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(habit)
}

func UpdateHabit(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	habitID, ok := parseID(c, "id")
	if !ok {
		return nil
	}

	var habit models.Habit
	if err := database.DB.Where("id = ? AND owner = ?", habitID, userID).First(&habit).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Habit not found",
		})
	}

	var req models.UpdateHabitRequest
	if !parseBody(c, &req) {
		return nil
	}

	if req.Name != nil {
		habit.Name = *req.Name
	}
	if req.Cadence != nil {
		habit.Cadence = *req.Cadence
	}
	if req.Credits != nil {
		habit.Credits = *req.Credits
	}
	if req.TargetDays != nil {
		habit.TargetDays = req.TargetDays
	}
	if req.HubID != nil {
		habit.HubID = req.HubID
	}

	if err := database.DB.Save(&habit).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update habit",
		})
	}

	return c.JSON(habit)
}

func DeleteHabit(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	habitID, ok := parseID(c, "id")
	if !ok {
		return nil
	}

	if err := database.DB.Where("id = ? AND owner = ?", habitID, userID).
		Delete(&models.Habit{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete habit",
		})
	}

	return c.JSON(fiber.Map{"message": "Habit deleted"})
}

// ToggleHabit flips completed-today and moves the streak with it:
// +1 on completion, -1 floored at zero on undo, so a toggle pair always
// lands back on the original streak. Runs in a transaction against the
// stored row, which serializes rapid double toggles.
func ToggleHabit(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	habitID, ok := parseID(c, "id")
	if !ok {
		return nil
	}

	var habit models.Habit
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND owner = ?", habitID, userID).First(&habit).Error; err != nil {
			return err
		}

		if habit.CompletedToday {
			habit.CompletedToday = false
			if habit.Streak > 0 {
				habit.Streak--
			}
			if habit.Cadence == "weekly" && habit.CompletedDays != nil && *habit.CompletedDays > 0 {
				days := *habit.CompletedDays - 1
				habit.CompletedDays = &days
			}
			if habit.Credits != 0 {
				if err := services.RecordTransaction(tx, userID, -habit.Credits, "Unchecked habit: "+habit.Name, models.TransactionAdjust); err != nil {
					return err
				}
			}
		} else {
			habit.CompletedToday = true
			habit.Streak++
			if habit.Cadence == "weekly" && habit.CompletedDays != nil {
				days := *habit.CompletedDays + 1
				if habit.TargetDays != nil && days > *habit.TargetDays {
					days = *habit.TargetDays
				}
				habit.CompletedDays = &days
			}
			if habit.Credits != 0 {
				if err := services.RecordTransaction(tx, userID, habit.Credits, "Completed habit: "+habit.Name, models.TransactionEarn); err != nil {
					return err
				}
			}
		}

		return tx.Save(&habit).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Habit not found",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to toggle habit",
		})
	}

	return c.JSON(habit)
}
