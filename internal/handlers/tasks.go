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

func GetTasks(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	query := database.DB.Where("owner = ?", userID).Order("created_at DESC")

	// Optional hub scoping
	if hub := c.Query("hub_id"); hub != "" {
		hubID, err := uuid.Parse(hub)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid hub ID",
			})
		}
		query = query.Where("hub_id = ?", hubID)
	}

	var tasks []models.Task
	if err := query.Find(&tasks).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch tasks",
		})
	}

	return c.JSON(tasks)
}

func CreateTask(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.CreateTaskRequest
	if !parseBody(c, &req) {
		return nil
	}

	status := req.Status
	if status == "" {
		status = "todo"
	}
	priority := req.Priority
	if priority == 0 {
		priority = 2
	}

	task := models.Task{
		Owner:       userID,
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Priority:    priority,
		DueAt:       req.DueAt,
		Credits:     req.Credits,
		HubID:       req.HubID,
	}

	if err := database.DB.Create(&task).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create task",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(task)
}

func UpdateTask(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	taskID, ok := parseID(c, "id")
	if !ok {
		return nil
	}

	var task models.Task
	if err := database.DB.Where("id = ? AND owner = ?", taskID, userID).First(&task).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Task not found",
		})
	}

	var req models.UpdateTaskRequest
	if !parseBody(c, &req) {
		return nil
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = req.Description
	}
	if req.Status != nil {
		task.Status = *req.Status
	}
	if req.Priority != nil {
		task.Priority = *req.Priority
	}
	if req.DueAt != nil {
		task.DueAt = req.DueAt
	}
	if req.Credits != nil {
		task.Credits = *req.Credits
	}
	if req.HubID != nil {
		task.HubID = req.HubID
	}

	if err := database.DB.Save(&task).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update task",
		})
	}

	return c.JSON(task)
}

// DeleteTask is a silent no-op when the row is already gone (deleted by
// another session).
func DeleteTask(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	taskID, ok := parseID(c, "id")
	if !ok {
		return nil
	}

	if err := database.DB.Where("id = ? AND owner = ?", taskID, userID).
		Delete(&models.Task{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete task",
		})
	}

	return c.JSON(fiber.Map{"message": "Task deleted"})
}

// ToggleTask flips done/todo inside a transaction so rapid double
// toggles serialize on the stored row instead of racing on a stale
// client copy. Completion posts the task's credits to the ledger; the
// reverse toggle posts a compensating negative entry.
func ToggleTask(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	taskID, ok := parseID(c, "id")
	if !ok {
		return nil
	}

	var task models.Task
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND owner = ?", taskID, userID).First(&task).Error; err != nil {
			return err
		}

		if task.Status == "done" {
			task.Status = "todo"
			if task.Credits != 0 {
				if err := services.RecordTransaction(tx, userID, -task.Credits, "Reopened task: "+task.Title, models.TransactionAdjust); err != nil {
					return err
				}
			}
		} else {
			task.Status = "done"
			if task.Credits != 0 {
				if err := services.RecordTransaction(tx, userID, task.Credits, "Completed task: "+task.Title, models.TransactionEarn); err != nil {
					return err
				}
			}
		}

		return tx.Save(&task).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Task not found",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to toggle task",
		})
	}

	return c.JSON(task)
}
