package handlers

import (
	"github.com/arnold/lifehub-api/internal/database"
	"github.com/arnold/lifehub-api/internal/middleware"
	"github.com/arnold/lifehub-api/internal/models"
	"github.com/gofiber/fiber/v2"
)

func GetEvents(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var events []models.Event
	if err := database.DB.Where("owner = ?", userID).
		Order("starts_at ASC").
		Find(&events).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch events",
		})
	}

	return c.JSON(events)
}

func CreateEvent(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.CreateEventRequest
	if !parseBody(c, &req) {
		return nil
	}

	event := models.Event{
		Owner:    userID,
		Title:    req.Title,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
		HubID:    req.HubID,
	}

	if err := database.DB.Create(&event).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create event",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(event)
}

func UpdateEvent(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	eventID, ok := parseID(c, "id")
	if !ok {
		return nil
	}

	var event models.Event
	if err := database.DB.Where("id = ? AND owner = ?", eventID, userID).First(&event).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Event not found",
		})
	}

	var req models.UpdateEventRequest
	if !parseBody(c, &req) {
		return nil
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.StartsAt != nil {
		event.StartsAt = *req.StartsAt
	}
	if req.EndsAt != nil {
		event.EndsAt = req.EndsAt
	}
	if req.HubID != nil {
		event.HubID = req.HubID
	}

	if err := database.DB.Save(&event).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update event",
		})
	}

	return c.JSON(event)
}

func DeleteEvent(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	eventID, ok := parseID(c, "id")
	if !ok {
		return nil
	}

	if err := database.DB.Where("id = ? AND owner = ?", eventID, userID).
		Delete(&models.Event{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete event",
		})
	}

	return c.JSON(fiber.Map{"message": "Event deleted"})
}
