package handlers

import (
	"github.com/arnold/lifehub-api/internal/database"
	"github.com/arnold/lifehub-api/internal/middleware"
	"github.com/arnold/lifehub-api/internal/models"
	"github.com/gofiber/fiber/v2"
)

func GetHubs(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var hubs []models.Hub
	if err := database.DB.Where("owner = ?", userID).
		Order("created_at ASC").
		Find(&hubs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch hubs",
		})
	}

	return c.JSON(hubs)
}

func CreateHub(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var req models.CreateHubRequest
	if !parseBody(c, &req) {
		return nil
	}

	hub := models.Hub{
		Owner: userID,
		Title: req.Title,
		Slug:  req.Slug,
		Color: req.Color,
		Icon:  req.Icon,
	}

	if err := database.DB.Create(&hub).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create hub",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(hub)
}

func UpdateHub(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	hubID, ok := parseID(c, "id")
	if !ok {
		return nil
	}

	var hub models.Hub
	if err := database.DB.Where("id = ? AND owner = ?", hubID, userID).First(&hub).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Hub not found",
		})
	}

	var req models.UpdateHubRequest
	if !parseBody(c, &req) {
		return nil
	}

	if req.Title != nil {
		hub.Title = *req.Title
	}
	if req.Slug != nil {
		hub.Slug = *req.Slug
	}
	if req.Color != nil {
		hub.Color = *req.Color
	}
	if req.Icon != nil {
		hub.Icon = *req.Icon
	}

	if err := database.DB.Save(&hub).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update hub",
		})
	}

	return c.JSON(hub)
}

// DeleteHub removes the hub only. Tasks and habits keep their hub_id;
// referential cleanup is the store's concern. The delete is hard so the
// (owner, slug) unique index frees the slug for re-creation.
func DeleteHub(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	hubID, ok := parseID(c, "id")
	if !ok {
		return nil
	}

	if err := database.DB.Where("id = ? AND owner = ?", hubID, userID).
		Delete(&models.Hub{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete hub",
		})
	}

	return c.JSON(fiber.Map{"message": "Hub deleted"})
}
