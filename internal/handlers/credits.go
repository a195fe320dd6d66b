package handlers

import (
	"errors"
	"strconv"

	"github.com/arnold/lifehub-api/internal/database"
	"github.com/arnold/lifehub-api/internal/middleware"
	"github.com/arnold/lifehub-api/internal/models"
	"github.com/arnold/lifehub-api/internal/services"
	"github.com/gofiber/fiber/v2"
)

// GetCredits returns the ledger balance plus a page of recent
// transactions.
func GetCredits(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	balance, err := services.CreditsBalance(database.DB, userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch credits",
		})
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}
	offset := (page - 1) * limit

	var transactions []models.CreditsTransaction
	database.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&transactions)

	var total int64
	database.DB.Model(&models.CreditsTransaction{}).Where("user_id = ?", userID).Count(&total)

	return c.JSON(fiber.Map{
		"balance":      balance,
		"transactions": transactions,
		"total":        total,
		"page":         page,
		"limit":        limit,
	})
}

func GetThemes(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var themes []models.Theme
	if err := database.DB.Order("price ASC").Find(&themes).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch themes",
		})
	}

	var purchases []models.UserPurchase
	database.DB.Where("user_id = ? AND item_type = ?", userID, "theme").Find(&purchases)

	owned := make(map[string]bool, len(purchases))
	for _, p := range purchases {
		owned[p.ItemID.String()] = true
	}

	type storeTheme struct {
		models.Theme
		Owned bool `json:"owned"`
	}
	out := make([]storeTheme, len(themes))
	for i, t := range themes {
		out[i] = storeTheme{Theme: t, Owned: owned[t.ID.String()]}
	}

	return c.JSON(out)
}

func PurchaseTheme(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	themeID, ok := parseID(c, "id")
	if !ok {
		return nil
	}

	var theme models.Theme
	if err := database.DB.First(&theme, themeID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Theme not found",
		})
	}

	purchase, err := services.PurchaseTheme(database.DB, userID, &theme)
	if errors.Is(err, services.ErrAlreadyOwned) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Theme already owned",
		})
	}
	if errors.Is(err, services.ErrInsufficientCredits) {
		return c.Status(fiber.StatusPaymentRequired).JSON(fiber.Map{
			"error": "Not enough credits",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to purchase theme",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(purchase)
}

// ActivateTheme sets a purchased theme as the user's active theme.
func ActivateTheme(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	themeID, ok := parseID(c, "id")
	if !ok {
		return nil
	}

	var owned int64
	database.DB.Model(&models.UserPurchase{}).
		Where("user_id = ? AND item_id = ?", userID, themeID).
		Count(&owned)
	if owned == 0 {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Theme not owned",
		})
	}

	if err := database.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Update("active_theme_id", themeID).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to activate theme",
		})
	}

	return c.JSON(fiber.Map{"message": "Theme activated"})
}
