package handlers

import (
	"errors"
	"time"

	"github.com/arnold/lifehub-api/internal/database"
	"github.com/arnold/lifehub-api/internal/export"
	"github.com/arnold/lifehub-api/internal/middleware"
	"github.com/arnold/lifehub-api/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAttendance returns the last 60 days of calendar records, newest
// first.
func GetAttendance(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	since := time.Now().AddDate(0, 0, -60).Format("2006-01-02")

	var days []models.CalendarDay
	if err := database.DB.Where("user_id = ? AND date >= ?", userID, since).
		Preload("PlannedTasks").
		Order("date DESC").
		Find(&days).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch attendance",
		})
	}

	return c.JSON(days)
}

// getOrCreateCalendarDay returns the unique (user, date) row, inserting
// the default record on first touch. When two requests race on the
// insert, the composite unique index rejects the loser; that path
// re-reads and returns the winner's row instead of failing.
func getOrCreateCalendarDay(userID uuid.UUID, date string) (*models.CalendarDay, error) {
	var day models.CalendarDay
	err := database.DB.Where("user_id = ? AND date = ?", userID, date).First(&day).Error
	if err == nil {
		return &day, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	day = models.CalendarDay{
		UserID:                userID,
		Date:                  date,
		WentToCollege:         true,
		CompletedPlannedTasks: false,
	}
	if createErr := database.DB.Create(&day).Error; createErr != nil {
		// Another request may have created the row first
		var existing models.CalendarDay
		if err := database.DB.Where("user_id = ? AND date = ?", userID, date).First(&existing).Error; err == nil {
			return &existing, nil
		}
		return nil, createErr
	}
	return &day, nil
}

func parseDateParam(c *fiber.Ctx) (string, bool) {
	date := c.Params("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid date, expected YYYY-MM-DD",
		})
		return "", false
	}
	return date, true
}

func UpdateAttendance(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	date, ok := parseDateParam(c)
	if !ok {
		return nil
	}

	var req models.UpdateAttendanceRequest
	if !parseBody(c, &req) {
		return nil
	}

	day, err := getOrCreateCalendarDay(userID, date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to record attendance",
		})
	}

	if req.WentToCollege != nil {
		day.WentToCollege = *req.WentToCollege
	}
	if req.AbsenceType != nil {
		day.AbsenceType = req.AbsenceType
	}
	if req.AbsenceNote != nil {
		day.AbsenceNote = req.AbsenceNote
	}
	if req.AbsenceAttachmentURL != nil {
		day.AbsenceAttachmentURL = req.AbsenceAttachmentURL
	}

	if err := database.DB.Save(day).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to record attendance",
		})
	}

	return c.JSON(day)
}

func MarkTasksCompleted(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	date, ok := parseDateParam(c)
	if !ok {
		return nil
	}

	var req models.MarkTasksCompletedRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	day, err := getOrCreateCalendarDay(userID, date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to record attendance",
		})
	}

	day.CompletedPlannedTasks = req.Completed
	if err := database.DB.Save(day).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to record attendance",
		})
	}

	return c.JSON(day)
}

// AddPlannedTask pins a kanban card onto a calendar day.
func AddPlannedTask(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	date, ok := parseDateParam(c)
	if !ok {
		return nil
	}

	var req models.AddPlannedTaskRequest
	if !parseBody(c, &req) {
		return nil
	}

	day, err := getOrCreateCalendarDay(userID, date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to record attendance",
		})
	}

	planned := models.PlannedTask{
		CalendarDayID: day.ID,
		CardID:        req.CardID,
	}
	if err := database.DB.Create(&planned).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to plan task",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(planned)
}

func TogglePlannedTask(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	plannedID, ok := parseID(c, "id")
	if !ok {
		return nil
	}

	var planned models.PlannedTask
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Joins("JOIN calendar_days ON calendar_days.id = planned_tasks.calendar_day_id").
			Where("planned_tasks.id = ? AND calendar_days.user_id = ?", plannedID, userID).
			First(&planned).Error; err != nil {
			return err
		}
		planned.Completed = !planned.Completed
		return tx.Save(&planned).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Planned task not found",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to toggle planned task",
		})
	}

	return c.JSON(planned)
}

func DeletePlannedTask(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)
	plannedID, ok := parseID(c, "id")
	if !ok {
		return nil
	}

	if err := database.DB.
		Where("id IN (?)", database.DB.Model(&models.PlannedTask{}).
			Select("planned_tasks.id").
			Joins("JOIN calendar_days ON calendar_days.id = planned_tasks.calendar_day_id").
			Where("planned_tasks.id = ? AND calendar_days.user_id = ?", plannedID, userID)).
		Delete(&models.PlannedTask{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to remove planned task",
		})
	}

	return c.JSON(fiber.Map{"message": "Planned task removed"})
}

// ExportAttendance streams the attendance history as a CSV download.
func ExportAttendance(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	var days []models.CalendarDay
	if err := database.DB.Where("user_id = ?", userID).
		Order("date DESC").
		Find(&days).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch attendance",
		})
	}

	filename := export.AttendanceFilename(time.Now())
	c.Set("Content-Type", "text/csv; charset=utf-8")
	c.Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	return c.SendString(export.AttendanceCSV(days))
}
