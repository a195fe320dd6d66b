package worker

import (
	"context"
	"time"

	"github.com/arnold/lifehub-api/internal/logger"
	"github.com/arnold/lifehub-api/internal/models"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

const TaskHabitRollover = "habits:rollover"

// HandleHabitRollover runs once per night. Daily habits that were not
// checked off lose their streak; the completed-today flag clears for
// the new day either way. Weekly habits restart their progress counter
// on Mondays.
func HandleHabitRollover(db *gorm.DB) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		now := time.Now()
		if err := rolloverHabits(db, now); err != nil {
			return err
		}
		logger.L.Infow("habit rollover complete", "weekday", now.Weekday().String())
		return nil
	}
}

func rolloverHabits(db *gorm.DB, now time.Time) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Habit{}).
			Where("cadence = ? AND completed_today = ?", "daily", false).
			Update("streak", 0).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Habit{}).
			Where("cadence = ?", "daily").
			Update("completed_today", false).Error; err != nil {
			return err
		}

		if now.Weekday() == time.Monday {
			if err := tx.Model(&models.Habit{}).
				Where("cadence = ?", "weekly").
				Updates(map[string]interface{}{
					"completed_today": false,
					"completed_days":  0,
				}).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
