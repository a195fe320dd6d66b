package database

import (
	"strings"

	"github.com/arnold/lifehub-api/internal/config"
	"github.com/arnold/lifehub-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Connect(cfg *config.Config) error {
	var dialector gorm.Dialector

	// Use PostgreSQL if URL starts with postgres, otherwise SQLite
	if strings.HasPrefix(cfg.DatabaseURL, "postgres") {
		dialector = postgres.Open(cfg.DatabaseURL)
	} else {
		dialector = sqlite.Open(cfg.DatabaseURL)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return err
	}

	DB = db
	return nil
}

func Migrate() error {
	return DB.AutoMigrate(
		&models.User{},
		&models.Hub{},
		&models.Task{},
		&models.Habit{},
		&models.CalendarDay{},
		&models.PlannedTask{},
		&models.Board{},
		&models.List{},
		&models.Card{},
		&models.Subtask{},
		&models.Sprint{},
		&models.CreditsTransaction{},
		&models.Theme{},
		&models.UserPurchase{},
		&models.Goal{},
		&models.Event{},
	)
}

// SeedThemes inserts the store catalog if it is empty.
func SeedThemes() error {
	var count int64
	if err := DB.Model(&models.Theme{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	themes := []models.Theme{
		{Name: "Aurora", Description: "Beautiful northern lights inspired theme", Price: 150, Preview: "linear-gradient(135deg, #13d392 0%, #1a2980 100%)"},
		{Name: "Sunset", Description: "Warm evening gradient theme", Price: 120, Preview: "linear-gradient(135deg, #ff6e7f 0%, #bfe9ff 100%)"},
		{Name: "Midnight", Description: "Deep dark mode with violet accents", Price: 200, Preview: "linear-gradient(135deg, #232526 0%, #414345 100%)"},
	}
	return DB.Create(&themes).Error
}
