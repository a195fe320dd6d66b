package services

import (
	"errors"

	"github.com/arnold/lifehub-api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrAlreadyOwned        = errors.New("item already owned")
)

// RecordTransaction appends a ledger row. Amount may be negative for
// spends and reversals.
func RecordTransaction(tx *gorm.DB, userID uuid.UUID, amount int, reason, txType string) error {
	row := models.CreditsTransaction{
		UserID: userID,
		Amount: amount,
		Reason: reason,
		Type:   txType,
	}
	return tx.Create(&row).Error
}

// CreditsBalance sums the ledger for the user.
func CreditsBalance(db *gorm.DB, userID uuid.UUID) (int, error) {
	var balance int
	err := db.Model(&models.CreditsTransaction{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&balance).Error
	return balance, err
}

// PurchaseTheme spends credits on a theme atomically: balance check,
// purchase row, negative ledger row.
func PurchaseTheme(db *gorm.DB, userID uuid.UUID, theme *models.Theme) (*models.UserPurchase, error) {
	var purchase models.UserPurchase

	err := db.Transaction(func(tx *gorm.DB) error {
		var owned int64
		if err := tx.Model(&models.UserPurchase{}).
			Where("user_id = ? AND item_id = ?", userID, theme.ID).
			Count(&owned).Error; err != nil {
			return err
		}
		if owned > 0 {
			return ErrAlreadyOwned
		}

		balance, err := CreditsBalance(tx, userID)
		if err != nil {
			return err
		}
		if balance < theme.Price {
			return ErrInsufficientCredits
		}

		purchase = models.UserPurchase{
			UserID:   userID,
			ItemType: "theme",
			ItemID:   theme.ID,
			Price:    theme.Price,
		}
		if err := tx.Create(&purchase).Error; err != nil {
			return err
		}

		return RecordTransaction(tx, userID, -theme.Price, "Purchased theme: "+theme.Name, models.TransactionSpend)
	})
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}
