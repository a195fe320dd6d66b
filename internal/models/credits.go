package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreditsTransaction is an append-only ledger row. Balances are always
// computed as SUM(amount); rows are never updated or deleted.
type CreditsTransaction struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;index;not null"`
	Amount    int       `json:"amount" gorm:"not null"`
	Reason    string    `json:"reason" gorm:"not null"`
	Type      string    `json:"type" gorm:"not null"` // earn, spend, adjust
	CreatedAt time.Time `json:"createdAt"`
}

func (t *CreditsTransaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

const (
	TransactionEarn   = "earn"
	TransactionSpend  = "spend"
	TransactionAdjust = "adjust"
)

// Theme is a purchasable item in the rewards store.
type Theme struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null"`
	Description string    `json:"description"`
	Price       int       `json:"price" gorm:"not null"`
	Preview     string    `json:"preview"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (t *Theme) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

type UserPurchase struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `json:"userId" gorm:"type:uuid;not null;uniqueIndex:idx_user_purchases_user_item"`
	ItemType  string    `json:"itemType" gorm:"not null"`
	ItemID    uuid.UUID `json:"itemId" gorm:"type:uuid;not null;uniqueIndex:idx_user_purchases_user_item"`
	Price     int       `json:"price" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}

func (p *UserPurchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
