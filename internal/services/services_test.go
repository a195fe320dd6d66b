package services

import (
	"path/filepath"
	"testing"

	"github.com/arnold/lifehub-api/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Hub{},
		&models.Board{},
		&models.List{},
		&models.CreditsTransaction{},
		&models.Theme{},
		&models.UserPurchase{},
	))
	return db
}

func TestEnsureDefaultsProvisionsNewAccount(t *testing.T) {
	db := testDB(t)
	userID := uuid.New()

	created, err := EnsureDefaults(db, userID)
	require.NoError(t, err)
	assert.True(t, created)

	var hubs []models.Hub
	require.NoError(t, db.Where("owner = ?", userID).Order("created_at ASC").Find(&hubs).Error)
	require.Len(t, hubs, 5)

	titles := make([]string, len(hubs))
	for i, h := range hubs {
		titles[i] = h.Title
		assert.True(t, h.IsDefault)
	}
	assert.ElementsMatch(t, []string{"Academics", "Tech", "Fitness", "Relationships", "Personal"}, titles)

	var boards []models.Board
	require.NoError(t, db.Where("user_id = ?", userID).Find(&boards).Error)
	require.Len(t, boards, 1)

	var lists []models.List
	require.NoError(t, db.Where("board_id = ?", boards[0].ID).Order("position ASC").Find(&lists).Error)
	require.Len(t, lists, 4)
	for i, name := range []string{"Backlog", "To Do", "Doing", "Done"} {
		assert.Equal(t, name, lists[i].Name)
		assert.Equal(t, i, lists[i].Position)
	}
}

func TestEnsureDefaultsIsIdempotent(t *testing.T) {
	db := testDB(t)
	userID := uuid.New()

	created, err := EnsureDefaults(db, userID)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = EnsureDefaults(db, userID)
	require.NoError(t, err)
	assert.False(t, created)

	var hubCount, boardCount int64
	db.Model(&models.Hub{}).Where("owner = ?", userID).Count(&hubCount)
	db.Model(&models.Board{}).Where("user_id = ?", userID).Count(&boardCount)
	assert.EqualValues(t, 5, hubCount)
	assert.EqualValues(t, 1, boardCount)
}

func TestEnsureDefaultsDoesNotTouchOtherUsers(t *testing.T) {
	db := testDB(t)
	first := uuid.New()
	second := uuid.New()

	_, err := EnsureDefaults(db, first)
	require.NoError(t, err)

	created, err := EnsureDefaults(db, second)
	require.NoError(t, err)
	assert.True(t, created)

	var hubCount int64
	db.Model(&models.Hub{}).Where("owner = ?", second).Count(&hubCount)
	assert.EqualValues(t, 5, hubCount)
}

func TestCreditsBalanceSumsLedger(t *testing.T) {
	db := testDB(t)
	userID := uuid.New()

	balance, err := CreditsBalance(db, userID)
	require.NoError(t, err)
	assert.Equal(t, 0, balance)

	require.NoError(t, RecordTransaction(db, userID, 50, "Completed task: report", models.TransactionEarn))
	require.NoError(t, RecordTransaction(db, userID, 30, "Completed habit: reading", models.TransactionEarn))

	balance, err = CreditsBalance(db, userID)
	require.NoError(t, err)
	assert.Equal(t, 80, balance)

	// A -20/+20 pair leaves the balance unchanged
	require.NoError(t, RecordTransaction(db, userID, -20, "Reopened task: report", models.TransactionAdjust))
	require.NoError(t, RecordTransaction(db, userID, 20, "Completed task: report", models.TransactionEarn))

	balance, err = CreditsBalance(db, userID)
	require.NoError(t, err)
	assert.Equal(t, 80, balance)
}

func TestCreditsBalanceIsPerUser(t *testing.T) {
	db := testDB(t)
	alice := uuid.New()
	bob := uuid.New()

	require.NoError(t, RecordTransaction(db, alice, 100, "Completed task: thesis", models.TransactionEarn))

	balance, err := CreditsBalance(db, bob)
	require.NoError(t, err)
	assert.Equal(t, 0, balance)
}

func TestPurchaseTheme(t *testing.T) {
	db := testDB(t)
	userID := uuid.New()
	theme := models.Theme{Name: "Aurora", Price: 150}
	require.NoError(t, db.Create(&theme).Error)

	// Not enough credits yet
	_, err := PurchaseTheme(db, userID, &theme)
	assert.ErrorIs(t, err, ErrInsufficientCredits)

	require.NoError(t, RecordTransaction(db, userID, 200, "Completed task: big one", models.TransactionEarn))

	purchase, err := PurchaseTheme(db, userID, &theme)
	require.NoError(t, err)
	assert.Equal(t, theme.ID, purchase.ItemID)
	assert.Equal(t, 150, purchase.Price)

	balance, err := CreditsBalance(db, userID)
	require.NoError(t, err)
	assert.Equal(t, 50, balance)

	// Buying again is rejected and charges nothing
	_, err = PurchaseTheme(db, userID, &theme)
	assert.ErrorIs(t, err, ErrAlreadyOwned)

	balance, _ = CreditsBalance(db, userID)
	assert.Equal(t, 50, balance)
}

func TestPurchaseThemeRollsBackOnFailure(t *testing.T) {
	db := testDB(t)
	userID := uuid.New()
	theme := models.Theme{Name: "Midnight", Price: 100}
	require.NoError(t, db.Create(&theme).Error)
	require.NoError(t, RecordTransaction(db, userID, 100, "Completed task", models.TransactionEarn))

	_, err := PurchaseTheme(db, userID, &theme)
	require.NoError(t, err)

	// Failed second purchase must not leave a dangling ledger row
	var txCount int64
	db.Model(&models.CreditsTransaction{}).Where("user_id = ?", userID).Count(&txCount)
	assert.EqualValues(t, 2, txCount)
}
