package db

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/terraincognita07/mealtrail/internal/models"
	"gorm.io/gorm"
)

func openTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()
	return openTestDatabaseAt(t, filepath.Join(t.TempDir(), "mealtrail-test.db"))
}

func openTestDatabaseAt(t *testing.T, databasePath string) *gorm.DB {
	t.Helper()

	testLogger := logrus.New()
	testLogger.SetOutput(io.Discard)

	database, err := OpenSQLite(databasePath, testLogger)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("resolve sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return database
}

func createTestUser(t *testing.T, database *gorm.DB, id string, email string, sessionID string) models.User {
	t.Helper()

	user := models.User{
		ID:        id,
		Name:      "Test User",
		Email:     email,
		SessionID: sessionID,
		CreatedAt: time.Now().UTC(),
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func createTestMeal(t *testing.T, database *gorm.DB, id string, userID string, date int64, onDiet bool, createdAt time.Time) models.Meal {
	t.Helper()

	meal := models.Meal{
		ID:          id,
		Name:        "Meal " + id,
		Description: "test meal",
		IsOnDiet:    onDiet,
		Date:        date,
		UserID:      userID,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	if err := database.Create(&meal).Error; err != nil {
		t.Fatalf("create meal: %v", err)
	}
	return meal
}
