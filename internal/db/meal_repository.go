package db

import (
	"github.com/terraincognita07/mealtrail/internal/models"
	"gorm.io/gorm"
)

type MealRepository struct {
	database *gorm.DB
}

func NewMealRepository(database *gorm.DB) *MealRepository {
	return &MealRepository{database: database}
}

func (repo *MealRepository) Create(meal *models.Meal) error {
	return repo.database.Create(meal).Error
}

// ListByUser returns the user's meals newest-first. Equal dates fall back to
// insertion order so the listing is stable across calls.
func (repo *MealRepository) ListByUser(userID string) ([]models.Meal, error) {
	meals := make([]models.Meal, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC, id DESC").
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

// ListByUserChronological returns the user's meals oldest-first, the order
// the streak scan requires.
func (repo *MealRepository) ListByUserChronological(userID string) ([]models.Meal, error) {
	meals := make([]models.Meal, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date ASC, created_at ASC, id ASC").
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

// FindByIDForUser filters on both the meal id and the owning user, so one
// session can never read another session's record.
func (repo *MealRepository) FindByIDForUser(mealID string, userID string) (models.Meal, bool, error) {
	meal := models.Meal{}
	result := repo.database.
		Where("id = ? AND user_id = ?", mealID, userID).
		Limit(1).
		Find(&meal)
	if result.Error != nil {
		return models.Meal{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Meal{}, false, nil
	}
	return meal, true, nil
}

// UpdateByIDForUser overwrites the mutable fields of exactly the record
// matching both id and owner. Returns false when no such record exists.
func (repo *MealRepository) UpdateByIDForUser(mealID string, userID string, fields map[string]any) (bool, error) {
	result := repo.database.Model(&models.Meal{}).
		Where("id = ? AND user_id = ?", mealID, userID).
		Updates(fields)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DeleteByIDForUser removes at most one record. Returns false when the id
// does not exist for that owner, which makes repeated deletes report the
// same not-found outcome.
func (repo *MealRepository) DeleteByIDForUser(mealID string, userID string) (bool, error) {
	result := repo.database.
		Where("id = ? AND user_id = ?", mealID, userID).
		Delete(&models.Meal{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (repo *MealRepository) CountByUser(userID string) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Meal{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
