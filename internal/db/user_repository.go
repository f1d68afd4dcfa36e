package db

import (
	"github.com/terraincognita07/mealtrail/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

// FindBySessionID resolves the user linked to a session token. The boolean
// distinguishes "no linked user" from a storage failure.
func (repo *UserRepository) FindBySessionID(sessionID string) (models.User, bool, error) {
	user := models.User{}
	result := repo.database.Where("session_id = ?", sessionID).Limit(1).Find(&user)
	if result.Error != nil {
		return models.User{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.User{}, false, nil
	}
	return user, true, nil
}

func (repo *UserRepository) ExistsByNormalizedEmail(email string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("lower(trim(email)) = ?", email).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) ExistsBySessionID(sessionID string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("session_id = ?", sessionID).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}
