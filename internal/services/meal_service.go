package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/mealtrail/internal/models"
)

var (
	ErrNoLinkedUser = errors.New("session has no linked user")
	ErrMealNotFound = errors.New("meal not found")
)

// SessionUserReader resolves the user a session token is linked to. The
// boolean is false when the session exists but never created a user, which
// is a distinct condition from a missing cookie (the boundary guarantees a
// token on every request).
type SessionUserReader interface {
	FindBySessionID(sessionID string) (models.User, bool, error)
}

type MealStore interface {
	Create(meal *models.Meal) error
	ListByUser(userID string) ([]models.Meal, error)
	FindByIDForUser(mealID string, userID string) (models.Meal, bool, error)
	UpdateByIDForUser(mealID string, userID string, fields map[string]any) (bool, error)
	DeleteByIDForUser(mealID string, userID string) (bool, error)
}

type MealService struct {
	users SessionUserReader
	meals MealStore
}

func NewMealService(users SessionUserReader, meals MealStore) *MealService {
	return &MealService{users: users, meals: meals}
}

// Create inserts a meal owned by the session's user. Nothing is written when
// the session has no linked user.
func (service *MealService) Create(sessionID string, input MealInput) (models.Meal, error) {
	input, err := ValidateMealInput(input)
	if err != nil {
		return models.Meal{}, err
	}

	user, linked, err := service.users.FindBySessionID(sessionID)
	if err != nil {
		return models.Meal{}, fmt.Errorf("resolve session user: %w", err)
	}
	if !linked {
		return models.Meal{}, ErrNoLinkedUser
	}

	meal := models.Meal{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		IsOnDiet:    input.IsOnDiet,
		Date:        input.Date,
		UserID:      user.ID,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
	if err := service.meals.Create(&meal); err != nil {
		return models.Meal{}, fmt.Errorf("create meal: %w", err)
	}
	return meal, nil
}

// List returns the session's meals newest-first. A session without a linked
// user simply owns nothing, so listing never fails for a valid session.
func (service *MealService) List(sessionID string) ([]models.Meal, error) {
	user, linked, err := service.users.FindBySessionID(sessionID)
	if err != nil {
		return nil, fmt.Errorf("resolve session user: %w", err)
	}
	if !linked {
		return []models.Meal{}, nil
	}

	meals, err := service.meals.ListByUser(user.ID)
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	return meals, nil
}

// Get reads a single meal scoped by both id and owning session. A foreign
// record is indistinguishable from an absent one.
func (service *MealService) Get(sessionID string, mealID string) (models.Meal, error) {
	user, linked, err := service.users.FindBySessionID(sessionID)
	if err != nil {
		return models.Meal{}, fmt.Errorf("resolve session user: %w", err)
	}
	if !linked {
		return models.Meal{}, ErrMealNotFound
	}

	meal, found, err := service.meals.FindByIDForUser(mealID, user.ID)
	if err != nil {
		return models.Meal{}, fmt.Errorf("find meal: %w", err)
	}
	if !found {
		return models.Meal{}, ErrMealNotFound
	}
	return meal, nil
}

// Update overwrites all mutable fields of the record matching id and owner.
func (service *MealService) Update(sessionID string, mealID string, input MealInput) error {
	input, err := ValidateMealInput(input)
	if err != nil {
		return err
	}

	user, linked, err := service.users.FindBySessionID(sessionID)
	if err != nil {
		return fmt.Errorf("resolve session user: %w", err)
	}
	if !linked {
		return ErrMealNotFound
	}

	updated, err := service.meals.UpdateByIDForUser(mealID, user.ID, map[string]any{
		"name":        input.Name,
		"description": input.Description,
		"is_on_diet":  input.IsOnDiet,
		"date":        input.Date,
		"updated_at":  time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("update meal: %w", err)
	}
	if !updated {
		return ErrMealNotFound
	}
	return nil
}

// Delete removes exactly one record; a second delete of the same id reports
// not-found again.
func (service *MealService) Delete(sessionID string, mealID string) error {
	user, linked, err := service.users.FindBySessionID(sessionID)
	if err != nil {
		return fmt.Errorf("resolve session user: %w", err)
	}
	if !linked {
		return ErrMealNotFound
	}

	deleted, err := service.meals.DeleteByIDForUser(mealID, user.ID)
	if err != nil {
		return fmt.Errorf("delete meal: %w", err)
	}
	if !deleted {
		return ErrMealNotFound
	}
	return nil
}
