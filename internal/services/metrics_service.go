package services

import (
	"fmt"

	"github.com/terraincognita07/mealtrail/internal/models"
)

// MealHistoryReader supplies a user's meals oldest-first; the streak scan
// depends on that order.
type MealHistoryReader interface {
	ListByUserChronological(userID string) ([]models.Meal, error)
}

type MealMetrics struct {
	TotalMeals   int `json:"totalMeals"`
	TotalOnDiet  int `json:"totalMealsOnDiet"`
	TotalOffDiet int `json:"totalMealsOffDiet"`
	BestStreak   int `json:"bestOnDietSequence"`
}

type MetricsService struct {
	users SessionUserReader
	meals MealHistoryReader
}

func NewMetricsService(users SessionUserReader, meals MealHistoryReader) *MetricsService {
	return &MetricsService{users: users, meals: meals}
}

// Compute derives the session's adherence metrics. A session with no linked
// user (or no meals) yields all zeroes.
func (service *MetricsService) Compute(sessionID string) (MealMetrics, error) {
	user, linked, err := service.users.FindBySessionID(sessionID)
	if err != nil {
		return MealMetrics{}, fmt.Errorf("resolve session user: %w", err)
	}
	if !linked {
		return MealMetrics{}, nil
	}

	meals, err := service.meals.ListByUserChronological(user.ID)
	if err != nil {
		return MealMetrics{}, fmt.Errorf("list meals: %w", err)
	}

	metrics := MealMetrics{TotalMeals: len(meals)}
	for _, meal := range meals {
		if meal.IsOnDiet {
			metrics.TotalOnDiet++
		} else {
			metrics.TotalOffDiet++
		}
	}
	metrics.BestStreak = BestOnDietStreak(meals)
	return metrics, nil
}

// BestOnDietStreak returns the longest run of consecutive on-diet meals in
// the given (chronological) order. Single left-to-right scan: the counter
// grows on on-diet entries, resets on off-diet ones.
func BestOnDietStreak(meals []models.Meal) int {
	best := 0
	current := 0
	for _, meal := range meals {
		if !meal.IsOnDiet {
			current = 0
			continue
		}
		current++
		if current > best {
			best = current
		}
	}
	return best
}
