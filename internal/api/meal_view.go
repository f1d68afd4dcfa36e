package api

import (
	"time"

	"github.com/terraincognita07/mealtrail/internal/models"
)

// mealDateLayout renders stored epoch milliseconds as ISO-8601 UTC with
// millisecond precision, so a round trip through the API is exact.
const mealDateLayout = "2006-01-02T15:04:05.000Z07:00"

type mealView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsOnDiet    bool   `json:"isOnDiet"`
	Date        string `json:"date"`
}

func formatMealDate(millis int64) string {
	return time.UnixMilli(millis).UTC().Format(mealDateLayout)
}

func newMealView(meal models.Meal) mealView {
	return mealView{
		ID:          meal.ID,
		Name:        meal.Name,
		Description: meal.Description,
		IsOnDiet:    meal.IsOnDiet,
		Date:        formatMealDate(meal.Date),
	}
}

func newMealViews(meals []models.Meal) []mealView {
	views := make([]mealView, 0, len(meals))
	for _, meal := range meals {
		views = append(views, newMealView(meal))
	}
	return views
}
