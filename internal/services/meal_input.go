package services

import (
	"errors"
	"strings"
)

var ErrMealInvalid = errors.New("meal fields invalid")

// MealInput carries the already-parsed fields of a create or update call.
// Date is epoch milliseconds, exactly as persisted.
type MealInput struct {
	Name        string
	Description string
	IsOnDiet    bool
	Date        int64
}

// ValidateMealInput rejects structurally broken fields even though the
// boundary validates first: an empty name or a non-positive timestamp never
// reaches the store.
func ValidateMealInput(input MealInput) (MealInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return MealInput{}, ErrMealInvalid
	}
	if input.Date <= 0 {
		return MealInput{}, ErrMealInvalid
	}
	return input, nil
}
