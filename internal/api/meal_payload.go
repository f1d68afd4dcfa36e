package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"github.com/terraincognita07/mealtrail/internal/services"
)

var errMealPayloadInvalid = errors.New("meal payload invalid")

// mealPayload is the wire shape of create and update bodies. IsOnDiet is a
// pointer so an omitted boolean is rejected rather than defaulting to false;
// Date stays raw because clients may send either an RFC3339 string or epoch
// milliseconds.
type mealPayload struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	IsOnDiet    *bool           `json:"isOnDiet"`
	Date        json.RawMessage `json:"date"`
}

func (payload mealPayload) toInput() (services.MealInput, error) {
	if payload.IsOnDiet == nil {
		return services.MealInput{}, errMealPayloadInvalid
	}

	millis, err := parseMealDate(payload.Date)
	if err != nil {
		return services.MealInput{}, errMealPayloadInvalid
	}

	return services.MealInput{
		Name:        payload.Name,
		Description: payload.Description,
		IsOnDiet:    *payload.IsOnDiet,
		Date:        millis,
	}, nil
}

func parseMealDate(raw json.RawMessage) (int64, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return 0, errMealPayloadInvalid
	}

	if trimmed[0] == '"' {
		var value string
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return 0, err
		}
		instant, err := time.Parse(time.RFC3339, value)
		if err != nil {
			return 0, err
		}
		return instant.UnixMilli(), nil
	}

	var millis int64
	if err := json.Unmarshal(trimmed, &millis); err != nil {
		return 0, err
	}
	return millis, nil
}
