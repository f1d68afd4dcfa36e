package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/terraincognita07/mealtrail/internal/services"
)

func (handler *Handler) CreateMeal(c *fiber.Ctx) error {
	input, ok := parseMealBody(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	meal, err := handler.meals.Create(sessionToken(c), input)
	switch {
	case errors.Is(err, services.ErrNoLinkedUser):
		return apiError(c, fiber.StatusBadRequest, "no user linked to this session")
	case errors.Is(err, services.ErrMealInvalid):
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	case err != nil:
		handler.logger.WithError(err).Error("create meal failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to create meal")
	}

	return c.Status(fiber.StatusCreated).JSON(newMealView(meal))
}

func (handler *Handler) ListMeals(c *fiber.Ctx) error {
	meals, err := handler.meals.List(sessionToken(c))
	if err != nil {
		handler.logger.WithError(err).Error("list meals failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to list meals")
	}
	return c.JSON(newMealViews(meals))
}

func (handler *Handler) GetMeal(c *fiber.Ctx) error {
	mealID, ok := parseMealID(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid meal id")
	}

	meal, err := handler.meals.Get(sessionToken(c), mealID)
	switch {
	case errors.Is(err, services.ErrMealNotFound):
		return apiError(c, fiber.StatusNotFound, "meal not found")
	case err != nil:
		handler.logger.WithError(err).Error("get meal failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch meal")
	}

	return c.JSON(newMealView(meal))
}

func (handler *Handler) UpdateMeal(c *fiber.Ctx) error {
	mealID, ok := parseMealID(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid meal id")
	}

	input, ok := parseMealBody(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	err := handler.meals.Update(sessionToken(c), mealID, input)
	switch {
	case errors.Is(err, services.ErrMealNotFound):
		return apiError(c, fiber.StatusNotFound, "meal not found")
	case errors.Is(err, services.ErrMealInvalid):
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	case err != nil:
		handler.logger.WithError(err).Error("update meal failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to update meal")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (handler *Handler) DeleteMeal(c *fiber.Ctx) error {
	mealID, ok := parseMealID(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid meal id")
	}

	err := handler.meals.Delete(sessionToken(c), mealID)
	switch {
	case errors.Is(err, services.ErrMealNotFound):
		return apiError(c, fiber.StatusNotFound, "meal not found")
	case err != nil:
		handler.logger.WithError(err).Error("delete meal failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to delete meal")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func parseMealID(c *fiber.Ctx) (string, bool) {
	raw := c.Params("id")
	if _, err := uuid.Parse(raw); err != nil {
		return "", false
	}
	return raw, true
}

func parseMealBody(c *fiber.Ctx) (services.MealInput, bool) {
	payload := mealPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return services.MealInput{}, false
	}
	input, err := payload.toInput()
	if err != nil {
		return services.MealInput{}, false
	}
	return input, true
}
