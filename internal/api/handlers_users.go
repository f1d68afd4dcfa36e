package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mealtrail/internal/services"
)

type userPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (handler *Handler) CreateUser(c *fiber.Ctx) error {
	payload := userPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	user, err := handler.users.Create(sessionToken(c), payload.Name, payload.Email)
	switch {
	case errors.Is(err, services.ErrNameInvalid):
		return apiError(c, fiber.StatusBadRequest, "invalid name")
	case errors.Is(err, services.ErrEmailInvalid):
		return apiError(c, fiber.StatusBadRequest, "invalid email")
	case errors.Is(err, services.ErrEmailTaken):
		return apiError(c, fiber.StatusBadRequest, "email already in use")
	case errors.Is(err, services.ErrSessionLinked):
		return apiError(c, fiber.StatusBadRequest, "session already has a user")
	case err != nil:
		handler.logger.WithError(err).Error("create user failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to create user")
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}
