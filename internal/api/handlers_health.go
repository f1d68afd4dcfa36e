package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) Healthz(c *fiber.Ctx) error {
	sqlDB, err := handler.database.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		handler.logger.WithError(err).Error("health check failed")
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded"})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
