package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetMetrics(c *fiber.Ctx) error {
	metrics, err := handler.metrics.Compute(sessionToken(c))
	if err != nil {
		handler.logger.WithError(err).Error("compute metrics failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to compute metrics")
	}
	return c.JSON(metrics)
}
