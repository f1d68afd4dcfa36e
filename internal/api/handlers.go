package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/terraincognita07/mealtrail/internal/db"
	"github.com/terraincognita07/mealtrail/internal/services"
	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, cookie SessionCookieSettings, appLogger *logrus.Logger) *Handler {
	repositories := db.NewRepositories(database)
	return &Handler{
		database: database,
		logger:   appLogger,
		cookie:   cookie,
		users:    services.NewUserService(repositories.Users),
		meals:    services.NewMealService(repositories.Users, repositories.Meals),
		metrics:  services.NewMetricsService(repositories.Users, repositories.Meals),
	}
}

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Healthz)

	app.Use(handler.SessionMiddleware)

	app.Post("/users", handler.CreateUser)

	app.Post("/meals", handler.CreateMeal)
	app.Get("/meals", handler.ListMeals)
	// Registered before /meals/:id so "metrics" never parses as a meal id.
	app.Get("/meals/metrics", handler.GetMetrics)
	app.Get("/meals/:id", handler.GetMeal)
	app.Put("/meals/:id", handler.UpdateMeal)
	app.Delete("/meals/:id", handler.DeleteMeal)
}
