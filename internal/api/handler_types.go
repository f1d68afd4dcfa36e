package api

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/terraincognita07/mealtrail/internal/services"
	"gorm.io/gorm"
)

// SessionCookieSettings describes how the boundary round-trips session
// tokens. TTL applies only to freshly minted tokens; returning clients keep
// whatever cookie they already hold.
type SessionCookieSettings struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

type Handler struct {
	database *gorm.DB
	logger   *logrus.Logger
	cookie   SessionCookieSettings
	users    *services.UserService
	meals    *services.MealService
	metrics  *services.MetricsService
}
