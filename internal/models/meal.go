package models

import "time"

// Meal is one journal entry. Date is the caller-supplied moment of the meal
// in epoch milliseconds; listing orders by it descending, streak computation
// ascending. CreatedAt breaks equal-date ties so ordering stays stable.
type Meal struct {
	ID          string    `gorm:"primaryKey"`
	Name        string    `gorm:"not null"`
	Description string    `gorm:"not null"`
	IsOnDiet    bool      `gorm:"not null;default:false"`
	Date        int64     `gorm:"not null;index:idx_meals_user_date,priority:2"`
	UserID      string    `gorm:"not null;index:idx_meals_user_date,priority:1"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
