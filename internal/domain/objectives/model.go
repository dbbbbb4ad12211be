package objectives

import "time"

// Objective is a personal weekly spending goal. Rows are never deleted;
// the active objective is simply the most recently created one.
type Objective struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       string    `gorm:"type:uuid;index;not null" json:"user_id"`
	WeeklyBudget float64   `gorm:"type:numeric(12,2);not null" json:"weekly_budget"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}
