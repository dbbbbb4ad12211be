package drinks

import "time"

// Drink is one logged drink. Date is the calendar day it happened,
// kept as a YYYY-MM-DD string end to end so weekly windows can compare
// it lexicographically against window boundaries.
type Drink struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string    `gorm:"type:uuid;index;not null" json:"user_id"`
	GroupID   *string   `gorm:"type:uuid;index" json:"group_id,omitempty"`
	Type      string    `gorm:"not null" json:"type"`
	Cost      float64   `gorm:"type:numeric(12,2);not null" json:"cost"`
	Date      string    `gorm:"type:text;not null" json:"date"`
	Location  string    `gorm:"not null" json:"location"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type ListFilter struct {
	From  string
	To    string
	Limit int
}

type CreateDrinkInput struct {
	UserID   string
	GroupID  *string
	Type     string
	Cost     float64
	Date     string
	Location string
}

type UpdateDrinkInput struct {
	ID       string
	UserID   string
	Type     string
	Cost     float64
	Date     string
	Location string
}
