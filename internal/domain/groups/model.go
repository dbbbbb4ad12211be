package groups

import "time"

type Group struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	OwnerID      string    `gorm:"type:uuid;index;not null" json:"owner_id"`
	WeeklyBudget float64   `gorm:"type:numeric(12,2);not null;default:0" json:"weekly_budget"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// Membership links a user to a group. CreatedAt is the join time and
// decides who inherits ownership when the owner leaves.
type Membership struct {
	GroupID   string    `gorm:"type:uuid;primaryKey" json:"group_id"`
	UserID    string    `gorm:"type:uuid;primaryKey" json:"user_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Membership) TableName() string {
	return "group_members"
}

// Member is a membership row joined with the user's profile. The
// relation is one membership to exactly one profile.
type Member struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	JoinedAt  time.Time `json:"joined_at"`
}

// MemberDrink is one drink in a group's weekly window, with the
// member's username joined in for display.
type MemberDrink struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Type      string    `json:"type"`
	Cost      float64   `json:"cost"`
	Date      string    `json:"date"`
	Location  string    `json:"location,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	// LoggedAt is CreatedAt rendered in the fixed display zone, set
	// on the recent-drinks feed.
	LoggedAt string `json:"logged_at,omitempty"`
}

type MemberProgress struct {
	UserID         string  `json:"user_id"`
	Username       string  `json:"username"`
	WeeklySpent    float64 `json:"weekly_spent"`
	DrinksCount    int     `json:"drinks_count"`
	IsWithinBudget bool    `json:"is_within_budget"`
	StreakWeeks    int     `json:"streak_weeks"`
	// Remaining is the unspent part of the group budget, floored at
	// zero. ProgressPercent is Remaining over the budget, 100 when the
	// group has no budget.
	Remaining       float64 `json:"remaining"`
	ProgressPercent float64 `json:"progress_percent"`
}

type LeaderboardEntry struct {
	UserID     string  `json:"user_id"`
	Username   string  `json:"username"`
	DrinkCount int     `json:"drink_count"`
	TotalCost  float64 `json:"total_cost"`
}

// CompleteData is one group's full weekly picture. Progress and
// Leaderboard are both derived from the same fetched drink set so the
// two views never disagree about what happened this week.
type CompleteData struct {
	Group       Group              `json:"group"`
	Members     []Member           `json:"members"`
	Progress    []MemberProgress   `json:"progress"`
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
	FetchedAt   time.Time          `json:"fetched_at"`
}
