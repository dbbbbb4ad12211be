package stats

// Snapshot is a point-in-time aggregated view of one user's activity.
// It is derived on demand from drinks, memberships, groups and
// objectives, and never persisted.
type Snapshot struct {
	TotalDrinks         int     `json:"total_drinks"`
	TotalSpent          float64 `json:"total_spent"`
	WeeklyDrinks        int     `json:"weekly_drinks"`
	WeeklySpent         float64 `json:"weekly_spent"`
	AverageCostPerDrink float64 `json:"average_cost_per_drink"`
	JoinedDays          int     `json:"joined_days"`
	GroupsCount         int     `json:"groups_count"`
	MaxStreakWeeks      int     `json:"max_streak_weeks"`
	CurrentStreakWeeks  int     `json:"current_streak_weeks"`
	AchievedWeeklyGoals int     `json:"achieved_weekly_goals"`
}

// DrinkRecord is the slice of a drink the aggregator reads: what it
// cost, the calendar day it happened, and the squad it was logged
// against (empty for personal drinks).
type DrinkRecord struct {
	Cost    float64
	Date    string
	GroupID string
}

// GroupBudget pairs a squad the user belongs to with that squad's
// weekly budget. Only budgeted squads (budget > 0) are relevant to
// streak tracking.
type GroupBudget struct {
	GroupID string
	Budget  float64
}
