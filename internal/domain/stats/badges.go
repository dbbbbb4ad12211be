package stats

// Badge unlock rules. Each rule is a pure predicate over a Snapshot
// plus the has-active-objective flag; evaluating the table has no side
// effects and rules never depend on each other, so display order is
// the only thing the table's order carries.

type Category string

const (
	CategoryDrinkMilestones Category = "drink_milestones"
	CategorySpending        Category = "spending"
	CategorySocial          Category = "social"
	CategoryGoals           Category = "goals"
	CategoryStreaks         Category = "streaks"
	CategoryTime            Category = "time"
	CategorySpecial         Category = "special"
	CategorySeasonal        Category = "seasonal"
)

// Categories in display order.
var Categories = []Category{
	CategoryDrinkMilestones,
	CategorySpending,
	CategorySocial,
	CategoryGoals,
	CategoryStreaks,
	CategoryTime,
	CategorySpecial,
	CategorySeasonal,
}

type BadgeDefinition struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Category    Category
	Requirement string
	Check       func(s Snapshot, hasObjective bool) bool
}

// Badge is a definition plus its computed unlock state. The unlocked
// flag is derived, never stored.
type Badge struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Category    Category `json:"category"`
	Requirement string   `json:"requirement"`
	Unlocked    bool     `json:"unlocked"`
}

// BadgeDefinitions is the whole rule set. The special and seasonal
// predicates are plain drink-count thresholds despite their names; that
// is the product's current behavior, kept as is.
var BadgeDefinitions = []BadgeDefinition{
	// Drink milestones.
	{
		ID: "first_drink", Title: "First Time", Description: "Your first logged drink",
		Icon: "🍻", Category: CategoryDrinkMilestones, Requirement: "1 drink",
		Check: func(s Snapshot, _ bool) bool { return s.TotalDrinks >= 1 },
	},
	{
		ID: "social_drinker", Title: "Social Drinker", Description: "Logged 10 drinks",
		Icon: "🎉", Category: CategoryDrinkMilestones, Requirement: "10 drinks",
		Check: func(s Snapshot, _ bool) bool { return s.TotalDrinks >= 10 },
	},
	{
		ID: "experienced", Title: "Experienced", Description: "Logged 50 drinks",
		Icon: "🏆", Category: CategoryDrinkMilestones, Requirement: "50 drinks",
		Check: func(s Snapshot, _ bool) bool { return s.TotalDrinks >= 50 },
	},
	{
		ID: "legend", Title: "Legend", Description: "Logged 100 drinks",
		Icon: "🌟", Category: CategoryDrinkMilestones, Requirement: "100 drinks",
		Check: func(s Snapshot, _ bool) bool { return s.TotalDrinks >= 100 },
	},
	{
		ID: "master", Title: "Grand Master", Description: "Logged 250 drinks",
		Icon: "👑", Category: CategoryDrinkMilestones, Requirement: "250 drinks",
		Check: func(s Snapshot, _ bool) bool { return s.TotalDrinks >= 250 },
	},
	{
		ID: "unstoppable_drinker", Title: "Unstoppable", Description: "Logged 500 drinks",
		Icon: "⚡", Category: CategoryDrinkMilestones, Requirement: "500 drinks",
		Check: func(s Snapshot, _ bool) bool { return s.TotalDrinks >= 500 },
	},

	// Spending and budget.
	{
		ID: "budget_conscious", Title: "Budget Conscious", Description: "Average under €5 per drink",
		Icon: "💡", Category: CategorySpending, Requirement: "Average <€5/drink",
		Check: func(s Snapshot, _ bool) bool { return s.AverageCostPerDrink < 5 && s.TotalDrinks >= 5 },
	},
	{
		ID: "penny_pincher", Title: "Penny Pincher", Description: "Average under €3 per drink",
		Icon: "🪙", Category: CategorySpending, Requirement: "Average <€3/drink",
		Check: func(s Snapshot, _ bool) bool { return s.AverageCostPerDrink < 3 && s.TotalDrinks >= 10 },
	},
	{
		ID: "big_spender", Title: "Big Spender", Description: "Spent over €100 in total",
		Icon: "💰", Category: CategorySpending, Requirement: "€100 spent",
		Check: func(s Snapshot, _ bool) bool { return s.TotalSpent >= 100 },
	},
	{
		ID: "premium_taste", Title: "Premium Taste", Description: "Average over €15 per drink",
		Icon: "🥂", Category: CategorySpending, Requirement: "Average >€15/drink",
		Check: func(s Snapshot, _ bool) bool { return s.AverageCostPerDrink > 15 && s.TotalDrinks >= 10 },
	},
	{
		ID: "luxury_lifestyle", Title: "Luxury Lifestyle", Description: "Spent over €500 in total",
		Icon: "💎", Category: CategorySpending, Requirement: "€500 spent",
		Check: func(s Snapshot, _ bool) bool { return s.TotalSpent >= 500 },
	},
	{
		ID: "champagne_taste", Title: "Champagne Taste", Description: "Average over €25 per drink",
		Icon: "🍾", Category: CategorySpending, Requirement: "Average >€25/drink",
		Check: func(s Snapshot, _ bool) bool { return s.AverageCostPerDrink > 25 && s.TotalDrinks >= 20 },
	},

	// Social and squads.
	{
		ID: "team_player", Title: "Team Player", Description: "Joined your first squad",
		Icon: "👥", Category: CategorySocial, Requirement: "1 squad",
		Check: func(s Snapshot, _ bool) bool { return s.GroupsCount >= 1 },
	},
	{
		ID: "social_butterfly", Title: "Social Butterfly", Description: "Member of 3 or more squads",
		Icon: "🦋", Category: CategorySocial, Requirement: "3 squads",
		Check: func(s Snapshot, _ bool) bool { return s.GroupsCount >= 3 },
	},
	{
		ID: "party_animal", Title: "Party Animal", Description: "Member of 5 or more squads",
		Icon: "🎊", Category: CategorySocial, Requirement: "5 squads",
		Check: func(s Snapshot, _ bool) bool { return s.GroupsCount >= 5 },
	},
	{
		ID: "networking_king", Title: "Networking King", Description: "Member of 10 or more squads",
		Icon: "🤴", Category: CategorySocial, Requirement: "10 squads",
		Check: func(s Snapshot, _ bool) bool { return s.GroupsCount >= 10 },
	},

	// Weekly goals.
	{
		ID: "goal_setter", Title: "Goal Setter", Description: "Set your first objective",
		Icon: "🎯", Category: CategoryGoals, Requirement: "Set an objective",
		Check: func(_ Snapshot, hasObjective bool) bool { return hasObjective },
	},
	{
		ID: "goal_achiever", Title: "Goal Achiever", Description: "Stayed within the weekly goal",
		Icon: "✅", Category: CategoryGoals, Requirement: "1 week in budget",
		Check: func(s Snapshot, _ bool) bool { return s.AchievedWeeklyGoals >= 1 },
	},
	{
		ID: "consistent_saver", Title: "Consistent Saver", Description: "Hit the weekly goal 5 times",
		Icon: "💎", Category: CategoryGoals, Requirement: "5 weeks in budget",
		Check: func(s Snapshot, _ bool) bool { return s.AchievedWeeklyGoals >= 5 },
	},
	{
		ID: "budget_master", Title: "Budget Master", Description: "Hit the weekly goal 10 times",
		Icon: "👑", Category: CategoryGoals, Requirement: "10 weeks in budget",
		Check: func(s Snapshot, _ bool) bool { return s.AchievedWeeklyGoals >= 10 },
	},
	{
		ID: "discipline_warrior", Title: "Discipline Warrior", Description: "Hit the weekly goal 20 times",
		Icon: "⚔️", Category: CategoryGoals, Requirement: "20 weeks in budget",
		Check: func(s Snapshot, _ bool) bool { return s.AchievedWeeklyGoals >= 20 },
	},

	// Streaks.
	{
		ID: "streak_starter", Title: "Streak Starter", Description: "First week of a streak",
		Icon: "🔥", Category: CategoryStreaks, Requirement: "1 week streak",
		Check: func(s Snapshot, _ bool) bool { return s.MaxStreakWeeks >= 1 },
	},
	{
		ID: "on_fire", Title: "On Fire", Description: "3 consecutive weeks in budget",
		Icon: "🔥🔥", Category: CategoryStreaks, Requirement: "3 consecutive weeks",
		Check: func(s Snapshot, _ bool) bool { return s.MaxStreakWeeks >= 3 },
	},
	{
		ID: "unstoppable", Title: "Unstoppable", Description: "5 consecutive weeks in budget",
		Icon: "🔥🔥🔥", Category: CategoryStreaks, Requirement: "5 consecutive weeks",
		Check: func(s Snapshot, _ bool) bool { return s.MaxStreakWeeks >= 5 },
	},
	{
		ID: "legendary_streak", Title: "Legendary Streak", Description: "10 consecutive weeks in budget",
		Icon: "⚡", Category: CategoryStreaks, Requirement: "10 consecutive weeks",
		Check: func(s Snapshot, _ bool) bool { return s.MaxStreakWeeks >= 10 },
	},
	{
		ID: "current_champion", Title: "Current Champion", Description: "Streak running right now",
		Icon: "🏃", Category: CategoryStreaks, Requirement: "Active streak",
		Check: func(s Snapshot, _ bool) bool { return s.CurrentStreakWeeks >= 1 },
	},
	{
		ID: "month_warrior", Title: "Month Warrior", Description: "4 consecutive weeks in budget",
		Icon: "🗡️", Category: CategoryStreaks, Requirement: "1 consecutive month",
		Check: func(s Snapshot, _ bool) bool { return s.MaxStreakWeeks >= 4 },
	},

	// Account age.
	{
		ID: "week_veteran", Title: "A Full Week", Description: "7 days on the app",
		Icon: "📅", Category: CategoryTime, Requirement: "7 days",
		Check: func(s Snapshot, _ bool) bool { return s.JoinedDays >= 7 },
	},
	{
		ID: "month_veteran", Title: "Month Veteran", Description: "30 days on the app",
		Icon: "🗓️", Category: CategoryTime, Requirement: "30 days",
		Check: func(s Snapshot, _ bool) bool { return s.JoinedDays >= 30 },
	},
	{
		ID: "quarter_veteran", Title: "Quarter Veteran", Description: "90 days on the app",
		Icon: "📆", Category: CategoryTime, Requirement: "90 days",
		Check: func(s Snapshot, _ bool) bool { return s.JoinedDays >= 90 },
	},
	{
		ID: "year_veteran", Title: "Year Veteran", Description: "365 days on the app",
		Icon: "🎂", Category: CategoryTime, Requirement: "1 year",
		Check: func(s Snapshot, _ bool) bool { return s.JoinedDays >= 365 },
	},

	// Special.
	{
		ID: "busy_week", Title: "Busy Week", Description: "More than 7 drinks in one week",
		Icon: "🌪️", Category: CategorySpecial, Requirement: "7+ drinks/week",
		Check: func(s Snapshot, _ bool) bool { return s.WeeklyDrinks > 7 },
	},
	{
		ID: "weekend_warrior", Title: "Weekend Warrior", Description: "Active on weekends",
		Icon: "⚔️", Category: CategorySpecial, Requirement: "Weekend drinks",
		Check: func(s Snapshot, _ bool) bool { return s.TotalDrinks >= 5 },
	},
	{
		ID: "variety_lover", Title: "Variety Lover", Description: "Tried many different types",
		Icon: "🌈", Category: CategorySpecial, Requirement: "Drink variety",
		Check: func(s Snapshot, _ bool) bool { return s.TotalDrinks >= 25 },
	},
	{
		ID: "explorer", Title: "Explorer", Description: "Drank in many different places",
		Icon: "🗺️", Category: CategorySpecial, Requirement: "Different places",
		Check: func(s Snapshot, _ bool) bool { return s.TotalDrinks >= 30 },
	},
	{
		ID: "loyal_tracker", Title: "Loyal Tracker", Description: "Logs drinks consistently",
		Icon: "📊", Category: CategorySpecial, Requirement: "Consistent use",
		Check: func(s Snapshot, _ bool) bool { return s.TotalDrinks >= 20 && s.JoinedDays >= 14 },
	},

	// Seasonal.
	{
		ID: "summer_vibes", Title: "Summer Vibes", Description: "Active during summer",
		Icon: "☀️", Category: CategorySeasonal, Requirement: "Summer drinks",
		Check: func(s Snapshot, _ bool) bool { return s.TotalDrinks >= 10 },
	},
	{
		ID: "winter_warmer", Title: "Winter Warmer", Description: "Warm drinks in winter",
		Icon: "🔥", Category: CategorySeasonal, Requirement: "Winter drinks",
		Check: func(s Snapshot, _ bool) bool { return s.TotalDrinks >= 15 },
	},
	{
		ID: "new_year_starter", Title: "New Year, New Goals", Description: "Started the year with intent",
		Icon: "🎊", Category: CategorySeasonal, Requirement: "January activity",
		Check: func(s Snapshot, _ bool) bool { return s.TotalDrinks >= 5 },
	},
}

// UserBadges evaluates every rule against the snapshot. Output order
// matches the definition table.
func UserBadges(s Snapshot, hasObjective bool) []Badge {
	badges := make([]Badge, 0, len(BadgeDefinitions))
	for _, def := range BadgeDefinitions {
		badges = append(badges, Badge{
			ID:          def.ID,
			Title:       def.Title,
			Description: def.Description,
			Icon:        def.Icon,
			Category:    def.Category,
			Requirement: def.Requirement,
			Unlocked:    def.Check(s, hasObjective),
		})
	}
	return badges
}

// UnlockedBadges returns only the badges the snapshot unlocks.
func UnlockedBadges(s Snapshot, hasObjective bool) []Badge {
	all := UserBadges(s, hasObjective)
	unlocked := make([]Badge, 0, len(all))
	for _, badge := range all {
		if badge.Unlocked {
			unlocked = append(unlocked, badge)
		}
	}
	return unlocked
}

// BadgesByCategory groups the evaluated table for presentation. Every
// category is present even when empty.
func BadgesByCategory(s Snapshot, hasObjective bool) map[Category][]Badge {
	grouped := make(map[Category][]Badge, len(Categories))
	for _, category := range Categories {
		grouped[category] = []Badge{}
	}
	for _, badge := range UserBadges(s, hasObjective) {
		grouped[badge.Category] = append(grouped[badge.Category], badge)
	}
	return grouped
}

var categoryDisplayNames = map[Category]string{
	CategoryDrinkMilestones: "🍻 Drink Milestones",
	CategorySpending:        "💰 Budget & Spending",
	CategorySocial:          "👥 Social & Squads",
	CategoryGoals:           "🎯 Goals",
	CategoryStreaks:         "🔥 Streaks",
	CategoryTime:            "⏰ Time",
	CategorySpecial:         "⭐ Special",
	CategorySeasonal:        "🌟 Seasonal",
}

func CategoryDisplayName(category Category) string {
	if name, ok := categoryDisplayNames[category]; ok {
		return name
	}
	return string(category)
}
