package stats

import (
	"reflect"
	"testing"
)

func badgeByID(t *testing.T, badges []Badge, id string) Badge {
	t.Helper()
	for _, badge := range badges {
		if badge.ID == id {
			return badge
		}
	}
	t.Fatalf("badge %s not found", id)
	return Badge{}
}

func TestUserBadgesHundredDrinkVeteran(t *testing.T) {
	snapshot := Snapshot{
		TotalDrinks:         100,
		AchievedWeeklyGoals: 10,
		MaxStreakWeeks:      10,
	}

	badges := UserBadges(snapshot, false)

	for _, id := range []string{"legend", "budget_master", "legendary_streak"} {
		if !badgeByID(t, badges, id).Unlocked {
			t.Fatalf("expected %s unlocked", id)
		}
	}
	for _, id := range []string{"master", "discipline_warrior"} {
		if badgeByID(t, badges, id).Unlocked {
			t.Fatalf("expected %s locked", id)
		}
	}
}

func TestUserBadgesDeterministic(t *testing.T) {
	snapshot := Snapshot{
		TotalDrinks:         42,
		TotalSpent:          123.5,
		WeeklyDrinks:        8,
		WeeklySpent:         31,
		AverageCostPerDrink: 2.94,
		JoinedDays:          45,
		GroupsCount:         3,
		MaxStreakWeeks:      4,
		CurrentStreakWeeks:  2,
		AchievedWeeklyGoals: 6,
	}

	first := UserBadges(snapshot, true)
	second := UserBadges(snapshot, true)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("expected identical output for identical inputs")
	}
}

func TestGoalSetterTracksObjectiveFlagOnly(t *testing.T) {
	empty := Snapshot{}

	if badgeByID(t, UserBadges(empty, false), "goal_setter").Unlocked {
		t.Fatal("expected goal_setter locked without an objective")
	}
	if !badgeByID(t, UserBadges(empty, true), "goal_setter").Unlocked {
		t.Fatal("expected goal_setter unlocked with an objective")
	}
}

func TestEmptySnapshotUnlocksNothing(t *testing.T) {
	for _, badge := range UserBadges(Snapshot{}, false) {
		if badge.Unlocked {
			t.Fatalf("expected %s locked on an empty snapshot", badge.ID)
		}
	}
}

func TestUnlockedBadgesIsFilteredView(t *testing.T) {
	snapshot := Snapshot{TotalDrinks: 10, JoinedDays: 7}

	unlocked := UnlockedBadges(snapshot, false)
	if len(unlocked) == 0 {
		t.Fatal("expected some unlocked badges")
	}
	for _, badge := range unlocked {
		if !badge.Unlocked {
			t.Fatalf("expected only unlocked badges, got %s", badge.ID)
		}
	}

	all := UserBadges(snapshot, false)
	count := 0
	for _, badge := range all {
		if badge.Unlocked {
			count++
		}
	}
	if count != len(unlocked) {
		t.Fatalf("expected %d unlocked, got %d", count, len(unlocked))
	}
}

func TestBadgesByCategoryCoversWholeTable(t *testing.T) {
	grouped := BadgesByCategory(Snapshot{}, false)

	if len(grouped) != len(Categories) {
		t.Fatalf("expected %d categories, got %d", len(Categories), len(grouped))
	}

	total := 0
	for _, category := range Categories {
		badges, ok := grouped[category]
		if !ok {
			t.Fatalf("missing category %s", category)
		}
		for _, badge := range badges {
			if badge.Category != category {
				t.Fatalf("badge %s grouped under %s", badge.ID, category)
			}
		}
		total += len(badges)
	}
	if total != len(BadgeDefinitions) {
		t.Fatalf("expected %d badges across categories, got %d", len(BadgeDefinitions), total)
	}
}

func TestCategoryDisplayNameFallsBackToRawValue(t *testing.T) {
	if got := CategoryDisplayName(CategoryStreaks); got != "🔥 Streaks" {
		t.Fatalf("unexpected display name %q", got)
	}
	if got := CategoryDisplayName(Category("unknown")); got != "unknown" {
		t.Fatalf("expected raw value fallback, got %q", got)
	}
}
