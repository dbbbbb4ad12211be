package stats

import (
	"context"
	"time"

	"squadtab-go/pkg/logger"
	"squadtab-go/pkg/week"
)

// streakWindowWeeks is how far back the aggregator looks when counting
// achieved weeks and streaks. Week 0 is the current week.
const streakWindowWeeks = 20

type Service struct {
	repo   Repository
	remote Remote
	log    logger.Logger
	now    func() time.Time
}

func NewService(repo Repository, remote Remote, log logger.Logger) *Service {
	return &Service{
		repo:   repo,
		remote: remote,
		log:    log,
		now:    time.Now,
	}
}

// UserSnapshot aggregates one user's full drink history into a
// Snapshot. Any repository failure aborts the whole computation; a
// partial snapshot is never returned.
func (s *Service) UserSnapshot(ctx context.Context, userID string) (Snapshot, error) {
	createdAt, err := s.repo.ProfileCreatedAt(ctx, userID)
	if err != nil {
		return Snapshot{}, err
	}

	now := s.now()
	joinedDays := int(now.Sub(createdAt).Hours() / 24)
	if joinedDays < 0 {
		joinedDays = 0
	}

	groupsCount, err := s.repo.CountGroups(ctx, userID)
	if err != nil {
		return Snapshot{}, err
	}

	drinks, err := s.repo.ListDrinks(ctx, userID)
	if err != nil {
		return Snapshot{}, err
	}

	weekStart, weekEnd := week.Range(now, 0)

	snapshot := Snapshot{
		TotalDrinks: len(drinks),
		JoinedDays:  joinedDays,
		GroupsCount: int(groupsCount),
	}
	for _, drink := range drinks {
		snapshot.TotalSpent += drink.Cost
		if week.Contains(drink.Date, weekStart, weekEnd) {
			snapshot.WeeklyDrinks++
			snapshot.WeeklySpent += drink.Cost
		}
	}
	if snapshot.TotalDrinks > 0 {
		snapshot.AverageCostPerDrink = snapshot.TotalSpent / float64(snapshot.TotalDrinks)
	}

	budgeted, err := s.repo.ListBudgetedGroups(ctx, userID)
	if err != nil {
		return Snapshot{}, err
	}

	if target, ok := mostChallenging(budgeted); ok {
		achieved := s.achievedWeeks(drinks, target, now)
		snapshot.AchievedWeeklyGoals = countTrue(achieved)
		snapshot.CurrentStreakWeeks = anchoredRun(achieved)
		snapshot.MaxStreakWeeks = longestRun(achieved)
	}

	return snapshot, nil
}

// WeeklyStats tries the weekly-stats edge function first and falls
// back to the local aggregation, so callers see the same shape either
// way.
func (s *Service) WeeklyStats(ctx context.Context, userID, groupID string) (Snapshot, error) {
	if s.remote != nil {
		remote, err := s.remote.WeeklyStats(ctx, userID, groupID)
		if err == nil && remote != nil {
			return *remote, nil
		}
		if err != nil {
			s.log.BusinessError("stats: weekly-stats function failed, using local aggregation", err, "user_id", userID)
		}
	}
	return s.UserSnapshot(ctx, userID)
}

// mostChallenging picks the budgeted squad with the highest weekly
// budget; ties keep the first encountered. Streaks are tracked against
// this one squad only.
func mostChallenging(groups []GroupBudget) (GroupBudget, bool) {
	if len(groups) == 0 {
		return GroupBudget{}, false
	}
	best := groups[0]
	for _, g := range groups[1:] {
		if g.Budget > best.Budget {
			best = g
		}
	}
	return best, true
}

// achievedWeeks walks the streak window backwards from the current
// week. A week is achieved when the user's spend inside the target
// squad stayed within its budget.
func (s *Service) achievedWeeks(drinks []DrinkRecord, target GroupBudget, now time.Time) []bool {
	achieved := make([]bool, streakWindowWeeks)
	for weeksBack := 0; weeksBack < streakWindowWeeks; weeksBack++ {
		start, end := week.Range(now, weeksBack)

		spend := 0.0
		for _, drink := range drinks {
			if drink.GroupID == target.GroupID && week.Contains(drink.Date, start, end) {
				spend += drink.Cost
			}
		}
		achieved[weeksBack] = spend <= target.Budget
	}
	return achieved
}

// anchoredRun is the unbroken achieved run starting at week 0. It is 0
// the moment the current week itself is not achieved.
func anchoredRun(achieved []bool) int {
	run := 0
	for _, ok := range achieved {
		if !ok {
			break
		}
		run++
	}
	return run
}

// longestRun is the longest contiguous achieved run anywhere in the
// window, not only the one anchored at week 0.
func longestRun(achieved []bool) int {
	longest, run := 0, 0
	for _, ok := range achieved {
		if !ok {
			run = 0
			continue
		}
		run++
		if run > longest {
			longest = run
		}
	}
	return longest
}

func countTrue(values []bool) int {
	count := 0
	for _, ok := range values {
		if ok {
			count++
		}
	}
	return count
}
