package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"squadtab-go/pkg/logger"
	"squadtab-go/pkg/week"
)

type fakeStatsRepo struct {
	createdAt time.Time
	drinks    []DrinkRecord
	groups    int64
	budgeted  []GroupBudget

	drinksErr error
}

func (f *fakeStatsRepo) ProfileCreatedAt(ctx context.Context, userID string) (time.Time, error) {
	return f.createdAt, nil
}

func (f *fakeStatsRepo) ListDrinks(ctx context.Context, userID string) ([]DrinkRecord, error) {
	if f.drinksErr != nil {
		return nil, f.drinksErr
	}
	return f.drinks, nil
}

func (f *fakeStatsRepo) CountGroups(ctx context.Context, userID string) (int64, error) {
	return f.groups, nil
}

func (f *fakeStatsRepo) ListBudgetedGroups(ctx context.Context, userID string) ([]GroupBudget, error) {
	return f.budgeted, nil
}

type fakeRemoteStats struct {
	snapshot *Snapshot
	err      error
	calls    int
}

func (f *fakeRemoteStats) WeeklyStats(ctx context.Context, userID, groupID string) (*Snapshot, error) {
	f.calls++
	return f.snapshot, f.err
}

func testLogger() logger.Logger {
	return logger.New(discard{}, 99, "json")
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

// fixedNow anchors all window math so drink dates can be written
// relative to a known week.
var fixedNow = time.Date(2026, 1, 14, 12, 0, 0, 0, time.UTC) // Wednesday

func newStatsService(repo *fakeStatsRepo, remote Remote) *Service {
	svc := NewService(repo, remote, testLogger())
	svc.now = func() time.Time { return fixedNow }
	return svc
}

// dateInWeek returns a date string inside the week weeksBack weeks ago.
func dateInWeek(weeksBack int) string {
	start, _ := week.Range(fixedNow, weeksBack)
	return start
}

func TestUserSnapshotEmptyHistory(t *testing.T) {
	repo := &fakeStatsRepo{createdAt: fixedNow.AddDate(0, 0, -10)}
	svc := newStatsService(repo, nil)

	snapshot, err := svc.UserSnapshot(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if snapshot.TotalDrinks != 0 {
		t.Fatalf("expected 0 drinks, got %d", snapshot.TotalDrinks)
	}
	if snapshot.AverageCostPerDrink != 0 {
		t.Fatalf("expected zero average with no drinks, got %v", snapshot.AverageCostPerDrink)
	}
	if snapshot.JoinedDays != 10 {
		t.Fatalf("expected 10 joined days, got %d", snapshot.JoinedDays)
	}
}

func TestUserSnapshotTotalsAndWeekly(t *testing.T) {
	repo := &fakeStatsRepo{
		createdAt: fixedNow.AddDate(0, 0, -30),
		groups:    2,
		drinks: []DrinkRecord{
			{Cost: 5, Date: dateInWeek(0)},
			{Cost: 7, Date: dateInWeek(0)},
			{Cost: 4, Date: dateInWeek(3)},
			{Cost: 10, Date: dateInWeek(5)},
		},
	}
	svc := newStatsService(repo, nil)

	snapshot, err := svc.UserSnapshot(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if snapshot.TotalDrinks != 4 || snapshot.TotalSpent != 26 {
		t.Fatalf("unexpected totals: %d drinks, %v spent", snapshot.TotalDrinks, snapshot.TotalSpent)
	}
	if snapshot.WeeklyDrinks != 2 || snapshot.WeeklySpent != 12 {
		t.Fatalf("unexpected weekly: %d drinks, %v spent", snapshot.WeeklyDrinks, snapshot.WeeklySpent)
	}
	if snapshot.AverageCostPerDrink != 6.5 {
		t.Fatalf("expected average 6.5, got %v", snapshot.AverageCostPerDrink)
	}
	if snapshot.GroupsCount != 2 {
		t.Fatalf("expected 2 groups, got %d", snapshot.GroupsCount)
	}
}

func TestUserSnapshotJoinedDaysNeverNegative(t *testing.T) {
	repo := &fakeStatsRepo{createdAt: fixedNow.Add(2 * time.Hour)}
	svc := newStatsService(repo, nil)

	snapshot, err := svc.UserSnapshot(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if snapshot.JoinedDays != 0 {
		t.Fatalf("expected 0 joined days, got %d", snapshot.JoinedDays)
	}
}

func TestUserSnapshotNoBudgetedGroupZeroesStreaks(t *testing.T) {
	repo := &fakeStatsRepo{
		createdAt: fixedNow.AddDate(0, 0, -100),
		drinks:    []DrinkRecord{{Cost: 3, Date: dateInWeek(0), GroupID: "g1"}},
	}
	svc := newStatsService(repo, nil)

	snapshot, err := svc.UserSnapshot(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if snapshot.MaxStreakWeeks != 0 || snapshot.CurrentStreakWeeks != 0 || snapshot.AchievedWeeklyGoals != 0 {
		t.Fatalf("expected zero streak fields, got %+v", snapshot)
	}
}

func TestUserSnapshotStreakAgainstHighestBudgetGroup(t *testing.T) {
	// g2 has the higher budget, so g1's blowout weeks are irrelevant.
	repo := &fakeStatsRepo{
		createdAt: fixedNow.AddDate(0, 0, -200),
		budgeted: []GroupBudget{
			{GroupID: "g1", Budget: 20},
			{GroupID: "g2", Budget: 50},
		},
		drinks: []DrinkRecord{
			{Cost: 100, Date: dateInWeek(0), GroupID: "g1"},
			{Cost: 30, Date: dateInWeek(0), GroupID: "g2"},
			{Cost: 45, Date: dateInWeek(1), GroupID: "g2"},
		},
	}
	svc := newStatsService(repo, nil)

	snapshot, err := svc.UserSnapshot(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Within g2's €50 budget every week, so the whole 20-week window
	// is achieved.
	if snapshot.AchievedWeeklyGoals != 20 {
		t.Fatalf("expected 20 achieved weeks, got %d", snapshot.AchievedWeeklyGoals)
	}
	if snapshot.CurrentStreakWeeks != 20 || snapshot.MaxStreakWeeks != 20 {
		t.Fatalf("expected full-window streak, got current=%d max=%d",
			snapshot.CurrentStreakWeeks, snapshot.MaxStreakWeeks)
	}
}

func TestUserSnapshotCurrentStreakResetsOnWeekZeroMiss(t *testing.T) {
	repo := &fakeStatsRepo{
		createdAt: fixedNow.AddDate(0, 0, -200),
		budgeted:  []GroupBudget{{GroupID: "g1", Budget: 10}},
		drinks: []DrinkRecord{
			// Current week blows the budget; older weeks are clean.
			{Cost: 25, Date: dateInWeek(0), GroupID: "g1"},
		},
	}
	svc := newStatsService(repo, nil)

	snapshot, err := svc.UserSnapshot(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if snapshot.CurrentStreakWeeks != 0 {
		t.Fatalf("expected current streak 0, got %d", snapshot.CurrentStreakWeeks)
	}
	// Weeks 1..19 are all empty, hence achieved.
	if snapshot.MaxStreakWeeks != 19 {
		t.Fatalf("expected max streak 19, got %d", snapshot.MaxStreakWeeks)
	}
	if snapshot.AchievedWeeklyGoals != 19 {
		t.Fatalf("expected 19 achieved weeks, got %d", snapshot.AchievedWeeklyGoals)
	}
}

func TestUserSnapshotMaxStreakFoundBeyondAnchor(t *testing.T) {
	repo := &fakeStatsRepo{
		createdAt: fixedNow.AddDate(0, 0, -200),
		budgeted:  []GroupBudget{{GroupID: "g1", Budget: 10}},
		drinks: []DrinkRecord{
			// Misses at weeks 0, 1 and 6 leave a 4-week run at weeks
			// 2..5 as the longest.
			{Cost: 25, Date: dateInWeek(0), GroupID: "g1"},
			{Cost: 25, Date: dateInWeek(1), GroupID: "g1"},
			{Cost: 25, Date: dateInWeek(6), GroupID: "g1"},
			// Break up the long tail of empty achieved weeks.
			{Cost: 25, Date: dateInWeek(8), GroupID: "g1"},
			{Cost: 25, Date: dateInWeek(11), GroupID: "g1"},
			{Cost: 25, Date: dateInWeek(14), GroupID: "g1"},
			{Cost: 25, Date: dateInWeek(17), GroupID: "g1"},
			{Cost: 25, Date: dateInWeek(19), GroupID: "g1"},
		},
	}
	svc := newStatsService(repo, nil)

	snapshot, err := svc.UserSnapshot(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if snapshot.CurrentStreakWeeks != 0 {
		t.Fatalf("expected current streak 0, got %d", snapshot.CurrentStreakWeeks)
	}
	if snapshot.MaxStreakWeeks != 4 {
		t.Fatalf("expected max streak 4, got %d", snapshot.MaxStreakWeeks)
	}
	if snapshot.CurrentStreakWeeks > snapshot.MaxStreakWeeks {
		t.Fatal("current streak exceeded max streak")
	}
}

func TestUserSnapshotFailsAtomicallyOnRepoError(t *testing.T) {
	repoErr := errors.New("connection reset")
	repo := &fakeStatsRepo{
		createdAt: fixedNow.AddDate(0, 0, -10),
		drinksErr: repoErr,
	}
	svc := newStatsService(repo, nil)

	snapshot, err := svc.UserSnapshot(context.Background(), "user-1")
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected repo error, got %v", err)
	}
	if snapshot != (Snapshot{}) {
		t.Fatalf("expected zero snapshot on failure, got %+v", snapshot)
	}
}

func TestWeeklyStatsPrefersRemote(t *testing.T) {
	remote := &fakeRemoteStats{snapshot: &Snapshot{TotalDrinks: 7}}
	repo := &fakeStatsRepo{createdAt: fixedNow.AddDate(0, 0, -10)}
	svc := newStatsService(repo, remote)

	snapshot, err := svc.WeeklyStats(context.Background(), "user-1", "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if snapshot.TotalDrinks != 7 {
		t.Fatalf("expected remote snapshot, got %+v", snapshot)
	}
	if remote.calls != 1 {
		t.Fatalf("expected 1 remote call, got %d", remote.calls)
	}
}

func TestWeeklyStatsFallsBackToLocalAggregation(t *testing.T) {
	remote := &fakeRemoteStats{err: errors.New("function unavailable")}
	repo := &fakeStatsRepo{
		createdAt: fixedNow.AddDate(0, 0, -10),
		drinks:    []DrinkRecord{{Cost: 4, Date: dateInWeek(0)}},
	}
	svc := newStatsService(repo, remote)

	snapshot, err := svc.WeeklyStats(context.Background(), "user-1", "")
	if err != nil {
		t.Fatalf("expected local fallback, got %v", err)
	}
	if snapshot.TotalDrinks != 1 || snapshot.WeeklySpent != 4 {
		t.Fatalf("expected local aggregation result, got %+v", snapshot)
	}
}
