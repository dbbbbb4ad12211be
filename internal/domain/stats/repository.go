package stats

import (
	"context"
	"time"
)

type Repository interface {
	ProfileCreatedAt(ctx context.Context, userID string) (time.Time, error)
	ListDrinks(ctx context.Context, userID string) ([]DrinkRecord, error)
	CountGroups(ctx context.Context, userID string) (int64, error)
	ListBudgetedGroups(ctx context.Context, userID string) ([]GroupBudget, error)
}

// Remote is the optimistic weekly-stats edge function. A nil Remote
// means the local aggregation always runs.
type Remote interface {
	WeeklyStats(ctx context.Context, userID, groupID string) (*Snapshot, error)
}
