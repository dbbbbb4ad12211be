package objectives

import "context"

type Repository interface {
	// LatestByUser returns the user's most recent objective, or
	// (nil, nil) when they never set one.
	LatestByUser(ctx context.Context, userID string) (*Objective, error)
	GetByID(ctx context.Context, objectiveID string) (*Objective, error)
	Create(ctx context.Context, objective *Objective) error
	Update(ctx context.Context, objective *Objective) error
}
