package objectives

import (
	"context"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ActiveObjective is the user's most recent objective; nil when none
// was ever set.
func (s *Service) ActiveObjective(ctx context.Context, userID string) (*Objective, error) {
	return s.repo.LatestByUser(ctx, userID)
}

// HasActive feeds the badge engine's goal_setter rule.
func (s *Service) HasActive(ctx context.Context, userID string) (bool, error) {
	objective, err := s.repo.LatestByUser(ctx, userID)
	if err != nil {
		return false, err
	}
	return objective != nil, nil
}

// CreateObjective inserts a new row; history is preserved, the new row
// supersedes the previous one as the active objective.
func (s *Service) CreateObjective(ctx context.Context, userID string, weeklyBudget float64) (*Objective, error) {
	if weeklyBudget < 0 {
		return nil, ErrInvalidBudget
	}

	objective := Objective{
		ID:           uuid.NewString(),
		UserID:       userID,
		WeeklyBudget: weeklyBudget,
	}
	if err := s.repo.Create(ctx, &objective); err != nil {
		return nil, err
	}
	return &objective, nil
}

// UpdateObjective mutates an existing row in place.
func (s *Service) UpdateObjective(ctx context.Context, userID, objectiveID string, weeklyBudget float64) (*Objective, error) {
	if weeklyBudget < 0 {
		return nil, ErrInvalidBudget
	}

	objective, err := s.repo.GetByID(ctx, objectiveID)
	if err != nil {
		return nil, err
	}
	if objective.UserID != userID {
		return nil, ErrNotObjectiveOwner
	}

	objective.WeeklyBudget = weeklyBudget
	if err := s.repo.Update(ctx, objective); err != nil {
		return nil, err
	}
	return objective, nil
}
