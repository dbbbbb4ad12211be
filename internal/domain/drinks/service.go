package drinks

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"squadtab-go/pkg/week"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) ListDrinks(ctx context.Context, userID string, filter ListFilter) ([]Drink, error) {
	return s.repo.ListDrinks(ctx, userID, filter)
}

// WeeklyDrinks lists the user's drinks inside the current local week.
func (s *Service) WeeklyDrinks(ctx context.Context, userID string) ([]Drink, error) {
	start, end := week.Range(s.now(), 0)
	return s.repo.ListDrinks(ctx, userID, ListFilter{From: start, To: end})
}

func (s *Service) RecentDrinks(ctx context.Context, userID string, limit int) ([]Drink, error) {
	if limit <= 0 {
		limit = 5
	}
	return s.repo.ListDrinks(ctx, userID, ListFilter{Limit: limit})
}

func (s *Service) CreateDrink(ctx context.Context, input CreateDrinkInput) (*Drink, error) {
	if err := validate(input.Type, input.Cost, input.Date); err != nil {
		return nil, err
	}

	drink := Drink{
		ID:       uuid.NewString(),
		UserID:   input.UserID,
		GroupID:  input.GroupID,
		Type:     strings.TrimSpace(input.Type),
		Cost:     input.Cost,
		Date:     input.Date,
		Location: strings.TrimSpace(input.Location),
	}

	if err := s.repo.CreateDrink(ctx, &drink); err != nil {
		return nil, err
	}
	return &drink, nil
}

// UpdateDrink edits a drink in place. Only the owner may edit; the
// group tag is fixed at creation time.
func (s *Service) UpdateDrink(ctx context.Context, input UpdateDrinkInput) (*Drink, error) {
	if err := validate(input.Type, input.Cost, input.Date); err != nil {
		return nil, err
	}

	drink, err := s.repo.GetDrinkByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if drink.UserID != input.UserID {
		return nil, ErrNotDrinkOwner
	}

	drink.Type = strings.TrimSpace(input.Type)
	drink.Cost = input.Cost
	drink.Date = input.Date
	drink.Location = strings.TrimSpace(input.Location)

	if err := s.repo.UpdateDrink(ctx, drink); err != nil {
		return nil, err
	}
	return drink, nil
}

func (s *Service) DeleteDrink(ctx context.Context, userID, drinkID string) error {
	drink, err := s.repo.GetDrinkByID(ctx, drinkID)
	if err != nil {
		return err
	}
	if drink.UserID != userID {
		return ErrNotDrinkOwner
	}

	deleted, err := s.repo.DeleteDrink(ctx, drinkID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrDrinkNotFound
	}
	return nil
}

func validate(drinkType string, cost float64, date string) error {
	if strings.TrimSpace(drinkType) == "" {
		return ErrInvalidType
	}
	if cost < 0 {
		return ErrInvalidCost
	}
	if _, err := time.Parse(week.DateLayout, date); err != nil {
		return ErrInvalidDate
	}
	return nil
}
