package drinks

import (
	"context"
	"errors"
	"testing"
	"time"

	"squadtab-go/pkg/week"
)

type fakeDrinkRepo struct {
	drinks map[string]*Drink

	lastFilter ListFilter
}

func newFakeDrinkRepo() *fakeDrinkRepo {
	return &fakeDrinkRepo{drinks: make(map[string]*Drink)}
}

func (r *fakeDrinkRepo) ListDrinks(ctx context.Context, userID string, filter ListFilter) ([]Drink, error) {
	r.lastFilter = filter
	result := make([]Drink, 0)
	for _, drink := range r.drinks {
		if drink.UserID != userID {
			continue
		}
		if filter.From != "" && drink.Date < filter.From {
			continue
		}
		if filter.To != "" && drink.Date > filter.To {
			continue
		}
		result = append(result, *drink)
	}
	return result, nil
}

func (r *fakeDrinkRepo) GetDrinkByID(ctx context.Context, drinkID string) (*Drink, error) {
	drink, ok := r.drinks[drinkID]
	if !ok {
		return nil, ErrDrinkNotFound
	}
	copied := *drink
	return &copied, nil
}

func (r *fakeDrinkRepo) CreateDrink(ctx context.Context, drink *Drink) error {
	if drink.CreatedAt.IsZero() {
		drink.CreatedAt = time.Now().UTC()
	}
	r.drinks[drink.ID] = drink
	return nil
}

func (r *fakeDrinkRepo) UpdateDrink(ctx context.Context, drink *Drink) error {
	if _, ok := r.drinks[drink.ID]; !ok {
		return ErrDrinkNotFound
	}
	r.drinks[drink.ID] = drink
	return nil
}

func (r *fakeDrinkRepo) DeleteDrink(ctx context.Context, drinkID string) (bool, error) {
	if _, ok := r.drinks[drinkID]; !ok {
		return false, nil
	}
	delete(r.drinks, drinkID)
	return true, nil
}

func TestCreateDrink(t *testing.T) {
	repo := newFakeDrinkRepo()
	svc := NewService(repo)

	drink, err := svc.CreateDrink(context.Background(), CreateDrinkInput{
		UserID:   "user-1",
		Type:     "  Spritz ",
		Cost:     4.5,
		Date:     "2026-01-14",
		Location: "Bar Roma",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if drink.ID == "" {
		t.Fatal("expected generated id")
	}
	if drink.Type != "Spritz" {
		t.Fatalf("expected trimmed type, got %q", drink.Type)
	}
}

func TestCreateDrinkValidation(t *testing.T) {
	svc := NewService(newFakeDrinkRepo())

	cases := []struct {
		name  string
		input CreateDrinkInput
		want  error
	}{
		{"empty type", CreateDrinkInput{UserID: "u", Type: " ", Cost: 1, Date: "2026-01-14"}, ErrInvalidType},
		{"negative cost", CreateDrinkInput{UserID: "u", Type: "Beer", Cost: -1, Date: "2026-01-14"}, ErrInvalidCost},
		{"bad date", CreateDrinkInput{UserID: "u", Type: "Beer", Cost: 1, Date: "14/01/2026"}, ErrInvalidDate},
	}
	for _, tc := range cases {
		if _, err := svc.CreateDrink(context.Background(), tc.input); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestCreateDrinkZeroCostAllowed(t *testing.T) {
	svc := NewService(newFakeDrinkRepo())

	if _, err := svc.CreateDrink(context.Background(), CreateDrinkInput{
		UserID: "u", Type: "Water", Cost: 0, Date: "2026-01-14",
	}); err != nil {
		t.Fatalf("expected free drink to be valid, got %v", err)
	}
}

func TestUpdateDrinkOwnerOnly(t *testing.T) {
	repo := newFakeDrinkRepo()
	repo.drinks["d1"] = &Drink{ID: "d1", UserID: "owner", Type: "Beer", Cost: 3, Date: "2026-01-10"}
	svc := NewService(repo)

	_, err := svc.UpdateDrink(context.Background(), UpdateDrinkInput{
		ID: "d1", UserID: "intruder", Type: "Beer", Cost: 3, Date: "2026-01-10",
	})
	if !errors.Is(err, ErrNotDrinkOwner) {
		t.Fatalf("expected ErrNotDrinkOwner, got %v", err)
	}

	updated, err := svc.UpdateDrink(context.Background(), UpdateDrinkInput{
		ID: "d1", UserID: "owner", Type: "Wine", Cost: 6, Date: "2026-01-11",
	})
	if err != nil {
		t.Fatalf("expected owner update, got %v", err)
	}
	if updated.Type != "Wine" || updated.Cost != 6 {
		t.Fatalf("unexpected update result %+v", updated)
	}
}

func TestDeleteDrinkOwnerOnly(t *testing.T) {
	repo := newFakeDrinkRepo()
	repo.drinks["d1"] = &Drink{ID: "d1", UserID: "owner"}
	svc := NewService(repo)

	if err := svc.DeleteDrink(context.Background(), "intruder", "d1"); !errors.Is(err, ErrNotDrinkOwner) {
		t.Fatalf("expected ErrNotDrinkOwner, got %v", err)
	}
	if err := svc.DeleteDrink(context.Background(), "owner", "d1"); err != nil {
		t.Fatalf("expected delete, got %v", err)
	}
	if err := svc.DeleteDrink(context.Background(), "owner", "d1"); !errors.Is(err, ErrDrinkNotFound) {
		t.Fatalf("expected ErrDrinkNotFound after delete, got %v", err)
	}
}

func TestWeeklyDrinksUsesCurrentWeekWindow(t *testing.T) {
	repo := newFakeDrinkRepo()
	svc := NewService(repo)
	now := time.Date(2026, 1, 14, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	wantFrom, wantTo := week.Range(now, 0)

	repo.drinks["in"] = &Drink{ID: "in", UserID: "u", Date: wantFrom}
	repo.drinks["out"] = &Drink{ID: "out", UserID: "u", Date: "2025-12-01"}

	result, err := svc.WeeklyDrinks(context.Background(), "u")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if repo.lastFilter.From != wantFrom || repo.lastFilter.To != wantTo {
		t.Fatalf("expected window %s..%s, got %s..%s", wantFrom, wantTo, repo.lastFilter.From, repo.lastFilter.To)
	}
	if len(result) != 1 || result[0].ID != "in" {
		t.Fatalf("expected only the in-week drink, got %+v", result)
	}
}
