package drinks

import "context"

type Repository interface {
	ListDrinks(ctx context.Context, userID string, filter ListFilter) ([]Drink, error)
	GetDrinkByID(ctx context.Context, drinkID string) (*Drink, error)
	CreateDrink(ctx context.Context, drink *Drink) error
	UpdateDrink(ctx context.Context, drink *Drink) error
	DeleteDrink(ctx context.Context, drinkID string) (bool, error)
}
