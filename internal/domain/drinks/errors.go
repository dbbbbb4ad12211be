package drinks

import "errors"

var (
	ErrDrinkNotFound = errors.New("drink not found")
	ErrNotDrinkOwner = errors.New("not drink owner")
	ErrInvalidCost   = errors.New("cost must be zero or positive")
	ErrInvalidDate   = errors.New("date must be YYYY-MM-DD")
	ErrInvalidType   = errors.New("type is required")
)
