package objectives

import "errors"

var (
	ErrObjectiveNotFound = errors.New("objective not found")
	ErrNotObjectiveOwner = errors.New("not objective owner")
	ErrInvalidBudget     = errors.New("weekly budget must be zero or positive")
)
