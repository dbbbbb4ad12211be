package groups

import "errors"

var (
	ErrGroupNotFound = errors.New("group not found")
	ErrNotOwner      = errors.New("only the group owner can do this")
	ErrNotMember     = errors.New("user is not a member of this group")
	ErrAlreadyMember = errors.New("user is already a member of this group")
	ErrInvalidName   = errors.New("group name is required")
	ErrInvalidBudget = errors.New("weekly budget must not be negative")
	ErrRemoveSelf    = errors.New("owners cannot remove themselves, leave instead")
)
