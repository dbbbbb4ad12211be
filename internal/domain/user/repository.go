package user

import "context"

type Repository interface {
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	UpsertProfile(ctx context.Context, profile *Profile) error
	// SearchProfiles matches usernames case-insensitively by
	// substring, excluding excludeUserID when non-empty.
	SearchProfiles(ctx context.Context, query, excludeUserID string, limit int) ([]Profile, error)
}
