package user

import (
	"context"
	"strings"
)

const (
	searchMinLength = 2
	searchLimit     = 10
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	return s.repo.GetProfile(ctx, userID)
}

// UpsertProfile keeps the local profile in sync with the identity
// provider; called from the auth middleware on every verified request.
func (s *Service) UpsertProfile(ctx context.Context, userID, username, email, avatarURL string) error {
	return s.repo.UpsertProfile(ctx, &Profile{
		UserID:    userID,
		Username:  strings.TrimSpace(username),
		Email:     strings.TrimSpace(email),
		AvatarURL: strings.TrimSpace(avatarURL),
	})
}

// Search finds users to invite. Queries shorter than two characters
// return nothing rather than scanning everyone.
func (s *Service) Search(ctx context.Context, query, excludeUserID string) ([]Profile, error) {
	query = strings.TrimSpace(query)
	if len(query) < searchMinLength {
		return []Profile{}, nil
	}
	return s.repo.SearchProfiles(ctx, query, excludeUserID, searchLimit)
}
