package user

import (
	"context"
	"strings"
	"testing"
)

type fakeProfileRepo struct {
	profiles map[string]*Profile
	searches int
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*Profile)}
}

func (r *fakeProfileRepo) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	profile, ok := r.profiles[userID]
	if !ok {
		return nil, ErrProfileNotFound
	}
	copied := *profile
	return &copied, nil
}

func (r *fakeProfileRepo) UpsertProfile(ctx context.Context, profile *Profile) error {
	copied := *profile
	r.profiles[profile.UserID] = &copied
	return nil
}

func (r *fakeProfileRepo) SearchProfiles(ctx context.Context, query, excludeUserID string, limit int) ([]Profile, error) {
	r.searches++
	result := make([]Profile, 0)
	for _, profile := range r.profiles {
		if profile.UserID == excludeUserID {
			continue
		}
		if strings.Contains(strings.ToLower(profile.Username), strings.ToLower(query)) {
			result = append(result, *profile)
		}
		if len(result) == limit {
			break
		}
	}
	return result, nil
}

func TestSearchSkipsShortQueries(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewService(repo)

	result, err := svc.Search(context.Background(), " a ", "")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(result) != 0 {
		t.Fatalf("expected empty result, got %+v", result)
	}
	if repo.searches != 0 {
		t.Fatal("expected no repository call for short queries")
	}
}

func TestSearchExcludesRequester(t *testing.T) {
	repo := newFakeProfileRepo()
	repo.profiles["u1"] = &Profile{UserID: "u1", Username: "marco"}
	repo.profiles["u2"] = &Profile{UserID: "u2", Username: "marcella"}
	svc := NewService(repo)

	result, err := svc.Search(context.Background(), "marc", "u1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(result) != 1 || result[0].UserID != "u2" {
		t.Fatalf("expected only u2, got %+v", result)
	}
}

func TestUpsertProfileTrimsFields(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewService(repo)

	if err := svc.UpsertProfile(context.Background(), "u1", " marco ", " m@example.com ", ""); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	profile, err := svc.GetProfile(context.Background(), "u1")
	if err != nil {
		t.Fatalf("expected profile, got %v", err)
	}
	if profile.Username != "marco" || profile.Email != "m@example.com" {
		t.Fatalf("expected trimmed fields, got %+v", profile)
	}
}
