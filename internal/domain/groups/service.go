package groups

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"squadtab-go/pkg/logger"
	"squadtab-go/pkg/week"
)

const (
	// memberStreakWindowWeeks bounds the slow-path streak walk for a
	// single member inside a group.
	memberStreakWindowWeeks = 10

	defaultRecentDrinksLimit = 10
	maxRecentDrinksLimit     = 50
)

type Service struct {
	repo   Repository
	remote Remote
	cache  Cache
	log    logger.Logger
	now    func() time.Time
}

func NewService(repo Repository, remote Remote, cache Cache, log logger.Logger) *Service {
	if cache == nil {
		cache = noopCache{}
	}
	return &Service{
		repo:   repo,
		remote: remote,
		cache:  cache,
		log:    log,
		now:    time.Now,
	}
}

func (s *Service) GetGroup(ctx context.Context, groupID string) (*Group, error) {
	return s.repo.GetGroupByID(ctx, groupID)
}

func (s *Service) ListForUser(ctx context.Context, userID string) ([]Group, error) {
	return s.repo.ListGroupsForUser(ctx, userID)
}

// Create makes a new group with the creator as owner and first member,
// in one transaction.
func (s *Service) Create(ctx context.Context, ownerID, name string, weeklyBudget float64) (*Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if weeklyBudget < 0 {
		return nil, ErrInvalidBudget
	}

	group := Group{
		ID:           uuid.NewString(),
		Name:         name,
		OwnerID:      ownerID,
		WeeklyBudget: weeklyBudget,
	}

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		if err := tx.CreateGroup(ctx, &group); err != nil {
			return err
		}
		return tx.AddMember(ctx, &Membership{
			GroupID: group.ID,
			UserID:  ownerID,
		})
	})
	if err != nil {
		return nil, err
	}

	return &group, nil
}

func (s *Service) Join(ctx context.Context, userID, groupID string) error {
	return s.addMember(ctx, groupID, userID)
}

// Invite adds another user to a group. Existing members are rejected
// with a typed error rather than silently readded.
func (s *Service) Invite(ctx context.Context, groupID, userID string) error {
	return s.addMember(ctx, groupID, userID)
}

func (s *Service) addMember(ctx context.Context, groupID, userID string) error {
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		if _, err := tx.GetGroupByID(ctx, groupID); err != nil {
			return err
		}

		existing, err := tx.GetMembership(ctx, groupID, userID)
		if err != nil && !errors.Is(err, ErrNotMember) {
			return err
		}
		if existing != nil {
			return ErrAlreadyMember
		}

		return tx.AddMember(ctx, &Membership{
			GroupID: groupID,
			UserID:  userID,
		})
	})
	if err != nil {
		return err
	}

	s.cache.Delete(groupID)
	return nil
}

// Leave removes the user's membership. An owner leaving hands the
// group to the longest-standing remaining member; the last member
// leaving deletes the group together with its memberships and drinks.
func (s *Service) Leave(ctx context.Context, userID, groupID string) error {
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		group, err := tx.GetGroupByID(ctx, groupID)
		if err != nil {
			return err
		}

		if _, err := tx.GetMembership(ctx, groupID, userID); err != nil {
			return err
		}

		count, err := tx.CountMembers(ctx, groupID)
		if err != nil {
			return err
		}

		if count <= 1 {
			return deleteGroupCascade(ctx, tx, groupID)
		}

		if group.OwnerID == userID {
			heir, err := tx.EarliestMember(ctx, groupID, userID)
			if err != nil {
				return err
			}
			if err := tx.UpdateGroupOwner(ctx, groupID, heir.UserID); err != nil {
				return err
			}
		}

		return tx.DeleteMember(ctx, groupID, userID)
	})
	if err != nil {
		return err
	}

	s.cache.Delete(groupID)
	return nil
}

// Remove kicks a member out. Owner-only; owners leave instead of
// removing themselves.
func (s *Service) Remove(ctx context.Context, groupID, userID, requesterID string) error {
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		group, err := tx.GetGroupByID(ctx, groupID)
		if err != nil {
			return err
		}
		if group.OwnerID != requesterID {
			return ErrNotOwner
		}
		if userID == requesterID {
			return ErrRemoveSelf
		}

		if _, err := tx.GetMembership(ctx, groupID, userID); err != nil {
			return err
		}

		return tx.DeleteMember(ctx, groupID, userID)
	})
	if err != nil {
		return err
	}

	s.cache.Delete(groupID)
	return nil
}

// Delete removes the whole group. Owner-only.
func (s *Service) Delete(ctx context.Context, userID, groupID string) error {
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		group, err := tx.GetGroupByID(ctx, groupID)
		if err != nil {
			return err
		}
		if group.OwnerID != userID {
			return ErrNotOwner
		}

		return deleteGroupCascade(ctx, tx, groupID)
	})
	if err != nil {
		return err
	}

	s.cache.Delete(groupID)
	return nil
}

func deleteGroupCascade(ctx context.Context, tx Repository, groupID string) error {
	if err := tx.DeleteDrinksByGroup(ctx, groupID); err != nil {
		return err
	}
	if err := tx.DeleteMembersByGroup(ctx, groupID); err != nil {
		return err
	}
	return tx.DeleteGroup(ctx, groupID)
}

func (s *Service) UpdateBudget(ctx context.Context, groupID string, budget float64, requesterID string) error {
	if budget < 0 {
		return ErrInvalidBudget
	}

	group, err := s.repo.GetGroupByID(ctx, groupID)
	if err != nil {
		return err
	}
	if group.OwnerID != requesterID {
		return ErrNotOwner
	}

	if err := s.repo.UpdateGroupBudget(ctx, groupID, budget); err != nil {
		return err
	}

	s.cache.Delete(groupID)
	return nil
}

func (s *Service) ListMembers(ctx context.Context, groupID string) ([]Member, error) {
	return s.repo.ListMembers(ctx, groupID)
}

// RecentDrinks lists the group's latest drinks across all members,
// newest first.
func (s *Service) RecentDrinks(ctx context.Context, groupID string, limit int) ([]MemberDrink, error) {
	if limit <= 0 {
		limit = defaultRecentDrinksLimit
	}
	if limit > maxRecentDrinksLimit {
		limit = maxRecentDrinksLimit
	}
	if _, err := s.repo.GetGroupByID(ctx, groupID); err != nil {
		return nil, err
	}

	drinks, err := s.repo.RecentGroupDrinks(ctx, groupID, limit)
	if err != nil {
		return nil, err
	}
	for i := range drinks {
		drinks[i].LoggedAt = week.FormatFromUTC(drinks[i].CreatedAt.UTC().Format(time.RFC3339))
	}
	return drinks, nil
}

// MembersProgress is the fast path over one group: each member's total
// current-week spend and drink count against the group budget.
// StreakWeeks is left at 0 here; MemberStreak is the per-member slow
// path.
func (s *Service) MembersProgress(ctx context.Context, groupID string) ([]MemberProgress, error) {
	group, err := s.repo.GetGroupByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	members, err := s.repo.ListMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}

	weekStart, weekEnd := week.Range(s.now(), 0)
	weeklyDrinks, err := s.repo.ListMemberDrinks(ctx, WeeklyDrinkFilter{
		UserIDs: memberIDs(members),
		From:    weekStart,
		To:      weekEnd,
	})
	if err != nil {
		return nil, err
	}

	return buildProgress(group.WeeklyBudget, members, weeklyDrinks), nil
}

func memberIDs(members []Member) []string {
	ids := make([]string, 0, len(members))
	for _, member := range members {
		ids = append(ids, member.UserID)
	}
	return ids
}

func buildProgress(budget float64, members []Member, weeklyDrinks []MemberDrink) []MemberProgress {
	progress := make([]MemberProgress, 0, len(members))
	for _, member := range members {
		var spent float64
		var count int
		for _, drink := range weeklyDrinks {
			if drink.UserID == member.UserID {
				spent += drink.Cost
				count++
			}
		}
		remaining := budget - spent
		if remaining < 0 {
			remaining = 0
		}
		percent := 100.0
		if budget > 0 {
			percent = remaining / budget * 100
		}
		progress = append(progress, MemberProgress{
			UserID:          member.UserID,
			Username:        member.Username,
			WeeklySpent:     spent,
			DrinksCount:     count,
			IsWithinBudget:  budget == 0 || spent <= budget,
			Remaining:       remaining,
			ProgressPercent: percent,
		})
	}
	return progress
}

// MemberStreak walks up to ten weeks back and counts consecutive weeks
// from the current one where the member's total spend stayed within
// the group budget, stopping at the first miss. A group without a
// budget has no streak.
func (s *Service) MemberStreak(ctx context.Context, userID, groupID string) (int, error) {
	group, err := s.repo.GetGroupByID(ctx, groupID)
	if err != nil {
		return 0, err
	}
	if group.WeeklyBudget == 0 {
		return 0, nil
	}

	now := s.now()
	streak := 0
	for weeksBack := 0; weeksBack < memberStreakWindowWeeks; weeksBack++ {
		start, end := week.Range(now, weeksBack)
		drinks, err := s.repo.ListMemberDrinks(ctx, WeeklyDrinkFilter{
			UserIDs: []string{userID},
			From:    start,
			To:      end,
		})
		if err != nil {
			return 0, err
		}

		var spent float64
		for _, drink := range drinks {
			spent += drink.Cost
		}
		if spent > group.WeeklyBudget {
			break
		}
		streak++
	}

	return streak, nil
}

// CompleteData fetches one group's weekly picture in three reads and
// derives both progress and leaderboard from the same drink set, so
// the two views cannot disagree. Results are served from the TTL cache
// when fresh.
func (s *Service) CompleteData(ctx context.Context, groupID string) (*CompleteData, error) {
	if cached, ok := s.cache.Get(groupID); ok {
		return cached, nil
	}

	data, err := s.fetchCompleteData(ctx, groupID)
	if err != nil {
		return nil, err
	}

	s.cache.Set(groupID, data)
	return data, nil
}

// RefreshCompleteData fetches the group's data regardless of cache
// freshness and writes the result through. Used by the watcher.
func (s *Service) RefreshCompleteData(ctx context.Context, groupID string) (*CompleteData, error) {
	data, err := s.fetchCompleteData(ctx, groupID)
	if err != nil {
		return nil, err
	}

	s.cache.Set(groupID, data)
	return data, nil
}

func (s *Service) fetchCompleteData(ctx context.Context, groupID string) (*CompleteData, error) {
	group, err := s.repo.GetGroupByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	members, err := s.repo.ListMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}

	weekStart, weekEnd := week.Range(s.now(), 0)
	weeklyDrinks, err := s.repo.ListMemberDrinks(ctx, WeeklyDrinkFilter{
		UserIDs: memberIDs(members),
		From:    weekStart,
		To:      weekEnd,
	})
	if err != nil {
		return nil, err
	}

	return &CompleteData{
		Group:       *group,
		Members:     members,
		Progress:    buildProgress(group.WeeklyBudget, members, weeklyDrinks),
		Leaderboard: RankLeaderboard(buildLeaderboard(members, weeklyDrinks)),
		FetchedAt:   s.now(),
	}, nil
}

// Leaderboard asks the remote leaderboard function first and falls
// back to the local current-week computation when it is unavailable.
// Both paths return the same ranking.
func (s *Service) Leaderboard(ctx context.Context, groupID string) ([]LeaderboardEntry, error) {
	if s.remote != nil {
		entries, err := s.remote.Leaderboard(ctx, groupID)
		if err == nil {
			return RankLeaderboard(entries), nil
		}
		s.log.BusinessError("groups: leaderboard function failed, computing locally", err, "group_id", groupID)
	}

	members, err := s.repo.ListMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}

	weekStart, weekEnd := week.Range(s.now(), 0)
	weeklyDrinks, err := s.repo.ListMemberDrinks(ctx, WeeklyDrinkFilter{
		UserIDs: memberIDs(members),
		From:    weekStart,
		To:      weekEnd,
	})
	if err != nil {
		return nil, err
	}

	return RankLeaderboard(buildLeaderboard(members, weeklyDrinks)), nil
}

func buildLeaderboard(members []Member, weeklyDrinks []MemberDrink) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(members))
	for _, member := range members {
		entry := LeaderboardEntry{
			UserID:   member.UserID,
			Username: member.Username,
		}
		for _, drink := range weeklyDrinks {
			if drink.UserID == member.UserID {
				entry.DrinkCount++
				entry.TotalCost += drink.Cost
			}
		}
		entries = append(entries, entry)
	}
	return entries
}

// RankLeaderboard orders entries by drink count, then total cost, both
// descending. The sort is stable so ties keep their incoming order.
func RankLeaderboard(entries []LeaderboardEntry) []LeaderboardEntry {
	ranked := make([]LeaderboardEntry, len(entries))
	copy(ranked, entries)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].DrinkCount != ranked[j].DrinkCount {
			return ranked[i].DrinkCount > ranked[j].DrinkCount
		}
		return ranked[i].TotalCost > ranked[j].TotalCost
	})

	return ranked
}
