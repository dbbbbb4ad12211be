package groups

import "context"

// WeeklyDrinkFilter selects every drink the given users logged inside
// an inclusive YYYY-MM-DD window, whether or not the drink was tagged
// with a group. Budget progress counts a member's whole week, not just
// what they logged against one group.
type WeeklyDrinkFilter struct {
	UserIDs []string
	From    string
	To      string
}

type Repository interface {
	GetGroupByID(ctx context.Context, groupID string) (*Group, error)
	ListGroupsForUser(ctx context.Context, userID string) ([]Group, error)
	CreateGroup(ctx context.Context, group *Group) error
	UpdateGroupOwner(ctx context.Context, groupID, ownerID string) error
	UpdateGroupBudget(ctx context.Context, groupID string, budget float64) error
	DeleteGroup(ctx context.Context, groupID string) error

	GetMembership(ctx context.Context, groupID, userID string) (*Membership, error)
	AddMember(ctx context.Context, membership *Membership) error
	DeleteMember(ctx context.Context, groupID, userID string) error
	DeleteMembersByGroup(ctx context.Context, groupID string) error
	CountMembers(ctx context.Context, groupID string) (int64, error)
	// EarliestMember returns the member with the oldest membership
	// CreatedAt, excluding excludeUserID.
	EarliestMember(ctx context.Context, groupID, excludeUserID string) (*Membership, error)
	// ListMembers joins memberships with user profiles, ordered by
	// join time ascending.
	ListMembers(ctx context.Context, groupID string) ([]Member, error)

	ListMemberDrinks(ctx context.Context, filter WeeklyDrinkFilter) ([]MemberDrink, error)
	RecentGroupDrinks(ctx context.Context, groupID string, limit int) ([]MemberDrink, error)
	DeleteDrinksByGroup(ctx context.Context, groupID string) error

	Transaction(ctx context.Context, fn func(tx Repository) error) error
}

// Remote is the optimistic leaderboard edge function. A nil Remote
// means the local computation always runs.
type Remote interface {
	Leaderboard(ctx context.Context, groupID string) ([]LeaderboardEntry, error)
}
