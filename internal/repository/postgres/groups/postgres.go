package groups

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	drinksdomain "squadtab-go/internal/domain/drinks"
	groupsdomain "squadtab-go/internal/domain/groups"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(groupsdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) GetGroupByID(ctx context.Context, groupID string) (*groupsdomain.Group, error) {
	var group groupsdomain.Group
	if err := r.db.WithContext(ctx).Where("id = ?", groupID).First(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, groupsdomain.ErrGroupNotFound
		}
		return nil, err
	}
	return &group, nil
}

func (r *PostgresRepository) ListGroupsForUser(ctx context.Context, userID string) ([]groupsdomain.Group, error) {
	var groups []groupsdomain.Group
	err := r.db.WithContext(ctx).
		Table("groups").
		Joins("join group_members on group_members.group_id = groups.id").
		Where("group_members.user_id = ?", userID).
		Order("groups.created_at asc").
		Find(&groups).Error
	if err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *PostgresRepository) CreateGroup(ctx context.Context, group *groupsdomain.Group) error {
	return r.db.WithContext(ctx).Create(group).Error
}

func (r *PostgresRepository) UpdateGroupOwner(ctx context.Context, groupID, ownerID string) error {
	return r.db.WithContext(ctx).Model(&groupsdomain.Group{}).
		Where("id = ?", groupID).
		Update("owner_id", ownerID).Error
}

func (r *PostgresRepository) UpdateGroupBudget(ctx context.Context, groupID string, budget float64) error {
	return r.db.WithContext(ctx).Model(&groupsdomain.Group{}).
		Where("id = ?", groupID).
		Update("weekly_budget", budget).Error
}

func (r *PostgresRepository) DeleteGroup(ctx context.Context, groupID string) error {
	return r.db.WithContext(ctx).Where("id = ?", groupID).Delete(&groupsdomain.Group{}).Error
}

func (r *PostgresRepository) GetMembership(ctx context.Context, groupID, userID string) (*groupsdomain.Membership, error) {
	var membership groupsdomain.Membership
	err := r.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		First(&membership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, groupsdomain.ErrNotMember
		}
		return nil, err
	}
	return &membership, nil
}

func (r *PostgresRepository) AddMember(ctx context.Context, membership *groupsdomain.Membership) error {
	return r.db.WithContext(ctx).Create(membership).Error
}

func (r *PostgresRepository) DeleteMember(ctx context.Context, groupID, userID string) error {
	return r.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Delete(&groupsdomain.Membership{}).Error
}

func (r *PostgresRepository) DeleteMembersByGroup(ctx context.Context, groupID string) error {
	return r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Delete(&groupsdomain.Membership{}).Error
}

func (r *PostgresRepository) CountMembers(ctx context.Context, groupID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&groupsdomain.Membership{}).
		Where("group_id = ?", groupID).
		Count(&count).Error
	return count, err
}

func (r *PostgresRepository) EarliestMember(ctx context.Context, groupID, excludeUserID string) (*groupsdomain.Membership, error) {
	var membership groupsdomain.Membership
	err := r.db.WithContext(ctx).
		Where("group_id = ? AND user_id <> ?", groupID, excludeUserID).
		Order("created_at asc").
		First(&membership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, groupsdomain.ErrNotMember
		}
		return nil, err
	}
	return &membership, nil
}

func (r *PostgresRepository) ListMembers(ctx context.Context, groupID string) ([]groupsdomain.Member, error) {
	type memberRow struct {
		UserID    string    `gorm:"column:user_id"`
		Username  *string   `gorm:"column:username"`
		AvatarURL *string   `gorm:"column:avatar_url"`
		JoinedAt  time.Time `gorm:"column:created_at"`
	}

	var rows []memberRow
	err := r.db.WithContext(ctx).
		Table("group_members").
		Select("group_members.user_id, group_members.created_at, user_profiles.username, user_profiles.avatar_url").
		Joins("left join user_profiles on user_profiles.user_id = group_members.user_id").
		Where("group_members.group_id = ?", groupID).
		Order("group_members.created_at asc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	members := make([]groupsdomain.Member, 0, len(rows))
	for _, row := range rows {
		member := groupsdomain.Member{
			UserID:   row.UserID,
			JoinedAt: row.JoinedAt,
		}
		if row.Username != nil {
			member.Username = *row.Username
		}
		if row.AvatarURL != nil {
			member.AvatarURL = *row.AvatarURL
		}
		members = append(members, member)
	}
	return members, nil
}

func (r *PostgresRepository) ListMemberDrinks(ctx context.Context, filter groupsdomain.WeeklyDrinkFilter) ([]groupsdomain.MemberDrink, error) {
	query := r.db.WithContext(ctx).
		Table("drinks").
		Select("drinks.id, drinks.user_id, drinks.type, drinks.cost, drinks.date, drinks.location, drinks.created_at, user_profiles.username").
		Joins("left join user_profiles on user_profiles.user_id = drinks.user_id").
		Where("drinks.user_id IN ?", filter.UserIDs)
	if filter.From != "" {
		query = query.Where("drinks.date >= ?", filter.From)
	}
	if filter.To != "" {
		query = query.Where("drinks.date <= ?", filter.To)
	}

	return scanMemberDrinks(query.Order("drinks.date desc, drinks.created_at desc"))
}

func (r *PostgresRepository) RecentGroupDrinks(ctx context.Context, groupID string, limit int) ([]groupsdomain.MemberDrink, error) {
	query := r.db.WithContext(ctx).
		Table("drinks").
		Select("drinks.id, drinks.user_id, drinks.type, drinks.cost, drinks.date, drinks.location, drinks.created_at, user_profiles.username").
		Joins("left join user_profiles on user_profiles.user_id = drinks.user_id").
		Where("drinks.group_id = ?", groupID).
		Order("drinks.created_at desc").
		Limit(limit)

	return scanMemberDrinks(query)
}

func (r *PostgresRepository) DeleteDrinksByGroup(ctx context.Context, groupID string) error {
	return r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Delete(&drinksdomain.Drink{}).Error
}

type memberDrinkRow struct {
	ID        string    `gorm:"column:id"`
	UserID    string    `gorm:"column:user_id"`
	Username  *string   `gorm:"column:username"`
	Type      string    `gorm:"column:type"`
	Cost      float64   `gorm:"column:cost"`
	Date      string    `gorm:"column:date"`
	Location  string    `gorm:"column:location"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func scanMemberDrinks(query *gorm.DB) ([]groupsdomain.MemberDrink, error) {
	var rows []memberDrinkRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	drinks := make([]groupsdomain.MemberDrink, 0, len(rows))
	for _, row := range rows {
		drink := groupsdomain.MemberDrink{
			ID:        row.ID,
			UserID:    row.UserID,
			Type:      row.Type,
			Cost:      row.Cost,
			Date:      row.Date,
			Location:  row.Location,
			CreatedAt: row.CreatedAt,
		}
		if row.Username != nil {
			drink.Username = *row.Username
		}
		drinks = append(drinks, drink)
	}
	return drinks, nil
}
