package stats

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	statsdomain "squadtab-go/internal/domain/stats"
	userdomain "squadtab-go/internal/domain/user"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ProfileCreatedAt(ctx context.Context, userID string) (time.Time, error) {
	var profile userdomain.Profile
	err := r.db.WithContext(ctx).
		Select("created_at").
		Where("user_id = ?", userID).
		First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return time.Time{}, userdomain.ErrProfileNotFound
	}
	if err != nil {
		return time.Time{}, err
	}
	return profile.CreatedAt, nil
}

func (r *PostgresRepository) ListDrinks(ctx context.Context, userID string) ([]statsdomain.DrinkRecord, error) {
	type drinkRow struct {
		Cost    float64 `gorm:"column:cost"`
		Date    string  `gorm:"column:date"`
		GroupID *string `gorm:"column:group_id"`
	}

	var rows []drinkRow
	err := r.db.WithContext(ctx).
		Table("drinks").
		Select("cost, date, group_id").
		Where("user_id = ?", userID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	records := make([]statsdomain.DrinkRecord, 0, len(rows))
	for _, row := range rows {
		record := statsdomain.DrinkRecord{Cost: row.Cost, Date: row.Date}
		if row.GroupID != nil {
			record.GroupID = *row.GroupID
		}
		records = append(records, record)
	}
	return records, nil
}

func (r *PostgresRepository) CountGroups(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("group_members").
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *PostgresRepository) ListBudgetedGroups(ctx context.Context, userID string) ([]statsdomain.GroupBudget, error) {
	type groupRow struct {
		ID           string  `gorm:"column:id"`
		WeeklyBudget float64 `gorm:"column:weekly_budget"`
	}

	var rows []groupRow
	err := r.db.WithContext(ctx).
		Table("groups").
		Select("groups.id, groups.weekly_budget").
		Joins("join group_members on group_members.group_id = groups.id").
		Where("group_members.user_id = ? AND groups.weekly_budget > 0", userID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	budgets := make([]statsdomain.GroupBudget, 0, len(rows))
	for _, row := range rows {
		budgets = append(budgets, statsdomain.GroupBudget{GroupID: row.ID, Budget: row.WeeklyBudget})
	}
	return budgets, nil
}
