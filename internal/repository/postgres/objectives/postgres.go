package objectives

import (
	"context"
	"errors"

	"gorm.io/gorm"

	objectivesdomain "squadtab-go/internal/domain/objectives"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) LatestByUser(ctx context.Context, userID string) (*objectivesdomain.Objective, error) {
	var objective objectivesdomain.Objective
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		First(&objective).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &objective, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, objectiveID string) (*objectivesdomain.Objective, error) {
	var objective objectivesdomain.Objective
	if err := r.db.WithContext(ctx).Where("id = ?", objectiveID).First(&objective).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, objectivesdomain.ErrObjectiveNotFound
		}
		return nil, err
	}
	return &objective, nil
}

func (r *PostgresRepository) Create(ctx context.Context, objective *objectivesdomain.Objective) error {
	return r.db.WithContext(ctx).Create(objective).Error
}

func (r *PostgresRepository) Update(ctx context.Context, objective *objectivesdomain.Objective) error {
	result := r.db.WithContext(ctx).Model(&objectivesdomain.Objective{}).
		Where("id = ?", objective.ID).
		Update("weekly_budget", objective.WeeklyBudget)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return objectivesdomain.ErrObjectiveNotFound
	}
	return nil
}
