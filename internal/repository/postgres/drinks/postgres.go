package drinks

import (
	"context"
	"errors"

	"gorm.io/gorm"

	drinksdomain "squadtab-go/internal/domain/drinks"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListDrinks(ctx context.Context, userID string, filter drinksdomain.ListFilter) ([]drinksdomain.Drink, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.From != "" {
		query = query.Where("date >= ?", filter.From)
	}
	if filter.To != "" {
		query = query.Where("date <= ?", filter.To)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var drinks []drinksdomain.Drink
	if err := query.Order("date desc, created_at desc").Find(&drinks).Error; err != nil {
		return nil, err
	}
	return drinks, nil
}

func (r *PostgresRepository) GetDrinkByID(ctx context.Context, drinkID string) (*drinksdomain.Drink, error) {
	var drink drinksdomain.Drink
	if err := r.db.WithContext(ctx).Where("id = ?", drinkID).First(&drink).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, drinksdomain.ErrDrinkNotFound
		}
		return nil, err
	}
	return &drink, nil
}

func (r *PostgresRepository) CreateDrink(ctx context.Context, drink *drinksdomain.Drink) error {
	return r.db.WithContext(ctx).Create(drink).Error
}

func (r *PostgresRepository) UpdateDrink(ctx context.Context, drink *drinksdomain.Drink) error {
	result := r.db.WithContext(ctx).Model(&drinksdomain.Drink{}).
		Where("id = ?", drink.ID).
		Updates(map[string]interface{}{
			"type":     drink.Type,
			"cost":     drink.Cost,
			"date":     drink.Date,
			"location": drink.Location,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return drinksdomain.ErrDrinkNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteDrink(ctx context.Context, drinkID string) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", drinkID).Delete(&drinksdomain.Drink{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
