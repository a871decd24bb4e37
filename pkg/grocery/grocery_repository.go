package grocery

import (
	"HomeLedger-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	GroceryRepository interface {
		GetGroceries(ctx context.Context, userID string) ([]*entities.GroceryItem, error)
		GetGroceryByID(ctx context.Context, id uint) (*entities.GroceryItem, error)
		AddGrocery(ctx context.Context, item *entities.GroceryItem) error
		UpdateGrocery(ctx context.Context, item *entities.GroceryItem) error
		DeleteGrocery(ctx context.Context, id uint) (int64, error)
		ClearGroceries(ctx context.Context, userID string) (int64, error)
		GetGrocerySummary(ctx context.Context, userID string) (int64, int64, error)
	}

	groceryRepository struct {
		db *gorm.DB
	}
)

func NewGroceryRepository(db *gorm.DB) GroceryRepository {
	return &groceryRepository{db: db}
}

func (r *groceryRepository) GetGroceries(ctx context.Context, userID string) ([]*entities.GroceryItem, error) {
	var items []*entities.GroceryItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *groceryRepository) GetGroceryByID(ctx context.Context, id uint) (*entities.GroceryItem, error) {
	var item entities.GroceryItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *groceryRepository) AddGrocery(ctx context.Context, item *entities.GroceryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *groceryRepository) UpdateGrocery(ctx context.Context, item *entities.GroceryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *groceryRepository) DeleteGrocery(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.GroceryItem{})
	return res.RowsAffected, res.Error
}

func (r *groceryRepository) ClearGroceries(ctx context.Context, userID string) (int64, error) {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entities.GroceryItem{})
	return res.RowsAffected, res.Error
}

// GetGrocerySummary aggregates in one round-trip. SUM over zero rows is
// NULL in SQL, the COALESCE keeps it at 0 so callers never see it.
func (r *groceryRepository) GetGrocerySummary(ctx context.Context, userID string) (int64, int64, error) {
	var row struct {
		Total     int64
		Completed int64
	}
	if err := r.db.WithContext(ctx).Model(&entities.GroceryItem{}).
		Select("COUNT(*) as total, COALESCE(SUM(CASE WHEN is_completed THEN 1 ELSE 0 END), 0) as completed").
		Where("user_id = ?", userID).
		Scan(&row).Error; err != nil {
		return 0, 0, err
	}
	return row.Total, row.Completed, nil
}
