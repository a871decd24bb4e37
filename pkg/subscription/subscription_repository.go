package subscription

import (
	"HomeLedger-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	SubscriptionRepository interface {
		GetSubscriptions(ctx context.Context, userID int64) ([]*entities.Subscription, error)
		GetSubscriptionByID(ctx context.Context, id uint) (*entities.Subscription, error)
		CreateSubscription(ctx context.Context, sub *entities.Subscription) error
		DeleteSubscription(ctx context.Context, id uint) (int64, error)
		GetSubscriptionSummary(ctx context.Context, userID int64) (float64, int64, error)
	}

	subscriptionRepository struct {
		db *gorm.DB
	}
)

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) GetSubscriptions(ctx context.Context, userID int64) ([]*entities.Subscription, error) {
	var subs []*entities.Subscription
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *subscriptionRepository) GetSubscriptionByID(ctx context.Context, id uint) (*entities.Subscription, error) {
	var sub entities.Subscription
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepository) CreateSubscription(ctx context.Context, sub *entities.Subscription) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *subscriptionRepository) DeleteSubscription(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Subscription{})
	return res.RowsAffected, res.Error
}

func (r *subscriptionRepository) GetSubscriptionSummary(ctx context.Context, userID int64) (float64, int64, error) {
	var row struct {
		Total float64
		Count int64
	}
	if err := r.db.WithContext(ctx).Model(&entities.Subscription{}).
		Select("COALESCE(SUM(amount), 0) as total, COUNT(*) as count").
		Where("user_id = ?", userID).
		Scan(&row).Error; err != nil {
		return 0, 0, err
	}
	return row.Total, row.Count, nil
}
