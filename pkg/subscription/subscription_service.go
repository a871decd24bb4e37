package subscription

import (
	"HomeLedger-Backend/domain"
	"HomeLedger-Backend/entities"
	"HomeLedger-Backend/internal/utils/storage"
	"context"
	"errors"

	"gorm.io/gorm"
)

// Hosted images live under one fixed folder on the object host.
const subscriptionImageFolder = "subscriptions"

type (
	SubscriptionService interface {
		GetSubscriptions(ctx context.Context, userID int64) ([]domain.SubscriptionResponse, error)
		CreateSubscription(ctx context.Context, req domain.CreateSubscriptionRequest) (domain.SubscriptionResponse, error)
		DeleteSubscription(ctx context.Context, id uint) (domain.DeleteSubscriptionResponse, error)
		GetSubscriptionSummary(ctx context.Context, userID int64) (domain.SubscriptionSummaryResponse, error)
	}

	subscriptionService struct {
		subscriptionRepository SubscriptionRepository
		s3                     storage.AwsS3
	}
)

func NewSubscriptionService(subscriptionRepository SubscriptionRepository, s3 storage.AwsS3) SubscriptionService {
	return &subscriptionService{
		subscriptionRepository: subscriptionRepository,
		s3:                     s3,
	}
}

func (s *subscriptionService) GetSubscriptions(ctx context.Context, userID int64) ([]domain.SubscriptionResponse, error) {
	subs, err := s.subscriptionRepository.GetSubscriptions(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.SubscriptionResponse, 0, len(subs))
	for _, sub := range subs {
		response = append(response, toSubscriptionResponse(sub))
	}
	return response, nil
}

// CreateSubscription validates the whole request before any side
// effect. The image upload runs before the insert, so a failed upload
// aborts creation; an insert failure after a successful upload leaves
// an orphaned hosted object.
func (s *subscriptionService) CreateSubscription(ctx context.Context, req domain.CreateSubscriptionRequest) (domain.SubscriptionResponse, error) {
	parsed, violations := req.Validate()
	if len(violations) > 0 {
		return domain.SubscriptionResponse{}, &domain.ValidationError{Violations: violations}
	}

	var imageURL *string
	if req.Image != "" {
		objectKey, err := s.s3.UploadDataURL(req.Image, subscriptionImageFolder)
		if err != nil {
			return domain.SubscriptionResponse{}, domain.ErrImageUploadFailed
		}
		link := s.s3.GetPublicLinkKey(objectKey)
		imageURL = &link
	}

	sub := &entities.Subscription{
		UserID:     parsed.UserID,
		Label:      parsed.Label,
		Amount:     parsed.Amount,
		Date:       parsed.Date,
		Recurrence: parsed.Recurrence,
		ImageURL:   imageURL,
	}

	if err := s.subscriptionRepository.CreateSubscription(ctx, sub); err != nil {
		return domain.SubscriptionResponse{}, err
	}
	return toSubscriptionResponse(sub), nil
}

// DeleteSubscription removes the hosted image before the row. A row
// delete failing afterwards leaves a dangling image_url; that ordering
// matches the documented contract.
func (s *subscriptionService) DeleteSubscription(ctx context.Context, id uint) (domain.DeleteSubscriptionResponse, error) {
	sub, err := s.subscriptionRepository.GetSubscriptionByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DeleteSubscriptionResponse{}, domain.ErrSubscriptionNotFound
		}
		return domain.DeleteSubscriptionResponse{}, err
	}

	if sub.ImageURL != nil && *sub.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(*sub.ImageURL)
		if objectKey != "" {
			if err := s.s3.DeleteFile(objectKey); err != nil {
				return domain.DeleteSubscriptionResponse{}, domain.ErrImageDeleteFailed
			}
		}
	}

	deleted, err := s.subscriptionRepository.DeleteSubscription(ctx, id)
	if err != nil {
		return domain.DeleteSubscriptionResponse{}, err
	}
	if deleted == 0 {
		return domain.DeleteSubscriptionResponse{}, domain.ErrSubscriptionNotFound
	}

	return domain.DeleteSubscriptionResponse{
		Message:   domain.MessageSuccessDeleteSubscription,
		DeletedID: id,
	}, nil
}

func (s *subscriptionService) GetSubscriptionSummary(ctx context.Context, userID int64) (domain.SubscriptionSummaryResponse, error) {
	total, count, err := s.subscriptionRepository.GetSubscriptionSummary(ctx, userID)
	if err != nil {
		return domain.SubscriptionSummaryResponse{}, err
	}

	return domain.SubscriptionSummaryResponse{
		Total: total,
		Count: count,
	}, nil
}

func toSubscriptionResponse(sub *entities.Subscription) domain.SubscriptionResponse {
	return domain.SubscriptionResponse{
		ID:         sub.ID,
		UserID:     sub.UserID,
		Label:      sub.Label,
		Amount:     sub.Amount,
		Date:       sub.Date.Format(domain.DateLayout),
		Recurrence: sub.Recurrence,
		ImageURL:   sub.ImageURL,
		CreatedAt:  sub.CreatedAt,
	}
}
