package grocery

import (
	"HomeLedger-Backend/domain"
	"HomeLedger-Backend/entities"
	"context"
	"errors"

	"gorm.io/gorm"
)

type (
	GroceryService interface {
		GetGroceries(ctx context.Context, userID string) ([]domain.GroceryItemResponse, error)
		AddGrocery(ctx context.Context, req domain.AddGroceryRequest) (domain.GroceryItemResponse, error)
		ToggleGrocery(ctx context.Context, id uint) (domain.GroceryItemResponse, error)
		UpdateGrocery(ctx context.Context, id uint, req domain.UpdateGroceryRequest) (domain.GroceryItemResponse, error)
		DeleteGrocery(ctx context.Context, id uint) (domain.DeleteGroceryResponse, error)
		ClearGroceries(ctx context.Context, req domain.ClearGroceriesRequest) (domain.ClearGroceriesResponse, error)
		GetGrocerySummary(ctx context.Context, userID string) (domain.GrocerySummaryResponse, error)
	}

	groceryService struct {
		groceryRepository GroceryRepository
	}
)

func NewGroceryService(groceryRepository GroceryRepository) GroceryService {
	return &groceryService{groceryRepository: groceryRepository}
}

func (s *groceryService) GetGroceries(ctx context.Context, userID string) ([]domain.GroceryItemResponse, error) {
	items, err := s.groceryRepository.GetGroceries(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.GroceryItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toGroceryResponse(item))
	}
	return response, nil
}

func (s *groceryService) AddGrocery(ctx context.Context, req domain.AddGroceryRequest) (domain.GroceryItemResponse, error) {
	item := &entities.GroceryItem{
		UserID:      req.UserID,
		Text:        req.Text,
		IsCompleted: false,
	}

	if err := s.groceryRepository.AddGrocery(ctx, item); err != nil {
		return domain.GroceryItemResponse{}, err
	}
	return toGroceryResponse(item), nil
}

// ToggleGrocery reads then writes without a transaction. Concurrent
// toggles of the same id resolve as last write wins.
func (s *groceryService) ToggleGrocery(ctx context.Context, id uint) (domain.GroceryItemResponse, error) {
	item, err := s.groceryRepository.GetGroceryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.GroceryItemResponse{}, domain.ErrGroceryNotFound
		}
		return domain.GroceryItemResponse{}, err
	}

	item.IsCompleted = !item.IsCompleted
	if err := s.groceryRepository.UpdateGrocery(ctx, item); err != nil {
		return domain.GroceryItemResponse{}, err
	}
	return toGroceryResponse(item), nil
}

func (s *groceryService) UpdateGrocery(ctx context.Context, id uint, req domain.UpdateGroceryRequest) (domain.GroceryItemResponse, error) {
	item, err := s.groceryRepository.GetGroceryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.GroceryItemResponse{}, domain.ErrGroceryNotFound
		}
		return domain.GroceryItemResponse{}, err
	}

	item.Text = req.Text
	if err := s.groceryRepository.UpdateGrocery(ctx, item); err != nil {
		return domain.GroceryItemResponse{}, err
	}
	return toGroceryResponse(item), nil
}

func (s *groceryService) DeleteGrocery(ctx context.Context, id uint) (domain.DeleteGroceryResponse, error) {
	deleted, err := s.groceryRepository.DeleteGrocery(ctx, id)
	if err != nil {
		return domain.DeleteGroceryResponse{}, err
	}
	if deleted == 0 {
		return domain.DeleteGroceryResponse{}, domain.ErrGroceryNotFound
	}

	return domain.DeleteGroceryResponse{
		Message:   domain.MessageSuccessDeleteGrocery,
		DeletedID: id,
	}, nil
}

// ClearGroceries removes every item of the user. Zero deletions is a
// valid outcome, not a missing resource.
func (s *groceryService) ClearGroceries(ctx context.Context, req domain.ClearGroceriesRequest) (domain.ClearGroceriesResponse, error) {
	count, err := s.groceryRepository.ClearGroceries(ctx, req.UserID)
	if err != nil {
		return domain.ClearGroceriesResponse{}, err
	}

	return domain.ClearGroceriesResponse{
		Message:      domain.MessageSuccessClearGrocery,
		DeletedCount: count,
	}, nil
}

func (s *groceryService) GetGrocerySummary(ctx context.Context, userID string) (domain.GrocerySummaryResponse, error) {
	total, completed, err := s.groceryRepository.GetGrocerySummary(ctx, userID)
	if err != nil {
		return domain.GrocerySummaryResponse{}, err
	}

	return domain.GrocerySummaryResponse{
		Total:     total,
		Completed: completed,
	}, nil
}

func toGroceryResponse(item *entities.GroceryItem) domain.GroceryItemResponse {
	return domain.GroceryItemResponse{
		ID:          item.ID,
		UserID:      item.UserID,
		Text:        item.Text,
		IsCompleted: item.IsCompleted,
		CreatedAt:   item.CreatedAt,
	}
}
