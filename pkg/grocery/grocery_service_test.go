package grocery

import (
	"HomeLedger-Backend/domain"
	"HomeLedger-Backend/entities"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeGroceryRepository keeps items in memory, newest first, matching
// the created_at DESC ordering of the real repository.
type fakeGroceryRepository struct {
	items  []*entities.GroceryItem
	nextID uint
}

func newFakeGroceryRepository() *fakeGroceryRepository {
	return &fakeGroceryRepository{nextID: 1}
}

func (r *fakeGroceryRepository) GetGroceries(_ context.Context, userID string) ([]*entities.GroceryItem, error) {
	var out []*entities.GroceryItem
	for _, item := range r.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakeGroceryRepository) GetGroceryByID(_ context.Context, id uint) (*entities.GroceryItem, error) {
	for _, item := range r.items {
		if item.ID == id {
			copied := *item
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeGroceryRepository) AddGrocery(_ context.Context, item *entities.GroceryItem) error {
	item.ID = r.nextID
	r.nextID++
	r.items = append([]*entities.GroceryItem{item}, r.items...)
	return nil
}

func (r *fakeGroceryRepository) UpdateGrocery(_ context.Context, item *entities.GroceryItem) error {
	for i, existing := range r.items {
		if existing.ID == item.ID {
			copied := *item
			r.items[i] = &copied
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeGroceryRepository) DeleteGrocery(_ context.Context, id uint) (int64, error) {
	for i, item := range r.items {
		if item.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *fakeGroceryRepository) ClearGroceries(_ context.Context, userID string) (int64, error) {
	var kept []*entities.GroceryItem
	var deleted int64
	for _, item := range r.items {
		if item.UserID == userID {
			deleted++
			continue
		}
		kept = append(kept, item)
	}
	r.items = kept
	return deleted, nil
}

func (r *fakeGroceryRepository) GetGrocerySummary(_ context.Context, userID string) (int64, int64, error) {
	var total, completed int64
	for _, item := range r.items {
		if item.UserID != userID {
			continue
		}
		total++
		if item.IsCompleted {
			completed++
		}
	}
	return total, completed, nil
}

func TestGetGroceriesEmptyUser(t *testing.T) {
	service := NewGroceryService(newFakeGroceryRepository())

	items, err := service.GetGroceries(context.Background(), "user-1")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestGetGrocerySummaryEmptyUser(t *testing.T) {
	service := NewGroceryService(newFakeGroceryRepository())

	summary, err := service.GetGrocerySummary(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.Total)
	assert.Equal(t, int64(0), summary.Completed)
}

func TestAddGroceryStartsUncompleted(t *testing.T) {
	service := NewGroceryService(newFakeGroceryRepository())

	res, err := service.AddGrocery(context.Background(), domain.AddGroceryRequest{
		UserID: "user-1",
		Text:   "milk",
	})
	require.NoError(t, err)
	assert.Equal(t, "milk", res.Text)
	assert.False(t, res.IsCompleted)
	assert.NotZero(t, res.ID)
}

func TestToggleGroceryTwiceRestoresState(t *testing.T) {
	repo := newFakeGroceryRepository()
	service := NewGroceryService(repo)

	added, err := service.AddGrocery(context.Background(), domain.AddGroceryRequest{
		UserID: "user-1",
		Text:   "eggs",
	})
	require.NoError(t, err)

	first, err := service.ToggleGrocery(context.Background(), added.ID)
	require.NoError(t, err)
	assert.True(t, first.IsCompleted)

	second, err := service.ToggleGrocery(context.Background(), added.ID)
	require.NoError(t, err)
	assert.False(t, second.IsCompleted)
}

func TestToggleGroceryNotFound(t *testing.T) {
	service := NewGroceryService(newFakeGroceryRepository())

	_, err := service.ToggleGrocery(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrGroceryNotFound)
}

func TestUpdateGroceryReplacesText(t *testing.T) {
	service := NewGroceryService(newFakeGroceryRepository())

	added, err := service.AddGrocery(context.Background(), domain.AddGroceryRequest{
		UserID: "user-1",
		Text:   "bread",
	})
	require.NoError(t, err)

	updated, err := service.UpdateGrocery(context.Background(), added.ID, domain.UpdateGroceryRequest{
		Text: "sourdough bread",
	})
	require.NoError(t, err)
	assert.Equal(t, "sourdough bread", updated.Text)
	assert.Equal(t, added.ID, updated.ID)
}

func TestUpdateGroceryNotFound(t *testing.T) {
	service := NewGroceryService(newFakeGroceryRepository())

	_, err := service.UpdateGrocery(context.Background(), 7, domain.UpdateGroceryRequest{Text: "x"})
	assert.ErrorIs(t, err, domain.ErrGroceryNotFound)
}

func TestDeleteGroceryNotFoundLeavesTableUnchanged(t *testing.T) {
	service := NewGroceryService(newFakeGroceryRepository())

	added, err := service.AddGrocery(context.Background(), domain.AddGroceryRequest{
		UserID: "user-1",
		Text:   "butter",
	})
	require.NoError(t, err)

	_, err = service.DeleteGrocery(context.Background(), added.ID+100)
	assert.ErrorIs(t, err, domain.ErrGroceryNotFound)

	items, err := service.GetGroceries(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestDeleteGroceryReportsDeletedID(t *testing.T) {
	service := NewGroceryService(newFakeGroceryRepository())

	added, err := service.AddGrocery(context.Background(), domain.AddGroceryRequest{
		UserID: "user-1",
		Text:   "cheese",
	})
	require.NoError(t, err)

	res, err := service.DeleteGrocery(context.Background(), added.ID)
	require.NoError(t, err)
	assert.Equal(t, added.ID, res.DeletedID)
	assert.Equal(t, domain.MessageSuccessDeleteGrocery, res.Message)
}

func TestClearGroceriesIsolatesUsers(t *testing.T) {
	service := NewGroceryService(newFakeGroceryRepository())

	for _, text := range []string{"milk", "eggs"} {
		_, err := service.AddGrocery(context.Background(), domain.AddGroceryRequest{UserID: "user-1", Text: text})
		require.NoError(t, err)
	}
	_, err := service.AddGrocery(context.Background(), domain.AddGroceryRequest{UserID: "user-2", Text: "flour"})
	require.NoError(t, err)

	res, err := service.ClearGroceries(context.Background(), domain.ClearGroceriesRequest{UserID: "user-1"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.DeletedCount)

	remaining, err := service.GetGroceries(context.Background(), "user-2")
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestClearGroceriesNoItemsIsNotAnError(t *testing.T) {
	service := NewGroceryService(newFakeGroceryRepository())

	res, err := service.ClearGroceries(context.Background(), domain.ClearGroceriesRequest{UserID: "nobody"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.DeletedCount)
}

func TestGetGrocerySummaryCountsCompleted(t *testing.T) {
	service := NewGroceryService(newFakeGroceryRepository())

	first, err := service.AddGrocery(context.Background(), domain.AddGroceryRequest{UserID: "user-1", Text: "milk"})
	require.NoError(t, err)
	_, err = service.AddGrocery(context.Background(), domain.AddGroceryRequest{UserID: "user-1", Text: "eggs"})
	require.NoError(t, err)

	_, err = service.ToggleGrocery(context.Background(), first.ID)
	require.NoError(t, err)

	summary, err := service.GetGrocerySummary(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), summary.Total)
	assert.Equal(t, int64(1), summary.Completed)
}
