package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessDeleteGrocery = "Grocery deleted successfully"
	MessageSuccessClearGrocery  = "All groceries deleted successfully"

	MessageFailedGetGroceries   = "failed to retrieve groceries"
	MessageFailedAddGrocery     = "failed to add grocery"
	MessageFailedToggleGrocery  = "failed to toggle grocery"
	MessageFailedUpdateGrocery  = "failed to update grocery"
	MessageFailedDeleteGrocery  = "failed to delete grocery"
	MessageFailedClearGroceries = "failed to clear groceries"
	MessageFailedGetSummary     = "failed to retrieve groceries summary"

	ErrGroceryNotFound = errors.New("grocery not found")
	ErrUserAndTextReq  = errors.New("user ID and text are required")
	ErrTextRequired    = errors.New("text is required")
)

type (
	AddGroceryRequest struct {
		UserID string `json:"userId" validate:"required"`
		Text   string `json:"text" validate:"required"`
	}

	UpdateGroceryRequest struct {
		Text string `json:"text" validate:"required"`
	}

	ClearGroceriesRequest struct {
		UserID string `json:"userId" validate:"required"`
	}

	GroceryItemResponse struct {
		ID          uint      `json:"id"`
		UserID      string    `json:"user_id"`
		Text        string    `json:"text"`
		IsCompleted bool      `json:"is_completed"`
		CreatedAt   time.Time `json:"created_at"`
	}

	// GrocerySummaryResponse counts every item of a user and how many are
	// checked off. Both are 0 when the user owns no rows.
	GrocerySummaryResponse struct {
		Total     int64 `json:"total"`
		Completed int64 `json:"completed"`
	}

	DeleteGroceryResponse struct {
		Message   string `json:"message"`
		DeletedID uint   `json:"deletedId"`
	}

	ClearGroceriesResponse struct {
		Message      string `json:"message"`
		DeletedCount int64  `json:"deletedCount"`
	}
)
