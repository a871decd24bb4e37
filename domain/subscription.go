package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	RecurrenceMonthly = "monthly"
	RecurrenceYearly  = "yearly"
	RecurrenceWeekly  = "weekly"

	DateLayout = "2006-01-02"
)

var ValidRecurrences = []string{RecurrenceMonthly, RecurrenceYearly, RecurrenceWeekly}

var (
	MessageSuccessDeleteSubscription = "Deleted successfully"

	MessageFailedGetSubscriptions   = "failed to retrieve subscriptions"
	MessageFailedCreateSubscription = "Failed to create subscription"
	MessageFailedDeleteSubscription = "failed to delete subscription"
	MessageInvalidSubscriptionID    = "Invalid subscription ID"

	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrImageUploadFailed    = errors.New("failed to upload image")
	ErrImageDeleteFailed    = errors.New("failed to delete image")
)

type (
	// CreateSubscriptionRequest mirrors the wire body: scalar fields arrive
	// as strings and are parsed by Validate, the image as an inline
	// base64 data URL.
	CreateSubscriptionRequest struct {
		Label      string `json:"label"`
		Amount     string `json:"amount"`
		Date       string `json:"date"`
		Recurrence string `json:"recurrence"`
		Image      string `json:"image"`
		UserID     string `json:"user_id"`
	}

	// NewSubscription is the validated, typed form of a create request.
	NewSubscription struct {
		UserID     int64
		Label      string
		Amount     float64
		Date       time.Time
		Recurrence string
	}

	SubscriptionResponse struct {
		ID         uint      `json:"id"`
		UserID     int64     `json:"user_id"`
		Label      string    `json:"label"`
		Amount     float64   `json:"amount"`
		Date       string    `json:"date"`
		Recurrence string    `json:"recurrence"`
		ImageURL   *string   `json:"image_url"`
		CreatedAt  time.Time `json:"created_at"`
	}

	SubscriptionSummaryResponse struct {
		Total float64 `json:"total"`
		Count int64   `json:"count"`
	}

	DeleteSubscriptionResponse struct {
		Message   string `json:"message"`
		DeletedID uint   `json:"deletedId"`
	}
)

// Validate checks every rule and returns the full list of violations,
// never just the first one. The returned NewSubscription is only
// meaningful when the list is empty. The amount is rounded to the
// 2-decimal precision the column stores.
func (r CreateSubscriptionRequest) Validate() (NewSubscription, []string) {
	var violations []string
	sub := NewSubscription{Recurrence: r.Recurrence}

	sub.Label = strings.TrimSpace(r.Label)
	if sub.Label == "" {
		violations = append(violations, "Label is required")
	}

	amount, err := ParseAmount(r.Amount)
	if err != nil {
		violations = append(violations, "Amount must be a positive number")
	}
	sub.Amount = amount

	date, err := time.Parse(DateLayout, r.Date)
	if err != nil {
		violations = append(violations, "Invalid date format (YYYY-MM-DD required)")
	}
	sub.Date = date

	if !isValidRecurrence(r.Recurrence) {
		violations = append(violations,
			fmt.Sprintf("Recurrence must be one of: %s", strings.Join(ValidRecurrences, ", ")))
	}

	userID, err := strconv.ParseInt(r.UserID, 10, 64)
	if err != nil {
		violations = append(violations, "Invalid user ID")
	}
	sub.UserID = userID

	return sub, violations
}

// ParseAmount parses a decimal amount strictly greater than zero and
// rounds it to two decimals.
func ParseAmount(raw string) (float64, error) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if amount <= 0 {
		return 0, errors.New("amount must be positive")
	}
	return math.Round(amount*100) / 100, nil
}

func isValidRecurrence(recurrence string) bool {
	for _, valid := range ValidRecurrences {
		if recurrence == valid {
			return true
		}
	}
	return false
}
