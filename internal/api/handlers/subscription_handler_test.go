package handlers

import (
	"HomeLedger-Backend/domain"
	"HomeLedger-Backend/internal/api/presenters"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSubscriptionService struct {
	subs map[uint]domain.SubscriptionResponse
}

func newStubSubscriptionService() *stubSubscriptionService {
	return &stubSubscriptionService{subs: map[uint]domain.SubscriptionResponse{}}
}

func (s *stubSubscriptionService) GetSubscriptions(_ context.Context, userID int64) ([]domain.SubscriptionResponse, error) {
	out := make([]domain.SubscriptionResponse, 0)
	for _, sub := range s.subs {
		if sub.UserID == userID {
			out = append(out, sub)
		}
	}
	return out, nil
}

func (s *stubSubscriptionService) CreateSubscription(_ context.Context, req domain.CreateSubscriptionRequest) (domain.SubscriptionResponse, error) {
	parsed, violations := req.Validate()
	if len(violations) > 0 {
		return domain.SubscriptionResponse{}, &domain.ValidationError{Violations: violations}
	}
	sub := domain.SubscriptionResponse{
		ID:         uint(len(s.subs) + 1),
		UserID:     parsed.UserID,
		Label:      parsed.Label,
		Amount:     parsed.Amount,
		Date:       parsed.Date.Format(domain.DateLayout),
		Recurrence: parsed.Recurrence,
	}
	s.subs[sub.ID] = sub
	return sub, nil
}

func (s *stubSubscriptionService) DeleteSubscription(_ context.Context, id uint) (domain.DeleteSubscriptionResponse, error) {
	if _, ok := s.subs[id]; !ok {
		return domain.DeleteSubscriptionResponse{}, domain.ErrSubscriptionNotFound
	}
	delete(s.subs, id)
	return domain.DeleteSubscriptionResponse{Message: domain.MessageSuccessDeleteSubscription, DeletedID: id}, nil
}

func (s *stubSubscriptionService) GetSubscriptionSummary(_ context.Context, userID int64) (domain.SubscriptionSummaryResponse, error) {
	var summary domain.SubscriptionSummaryResponse
	for _, sub := range s.subs {
		if sub.UserID == userID {
			summary.Total += sub.Amount
			summary.Count++
		}
	}
	return summary, nil
}

func newSubscriptionTestApp(service *stubSubscriptionService) *fiber.App {
	app := fiber.New()
	handler := NewSubscriptionHandler(service)

	subscriptions := app.Group("/subscriptions")
	subscriptions.Get("/summary/:userId", handler.GetSubscriptionSummary)
	subscriptions.Get("/:userId", handler.GetSubscriptions)
	subscriptions.Post("", handler.CreateSubscription)
	subscriptions.Delete("/:id", handler.DeleteSubscription)
	return app
}

func TestCreateSubscriptionValidationErrorsListed(t *testing.T) {
	app := newSubscriptionTestApp(newStubSubscriptionService())

	body := `{"label":"Netflix","amount":"-2","date":"2024-03-15","recurrence":"daily","user_id":"12"}`
	req := httptest.NewRequest("POST", "/subscriptions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var errBody presenters.ValidationErrorBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	assert.Equal(t, domain.MessageValidationFailed, errBody.Message)
	assert.Len(t, errBody.Errors, 2)
}

func TestCreateSubscriptionCreated(t *testing.T) {
	app := newSubscriptionTestApp(newStubSubscriptionService())

	body := `{"label":"Netflix","amount":"15.99","date":"2024-03-15","recurrence":"monthly","user_id":"12"}`
	req := httptest.NewRequest("POST", "/subscriptions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var sub domain.SubscriptionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&sub))
	assert.Equal(t, "2024-03-15", sub.Date)
	assert.Equal(t, 15.99, sub.Amount)
}

func TestDeleteSubscriptionInvalidID(t *testing.T) {
	app := newSubscriptionTestApp(newStubSubscriptionService())

	req := httptest.NewRequest("DELETE", "/subscriptions/-1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDeleteSubscriptionNotFoundStatus(t *testing.T) {
	app := newSubscriptionTestApp(newStubSubscriptionService())

	req := httptest.NewRequest("DELETE", "/subscriptions/5", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetSubscriptionSummaryZero(t *testing.T) {
	app := newSubscriptionTestApp(newStubSubscriptionService())

	req := httptest.NewRequest("GET", "/subscriptions/summary/12", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var summary domain.SubscriptionSummaryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
	assert.Equal(t, 0.0, summary.Total)
	assert.Equal(t, int64(0), summary.Count)
}
