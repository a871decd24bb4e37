package handlers

import (
	"HomeLedger-Backend/domain"
	"HomeLedger-Backend/internal/api/presenters"
	"HomeLedger-Backend/pkg/subscription"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type (
	SubscriptionHandler interface {
		GetSubscriptions(c *fiber.Ctx) error
		CreateSubscription(c *fiber.Ctx) error
		DeleteSubscription(c *fiber.Ctx) error
		GetSubscriptionSummary(c *fiber.Ctx) error
	}

	subscriptionHandler struct {
		subscriptionService subscription.SubscriptionService
	}
)

func NewSubscriptionHandler(subscriptionService subscription.SubscriptionService) SubscriptionHandler {
	return &subscriptionHandler{subscriptionService: subscriptionService}
}

func (h *subscriptionHandler) GetSubscriptions(c *fiber.Ctx) error {
	userID, err := parseUserID(c.Params("userId"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageUserIDRequired, err)
	}

	subs, err := h.subscriptionService.GetSubscriptions(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageInternalServerError, err)
	}

	return presenters.SuccessResponse(c, subs, fiber.StatusOK)
}

func (h *subscriptionHandler) CreateSubscription(c *fiber.Ctx) error {
	req := new(domain.CreateSubscriptionRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.subscriptionService.CreateSubscription(c.Context(), *req)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			return presenters.ValidationErrorResponse(c, validationErr.Violations)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCreateSubscription, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated)
}

func (h *subscriptionHandler) DeleteSubscription(c *fiber.Ctx) error {
	id, err := domain.ParseID(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidSubscriptionID, err)
	}

	res, err := h.subscriptionService.DeleteSubscription(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrSubscriptionNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, "Subscription not found", nil)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageInternalServerError, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *subscriptionHandler) GetSubscriptionSummary(c *fiber.Ctx) error {
	userID, err := parseUserID(c.Params("userId"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageUserIDRequired, err)
	}

	res, err := h.subscriptionService.GetSubscriptionSummary(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageInternalServerError, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func parseUserID(raw string) (int64, error) {
	if raw == "" {
		return 0, errors.New("user ID is required")
	}
	return strconv.ParseInt(raw, 10, 64)
}
