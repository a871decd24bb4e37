package handlers

import (
	"HomeLedger-Backend/domain"
	"HomeLedger-Backend/internal/api/presenters"
	"HomeLedger-Backend/pkg/grocery"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	GroceryHandler interface {
		GetGroceries(c *fiber.Ctx) error
		AddGrocery(c *fiber.Ctx) error
		ToggleGrocery(c *fiber.Ctx) error
		UpdateGrocery(c *fiber.Ctx) error
		DeleteGrocery(c *fiber.Ctx) error
		ClearGroceries(c *fiber.Ctx) error
		GetGrocerySummary(c *fiber.Ctx) error
	}

	groceryHandler struct {
		groceryService grocery.GroceryService
		validator      *validator.Validate
	}
)

func NewGroceryHandler(groceryService grocery.GroceryService, validator *validator.Validate) GroceryHandler {
	return &groceryHandler{
		groceryService: groceryService,
		validator:      validator,
	}
}

func (h *groceryHandler) GetGroceries(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if userID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageUserIDRequired, nil)
	}

	items, err := h.groceryService.GetGroceries(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageInternalServerError, err)
	}

	return presenters.SuccessResponse(c, items, fiber.StatusOK)
}

func (h *groceryHandler) AddGrocery(c *fiber.Ctx) error {
	req := new(domain.AddGroceryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.ErrUserAndTextReq.Error(), err)
	}

	res, err := h.groceryService.AddGrocery(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddGrocery, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated)
}

func (h *groceryHandler) ToggleGrocery(c *fiber.Ctx) error {
	id, err := domain.ParseID(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, "Invalid grocery ID", err)
	}

	res, err := h.groceryService.ToggleGrocery(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrGroceryNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, "Grocery not found", nil)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedToggleGrocery, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *groceryHandler) UpdateGrocery(c *fiber.Ctx) error {
	id, err := domain.ParseID(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, "Invalid grocery ID", err)
	}

	req := new(domain.UpdateGroceryRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.ErrTextRequired.Error(), err)
	}

	res, err := h.groceryService.UpdateGrocery(c.Context(), id, *req)
	if err != nil {
		if errors.Is(err, domain.ErrGroceryNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, "Grocery not found", nil)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateGrocery, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *groceryHandler) DeleteGrocery(c *fiber.Ctx) error {
	id, err := domain.ParseID(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, "Invalid grocery ID", err)
	}

	res, err := h.groceryService.DeleteGrocery(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrGroceryNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, "Grocery not found", nil)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteGrocery, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *groceryHandler) ClearGroceries(c *fiber.Ctx) error {
	req := new(domain.ClearGroceriesRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageUserIDRequired, err)
	}

	res, err := h.groceryService.ClearGroceries(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedClearGroceries, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *groceryHandler) GetGrocerySummary(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if userID == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageUserIDRequired, nil)
	}

	res, err := h.groceryService.GetGrocerySummary(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageInternalServerError, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}
