package handlers

import (
	"net/http"

	"kitchensmart/internal/models"
	"kitchensmart/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ShoppingListItemHandlers handles shopping list HTTP requests
type ShoppingListItemHandlers struct {
	shoppingListService services.ShoppingListItemService
}

func NewShoppingListItemHandlers(shoppingListService services.ShoppingListItemService) *ShoppingListItemHandlers {
	return &ShoppingListItemHandlers{
		shoppingListService: shoppingListService,
	}
}

// CreateShoppingListItemRequest represents the creation request payload
type CreateShoppingListItemRequest struct {
	ProductID uuid.UUID  `json:"product_id" validate:"required"`
	StoreID   *uuid.UUID `json:"store_id"`
	Quantity  float64    `json:"quantity" validate:"gt=0"`
}

func (h *ShoppingListItemHandlers) CreateShoppingListItem(c echo.Context) error {
	var req CreateShoppingListItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item := &models.ShoppingListItem{
		ProductID: req.ProductID,
		StoreID:   req.StoreID,
		Quantity:  req.Quantity,
	}
	if err := h.shoppingListService.Create(c.Request().Context(), item); err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusCreated, item)
}

// ListShoppingListItemsRequest represents query parameters for listing
type ListShoppingListItemsRequest struct {
	ProductID *uuid.UUID `query:"product_id"`
	StoreID   *uuid.UUID `query:"store_id"`
	Limit     int        `query:"limit"`
	Offset    int        `query:"offset"`
}

func (h *ShoppingListItemHandlers) ListShoppingListItems(c echo.Context) error {
	var req ListShoppingListItemsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	limit, offset := clampPage(req.Limit, req.Offset)
	filter := &models.ShoppingListItemFilter{
		ProductID: req.ProductID,
		StoreID:   req.StoreID,
		Limit:     limit,
		Offset:    offset,
	}

	items, total, err := h.shoppingListService.List(c.Request().Context(), filter)
	if err != nil {
		return serviceError(err)
	}
	if items == nil {
		items = []*models.ShoppingListItem{}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"items": items,
		"total": total,
	})
}

func (h *ShoppingListItemHandlers) GetShoppingListItem(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	item, err := h.shoppingListService.GetByID(c.Request().Context(), id)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, item)
}

// UpdateShoppingListItemRequest represents the update request payload
type UpdateShoppingListItemRequest struct {
	ProductID *uuid.UUID `json:"product_id"`
	StoreID   *uuid.UUID `json:"store_id"`
	Quantity  *float64   `json:"quantity"`
}

func (h *ShoppingListItemHandlers) UpdateShoppingListItem(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req UpdateShoppingListItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}

	item, err := h.shoppingListService.Update(c.Request().Context(), id, &services.ShoppingListItemUpdate{
		ProductID: req.ProductID,
		StoreID:   req.StoreID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, item)
}

func (h *ShoppingListItemHandlers) DeleteShoppingListItem(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	if _, err := h.shoppingListService.GetByID(ctx, id); err != nil {
		return serviceError(err)
	}

	if err := h.shoppingListService.Delete(ctx, id); err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "shopping list item deleted",
	})
}
