package handlers

import (
	"net/http"

	"kitchensmart/internal/models"
	"kitchensmart/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// InventoryItemHandlers handles inventory item HTTP requests
type InventoryItemHandlers struct {
	inventoryService services.InventoryItemService
}

func NewInventoryItemHandlers(inventoryService services.InventoryItemService) *InventoryItemHandlers {
	return &InventoryItemHandlers{
		inventoryService: inventoryService,
	}
}

// CreateInventoryItemRequest represents the item creation request payload
type CreateInventoryItemRequest struct {
	ProductID  uuid.UUID  `json:"product_id" validate:"required"`
	LocationID uuid.UUID  `json:"location_id" validate:"required"`
	StoreID    *uuid.UUID `json:"store_id"`
	Quantity   float64    `json:"quantity" validate:"gte=0"`
	Price      float64    `json:"price" validate:"gte=0"`
}

func (h *InventoryItemHandlers) CreateInventoryItem(c echo.Context) error {
	var req CreateInventoryItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item := &models.InventoryItem{
		ProductID:  req.ProductID,
		LocationID: req.LocationID,
		StoreID:    req.StoreID,
		Quantity:   req.Quantity,
		Price:      req.Price,
	}
	if err := h.inventoryService.Create(c.Request().Context(), item); err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusCreated, item)
}

// ListInventoryItemsRequest represents query parameters for listing items
type ListInventoryItemsRequest struct {
	LocationID *uuid.UUID `query:"location_id"`
	ProductID  *uuid.UUID `query:"product_id"`
	StoreID    *uuid.UUID `query:"store_id"`
	Limit      int        `query:"limit"`
	Offset     int        `query:"offset"`
}

func (h *InventoryItemHandlers) ListInventoryItems(c echo.Context) error {
	var req ListInventoryItemsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	limit, offset := clampPage(req.Limit, req.Offset)
	filter := &models.InventoryItemFilter{
		LocationID: req.LocationID,
		ProductID:  req.ProductID,
		StoreID:    req.StoreID,
		Limit:      limit,
		Offset:     offset,
	}

	items, total, err := h.inventoryService.List(c.Request().Context(), filter)
	if err != nil {
		return serviceError(err)
	}
	if items == nil {
		items = []*models.InventoryItem{}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"items": items,
		"total": total,
	})
}

// ListLocationItems handles GET /locations/:id/items. The location must exist;
// the response carries the page plus the unpaginated total for that location.
func (h *InventoryItemHandlers) ListLocationItems(c echo.Context) error {
	locationID, err := parseID(c)
	if err != nil {
		return err
	}

	var req ListInventoryItemsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	limit, offset := clampPage(req.Limit, req.Offset)
	filter := &models.InventoryItemFilter{
		ProductID: req.ProductID,
		StoreID:   req.StoreID,
		Limit:     limit,
		Offset:    offset,
	}

	items, total, err := h.inventoryService.ListByLocation(c.Request().Context(), locationID, filter)
	if err != nil {
		return serviceError(err)
	}
	if items == nil {
		items = []*models.InventoryItem{}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"items": items,
		"total": total,
	})
}

func (h *InventoryItemHandlers) GetInventoryItem(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	item, err := h.inventoryService.GetByID(c.Request().Context(), id)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, item)
}

// UpdateInventoryItemRequest represents the item update request payload
type UpdateInventoryItemRequest struct {
	ProductID  *uuid.UUID `json:"product_id"`
	LocationID *uuid.UUID `json:"location_id"`
	StoreID    *uuid.UUID `json:"store_id"`
	Quantity   *float64   `json:"quantity"`
	Price      *float64   `json:"price"`
}

func (h *InventoryItemHandlers) UpdateInventoryItem(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req UpdateInventoryItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}

	item, err := h.inventoryService.Update(c.Request().Context(), id, &services.InventoryItemUpdate{
		ProductID:  req.ProductID,
		LocationID: req.LocationID,
		StoreID:    req.StoreID,
		Quantity:   req.Quantity,
		Price:      req.Price,
	})
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, item)
}

func (h *InventoryItemHandlers) DeleteInventoryItem(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	if _, err := h.inventoryService.GetByID(ctx, id); err != nil {
		return serviceError(err)
	}

	if err := h.inventoryService.Delete(ctx, id); err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "inventory item deleted",
	})
}
