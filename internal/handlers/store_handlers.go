package handlers

import (
	"net/http"

	"kitchensmart/internal/models"
	"kitchensmart/internal/services"

	"github.com/labstack/echo/v4"
)

// StoreHandlers handles store-related HTTP requests
type StoreHandlers struct {
	storeService services.StoreService
}

func NewStoreHandlers(storeService services.StoreService) *StoreHandlers {
	return &StoreHandlers{
		storeService: storeService,
	}
}

// CreateStoreRequest represents the store creation request payload
type CreateStoreRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *StoreHandlers) CreateStore(c echo.Context) error {
	var req CreateStoreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	store := &models.Store{Name: req.Name}
	if err := h.storeService.Create(c.Request().Context(), store); err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusCreated, store)
}

func (h *StoreHandlers) ListStores(c echo.Context) error {
	stores, err := h.storeService.List(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	if stores == nil {
		stores = []*models.Store{}
	}

	return c.JSON(http.StatusOK, stores)
}

func (h *StoreHandlers) GetStore(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	store, err := h.storeService.GetByID(c.Request().Context(), id)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, store)
}

// UpdateStoreRequest represents the store update request payload
type UpdateStoreRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *StoreHandlers) UpdateStore(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req UpdateStoreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	store, err := h.storeService.Update(c.Request().Context(), id, req.Name)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, store)
}

func (h *StoreHandlers) DeleteStore(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	if _, err := h.storeService.GetByID(ctx, id); err != nil {
		return serviceError(err)
	}

	if err := h.storeService.Delete(ctx, id); err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "store deleted",
	})
}
