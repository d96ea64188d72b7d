package handlers

import (
	"net/http"

	"kitchensmart/internal/models"
	"kitchensmart/internal/services"

	"github.com/labstack/echo/v4"
)

// LocationHandlers handles location-related HTTP requests
type LocationHandlers struct {
	locationService services.LocationService
}

func NewLocationHandlers(locationService services.LocationService) *LocationHandlers {
	return &LocationHandlers{
		locationService: locationService,
	}
}

// CreateLocationRequest represents the location creation request payload
type CreateLocationRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *LocationHandlers) CreateLocation(c echo.Context) error {
	var req CreateLocationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	location := &models.Location{Name: req.Name}
	if err := h.locationService.Create(c.Request().Context(), location); err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusCreated, location)
}

func (h *LocationHandlers) ListLocations(c echo.Context) error {
	locations, err := h.locationService.List(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	if locations == nil {
		locations = []*models.Location{}
	}

	return c.JSON(http.StatusOK, locations)
}

func (h *LocationHandlers) GetLocation(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	location, err := h.locationService.GetByID(c.Request().Context(), id)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, location)
}

// UpdateLocationRequest represents the location update request payload
type UpdateLocationRequest struct {
	Name string `json:"name" validate:"required"`
}

func (h *LocationHandlers) UpdateLocation(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req UpdateLocationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	location, err := h.locationService.Update(c.Request().Context(), id, req.Name)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, location)
}

func (h *LocationHandlers) DeleteLocation(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	// Existence check so deleting an unknown id is a 404, not a silent no-op.
	if _, err := h.locationService.GetByID(ctx, id); err != nil {
		return serviceError(err)
	}

	if err := h.locationService.Delete(ctx, id); err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "location deleted",
	})
}
