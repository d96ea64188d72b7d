package handlers

import (
	"net/http"

	"kitchensmart/internal/models"
	"kitchensmart/internal/services"

	"github.com/labstack/echo/v4"
)

// ProductHandlers handles product-related HTTP requests
type ProductHandlers struct {
	productService services.ProductService
}

func NewProductHandlers(productService services.ProductService) *ProductHandlers {
	return &ProductHandlers{
		productService: productService,
	}
}

// CreateProductRequest represents the product creation request payload
type CreateProductRequest struct {
	Name  string  `json:"name" validate:"required"`
	Brand *string `json:"brand"`
}

func (h *ProductHandlers) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product := &models.Product{
		Name:  req.Name,
		Brand: req.Brand,
	}
	if err := h.productService.Create(c.Request().Context(), product); err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusCreated, product)
}

// ListProductsRequest represents query parameters for listing products
type ListProductsRequest struct {
	Name   *string `query:"name"`
	Brand  *string `query:"brand"`
	Limit  int     `query:"limit"`
	Offset int     `query:"offset"`
}

func (h *ProductHandlers) ListProducts(c echo.Context) error {
	var req ListProductsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	limit, offset := clampPage(req.Limit, req.Offset)
	filter := &models.ProductFilter{
		Name:   req.Name,
		Brand:  req.Brand,
		Limit:  limit,
		Offset: offset,
	}

	items, total, err := h.productService.List(c.Request().Context(), filter)
	if err != nil {
		return serviceError(err)
	}
	if items == nil {
		items = []*models.Product{}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"items": items,
		"total": total,
	})
}

func (h *ProductHandlers) GetProduct(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	product, err := h.productService.GetByID(c.Request().Context(), id)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, product)
}

// UpdateProductRequest represents the product update request payload
type UpdateProductRequest struct {
	Name  *string `json:"name"`
	Brand *string `json:"brand"`
}

func (h *ProductHandlers) UpdateProduct(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request format")
	}

	product, err := h.productService.Update(c.Request().Context(), id, &services.ProductUpdate{
		Name:  req.Name,
		Brand: req.Brand,
	})
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandlers) DeleteProduct(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	if _, err := h.productService.GetByID(ctx, id); err != nil {
		return serviceError(err)
	}

	if err := h.productService.Delete(ctx, id); err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "product deleted",
	})
}
