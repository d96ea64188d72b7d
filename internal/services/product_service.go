package services

import (
	"context"
	"log/slog"
	"time"

	"kitchensmart/internal/caching"
	"kitchensmart/internal/models"
	"kitchensmart/internal/repositories"

	"github.com/google/uuid"
)

const productCacheTTL = 10 * time.Minute

// ProductUpdate carries a partial product update; nil fields are left unchanged.
type ProductUpdate struct {
	Name  *string
	Brand *string
}

type ProductService interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	Update(ctx context.Context, id uuid.UUID, upd *ProductUpdate) (*models.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *models.ProductFilter) ([]*models.Product, int64, error)
}

type productService struct {
	productRepo  repositories.ProductRepository
	cacheService caching.CacheService
}

func NewProductService(productRepo repositories.ProductRepository, cacheService caching.CacheService) ProductService {
	return &productService{
		productRepo:  productRepo,
		cacheService: cacheService,
	}
}

func (s *productService) Create(ctx context.Context, product *models.Product) error {
	if product.Name == "" {
		return errValidation("product name is required")
	}

	product.ID = uuid.New()
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now

	return s.productRepo.Create(ctx, product)
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if cached, err := s.cacheService.GetProduct(ctx, id); cached != nil {
		return cached, nil
	} else if err != nil {
		slog.WarnContext(ctx, "product cache read failed", "product_id", id, "error", err)
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if cacheErr := s.cacheService.SetProduct(ctx, product, productCacheTTL); cacheErr != nil {
		slog.WarnContext(ctx, "product cache write failed", "product_id", id, "error", cacheErr)
	}

	return product, nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, upd *ProductUpdate) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		if *upd.Name == "" {
			return nil, errValidation("product name is required")
		}
		product.Name = *upd.Name
	}
	if upd.Brand != nil {
		product.Brand = upd.Brand
	}
	product.UpdatedAt = time.Now().UTC()

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	if cacheErr := s.cacheService.DeleteProduct(ctx, id); cacheErr != nil {
		slog.WarnContext(ctx, "product cache invalidation failed", "product_id", id, "error", cacheErr)
	}

	return product, nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return err
	}

	if cacheErr := s.cacheService.DeleteProduct(ctx, id); cacheErr != nil {
		slog.WarnContext(ctx, "product cache invalidation failed", "product_id", id, "error", cacheErr)
	}

	return nil
}

func (s *productService) List(ctx context.Context, filter *models.ProductFilter) ([]*models.Product, int64, error) {
	total, err := s.productRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	items, err := s.productRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}
