package services

import (
	"context"
	"fmt"
	"time"

	"kitchensmart/internal/models"
	"kitchensmart/internal/repositories"

	"github.com/google/uuid"
)

// InventoryItemUpdate carries a partial item update; nil fields are left
// unchanged. A changed reference is re-validated against the referenced table.
type InventoryItemUpdate struct {
	ProductID  *uuid.UUID
	LocationID *uuid.UUID
	StoreID    *uuid.UUID
	Quantity   *float64
	Price      *float64
}

type InventoryItemService interface {
	Create(ctx context.Context, item *models.InventoryItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error)
	Update(ctx context.Context, id uuid.UUID, upd *InventoryItemUpdate) (*models.InventoryItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *models.InventoryItemFilter) ([]*models.InventoryItem, int64, error)
	ListByLocation(ctx context.Context, locationID uuid.UUID, filter *models.InventoryItemFilter) ([]*models.InventoryItem, int64, error)
}

type inventoryItemService struct {
	inventoryRepo repositories.InventoryItemRepository
	productSvc    ProductService
	locationSvc   LocationService
	storeRepo     repositories.StoreRepository
}

func NewInventoryItemService(
	inventoryRepo repositories.InventoryItemRepository,
	productSvc ProductService,
	locationSvc LocationService,
	storeRepo repositories.StoreRepository,
) InventoryItemService {
	return &inventoryItemService{
		inventoryRepo: inventoryRepo,
		productSvc:    productSvc,
		locationSvc:   locationSvc,
		storeRepo:     storeRepo,
	}
}

// validateReferences checks that every referenced row exists before an item is
// written. Lookups go through the cached product/location services.
func (s *inventoryItemService) validateReferences(ctx context.Context, productID, locationID uuid.UUID, storeID *uuid.UUID) error {
	if _, err := s.productSvc.GetByID(ctx, productID); err != nil {
		return fmt.Errorf("product %s not found: %w", productID, err)
	}
	if _, err := s.locationSvc.GetByID(ctx, locationID); err != nil {
		return fmt.Errorf("location %s not found: %w", locationID, err)
	}
	if storeID != nil {
		if _, err := s.storeRepo.GetByID(ctx, *storeID); err != nil {
			return fmt.Errorf("store %s not found: %w", *storeID, err)
		}
	}
	return nil
}

func (s *inventoryItemService) Create(ctx context.Context, item *models.InventoryItem) error {
	if item.Quantity < 0 {
		return errValidation("quantity must be non-negative")
	}
	if item.Price < 0 {
		return errValidation("price must be non-negative")
	}

	if err := s.validateReferences(ctx, item.ProductID, item.LocationID, item.StoreID); err != nil {
		return err
	}

	item.ID = uuid.New()
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	return s.inventoryRepo.Create(ctx, item)
}

func (s *inventoryItemService) GetByID(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error) {
	return s.inventoryRepo.GetByID(ctx, id)
}

func (s *inventoryItemService) Update(ctx context.Context, id uuid.UUID, upd *InventoryItemUpdate) (*models.InventoryItem, error) {
	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.ProductID != nil {
		item.ProductID = *upd.ProductID
	}
	if upd.LocationID != nil {
		item.LocationID = *upd.LocationID
	}
	if upd.StoreID != nil {
		item.StoreID = upd.StoreID
	}
	if upd.Quantity != nil {
		if *upd.Quantity < 0 {
			return nil, errValidation("quantity must be non-negative")
		}
		item.Quantity = *upd.Quantity
	}
	if upd.Price != nil {
		if *upd.Price < 0 {
			return nil, errValidation("price must be non-negative")
		}
		item.Price = *upd.Price
	}

	if upd.ProductID != nil || upd.LocationID != nil || upd.StoreID != nil {
		if err := s.validateReferences(ctx, item.ProductID, item.LocationID, item.StoreID); err != nil {
			return nil, err
		}
	}

	item.UpdatedAt = time.Now().UTC()

	if err := s.inventoryRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *inventoryItemService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.inventoryRepo.Delete(ctx, id)
}

func (s *inventoryItemService) List(ctx context.Context, filter *models.InventoryItemFilter) ([]*models.InventoryItem, int64, error) {
	total, err := s.inventoryRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	items, err := s.inventoryRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (s *inventoryItemService) ListByLocation(ctx context.Context, locationID uuid.UUID, filter *models.InventoryItemFilter) ([]*models.InventoryItem, int64, error) {
	if _, err := s.locationSvc.GetByID(ctx, locationID); err != nil {
		return nil, 0, fmt.Errorf("location %s not found: %w", locationID, err)
	}

	filter.LocationID = &locationID
	return s.List(ctx, filter)
}
