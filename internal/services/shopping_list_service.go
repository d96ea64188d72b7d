package services

import (
	"context"
	"fmt"
	"time"

	"kitchensmart/internal/models"
	"kitchensmart/internal/repositories"

	"github.com/google/uuid"
)

// ShoppingListItemUpdate carries a partial update; nil fields are left unchanged.
type ShoppingListItemUpdate struct {
	ProductID *uuid.UUID
	StoreID   *uuid.UUID
	Quantity  *float64
}

type ShoppingListItemService interface {
	Create(ctx context.Context, item *models.ShoppingListItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ShoppingListItem, error)
	Update(ctx context.Context, id uuid.UUID, upd *ShoppingListItemUpdate) (*models.ShoppingListItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *models.ShoppingListItemFilter) ([]*models.ShoppingListItem, int64, error)
}

type shoppingListItemService struct {
	shoppingListRepo repositories.ShoppingListItemRepository
	productSvc       ProductService
	storeRepo        repositories.StoreRepository
}

func NewShoppingListItemService(
	shoppingListRepo repositories.ShoppingListItemRepository,
	productSvc ProductService,
	storeRepo repositories.StoreRepository,
) ShoppingListItemService {
	return &shoppingListItemService{
		shoppingListRepo: shoppingListRepo,
		productSvc:       productSvc,
		storeRepo:        storeRepo,
	}
}

func (s *shoppingListItemService) validateReferences(ctx context.Context, productID uuid.UUID, storeID *uuid.UUID) error {
	if _, err := s.productSvc.GetByID(ctx, productID); err != nil {
		return fmt.Errorf("product %s not found: %w", productID, err)
	}
	if storeID != nil {
		if _, err := s.storeRepo.GetByID(ctx, *storeID); err != nil {
			return fmt.Errorf("store %s not found: %w", *storeID, err)
		}
	}
	return nil
}

func (s *shoppingListItemService) Create(ctx context.Context, item *models.ShoppingListItem) error {
	if item.Quantity <= 0 {
		return errValidation("quantity must be positive")
	}

	if err := s.validateReferences(ctx, item.ProductID, item.StoreID); err != nil {
		return err
	}

	item.ID = uuid.New()
	now := time.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now

	return s.shoppingListRepo.Create(ctx, item)
}

func (s *shoppingListItemService) GetByID(ctx context.Context, id uuid.UUID) (*models.ShoppingListItem, error) {
	return s.shoppingListRepo.GetByID(ctx, id)
}

func (s *shoppingListItemService) Update(ctx context.Context, id uuid.UUID, upd *ShoppingListItemUpdate) (*models.ShoppingListItem, error) {
	item, err := s.shoppingListRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.ProductID != nil {
		item.ProductID = *upd.ProductID
	}
	if upd.StoreID != nil {
		item.StoreID = upd.StoreID
	}
	if upd.Quantity != nil {
		if *upd.Quantity <= 0 {
			return nil, errValidation("quantity must be positive")
		}
		item.Quantity = *upd.Quantity
	}

	if upd.ProductID != nil || upd.StoreID != nil {
		if err := s.validateReferences(ctx, item.ProductID, item.StoreID); err != nil {
			return nil, err
		}
	}

	item.UpdatedAt = time.Now().UTC()

	if err := s.shoppingListRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *shoppingListItemService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.shoppingListRepo.Delete(ctx, id)
}

func (s *shoppingListItemService) List(ctx context.Context, filter *models.ShoppingListItemFilter) ([]*models.ShoppingListItem, int64, error) {
	total, err := s.shoppingListRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	items, err := s.shoppingListRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}
