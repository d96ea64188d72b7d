package services

import (
	"context"
	"time"

	"kitchensmart/internal/models"
	"kitchensmart/internal/repositories"

	"github.com/google/uuid"
)

type StoreService interface {
	Create(ctx context.Context, store *models.Store) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Store, error)
	Update(ctx context.Context, id uuid.UUID, name string) (*models.Store, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.Store, error)
}

type storeService struct {
	storeRepo repositories.StoreRepository
}

func NewStoreService(storeRepo repositories.StoreRepository) StoreService {
	return &storeService{
		storeRepo: storeRepo,
	}
}

func (s *storeService) Create(ctx context.Context, store *models.Store) error {
	if store.Name == "" {
		return errValidation("store name is required")
	}

	store.ID = uuid.New()
	now := time.Now().UTC()
	store.CreatedAt = now
	store.UpdatedAt = now

	return s.storeRepo.Create(ctx, store)
}

func (s *storeService) GetByID(ctx context.Context, id uuid.UUID) (*models.Store, error) {
	return s.storeRepo.GetByID(ctx, id)
}

func (s *storeService) Update(ctx context.Context, id uuid.UUID, name string) (*models.Store, error) {
	if name == "" {
		return nil, errValidation("store name is required")
	}

	store, err := s.storeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	store.Name = name
	store.UpdatedAt = time.Now().UTC()

	if err := s.storeRepo.Update(ctx, store); err != nil {
		return nil, err
	}

	return store, nil
}

func (s *storeService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.storeRepo.Delete(ctx, id)
}

func (s *storeService) List(ctx context.Context) ([]*models.Store, error) {
	return s.storeRepo.List(ctx)
}
