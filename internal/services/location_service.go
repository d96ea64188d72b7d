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

// locationCacheTTL bounds staleness of cached locations; location rows change rarely.
const locationCacheTTL = 10 * time.Minute

type LocationService interface {
	Create(ctx context.Context, location *models.Location) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Location, error)
	Update(ctx context.Context, id uuid.UUID, name string) (*models.Location, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.Location, error)
}

type locationService struct {
	locationRepo repositories.LocationRepository
	cacheService caching.CacheService
}

func NewLocationService(locationRepo repositories.LocationRepository, cacheService caching.CacheService) LocationService {
	return &locationService{
		locationRepo: locationRepo,
		cacheService: cacheService,
	}
}

func (s *locationService) Create(ctx context.Context, location *models.Location) error {
	if location.Name == "" {
		return errValidation("location name is required")
	}

	location.ID = uuid.New()
	now := time.Now().UTC()
	location.CreatedAt = now
	location.UpdatedAt = now

	return s.locationRepo.Create(ctx, location)
}

func (s *locationService) GetByID(ctx context.Context, id uuid.UUID) (*models.Location, error) {
	if cached, err := s.cacheService.GetLocation(ctx, id); cached != nil {
		return cached, nil
	} else if err != nil {
		// Cache errors degrade to a database read, never fail the request.
		slog.WarnContext(ctx, "location cache read failed", "location_id", id, "error", err)
	}

	location, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if cacheErr := s.cacheService.SetLocation(ctx, location, locationCacheTTL); cacheErr != nil {
		slog.WarnContext(ctx, "location cache write failed", "location_id", id, "error", cacheErr)
	}

	return location, nil
}

func (s *locationService) Update(ctx context.Context, id uuid.UUID, name string) (*models.Location, error) {
	if name == "" {
		return nil, errValidation("location name is required")
	}

	location, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	location.Name = name
	location.UpdatedAt = time.Now().UTC()

	if err := s.locationRepo.Update(ctx, location); err != nil {
		return nil, err
	}

	if cacheErr := s.cacheService.DeleteLocation(ctx, id); cacheErr != nil {
		slog.WarnContext(ctx, "location cache invalidation failed", "location_id", id, "error", cacheErr)
	}

	return location, nil
}

func (s *locationService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.locationRepo.Delete(ctx, id); err != nil {
		return err
	}

	if cacheErr := s.cacheService.DeleteLocation(ctx, id); cacheErr != nil {
		slog.WarnContext(ctx, "location cache invalidation failed", "location_id", id, "error", cacheErr)
	}

	return nil
}

func (s *locationService) List(ctx context.Context) ([]*models.Location, error) {
	return s.locationRepo.List(ctx)
}
