package repositories

import (
	"context"

	"kitchensmart/internal/models"

	"github.com/google/uuid"
)

type StoreRepository interface {
	Create(ctx context.Context, store *models.Store) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Store, error)
	Update(ctx context.Context, store *models.Store) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.Store, error)
}

type storeRepo struct {
	db Database
}

func NewStoreRepository(db Database) StoreRepository {
	return &storeRepo{db: db}
}

func (r *storeRepo) Create(ctx context.Context, store *models.Store) error {
	query := `
		INSERT INTO stores (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(ctx, query, store.ID, store.Name, store.CreatedAt, store.UpdatedAt)
	return err
}

func (r *storeRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Store, error) {
	store := &models.Store{}
	query := `
		SELECT id, name, created_at, updated_at
		FROM stores
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&store.ID, &store.Name, &store.CreatedAt, &store.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return store, nil
}

func (r *storeRepo) Update(ctx context.Context, store *models.Store) error {
	query := `
		UPDATE stores
		SET name = $1, updated_at = $2
		WHERE id = $3
	`
	_, err := r.db.Exec(ctx, query, store.Name, store.UpdatedAt, store.ID)
	return err
}

func (r *storeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM stores WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *storeRepo) List(ctx context.Context) ([]*models.Store, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM stores
		ORDER BY created_at ASC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stores []*models.Store
	for rows.Next() {
		store := &models.Store{}
		if err := rows.Scan(&store.ID, &store.Name, &store.CreatedAt, &store.UpdatedAt); err != nil {
			return nil, err
		}
		stores = append(stores, store)
	}
	return stores, rows.Err()
}
