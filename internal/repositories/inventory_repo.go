package repositories

import (
	"context"
	"fmt"

	"kitchensmart/internal/models"

	"github.com/google/uuid"
)

type InventoryItemRepository interface {
	Create(ctx context.Context, item *models.InventoryItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error)
	Update(ctx context.Context, item *models.InventoryItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *models.InventoryItemFilter) ([]*models.InventoryItem, error)
	Count(ctx context.Context, filter *models.InventoryItemFilter) (int64, error)
}

type inventoryItemRepo struct {
	db Database
}

func NewInventoryItemRepository(db Database) InventoryItemRepository {
	return &inventoryItemRepo{db: db}
}

func (r *inventoryItemRepo) Create(ctx context.Context, item *models.InventoryItem) error {
	query := `
		INSERT INTO inventory_items (id, product_id, location_id, store_id, quantity, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query, item.ID, item.ProductID, item.LocationID, item.StoreID, item.Quantity, item.Price, item.CreatedAt, item.UpdatedAt)
	return err
}

func (r *inventoryItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error) {
	item := &models.InventoryItem{}
	query := `
		SELECT id, product_id, location_id, store_id, quantity, price, created_at, updated_at
		FROM inventory_items
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&item.ID, &item.ProductID, &item.LocationID, &item.StoreID, &item.Quantity, &item.Price, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *inventoryItemRepo) Update(ctx context.Context, item *models.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET product_id = $1, location_id = $2, store_id = $3, quantity = $4, price = $5, updated_at = $6
		WHERE id = $7
	`
	_, err := r.db.Exec(ctx, query, item.ProductID, item.LocationID, item.StoreID, item.Quantity, item.Price, item.UpdatedAt, item.ID)
	return err
}

func (r *inventoryItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM inventory_items WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

// inventoryFilterClause builds the WHERE tail shared by List and Count so the
// returned page and the reported total always agree.
func inventoryFilterClause(filter *models.InventoryItemFilter) (string, []any) {
	clause := ""
	args := []any{}

	if filter.LocationID != nil {
		args = append(args, *filter.LocationID)
		clause += fmt.Sprintf(" AND location_id = $%d", len(args))
	}
	if filter.ProductID != nil {
		args = append(args, *filter.ProductID)
		clause += fmt.Sprintf(" AND product_id = $%d", len(args))
	}
	if filter.StoreID != nil {
		args = append(args, *filter.StoreID)
		clause += fmt.Sprintf(" AND store_id = $%d", len(args))
	}

	return clause, args
}

func (r *inventoryItemRepo) List(ctx context.Context, filter *models.InventoryItemFilter) ([]*models.InventoryItem, error) {
	clause, args := inventoryFilterClause(filter)

	query := `
		SELECT id, product_id, location_id, store_id, quantity, price, created_at, updated_at
		FROM inventory_items
		WHERE TRUE` + clause + `
		ORDER BY created_at ASC`

	args = append(args, filter.Limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.InventoryItem
	for rows.Next() {
		item := &models.InventoryItem{}
		if err := rows.Scan(&item.ID, &item.ProductID, &item.LocationID, &item.StoreID, &item.Quantity, &item.Price, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *inventoryItemRepo) Count(ctx context.Context, filter *models.InventoryItemFilter) (int64, error) {
	clause, args := inventoryFilterClause(filter)

	query := `SELECT COUNT(*) FROM inventory_items WHERE TRUE` + clause

	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
