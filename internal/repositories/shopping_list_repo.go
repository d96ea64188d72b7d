package repositories

import (
	"context"
	"fmt"

	"kitchensmart/internal/models"

	"github.com/google/uuid"
)

type ShoppingListItemRepository interface {
	Create(ctx context.Context, item *models.ShoppingListItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.ShoppingListItem, error)
	Update(ctx context.Context, item *models.ShoppingListItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *models.ShoppingListItemFilter) ([]*models.ShoppingListItem, error)
	Count(ctx context.Context, filter *models.ShoppingListItemFilter) (int64, error)
}

type shoppingListItemRepo struct {
	db Database
}

func NewShoppingListItemRepository(db Database) ShoppingListItemRepository {
	return &shoppingListItemRepo{db: db}
}

func (r *shoppingListItemRepo) Create(ctx context.Context, item *models.ShoppingListItem) error {
	query := `
		INSERT INTO shopping_list_items (id, product_id, store_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query, item.ID, item.ProductID, item.StoreID, item.Quantity, item.CreatedAt, item.UpdatedAt)
	return err
}

func (r *shoppingListItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.ShoppingListItem, error) {
	item := &models.ShoppingListItem{}
	query := `
		SELECT id, product_id, store_id, quantity, created_at, updated_at
		FROM shopping_list_items
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&item.ID, &item.ProductID, &item.StoreID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *shoppingListItemRepo) Update(ctx context.Context, item *models.ShoppingListItem) error {
	query := `
		UPDATE shopping_list_items
		SET product_id = $1, store_id = $2, quantity = $3, updated_at = $4
		WHERE id = $5
	`
	_, err := r.db.Exec(ctx, query, item.ProductID, item.StoreID, item.Quantity, item.UpdatedAt, item.ID)
	return err
}

func (r *shoppingListItemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM shopping_list_items WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func shoppingListFilterClause(filter *models.ShoppingListItemFilter) (string, []any) {
	clause := ""
	args := []any{}

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

func (r *shoppingListItemRepo) List(ctx context.Context, filter *models.ShoppingListItemFilter) ([]*models.ShoppingListItem, error) {
	clause, args := shoppingListFilterClause(filter)

	query := `
		SELECT id, product_id, store_id, quantity, created_at, updated_at
		FROM shopping_list_items
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

	var items []*models.ShoppingListItem
	for rows.Next() {
		item := &models.ShoppingListItem{}
		if err := rows.Scan(&item.ID, &item.ProductID, &item.StoreID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *shoppingListItemRepo) Count(ctx context.Context, filter *models.ShoppingListItemFilter) (int64, error) {
	clause, args := shoppingListFilterClause(filter)

	query := `SELECT COUNT(*) FROM shopping_list_items WHERE TRUE` + clause

	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
