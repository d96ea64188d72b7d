package repositories

import (
	"context"
	"fmt"

	"kitchensmart/internal/models"

	"github.com/google/uuid"
)

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *models.ProductFilter) ([]*models.Product, error)
	Count(ctx context.Context, filter *models.ProductFilter) (int64, error)
}

type productRepo struct {
	db Database
}

func NewProductRepository(db Database) ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Create(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (id, name, brand, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query, product.ID, product.Name, product.Brand, product.CreatedAt, product.UpdatedAt)
	return err
}

func (r *productRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product := &models.Product{}
	query := `
		SELECT id, name, brand, created_at, updated_at
		FROM products
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&product.ID, &product.Name, &product.Brand, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (r *productRepo) Update(ctx context.Context, product *models.Product) error {
	query := `
		UPDATE products
		SET name = $1, brand = $2, updated_at = $3
		WHERE id = $4
	`
	_, err := r.db.Exec(ctx, query, product.Name, product.Brand, product.UpdatedAt, product.ID)
	return err
}

func (r *productRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM products WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

// productFilterClause builds the WHERE tail shared by List and Count so both
// queries always see the same rows.
func productFilterClause(filter *models.ProductFilter) (string, []any) {
	clause := ""
	args := []any{}

	if filter.Name != nil {
		args = append(args, "%"+*filter.Name+"%")
		clause += fmt.Sprintf(" AND name ILIKE $%d", len(args))
	}
	if filter.Brand != nil {
		args = append(args, "%"+*filter.Brand+"%")
		clause += fmt.Sprintf(" AND brand ILIKE $%d", len(args))
	}

	return clause, args
}

func (r *productRepo) List(ctx context.Context, filter *models.ProductFilter) ([]*models.Product, error) {
	clause, args := productFilterClause(filter)

	query := `
		SELECT id, name, brand, created_at, updated_at
		FROM products
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

	var products []*models.Product
	for rows.Next() {
		product := &models.Product{}
		if err := rows.Scan(&product.ID, &product.Name, &product.Brand, &product.CreatedAt, &product.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

func (r *productRepo) Count(ctx context.Context, filter *models.ProductFilter) (int64, error) {
	clause, args := productFilterClause(filter)

	query := `SELECT COUNT(*) FROM products WHERE TRUE` + clause

	var total int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
