package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"marbrerie-gestion/db"
	"marbrerie-gestion/models"
)

// ProductRepository handles database operations for stone references
type ProductRepository struct{}

// NewProductRepository creates a new ProductRepository
func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

var _ ProductRepositoryInterface = (*ProductRepository)(nil)

const productColumns = `id, name, COALESCE(category, ''), COALESCE(origin, ''), COALESCE(notes, ''), active, has_image, created_at, updated_at`

func scanProduct(scanner interface{ Scan(...interface{}) error }) (*models.Product, error) {
	var p models.Product
	var hasImage bool
	err := scanner.Scan(&p.ID, &p.Name, &p.Category, &p.Origin, &p.Notes, &p.Active, &hasImage, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if hasImage {
		p.ImageUrlThumb = fmt.Sprintf("/admin/products/%d/image?size=thumb", p.ID)
		p.ImageUrlMedium = fmt.Sprintf("/admin/products/%d/image?size=medium", p.ID)
	}
	return &p, nil
}

// Create inserts a new product
func (r *ProductRepository) Create(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	query := `
		INSERT INTO products (name, category, origin, notes, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + productColumns

	row := db.DB.QueryRowContext(ctx, query,
		req.Name,
		nullString(req.Category),
		nullString(req.Origin),
		nullString(req.Notes),
		active,
	)

	product, err := scanProduct(row)
	if err != nil {
		log.Printf("❌ Create: Error inserting product: %v", err)
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}

	log.Printf("✅ Create: Successfully created product id=%d name=%s", product.ID, product.Name)
	return product, nil
}

// GetByID retrieves a product by ID
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	product, err := scanProduct(db.DB.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("product not found")
		}
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}
	return product, nil
}

// Filter retrieves products matching the given filter
func (r *ProductRepository) Filter(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	var args []interface{}
	argIndex := 1

	if filter.Query != "" {
		query += fmt.Sprintf(" AND (name ILIKE '%%' || $%d || '%%' OR origin ILIKE '%%' || $%d || '%%')", argIndex, argIndex)
		args = append(args, filter.Query)
		argIndex++
	}
	if filter.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", argIndex)
		args = append(args, filter.Category)
		argIndex++
	}
	if filter.Active != nil {
		query += fmt.Sprintf(" AND active = $%d", argIndex)
		args = append(args, *filter.Active)
		argIndex++
	}

	query += " ORDER BY name ASC"

	rows, err := db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}

// Update updates a product
func (r *ProductRepository) Update(ctx context.Context, id int64, req *models.CreateProductRequest) (*models.Product, error) {
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	query := `
		UPDATE products
		SET name = $1, category = $2, origin = $3, notes = $4, active = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING ` + productColumns

	row := db.DB.QueryRowContext(ctx, query,
		req.Name,
		nullString(req.Category),
		nullString(req.Origin),
		nullString(req.Notes),
		active,
		id,
	)

	product, err := scanProduct(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("product not found")
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}

// Delete removes a product
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	result, err := db.DB.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("product not found")
	}

	return nil
}

// SetHasImage marks whether a product has an uploaded photo
func (r *ProductRepository) SetHasImage(ctx context.Context, id int64, hasImage bool) error {
	result, err := db.DB.ExecContext(ctx, `UPDATE products SET has_image = $1, updated_at = NOW() WHERE id = $2`, hasImage, id)
	if err != nil {
		return fmt.Errorf("failed to update product image flag: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update product image flag: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("product not found")
	}

	return nil
}
