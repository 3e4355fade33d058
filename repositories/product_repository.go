package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"as-production-store/config"
	"as-production-store/models"
)

const productColumns = `p.id, p.name, p.description, p.category_id, COALESCE(c.name, ''),
	p.price, p.image_urls, p.image_public_ids, p.show_price, p.is_active, p.created_at, p.updated_at`

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

func scanProduct(row interface{ Scan(...any) error }) (*models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.CategoryID, &p.Category,
		&p.Price, &p.ImageURLs, &p.ImagePublicIDs, &p.ShowPrice, &p.IsActive,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) List(ctx context.Context, page, limit int) ([]models.Product, int, error) {
	offset := (page - 1) * limit

	var total int
	if err := config.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE is_active = true`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + productColumns + `
		FROM products p LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.is_active = true ORDER BY p.created_at DESC LIMIT $1 OFFSET $2`

	rows, err := config.DB.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, *p)
	}
	return products, total, rows.Err()
}

// FilterOptions narrows the public product listing. Zero values mean "no
// constraint".
type FilterOptions struct {
	Search    string
	Category  string
	MinPrice  float64
	MaxPrice  float64
	SortName  string
	SortPrice string
}

func (r *ProductRepository) Filter(ctx context.Context, opts FilterOptions) ([]models.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products p LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.is_active = true`
	args := []interface{}{}
	paramIndex := 1

	if opts.Search != "" {
		query += fmt.Sprintf(" AND LOWER(p.name) LIKE LOWER($%d)", paramIndex)
		args = append(args, "%"+opts.Search+"%")
		paramIndex++
	}

	if opts.Category != "" {
		query += fmt.Sprintf(" AND LOWER(c.name) = LOWER($%d)", paramIndex)
		args = append(args, opts.Category)
		paramIndex++
	}

	if opts.MinPrice > 0 {
		query += fmt.Sprintf(" AND p.price >= $%d", paramIndex)
		args = append(args, opts.MinPrice)
		paramIndex++
	}

	if opts.MaxPrice > 0 {
		query += fmt.Sprintf(" AND p.price <= $%d", paramIndex)
		args = append(args, opts.MaxPrice)
		paramIndex++
	}

	switch {
	case strings.EqualFold(opts.SortName, "asc"):
		query += " ORDER BY p.name ASC"
	case strings.EqualFold(opts.SortName, "desc"):
		query += " ORDER BY p.name DESC"
	case strings.EqualFold(opts.SortPrice, "asc"):
		query += " ORDER BY p.price ASC"
	case strings.EqualFold(opts.SortPrice, "desc"):
		query += " ORDER BY p.price DESC"
	default:
		query += " ORDER BY p.created_at DESC"
	}

	rows, err := config.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) NewArrivals(ctx context.Context, limit int) ([]models.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products p LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.is_active = true ORDER BY p.created_at DESC LIMIT $1`

	rows, err := config.DB.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products p LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1`
	return scanProduct(config.DB.QueryRow(ctx, query, id))
}

// FindActiveByID is the catalog lookup the cart uses when a product is
// added; inactive products are not addable.
func (r *ProductRepository) FindActiveByID(ctx context.Context, id string) (*models.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products p LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1 AND p.is_active = true`
	return scanProduct(config.DB.QueryRow(ctx, query, id))
}

func (r *ProductRepository) Create(ctx context.Context, p *models.Product) error {
	query := `
		INSERT INTO products (name, description, category_id, price, image_urls, image_public_ids, show_price, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, true, $8, $9)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return config.DB.QueryRow(ctx, query,
		p.Name, p.Description, p.CategoryID, p.Price, p.ImageURLs, p.ImagePublicIDs, p.ShowPrice, now, now,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *ProductRepository) Update(ctx context.Context, p *models.Product) error {
	query := `UPDATE products SET name = $1, description = $2, category_id = $3, price = $4,
		image_urls = $5, image_public_ids = $6, show_price = $7, is_active = $8, updated_at = $9
		WHERE id = $10`
	_, err := config.DB.Exec(ctx, query,
		p.Name, p.Description, p.CategoryID, p.Price, p.ImageURLs, p.ImagePublicIDs,
		p.ShowPrice, p.IsActive, time.Now(), p.ID,
	)
	return err
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	_, err := config.DB.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	return err
}
