package repositories

import (
	"context"

	"as-production-store/config"
	"as-production-store/models"
)

type CategoryRepository struct{}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{}
}

func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	rows, err := config.DB.Query(ctx,
		`SELECT id, name, created_at FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int) (*models.Category, error) {
	var cat models.Category
	err := config.DB.QueryRow(ctx,
		`SELECT id, name, created_at FROM categories WHERE id = $1`,
		id).Scan(&cat.ID, &cat.Name, &cat.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) Exists(ctx context.Context, id int) (bool, error) {
	var count int
	err := config.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM categories WHERE id = $1`, id).Scan(&count)
	return count > 0, err
}

// NameTaken reports whether another category (excluding excludeID, pass 0
// for none) already uses the name.
func (r *CategoryRepository) NameTaken(ctx context.Context, name string, excludeID int) (bool, error) {
	var count int
	err := config.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM categories WHERE LOWER(name) = LOWER($1) AND id != $2`,
		name, excludeID).Scan(&count)
	return count > 0, err
}

func (r *CategoryRepository) Create(ctx context.Context, name string) (*models.Category, error) {
	var cat models.Category
	err := config.DB.QueryRow(ctx,
		`INSERT INTO categories (name) VALUES ($1) RETURNING id, name, created_at`,
		name).Scan(&cat.ID, &cat.Name, &cat.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) Update(ctx context.Context, id int, name string) error {
	_, err := config.DB.Exec(ctx,
		`UPDATE categories SET name = $1 WHERE id = $2`, name, id)
	return err
}

func (r *CategoryRepository) Delete(ctx context.Context, id int) error {
	_, err := config.DB.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	return err
}

// InUse reports whether any product still references the category.
func (r *CategoryRepository) InUse(ctx context.Context, id int) (bool, error) {
	var count int
	err := config.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE category_id = $1`, id).Scan(&count)
	return count > 0, err
}
