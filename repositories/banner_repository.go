package repositories

import (
	"context"
	"time"

	"as-production-store/config"
	"as-production-store/models"
)

const bannerColumns = `id, title, subtitle, button_text, button_link, image_url, image_public_id, is_active, created_at, updated_at`

type BannerRepository struct{}

func NewBannerRepository() *BannerRepository {
	return &BannerRepository{}
}

func scanBanner(row interface{ Scan(...any) error }) (*models.Banner, error) {
	var b models.Banner
	err := row.Scan(&b.ID, &b.Title, &b.Subtitle, &b.ButtonText, &b.ButtonLink,
		&b.ImageURL, &b.ImagePublicID, &b.IsActive, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BannerRepository) List(ctx context.Context, activeOnly bool) ([]models.Banner, error) {
	query := `SELECT ` + bannerColumns + ` FROM banners`
	if activeOnly {
		query += ` WHERE is_active = true`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := config.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	banners := []models.Banner{}
	for rows.Next() {
		b, err := scanBanner(rows)
		if err != nil {
			return nil, err
		}
		banners = append(banners, *b)
	}
	return banners, rows.Err()
}

func (r *BannerRepository) GetByID(ctx context.Context, id string) (*models.Banner, error) {
	return scanBanner(config.DB.QueryRow(ctx,
		`SELECT `+bannerColumns+` FROM banners WHERE id = $1`, id))
}

func (r *BannerRepository) Create(ctx context.Context, b *models.Banner) error {
	query := `
		INSERT INTO banners (title, subtitle, button_text, button_link, image_url, image_public_id, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return config.DB.QueryRow(ctx, query,
		b.Title, b.Subtitle, b.ButtonText, b.ButtonLink, b.ImageURL, b.ImagePublicID, b.IsActive, now, now,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *BannerRepository) Update(ctx context.Context, b *models.Banner) error {
	query := `UPDATE banners SET title = $1, subtitle = $2, button_text = $3, button_link = $4,
		image_url = $5, image_public_id = $6, is_active = $7, updated_at = $8 WHERE id = $9`
	_, err := config.DB.Exec(ctx, query,
		b.Title, b.Subtitle, b.ButtonText, b.ButtonLink, b.ImageURL, b.ImagePublicID,
		b.IsActive, time.Now(), b.ID,
	)
	return err
}

func (r *BannerRepository) Delete(ctx context.Context, id string) error {
	_, err := config.DB.Exec(ctx, `DELETE FROM banners WHERE id = $1`, id)
	return err
}
