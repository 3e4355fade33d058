package repositories

import (
	"context"
	"time"

	"as-production-store/config"
	"as-production-store/models"
)

type SettingsRepository struct{}

func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{}
}

// GetEnquirySettings loads the singleton enquiry configuration row.
func (r *SettingsRepository) GetEnquirySettings(ctx context.Context) (*models.EnquirySettings, error) {
	var s models.EnquirySettings
	err := config.DB.QueryRow(ctx,
		`SELECT whatsapp_number, prefilled_text, updated_at FROM enquiry_settings WHERE id = 1`,
	).Scan(&s.WhatsAppNumber, &s.PrefilledText, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// UpsertEnquirySettings writes the singleton row, creating it if the
// migration seed was removed.
func (r *SettingsRepository) UpsertEnquirySettings(ctx context.Context, s *models.EnquirySettings) error {
	now := time.Now()
	err := config.DB.QueryRow(ctx, `
		INSERT INTO enquiry_settings (id, whatsapp_number, prefilled_text, updated_at)
		VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET whatsapp_number = EXCLUDED.whatsapp_number,
		    prefilled_text = EXCLUDED.prefilled_text,
		    updated_at = EXCLUDED.updated_at
		RETURNING updated_at
	`, s.WhatsAppNumber, s.PrefilledText, now).Scan(&s.UpdatedAt)
	return err
}
