package models

import "time"

type Banner struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Subtitle      string    `json:"subtitle"`
	ButtonText    string    `json:"button_text"`
	ButtonLink    string    `json:"button_link"`
	ImageURL      string    `json:"image_url"`
	ImagePublicID string    `json:"-"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
