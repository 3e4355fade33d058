package models

import "time"

type Product struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	CategoryID     int       `json:"category_id"`
	Category       string    `json:"category,omitempty"`
	Price          float64   `json:"price"`
	ImageURLs      []string  `json:"image_urls"`
	ImagePublicIDs []string  `json:"-"`
	ShowPrice      bool      `json:"show_price"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
