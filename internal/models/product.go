package models

import "time"

// Product is a catalog entry. Prices are stored in the canonical currency;
// display conversion never touches these fields.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Price         float64   `json:"price"`
	OriginalPrice float64   `json:"originalPrice,omitempty"`
	Category      string    `json:"category"`
	CategoryID    string    `json:"categoryId"`
	Images        []string  `json:"images"`
	Stock         int       `json:"stock"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
}

type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	IsActive bool   `json:"isActive"`
}
