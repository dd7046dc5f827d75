package catalog

import (
	"time"

	"storefront/internal/models"
	"storefront/internal/store"
)

const placeholderImage = "/public/images/placeholder.svg"

// Seed installs the sample catalog on first run. A key that already holds a
// value, even an empty list, is left alone.
func (m *Manager) Seed() {
	m.mu.Lock()
	defer m.mu.Unlock()

	var products []models.Product
	if !m.store.Get(store.KeyProducts, &products) {
		m.store.Set(store.KeyProducts, seedProducts())
	}
	var categories []models.Category
	if !m.store.Get(store.KeyCategories, &categories) {
		m.store.Set(store.KeyCategories, seedCategories())
	}
}

func seedCategories() []models.Category {
	return []models.Category{
		{ID: "cat1", Name: "Electronics", Slug: "electronics", IsActive: true},
		{ID: "cat2", Name: "Fashion", Slug: "fashion", IsActive: true},
		{ID: "cat3", Name: "Home & Garden", Slug: "home-garden", IsActive: true},
		{ID: "cat4", Name: "Sports", Slug: "sports", IsActive: true},
		{ID: "cat5", Name: "Books", Slug: "books", IsActive: true},
	}
}

func seedProducts() []models.Product {
	at := func(day int) time.Time {
		return time.Date(2024, 1, day, 10, 0, 0, 0, time.UTC)
	}
	return []models.Product{
		{
			ID:            "prod1",
			Name:          "Wireless Bluetooth Headphones",
			Description:   "High-quality wireless headphones with noise cancellation and 30hr battery life.",
			Price:         2999,
			OriginalPrice: 3999,
			Category:      "Electronics",
			CategoryID:    "cat1",
			Images:        []string{placeholderImage},
			Stock:         50,
			IsActive:      true,
			CreatedAt:     at(15),
		},
		{
			ID:            "prod2",
			Name:          "Smart Watch Pro",
			Description:   "Feature-rich smartwatch with health tracking and GPS.",
			Price:         4999,
			OriginalPrice: 6999,
			Category:      "Electronics",
			CategoryID:    "cat1",
			Images:        []string{placeholderImage},
			Stock:         25,
			IsActive:      true,
			CreatedAt:     at(16),
		},
		{
			ID:            "prod3",
			Name:          "Cotton T-Shirt",
			Description:   "Premium cotton t-shirt, comfortable and durable.",
			Price:         599,
			OriginalPrice: 899,
			Category:      "Fashion",
			CategoryID:    "cat2",
			Images:        []string{placeholderImage},
			Stock:         100,
			IsActive:      true,
			CreatedAt:     at(17),
		},
		{
			ID:            "prod4",
			Name:          "Running Shoes",
			Description:   "Lightweight running shoes with cushioned sole.",
			Price:         2499,
			OriginalPrice: 2999,
			Category:      "Sports",
			CategoryID:    "cat4",
			Images:        []string{placeholderImage},
			Stock:         30,
			IsActive:      true,
			CreatedAt:     at(18),
		},
		{
			ID:            "prod5",
			Name:          "Garden Tool Set",
			Description:   "Complete gardening tool set with 10 pieces.",
			Price:         1899,
			OriginalPrice: 2499,
			Category:      "Home & Garden",
			CategoryID:    "cat3",
			Images:        []string{placeholderImage},
			Stock:         20,
			IsActive:      true,
			CreatedAt:     at(19),
		},
		{
			ID:            "prod6",
			Name:          "React Programming Book",
			Description:   "Learn React.js from basics to advanced concepts.",
			Price:         449,
			OriginalPrice: 599,
			Category:      "Books",
			CategoryID:    "cat5",
			Images:        []string{placeholderImage},
			Stock:         0,
			IsActive:      true,
			CreatedAt:     at(20),
		},
		{
			ID:            "prod7",
			Name:          "Wireless Mouse",
			Description:   "Ergonomic wireless mouse with long battery life.",
			Price:         799,
			OriginalPrice: 999,
			Category:      "Electronics",
			CategoryID:    "cat1",
			Images:        []string{placeholderImage},
			Stock:         75,
			IsActive:      true,
			CreatedAt:     at(21),
		},
		{
			ID:            "prod8",
			Name:          "Yoga Mat",
			Description:   "Non-slip yoga mat with carrying strap.",
			Price:         899,
			OriginalPrice: 1199,
			Category:      "Sports",
			CategoryID:    "cat4",
			Images:        []string{placeholderImage},
			Stock:         40,
			IsActive:      true,
			CreatedAt:     at(22),
		},
	}
}
