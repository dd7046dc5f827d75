// Package wishlist owns the saved-for-later product list, deduplicated by
// product id.
package wishlist

import (
	"sync"

	"storefront/internal/models"
	"storefront/internal/store"
)

type Manager struct {
	mu    sync.Mutex
	store *store.Store
	items []models.Product
}

func NewManager(st *store.Store) *Manager {
	m := &Manager{store: st}
	st.Get(store.KeyWishlist, &m.items)
	return m
}

// Add appends the product unless its id is already present.
func (m *Manager) Add(p models.Product) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, item := range m.items {
		if item.ID == p.ID {
			return
		}
	}
	m.items = append(m.items, p)
	m.persist()
}

// Remove drops the product with the given id.
func (m *Manager) Remove(productID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	kept := m.items[:0]
	for _, item := range m.items {
		if item.ID != productID {
			kept = append(kept, item)
		}
	}
	m.items = kept
	m.persist()
}

// Contains reports whether the product id is in the wishlist.
func (m *Manager) Contains(productID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, item := range m.items {
		if item.ID == productID {
			return true
		}
	}
	return false
}

// Items returns a copy of the wishlist.
func (m *Manager) Items() []models.Product {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Product, len(m.items))
	copy(out, m.items)
	return out
}

// MoveToCart hands the product to the caller-supplied add function and, if
// that succeeds, removes it from the wishlist. The cart is reached through
// the callback so the two managers stay decoupled.
func (m *Manager) MoveToCart(p models.Product, addToCart func(models.Product, int) error) error {
	if err := addToCart(p, 1); err != nil {
		return err
	}
	m.Remove(p.ID)
	return nil
}

func (m *Manager) persist() {
	items := m.items
	if items == nil {
		items = []models.Product{}
	}
	m.store.Set(store.KeyWishlist, items)
}
