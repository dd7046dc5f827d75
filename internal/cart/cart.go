// Package cart owns the cart line items. The list is loaded once from the
// store and written back after every mutation.
package cart

import (
	"errors"
	"sync"

	"storefront/internal/models"
	"storefront/internal/store"
)

// Quantity ceiling when a product's stock does not impose a lower one.
const MaxQuantity = 99

var ErrOutOfStock = errors.New("product is out of stock")

type Manager struct {
	mu    sync.Mutex
	store *store.Store
	items []models.CartItem
}

func NewManager(st *store.Store) *Manager {
	m := &Manager{store: st}
	st.Get(store.KeyCart, &m.items)
	return m
}

// Add puts the product in the cart. If the product is already present its
// quantity is increased instead of adding a second line. Quantities are
// clamped to [1, min(stock, MaxQuantity)].
func (m *Manager) Add(p models.Product, qty int) error {
	if p.Stock <= 0 {
		return ErrOutOfStock
	}
	if qty < 1 {
		qty = 1
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].ID == p.ID {
			m.items[i].Quantity = clamp(m.items[i].Quantity+qty, m.items[i].Stock)
			m.persist()
			return nil
		}
	}
	m.items = append(m.items, models.CartItem{Product: p, Quantity: clamp(qty, p.Stock)})
	m.persist()
	return nil
}

// UpdateQuantity sets the quantity of the matching line, clamped the same
// way as Add. Unknown ids are ignored.
func (m *Manager) UpdateQuantity(productID string, qty int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].ID == productID {
			m.items[i].Quantity = clamp(qty, m.items[i].Stock)
			m.persist()
			return
		}
	}
}

// Remove drops the matching line.
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

// Items returns a copy of the current lines.
func (m *Manager) Items() []models.CartItem {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.CartItem, len(m.items))
	copy(out, m.items)
	return out
}

// Total is the sum of price x quantity in the canonical currency.
func (m *Manager) Total() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	var total float64
	for _, item := range m.items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// Count is the sum of quantities, not the number of lines.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int
	for _, item := range m.items {
		n += item.Quantity
	}
	return n
}

// Clear empties the cart. Called after an order is committed.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = nil
	m.persist()
}

func (m *Manager) persist() {
	items := m.items
	if items == nil {
		items = []models.CartItem{}
	}
	m.store.Set(store.KeyCart, items)
}

func clamp(qty, stock int) int {
	cap := MaxQuantity
	if stock > 0 && stock < cap {
		cap = stock
	}
	if qty > cap {
		return cap
	}
	if qty < 1 {
		return 1
	}
	return qty
}
