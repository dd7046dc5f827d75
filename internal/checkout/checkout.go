// Package checkout computes order totals and commits immutable order
// records. Totals are computed once at creation and never recomputed.
package checkout

import (
	"errors"
	"sync"
	"time"

	"storefront/internal/models"
	"storefront/internal/store"
)

var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrNoAddress      = errors.New("no delivery address selected")
	ErrNotUserSession = errors.New("sign in to place an order")
	ErrOrderNotFound  = errors.New("order not found")
	ErrNotCancellable = errors.New("only placed orders can be cancelled")
	ErrBadStatus      = errors.New("unknown order status")
	ErrStorage        = errors.New("storage write failed")
)

// Pricing holds the checkout knobs: a flat shipping charge waived above the
// free-shipping threshold, and a tax rate applied to the subtotal only.
type Pricing struct {
	ShippingCharge    float64
	FreeShippingAbove float64
	TaxRate           float64
}

type Quote struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Quote prices a subtotal. Tax is not charged on shipping.
func (p Pricing) Quote(subtotal float64) Quote {
	shipping := p.ShippingCharge
	if subtotal > p.FreeShippingAbove {
		shipping = 0
	}
	tax := subtotal * p.TaxRate
	return Quote{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}

type Manager struct {
	mu      sync.Mutex
	store   *store.Store
	pricing Pricing
}

func NewManager(st *store.Store, pricing Pricing) *Manager {
	return &Manager{store: st, pricing: pricing}
}

func (m *Manager) Pricing() Pricing { return m.pricing }

// PlaceOrder commits an order for the session user and then asks the cart
// to clear itself via the supplied callback. The two writes are not
// transactional: a failed clear leaves both the order and the cart behind.
func (m *Manager) PlaceOrder(sess models.Session, items []models.CartItem, addressID string, clearCart func()) (models.Order, error) {
	if sess.Role != models.RoleUser {
		return models.Order{}, ErrNotUserSession
	}
	if len(items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	address, ok := resolveAddress(sess.Addresses, addressID)
	if !ok {
		return models.Order{}, ErrNoAddress
	}

	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}
	quote := m.pricing.Quote(subtotal)

	order := models.Order{
		ID:            models.NewID("ORD_"),
		UserID:        sess.ID,
		Items:         items,
		Subtotal:      quote.Subtotal,
		Shipping:      quote.Shipping,
		Tax:           quote.Tax,
		Total:         quote.Total,
		Address:       address.Full,
		Status:        models.StatusPlaced,
		PaymentMethod: models.PaymentCOD,
		CreatedAt:     time.Now().UTC(),
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var orders []models.Order
	m.store.Get(store.KeyOrders, &orders)
	orders = append([]models.Order{order}, orders...)
	if !m.store.Set(store.KeyOrders, orders) {
		return models.Order{}, ErrStorage
	}

	if clearCart != nil {
		clearCart()
	}
	return order, nil
}

// resolveAddress picks the requested address, falling back to the first
// one when the id does not match.
func resolveAddress(addresses []models.Address, id string) (models.Address, bool) {
	for _, a := range addresses {
		if a.ID == id {
			return a, true
		}
	}
	if len(addresses) > 0 {
		return addresses[0], true
	}
	return models.Address{}, false
}

// Cancel is the user-facing transition: allowed only while the order is
// still Placed and only on the user's own order.
func (m *Manager) Cancel(userID, orderID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var orders []models.Order
	m.store.Get(store.KeyOrders, &orders)
	for i := range orders {
		if orders[i].ID != orderID || orders[i].UserID != userID {
			continue
		}
		if orders[i].Status != models.StatusPlaced {
			return ErrNotCancellable
		}
		orders[i].Status = models.StatusCancelled
		if !m.store.Set(store.KeyOrders, orders) {
			return ErrStorage
		}
		return nil
	}
	return ErrOrderNotFound
}

// SetStatus is the admin console path: a direct overwrite to any known
// status, with no transition guard.
func (m *Manager) SetStatus(orderID, status string) error {
	switch status {
	case models.StatusPlaced, models.StatusShipped, models.StatusDelivered, models.StatusCancelled:
	default:
		return ErrBadStatus
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var orders []models.Order
	m.store.Get(store.KeyOrders, &orders)
	for i := range orders {
		if orders[i].ID != orderID {
			continue
		}
		orders[i].Status = status
		if !m.store.Set(store.KeyOrders, orders) {
			return ErrStorage
		}
		return nil
	}
	return ErrOrderNotFound
}

// ForUser lists the user's orders, newest first.
func (m *Manager) ForUser(userID string) []models.Order {
	out := make([]models.Order, 0)
	for _, o := range m.All() {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

// All lists every order, newest first.
func (m *Manager) All() []models.Order {
	m.mu.Lock()
	defer m.mu.Unlock()

	var orders []models.Order
	m.store.Get(store.KeyOrders, &orders)
	if orders == nil {
		orders = []models.Order{}
	}
	return orders
}
