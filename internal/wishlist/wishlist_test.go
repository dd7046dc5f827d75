package wishlist

import (
	"errors"
	"testing"

	"storefront/internal/models"
	"storefront/internal/store"
)

func newManager() *Manager {
	return NewManager(store.New(store.NewMemoryKV(), nil))
}

func TestAddIsIdempotent(t *testing.T) {
	m := newManager()
	p := models.Product{ID: "a", Name: "Yoga Mat", Price: 899, Stock: 40}

	m.Add(p)
	m.Add(p)

	if got := len(m.Items()); got != 1 {
		t.Fatalf("items = %d, want 1", got)
	}
	if !m.Contains("a") {
		t.Fatal("Contains = false after Add")
	}
}

func TestRemove(t *testing.T) {
	m := newManager()
	m.Add(models.Product{ID: "a"})
	m.Add(models.Product{ID: "b"})

	m.Remove("a")
	if m.Contains("a") {
		t.Fatal("removed id still present")
	}
	if !m.Contains("b") {
		t.Fatal("unrelated id removed")
	}
}

func TestMoveToCart(t *testing.T) {
	m := newManager()
	p := models.Product{ID: "a", Stock: 5}
	m.Add(p)

	var gotProduct models.Product
	var gotQty int
	err := m.MoveToCart(p, func(prod models.Product, qty int) error {
		gotProduct, gotQty = prod, qty
		return nil
	})
	if err != nil {
		t.Fatalf("MoveToCart: %v", err)
	}
	if gotProduct.ID != "a" || gotQty != 1 {
		t.Fatalf("add called with (%q, %d), want (a, 1)", gotProduct.ID, gotQty)
	}
	if m.Contains("a") {
		t.Fatal("product left in wishlist after move")
	}
}

func TestMoveToCartKeepsItemWhenAddFails(t *testing.T) {
	m := newManager()
	p := models.Product{ID: "a", Stock: 0}
	m.Add(p)

	wantErr := errors.New("out of stock")
	err := m.MoveToCart(p, func(models.Product, int) error { return wantErr })
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
	if !m.Contains("a") {
		t.Fatal("product removed although the cart add failed")
	}
}

func TestWishlistPersists(t *testing.T) {
	st := store.New(store.NewMemoryKV(), nil)
	NewManager(st).Add(models.Product{ID: "a"})

	if !NewManager(st).Contains("a") {
		t.Fatal("wishlist not reloaded from the store")
	}
}
