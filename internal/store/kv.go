package store

import "errors"

// ErrNotFound is returned by a KV backend when a key has no value.
var ErrNotFound = errors.New("store: key not found")

// KV is a string-keyed blob store. Each key holds one whole collection;
// values are read and rewritten wholesale, last writer wins.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Remove(key string) error
}

// Storage keys. Every collection lives under a single key.
const (
	KeyAuth       = "ecommerce_auth"
	KeyUsers      = "ecommerce_users"
	KeyProducts   = "ecommerce_products"
	KeyCategories = "ecommerce_categories"
	KeyOrders     = "ecommerce_orders"
	KeyCart       = "ecommerce_cart"
	KeyWishlist   = "ecommerce_wishlist"
	KeyCurrency   = "ecommerce_currency"
)
