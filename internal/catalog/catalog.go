// Package catalog manages the product, category and user tables backing
// both the storefront and the admin console.
package catalog

import (
	"errors"
	"regexp"
	"strings"
	"sync"
	"time"

	"storefront/internal/models"
	"storefront/internal/store"
)

var (
	ErrNotFound = errors.New("not found")
	ErrStorage  = errors.New("storage write failed")
)

type Manager struct {
	mu    sync.Mutex
	store *store.Store
}

func NewManager(st *store.Store) *Manager {
	return &Manager{store: st}
}

/* products */

// Products lists the whole table, for the admin console.
func (m *Manager) Products() []models.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.products()
}

// ActiveProducts lists what the storefront shows.
func (m *Manager) ActiveProducts() []models.Product {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Product, 0)
	for _, p := range m.products() {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out
}

func (m *Manager) ProductByID(id string) (models.Product, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.products() {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// SaveProduct creates the product when its id is empty, otherwise replaces
// the stored record with the same id.
func (m *Manager) SaveProduct(p models.Product) (models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	products := m.products()
	if p.ID == "" {
		p.ID = models.NewID("prod_")
		p.CreatedAt = time.Now().UTC()
		products = append(products, p)
	} else {
		found := false
		for i := range products {
			if products[i].ID == p.ID {
				if p.CreatedAt.IsZero() {
					p.CreatedAt = products[i].CreatedAt
				}
				products[i] = p
				found = true
				break
			}
		}
		if !found {
			return models.Product{}, ErrNotFound
		}
	}
	if !m.store.Set(store.KeyProducts, products) {
		return models.Product{}, ErrStorage
	}
	return p, nil
}

func (m *Manager) DeleteProduct(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	products := m.products()
	kept := products[:0]
	found := false
	for _, p := range products {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return ErrNotFound
	}
	if !m.store.Set(store.KeyProducts, kept) {
		return ErrStorage
	}
	return nil
}

func (m *Manager) ToggleProductActive(id string) (models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	products := m.products()
	for i := range products {
		if products[i].ID == id {
			products[i].IsActive = !products[i].IsActive
			if !m.store.Set(store.KeyProducts, products) {
				return models.Product{}, ErrStorage
			}
			return products[i], nil
		}
	}
	return models.Product{}, ErrNotFound
}

func (m *Manager) products() []models.Product {
	var products []models.Product
	m.store.Get(store.KeyProducts, &products)
	if products == nil {
		products = []models.Product{}
	}
	return products
}

/* categories */

func (m *Manager) Categories() []models.Category {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.categories()
}

func (m *Manager) ActiveCategories() []models.Category {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Category, 0)
	for _, c := range m.categories() {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out
}

// SaveCategory creates or replaces a category. The slug stays editable but
// falls back to being derived from the name.
func (m *Manager) SaveCategory(c models.Category) (models.Category, error) {
	if c.Slug == "" {
		c.Slug = Slugify(c.Name)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	categories := m.categories()
	if c.ID == "" {
		c.ID = models.NewID("cat_")
		categories = append(categories, c)
	} else {
		found := false
		for i := range categories {
			if categories[i].ID == c.ID {
				categories[i] = c
				found = true
				break
			}
		}
		if !found {
			return models.Category{}, ErrNotFound
		}
	}
	if !m.store.Set(store.KeyCategories, categories) {
		return models.Category{}, ErrStorage
	}
	return c, nil
}

func (m *Manager) DeleteCategory(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	categories := m.categories()
	kept := categories[:0]
	found := false
	for _, c := range categories {
		if c.ID == id {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return ErrNotFound
	}
	if !m.store.Set(store.KeyCategories, kept) {
		return ErrStorage
	}
	return nil
}

func (m *Manager) categories() []models.Category {
	var categories []models.Category
	m.store.Get(store.KeyCategories, &categories)
	if categories == nil {
		categories = []models.Category{}
	}
	return categories
}

var slugCollapse = regexp.MustCompile(`\s+`)

// Slugify lowercases the name and collapses whitespace runs into hyphens.
func Slugify(name string) string {
	return slugCollapse.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}

/* users */

// Users lists accounts for the admin console, hashes stripped.
func (m *Manager) Users() []models.User {
	m.mu.Lock()
	defer m.mu.Unlock()

	var users []models.User
	m.store.Get(store.KeyUsers, &users)
	out := make([]models.User, 0, len(users))
	for _, u := range users {
		u.PasswordHash = ""
		out = append(out, u)
	}
	return out
}

// ToggleUserActive flips the account flag. Admin deactivates, never deletes.
func (m *Manager) ToggleUserActive(id string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var users []models.User
	m.store.Get(store.KeyUsers, &users)
	for i := range users {
		if users[i].ID == id {
			users[i].IsActive = !users[i].IsActive
			if !m.store.Set(store.KeyUsers, users) {
				return models.User{}, ErrStorage
			}
			u := users[i]
			u.PasswordHash = ""
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}
