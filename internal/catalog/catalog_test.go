package catalog

import (
	"errors"
	"strings"
	"testing"

	"storefront/internal/models"
	"storefront/internal/store"
)

func newManager() (*Manager, *store.Store) {
	st := store.New(store.NewMemoryKV(), nil)
	return NewManager(st), st
}

func TestSeedInstallsOnce(t *testing.T) {
	m, _ := newManager()

	m.Seed()
	if got := len(m.Products()); got != 8 {
		t.Fatalf("seed products = %d, want 8", got)
	}
	if got := len(m.Categories()); got != 5 {
		t.Fatalf("seed categories = %d, want 5", got)
	}

	m.DeleteProduct("prod1")
	m.Seed()
	if got := len(m.Products()); got != 7 {
		t.Fatalf("second seed reinstalled the catalog, products = %d", got)
	}
}

func TestSeedRespectsExistingEmptyTable(t *testing.T) {
	m, st := newManager()
	st.Set(store.KeyProducts, []models.Product{})

	m.Seed()
	if got := len(m.Products()); got != 0 {
		t.Fatalf("seed overwrote an existing (empty) table, products = %d", got)
	}
	// Categories key was absent, so that half still seeds.
	if got := len(m.Categories()); got != 5 {
		t.Fatalf("categories = %d, want 5", got)
	}
}

func TestSaveProductCreates(t *testing.T) {
	m, _ := newManager()

	p, err := m.SaveProduct(models.Product{Name: "Lamp", Price: 699, CategoryID: "cat3", Stock: 10, IsActive: true})
	if err != nil {
		t.Fatalf("SaveProduct: %v", err)
	}
	if !strings.HasPrefix(p.ID, "prod_") {
		t.Fatalf("id %q missing prefix", p.ID)
	}
	if p.CreatedAt.IsZero() {
		t.Fatal("createdAt not stamped")
	}
	if got, ok := m.ProductByID(p.ID); !ok || got.Name != "Lamp" {
		t.Fatalf("lookup after create: %+v, %v", got, ok)
	}
}

func TestSaveProductUpdatesKeepingCreatedAt(t *testing.T) {
	m, _ := newManager()
	m.Seed()

	orig, _ := m.ProductByID("prod1")
	updated := orig
	updated.Price = 2499
	updated.CreatedAt = models.Product{}.CreatedAt // zero; must be preserved

	saved, err := m.SaveProduct(updated)
	if err != nil {
		t.Fatalf("SaveProduct: %v", err)
	}
	if !saved.CreatedAt.Equal(orig.CreatedAt) {
		t.Fatalf("createdAt changed: %v -> %v", orig.CreatedAt, saved.CreatedAt)
	}
	if got, _ := m.ProductByID("prod1"); got.Price != 2499 {
		t.Fatalf("price = %v, want 2499", got.Price)
	}
}

func TestSaveProductUnknownID(t *testing.T) {
	m, _ := newManager()
	if _, err := m.SaveProduct(models.Product{ID: "prod_missing"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestActiveProductsFilter(t *testing.T) {
	m, _ := newManager()
	m.Seed()

	if _, err := m.ToggleProductActive("prod1"); err != nil {
		t.Fatal(err)
	}
	for _, p := range m.ActiveProducts() {
		if p.ID == "prod1" {
			t.Fatal("deactivated product still listed as active")
		}
	}
	if got := len(m.Products()); got != 8 {
		t.Fatalf("toggle removed a product, total = %d", got)
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Electronics":    "electronics",
		"Home & Garden":  "home-&-garden",
		"  Kids   Toys ": "kids-toys",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSaveCategoryDerivesSlug(t *testing.T) {
	m, _ := newManager()

	c, err := m.SaveCategory(models.Category{Name: "Kitchen Ware", IsActive: true})
	if err != nil {
		t.Fatalf("SaveCategory: %v", err)
	}
	if c.Slug != "kitchen-ware" {
		t.Fatalf("slug = %q", c.Slug)
	}
	if !strings.HasPrefix(c.ID, "cat_") {
		t.Fatalf("id %q missing prefix", c.ID)
	}

	// An explicit slug is kept as given.
	c.Slug = "custom-slug"
	saved, err := m.SaveCategory(c)
	if err != nil {
		t.Fatal(err)
	}
	if saved.Slug != "custom-slug" {
		t.Fatalf("slug = %q, want custom-slug", saved.Slug)
	}
}

func TestDeleteCategory(t *testing.T) {
	m, _ := newManager()
	m.Seed()

	if err := m.DeleteCategory("cat5"); err != nil {
		t.Fatal(err)
	}
	if err := m.DeleteCategory("cat5"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if got := len(m.Categories()); got != 4 {
		t.Fatalf("categories = %d, want 4", got)
	}
}

func TestUsersStripHashes(t *testing.T) {
	m, st := newManager()
	st.Set(store.KeyUsers, []models.User{
		{ID: "user_1", Email: "a@b.c", PasswordHash: "bcrypt-hash", IsActive: true},
	})

	users := m.Users()
	if len(users) != 1 || users[0].PasswordHash != "" {
		t.Fatalf("hash leaked: %+v", users)
	}

	toggled, err := m.ToggleUserActive("user_1")
	if err != nil {
		t.Fatal(err)
	}
	if toggled.IsActive {
		t.Fatal("toggle did not deactivate")
	}
	if toggled.PasswordHash != "" {
		t.Fatal("toggle leaked the hash")
	}

	// The stored record keeps its hash.
	var stored []models.User
	st.Get(store.KeyUsers, &stored)
	if stored[0].PasswordHash != "bcrypt-hash" {
		t.Fatal("stored hash lost")
	}
}
