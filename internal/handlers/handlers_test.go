package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront/internal/auth"
	"storefront/internal/cart"
	"storefront/internal/catalog"
	"storefront/internal/checkout"
	"storefront/internal/currency"
	"storefront/internal/middleware"
	"storefront/internal/models"
	"storefront/internal/session"
	"storefront/internal/store"
	"storefront/internal/wishlist"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	st := store.New(store.NewMemoryKV(), zap.NewNop())

	products := catalog.NewManager(st)
	products.Seed()

	sessions := session.NewManager(st, "admin@shop.com", "Admin@123")
	carts := cart.NewManager(st)
	wishes := wishlist.NewManager(st)
	display := currency.NewManager(st, 83)
	orders := checkout.NewManager(st, checkout.Pricing{
		ShippingCharge:    50,
		FreeShippingAbove: 500,
		TaxRate:           0.05,
	})

	jwter := &auth.JWTer{Secret: []byte("test-secret"), TTL: time.Hour}
	log := zap.NewNop()

	r := gin.New()
	r.POST("/auth/register", Register(sessions, jwter, log))
	r.POST("/auth/login", Login(sessions, jwter, log))
	r.POST("/auth/logout", Logout(sessions))
	r.GET("/auth/me", Me(sessions))

	r.GET("/products", GetProducts(products))
	r.GET("/products/:id", GetProduct(products))
	r.GET("/categories", GetCategories(products))

	r.GET("/currency", GetCurrency(display))
	r.POST("/currency/toggle", ToggleCurrency(display))

	r.GET("/cart", GetCart(carts, display))
	r.POST("/cart", AddToCart(carts, products, display))
	r.DELETE("/cart/:id", RemoveCartItem(carts, display))

	r.GET("/wishlist", GetWishlist(wishes))
	r.POST("/wishlist", AddToWishlist(wishes, products))
	r.POST("/wishlist/:id/move-to-cart", MoveToWishlistCart(wishes, carts, products))

	user := r.Group("/user")
	user.Use(middleware.UserAuth(jwter))
	{
		user.POST("/addresses", CreateAddress(sessions))
		user.POST("/orders", PlaceOrder(orders, sessions, carts, log))
		user.GET("/orders", MyOrders(orders, sessions))
	}

	admin := r.Group("/admin/api")
	admin.Use(middleware.AdminAuth(jwter))
	{
		admin.GET("/products", AdminListProducts(products))
		admin.POST("/products", AdminCreateProduct(products))
	}

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	return out
}

func registerAndToken(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"name":     "Asha",
		"email":    "asha@example.com",
		"password": "secret123",
		"phone":    "9999999999",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register: got %d, body %s", w.Code, w.Body.String())
	}
	token, _ := decode(t, w)["accessToken"].(string)
	if token == "" {
		t.Fatal("register: no access token")
	}
	return token
}

func TestRegisterThenLogin(t *testing.T) {
	r := newTestRouter(t)
	registerAndToken(t, r)

	w := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "asha@example.com",
		"password": "secret123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: got %d, body %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	if body["role"] != models.RoleUser {
		t.Fatalf("role = %v, want %q", body["role"], models.RoleUser)
	}

	w = doJSON(t, r, http.MethodGet, "/auth/me", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("me: got %d", w.Code)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	r := newTestRouter(t)
	registerAndToken(t, r)

	w := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "asha@example.com",
		"password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("got %d, want 401", w.Code)
	}
}

func TestDuplicateRegisterConflicts(t *testing.T) {
	r := newTestRouter(t)
	registerAndToken(t, r)

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"name":     "Other",
		"email":    "asha@example.com",
		"password": "secret456",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("got %d, want 409", w.Code)
	}
}

func TestSeededCatalogIsServed(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/products", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("got %d", w.Code)
	}
	data, _ := decode(t, w)["data"].([]any)
	if len(data) == 0 {
		t.Fatal("expected seeded products")
	}

	w = doJSON(t, r, http.MethodGet, "/products/does-not-exist", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown product: got %d, want 404", w.Code)
	}
}

func TestCartAddAndCurrencyToggle(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/cart", "", gin.H{"productId": "prod1", "quantity": 2})
	if w.Code != http.StatusOK {
		t.Fatalf("add to cart: got %d, body %s", w.Code, w.Body.String())
	}
	body := decode(t, w)
	if body["count"].(float64) != 2 {
		t.Fatalf("count = %v, want 2", body["count"])
	}
	if body["displayCurrency"] != currency.INR {
		t.Fatalf("currency = %v, want INR", body["displayCurrency"])
	}

	w = doJSON(t, r, http.MethodPost, "/currency/toggle", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("toggle: got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/cart", "", nil)
	if decode(t, w)["displayCurrency"] != currency.USD {
		t.Fatal("cart total should display in USD after toggle")
	}
}

func TestAddUnknownProductToCart(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/cart", "", gin.H{"productId": "nope"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("got %d, want 404", w.Code)
	}
}

func TestWishlistMoveToCart(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/wishlist", "", gin.H{"productId": "prod2"})
	if w.Code != http.StatusOK {
		t.Fatalf("add to wishlist: got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/wishlist/prod2/move-to-cart", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("move: got %d, body %s", w.Code, w.Body.String())
	}
	if data, _ := decode(t, w)["data"].([]any); len(data) != 0 {
		t.Fatal("wishlist should be empty after move")
	}

	w = doJSON(t, r, http.MethodGet, "/cart", "", nil)
	if decode(t, w)["count"].(float64) != 1 {
		t.Fatal("moved product should be in cart")
	}
}

func TestPlaceOrderFlow(t *testing.T) {
	r := newTestRouter(t)
	token := registerAndToken(t, r)

	w := doJSON(t, r, http.MethodPost, "/user/addresses", token, gin.H{
		"street":  "12 MG Road",
		"city":    "Bengaluru",
		"state":   "Karnataka",
		"pincode": "560001",
	})
	if w.Code != http.StatusOK && w.Code != http.StatusCreated {
		t.Fatalf("create address: got %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/cart", "", gin.H{"productId": "prod1", "quantity": 1})
	if w.Code != http.StatusOK {
		t.Fatalf("add to cart: got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/user/orders", token, gin.H{})
	if w.Code != http.StatusCreated {
		t.Fatalf("place order: got %d, body %s", w.Code, w.Body.String())
	}
	order, _ := decode(t, w)["data"].(map[string]any)
	if order["status"] != models.StatusPlaced {
		t.Fatalf("status = %v, want %q", order["status"], models.StatusPlaced)
	}

	// Cart is cleared by a successful checkout.
	w = doJSON(t, r, http.MethodGet, "/cart", "", nil)
	if decode(t, w)["count"].(float64) != 0 {
		t.Fatal("cart should be empty after checkout")
	}

	w = doJSON(t, r, http.MethodGet, "/user/orders", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("my orders: got %d", w.Code)
	}
	if data, _ := decode(t, w)["data"].([]any); len(data) != 1 {
		t.Fatal("expected one order")
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	r := newTestRouter(t)
	token := registerAndToken(t, r)

	w := doJSON(t, r, http.MethodPost, "/user/orders", token, gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("got %d, want 400", w.Code)
	}
}

func TestAdminRoutesRejectUsers(t *testing.T) {
	r := newTestRouter(t)
	token := registerAndToken(t, r)

	w := doJSON(t, r, http.MethodGet, "/admin/api/products", token, nil)
	if w.Code != http.StatusForbidden && w.Code != http.StatusUnauthorized {
		t.Fatalf("got %d, want 401/403", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/admin/api/products", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("no token: got %d, want 401", w.Code)
	}
}

func TestAdminCreateProduct(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email":    "admin@shop.com",
		"password": "Admin@123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("admin login: got %d", w.Code)
	}
	token, _ := decode(t, w)["accessToken"].(string)

	w = doJSON(t, r, http.MethodPost, "/admin/api/products", token, gin.H{
		"name":  "Desk Lamp",
		"price": 799.0,
		"stock": 10,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create product: got %d, body %s", w.Code, w.Body.String())
	}
	data, _ := decode(t, w)["data"].(map[string]any)
	if data["id"] == "" || data["id"] == nil {
		t.Fatal("expected generated product id")
	}
	if data["isActive"] != true {
		t.Fatal("new product should default active")
	}
}
