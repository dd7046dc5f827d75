package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"storefront/internal/auth"
	"storefront/internal/cart"
	"storefront/internal/catalog"
	"storefront/internal/checkout"
	"storefront/internal/config"
	"storefront/internal/currency"
	"storefront/internal/handlers"
	"storefront/internal/logger"
	"storefront/internal/middleware"
	"storefront/internal/session"
	"storefront/internal/store"
	"storefront/internal/wishlist"
)

func main() {
	config.Load()

	if config.AppEnv.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	var l *zap.Logger
	var closeLog func()
	if config.AppEnv.LogFile != "" {
		l, closeLog = logger.NewWithRotate(config.AppEnv.LogLevel, config.AppEnv.LogJSON, logger.Rotate{
			Filename: config.AppEnv.LogFile,
		})
	} else {
		l, closeLog = logger.New(config.AppEnv.LogLevel, config.AppEnv.LogJSON)
	}
	defer closeLog()

	var kv store.KV
	switch config.AppEnv.StoreBackend {
	case "redis":
		rkv := store.NewRedisKV(config.AppEnv.RedisAddr, config.AppEnv.RedisPassword, config.AppEnv.RedisDB)
		if err := rkv.Ping(context.Background()); err != nil {
			l.Fatal("redis unreachable", zap.String("addr", config.AppEnv.RedisAddr), zap.Error(err))
		}
		l.Info("redis connected", zap.String("addr", config.AppEnv.RedisAddr))
		kv = rkv
	default:
		fkv, err := store.NewFileKV(config.AppEnv.DataDir)
		if err != nil {
			l.Fatal("data dir unusable", zap.String("dir", config.AppEnv.DataDir), zap.Error(err))
		}
		l.Info("file store ready", zap.String("dir", config.AppEnv.DataDir))
		kv = fkv
	}

	st := store.New(kv, l)

	products := catalog.NewManager(st)
	products.Seed()

	sessions := session.NewManager(st, config.AppEnv.AdminEmail, config.AppEnv.AdminPassword)
	carts := cart.NewManager(st)
	wishes := wishlist.NewManager(st)
	display := currency.NewManager(st, config.AppEnv.INRPerUSD)
	orders := checkout.NewManager(st, checkout.Pricing{
		ShippingCharge:    config.AppEnv.ShippingCharge,
		FreeShippingAbove: config.AppEnv.FreeShippingAbove,
		TaxRate:           config.AppEnv.TaxRate,
	})

	jwter := &auth.JWTer{
		Secret: []byte(config.AppEnv.JWTSecret),
		TTL:    config.AppEnv.AccessTokenTTL,
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(l))
	r.Use(middleware.Metrics())
	r.Static("/public", "./public")

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/auth/register", handlers.Register(sessions, jwter, l))
	r.POST("/auth/login", handlers.Login(sessions, jwter, l))
	r.POST("/auth/logout", handlers.Logout(sessions))
	r.GET("/auth/me", handlers.Me(sessions))

	r.GET("/products", handlers.GetProducts(products))
	r.GET("/products/:id", handlers.GetProduct(products))
	r.GET("/categories", handlers.GetCategories(products))

	r.GET("/currency", handlers.GetCurrency(display))
	r.PUT("/currency", handlers.SetCurrency(display))
	r.POST("/currency/toggle", handlers.ToggleCurrency(display))

	r.GET("/cart", handlers.GetCart(carts, display))
	r.POST("/cart", handlers.AddToCart(carts, products, display))
	r.PUT("/cart/:id", handlers.UpdateCartItem(carts, display))
	r.DELETE("/cart/:id", handlers.RemoveCartItem(carts, display))

	r.GET("/wishlist", handlers.GetWishlist(wishes))
	r.POST("/wishlist", handlers.AddToWishlist(wishes, products))
	r.DELETE("/wishlist/:id", handlers.RemoveFromWishlist(wishes))
	r.POST("/wishlist/:id/move-to-cart", handlers.MoveToWishlistCart(wishes, carts, products))

	user := r.Group("/user")
	user.Use(middleware.UserAuth(jwter))
	{
		user.PUT("/profile", handlers.UpdateProfile(sessions))
		user.GET("/addresses", handlers.GetAddresses(sessions))
		user.POST("/addresses", handlers.CreateAddress(sessions))
		user.PUT("/addresses/:id", handlers.UpdateAddress(sessions))
		user.DELETE("/addresses/:id", handlers.DeleteAddress(sessions))

		user.GET("/checkout/quote", handlers.CheckoutQuote(orders, carts))
		user.POST("/orders", handlers.PlaceOrder(orders, sessions, carts, l))
		user.GET("/orders", handlers.MyOrders(orders, sessions))
		user.POST("/orders/:id/cancel", handlers.CancelOrder(orders, sessions))
	}

	admin := r.Group("/admin/api")
	admin.Use(middleware.AdminAuth(jwter))
	{
		admin.GET("/me", func(c *gin.Context) {
			c.JSON(200, gin.H{"ok": true})
		})

		admin.GET("/products", handlers.AdminListProducts(products))
		admin.POST("/products", handlers.AdminCreateProduct(products))
		admin.PUT("/products/:id", handlers.AdminUpdateProduct(products))
		admin.DELETE("/products/:id", handlers.AdminDeleteProduct(products))
		admin.POST("/products/:id/toggle", handlers.AdminToggleProduct(products))

		admin.GET("/categories", handlers.AdminListCategories(products))
		admin.POST("/categories", handlers.AdminSaveCategory(products))
		admin.PUT("/categories/:id", handlers.AdminSaveCategory(products))
		admin.DELETE("/categories/:id", handlers.AdminDeleteCategory(products))

		admin.GET("/users", handlers.AdminListUsers(products))
		admin.POST("/users/:id/toggle", handlers.AdminToggleUser(products))

		admin.GET("/orders", handlers.AdminListOrders(orders))
		admin.PUT("/orders/:id/status", handlers.AdminUpdateOrderStatus(orders))
	}

	l.Info("listening", zap.String("addr", config.AppEnv.Addr))
	if err := r.Run(config.AppEnv.Addr); err != nil {
		l.Fatal("server stopped", zap.Error(err))
	}
}
