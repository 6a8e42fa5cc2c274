package app

import (
	"database/sql"

	"github.com/hoangson03112/VietXanh/internal/auth"
	"github.com/hoangson03112/VietXanh/internal/blog"
	"github.com/hoangson03112/VietXanh/internal/cart"
	"github.com/hoangson03112/VietXanh/internal/cloudinary"
	"github.com/hoangson03112/VietXanh/internal/contact"
	"github.com/hoangson03112/VietXanh/internal/email"
	"github.com/hoangson03112/VietXanh/internal/outbox"
	"github.com/hoangson03112/VietXanh/internal/product"
	"github.com/hoangson03112/VietXanh/internal/shared/database/dbgen"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type moduleDeps struct {
	db          *sql.DB
	cartStorage cart.Storage
	cartBus     cart.Bus
	cloudinary  cloudinary.Service
	email       email.Service
	logger      *zap.Logger
}

func registerModules(router *gin.Engine, deps moduleDeps) {
	queries := dbgen.New(deps.db)

	// --- Repositories ---
	authRepo := auth.NewRepository(queries)
	productRepo := product.NewRepository(queries)
	blogRepo := blog.NewRepository(queries)
	contactRepo := contact.NewRepository(queries)
	outboxRepo := outbox.NewRepository(queries)

	// --- Services ---
	authService := auth.NewService(authRepo, deps.email)
	productService := product.NewService(productRepo, deps.cloudinary, deps.logger)
	blogService := blog.NewService(blogRepo, deps.cloudinary, deps.logger)
	contactService := contact.NewService(contact.Deps{
		DB:         deps.db,
		Repo:       contactRepo,
		OutboxRepo: outboxRepo,
		Logger:     deps.logger,
	})
	cartStore := cart.NewStore(deps.cartStorage, deps.cartBus, cart.WithLogger(deps.logger))

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, deps.logger)
	productHandler := product.NewHandler(productService)
	blogHandler := blog.NewHandler(blogService)
	cartHandler := cart.NewHandler(cartStore, deps.logger)
	contactHandler := contact.NewHandler(contactService, cartStore, deps.logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		product.RegisterRoutes(api, productHandler)
		blog.RegisterRoutes(api, blogHandler)
		cart.RegisterRoutes(api, cartHandler)
		contact.RegisterRoutes(api, contactHandler)
	}
}
