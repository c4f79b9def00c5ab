package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-shop-pos/internal/cart"
	"go-shop-pos/internal/config"
	"go-shop-pos/internal/handler"
	"go-shop-pos/internal/middleware"
	"go-shop-pos/internal/model"
	"go-shop-pos/internal/repository"
	"go-shop-pos/internal/service"
	"go-shop-pos/internal/storage"
	"go-shop-pos/internal/ws"
	"go-shop-pos/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	// 1. Load config
	cfg := config.Load()

	// 2. Setup database
	db := database.ConnectDB()
	db.AutoMigrate(&model.Product{}, &model.Category{}, &model.Sale{}, &model.SaleItem{})

	// 3. Seed default categories
	seedCategories(repository.NewCategoryRepo(db))

	// 4. Cart store: Redis slot when configured, in-process otherwise
	var cartStore cart.Store
	if cfg.RedisAddr != "" {
		cartStore = cart.NewRedisStore(cfg.RedisAddr)
		log.Println("Cart store: redis @", cfg.RedisAddr)
	} else {
		cartStore = cart.NewMemoryStore()
		log.Println("Cart store: in-memory (set REDIS_ADDR for durable carts)")
	}

	// 5. Image store
	images, err := storage.NewDiskStore(cfg.UploadDir)
	if err != nil {
		log.Fatal("Failed to prepare upload dir:", err)
	}

	// 6. WebSocket hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 7. Dependency injection (wiring layers)
	productRepo := repository.NewProductRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	saleRepo := repository.NewSaleRepo(db)

	catalogService := service.NewCatalogService(productRepo, categoryRepo, wsHub)
	checkoutService := service.NewCheckoutService(cartStore, productRepo, saleRepo, wsHub, cfg.PromptPayID)
	reportService := service.NewReportService(saleRepo)
	authService, err := service.NewAuthService(cfg.OwnerPasscode, cfg.ShopName)
	if err != nil {
		log.Fatal("Failed to prepare auth:", err)
	}

	catalogHandler := handler.NewCatalogHandler(catalogService, images)
	cartHandler := handler.NewCartHandler(checkoutService)
	paymentHandler := handler.NewPaymentHandler(checkoutService)
	reportHandler := handler.NewReportHandler(reportService)
	authHandler := handler.NewAuthHandler(authService)

	// 8. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: cfg.ShopName + " POS v1.0",
	})

	app.Use(logger.New())  // Request logging
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// Product images
	app.Static(storage.PublicPath, cfg.UploadDir)

	// 9. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	api.Post("/auth/login", authHandler.Login)

	// Catalog reads (POS terminal needs these without a login)
	api.Get("/products", catalogHandler.GetProducts)
	api.Get("/products/:id", catalogHandler.GetProduct)
	api.Get("/categories", catalogHandler.GetCategories)

	// Cart (per terminal, X-Terminal-ID header)
	api.Get("/cart", cartHandler.GetCart)
	api.Post("/cart/items", cartHandler.AddItem)
	api.Post("/cart/items/:id/decrease", cartHandler.DecreaseItem)
	api.Delete("/cart/items/:id", cartHandler.RemoveItem)
	api.Delete("/cart", cartHandler.ClearCart)

	// Payment
	api.Get("/payment/qr", paymentHandler.GetQR)
	api.Post("/payment/confirm", paymentHandler.Confirm)

	// Reports summary feeds the dashboard tiles and chart
	api.Get("/reports/summary", reportHandler.GetSummary)

	// ============ OWNER ROUTES ============
	owner := api.Group("", middleware.RequireOwner())
	owner.Post("/products", catalogHandler.CreateProduct)
	owner.Put("/products/:id", catalogHandler.UpdateProduct)
	owner.Delete("/products/:id", catalogHandler.DeleteProduct)
	owner.Post("/products/upload", catalogHandler.UploadImage)
	owner.Post("/categories", catalogHandler.CreateCategory)
	owner.Get("/reports/export", reportHandler.Export)

	// WebSocket route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 10. Graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedCategories creates the starter categories on an empty table.
func seedCategories(repo repository.CategoryRepository) {
	count, err := repo.Count()
	if err != nil || count > 0 {
		return
	}

	for _, name := range []string{"Food", "Drinks"} {
		if err := repo.Create(&model.Category{Name: name}); err != nil {
			log.Printf("Warning: Failed to seed category %q: %v", name, err)
		}
	}
}
