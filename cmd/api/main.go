package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-supplier-orders/internal/handler"
	"go-supplier-orders/internal/model"
	"go-supplier-orders/internal/repository"
	"go-supplier-orders/internal/service"
	"go-supplier-orders/internal/state"
	"go-supplier-orders/internal/ws"
	"go-supplier-orders/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	if err := db.AutoMigrate(&model.Supplier{}, &model.Product{}); err != nil {
		log.Fatal("Failed to migrate schema. \n", err)
	}

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	supplierRepo := repository.NewSupplierRepo(db)
	productRepo := repository.NewProductRepo(db)

	cache := state.NewContainer(state.NewRepoSource(supplierRepo, productRepo))
	if err := cache.Reload(); err != nil {
		log.Fatal("Failed to load store state. \n", err)
	}

	supplierService := service.NewSupplierService(supplierRepo, productRepo, db, cache, wsHub)
	productService := service.NewProductService(productRepo, db, cache, wsHub)
	orderService := service.NewOrderService(productRepo, cache, wsHub)
	transferService := service.NewTransferService(supplierRepo, productRepo, db, cache, wsHub)

	supplierHandler := handler.NewSupplierHandler(supplierService, cache)
	productHandler := handler.NewProductHandler(productService, cache)
	orderHandler := handler.NewOrderHandler(orderService)
	transferHandler := handler.NewTransferHandler(transferService)
	stateHandler := handler.NewStateHandler(cache)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Supplier Order Tracker v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS for the local UI

	// 6. Routes
	api := app.Group("/api/v1")

	api.Get("/state", stateHandler.GetState)

	api.Get("/suppliers", supplierHandler.GetSuppliers)
	api.Post("/suppliers", supplierHandler.CreateSupplier)
	api.Put("/suppliers/:id", supplierHandler.RenameSupplier)
	api.Delete("/suppliers/:id", supplierHandler.DeleteSupplier)

	api.Get("/products", productHandler.GetProducts)
	api.Post("/products", productHandler.CreateProduct)
	api.Put("/products/:id", productHandler.UpdateProduct)
	api.Delete("/products/:id", productHandler.DeleteProduct)

	api.Get("/orders", orderHandler.GetOrderSummary)
	api.Get("/orders/:supplierId", orderHandler.GetOrder)
	api.Post("/orders/clear", orderHandler.ClearOrder)

	api.Get("/exchanges", orderHandler.GetExchanges)
	api.Get("/exchanges/candidates", orderHandler.GetExchangeCandidates)

	api.Get("/transfer/export", transferHandler.Export)
	api.Post("/transfer/import", transferHandler.Import)

	// WebSocket Route
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

	// 7. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
