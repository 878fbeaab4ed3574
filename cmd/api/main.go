package main

import (
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/yoshi1414/inventory-management-sub000/internal/handler"
	"github.com/yoshi1414/inventory-management-sub000/internal/middleware"
	"github.com/yoshi1414/inventory-management-sub000/internal/model"
	"github.com/yoshi1414/inventory-management-sub000/internal/repository"
	"github.com/yoshi1414/inventory-management-sub000/internal/service"
	"github.com/yoshi1414/inventory-management-sub000/internal/ws"
	"github.com/yoshi1414/inventory-management-sub000/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

const defaultPageSize = 20

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(&model.Product{}, &model.StockTransaction{})

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	ledgerRepo := repository.NewStockTransactionRepo(db)

	invService := service.NewInventoryService(productRepo, ledgerRepo, wsHub)
	lifecycleService := service.NewLifecycleService(productRepo, wsHub)
	catalogService := service.NewCatalogService(productRepo, wsHub, pageSize())

	invHandler := handler.NewInventoryHandler(invService, lifecycleService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	dashHandler := handler.NewDashboardHandler(catalogService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Inventory Management v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 6. Routes — everything runs with an attributed actor
	api := app.Group("/api/v1", middleware.RequireActor())

	// Inventory (stock ledger)
	api.Post("/inventory/update-stock", invHandler.UpdateStock)
	api.Get("/inventory/products/:productId/history", invHandler.GetHistory)
	api.Post("/inventory/products/:productId/delete", invHandler.DeleteProduct)
	api.Post("/inventory/products/:productId/restore", invHandler.RestoreProduct)

	// Catalog
	api.Get("/products", catalogHandler.SearchProducts)
	api.Post("/products", catalogHandler.CreateProduct)
	api.Get("/products/code/:code", catalogHandler.GetProductByCode)
	api.Get("/products/:id", catalogHandler.GetProduct)
	api.Get("/categories", catalogHandler.GetCategories)

	// Dashboard
	api.Get("/dashboard/stats", dashHandler.GetStats)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// pageSize reads the fixed search page size from PAGE_SIZE.
func pageSize() int {
	if v := os.Getenv("PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
		log.Printf("Warning: invalid PAGE_SIZE %q, using %d", v, defaultPageSize)
	}
	return defaultPageSize
}
