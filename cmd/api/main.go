package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"workshop-backend/internal/config"
	"workshop-backend/internal/handler"
	"workshop-backend/internal/middleware"
	"workshop-backend/internal/model"
	"workshop-backend/internal/repository"
	"workshop-backend/internal/service"
	"workshop-backend/internal/ws"
	"workshop-backend/pkg/database"
	"workshop-backend/pkg/jwt"

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

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	// 2. Setup Database
	db := database.Connect(cfg.DSN())
	db.AutoMigrate(&model.ProductCategory{}, &model.Product{}, &model.Purchase{}, &model.Client{})

	// 3. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 4. Dependency Injection (Wiring Layers)
	categoryRepo := repository.NewCategoryRepo(db)
	productRepo := repository.NewProductRepo(db)
	purchaseRepo := repository.NewPurchaseRepo(db)
	clientRepo := repository.NewClientRepo(db)

	tokens := jwt.NewTokenManager(cfg.JWTSecret)

	authService := service.NewAuthService(cfg.AppPassword, tokens)
	catalogService := service.NewCatalogService(categoryRepo, productRepo, wsHub)
	purchaseService := service.NewPurchaseService(purchaseRepo, wsHub)
	clientService := service.NewClientService(clientRepo, wsHub)

	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	purchaseHandler := handler.NewPurchaseHandler(purchaseService)
	clientHandler := handler.NewClientHandler(clientService)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Workshop Backend v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,HEAD,PUT,PATCH,POST,DELETE",
	}))

	// 6. Routes
	api := app.Group("/api")

	// Public
	api.Post("/login", authHandler.Login)

	// Protected
	protected := api.Group("", middleware.RequireAuth(tokens))

	protected.Get("/product-categories", catalogHandler.GetCategories)
	protected.Post("/product-categories", catalogHandler.CreateCategory)
	protected.Put("/product-categories/:id", catalogHandler.UpdateCategory)

	protected.Get("/products", catalogHandler.GetProducts)
	protected.Post("/products", catalogHandler.CreateProduct)

	protected.Get("/purchases", purchaseHandler.GetPurchases)
	protected.Post("/purchases", purchaseHandler.CreatePurchase)

	protected.Get("/clients", clientHandler.GetClients)
	protected.Post("/clients", clientHandler.CreateClient)

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
