package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"kitchensmart/internal/caching"
	"kitchensmart/internal/config"
	"kitchensmart/internal/handlers"
	"kitchensmart/internal/log"
	"kitchensmart/internal/migrations"
	"kitchensmart/internal/repositories"
	"kitchensmart/internal/services"
	"kitchensmart/pkg/database"
	"kitchensmart/pkg/validator"
)

type appConfig struct {
	HTTP     config.HTTP
	Postgres config.Postgres
	Redis    config.Redis
	Log      config.Log
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error running server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.New[appConfig]()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := log.NewSlogLogger(cfg.Log)

	pool, err := database.NewPool(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()
	logger.InfoContext(ctx, "database connected")

	if err := migrations.Up(pool); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	logger.InfoContext(ctx, "migrations applied")

	cacheSvc := caching.NewRedisCacheService(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

	// Repositories
	locationRepo := repositories.NewLocationRepository(pool)
	storeRepo := repositories.NewStoreRepository(pool)
	productRepo := repositories.NewProductRepository(pool)
	inventoryRepo := repositories.NewInventoryItemRepository(pool)
	shoppingListRepo := repositories.NewShoppingListItemRepository(pool)

	// Services
	locationSvc := services.NewLocationService(locationRepo, cacheSvc)
	storeSvc := services.NewStoreService(storeRepo)
	productSvc := services.NewProductService(productRepo, cacheSvc)
	inventorySvc := services.NewInventoryItemService(inventoryRepo, productSvc, locationSvc, storeRepo)
	shoppingListSvc := services.NewShoppingListItemService(shoppingListRepo, productSvc, storeRepo)

	// Handlers
	locationHandlers := handlers.NewLocationHandlers(locationSvc)
	storeHandlers := handlers.NewStoreHandlers(storeSvc)
	productHandlers := handlers.NewProductHandlers(productSvc)
	inventoryHandlers := handlers.NewInventoryItemHandlers(inventorySvc)
	shoppingListHandlers := handlers.NewShoppingListItemHandlers(shoppingListSvc)
	healthHandlers := handlers.NewHealthHandlers(pool, cacheSvc)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.NewEchoValidator()

	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)

	e.GET("/locations", locationHandlers.ListLocations)
	e.POST("/locations", locationHandlers.CreateLocation)
	e.GET("/locations/:id", locationHandlers.GetLocation)
	e.PUT("/locations/:id", locationHandlers.UpdateLocation)
	e.DELETE("/locations/:id", locationHandlers.DeleteLocation)
	e.GET("/locations/:id/items", inventoryHandlers.ListLocationItems)

	e.GET("/stores", storeHandlers.ListStores)
	e.POST("/stores", storeHandlers.CreateStore)
	e.GET("/stores/:id", storeHandlers.GetStore)
	e.PUT("/stores/:id", storeHandlers.UpdateStore)
	e.DELETE("/stores/:id", storeHandlers.DeleteStore)

	e.GET("/products", productHandlers.ListProducts)
	e.POST("/products", productHandlers.CreateProduct)
	e.GET("/products/:id", productHandlers.GetProduct)
	e.PUT("/products/:id", productHandlers.UpdateProduct)
	e.DELETE("/products/:id", productHandlers.DeleteProduct)

	e.GET("/inventory_items", inventoryHandlers.ListInventoryItems)
	e.POST("/inventory_items", inventoryHandlers.CreateInventoryItem)
	e.GET("/inventory_items/:id", inventoryHandlers.GetInventoryItem)
	e.PUT("/inventory_items/:id", inventoryHandlers.UpdateInventoryItem)
	e.DELETE("/inventory_items/:id", inventoryHandlers.DeleteInventoryItem)

	e.GET("/shopping_list_items", shoppingListHandlers.ListShoppingListItems)
	e.POST("/shopping_list_items", shoppingListHandlers.CreateShoppingListItem)
	e.GET("/shopping_list_items/:id", shoppingListHandlers.GetShoppingListItem)
	e.PUT("/shopping_list_items/:id", shoppingListHandlers.UpdateShoppingListItem)
	e.DELETE("/shopping_list_items/:id", shoppingListHandlers.DeleteShoppingListItem)

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(fmt.Sprintf(":%d", cfg.HTTP.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	logger.InfoContext(ctx, "server started", slog.Int("port", cfg.HTTP.Port))

	select {
	case err := <-errCh:
		return fmt.Errorf("start server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}

	return nil
}
