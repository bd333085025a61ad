package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/fulfilment-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	WarehouseUC  *usecase.WarehouseUseCase
	FulfilmentUC *usecase.FulfilmentUseCase
	StoreUC      *usecase.StoreUseCase
	ProductUC    *usecase.ProductUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Warehouses
	warehouses := app.Group("/warehouse")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/:businessUnitCode", warehouseHandler.GetByBusinessUnitCode)
	warehouses.Put("/:businessUnitCode", warehouseHandler.Replace)
	warehouses.Delete("/:businessUnitCode", warehouseHandler.Archive)

	// Fulfilment (asignación bodega a tienda y producto)
	fulfilment := app.Group("/fulfilment")
	fulfilmentHandler := NewFulfilmentHandler(deps.FulfilmentUC)
	fulfilment.Get("/", fulfilmentHandler.List)
	fulfilment.Post("/", fulfilmentHandler.Assign)

	// Stores
	stores := app.Group("/store")
	storeHandler := NewStoreHandler(deps.StoreUC)
	stores.Get("/", storeHandler.List)
	stores.Post("/", storeHandler.Create)
	stores.Get("/:id", storeHandler.GetByID)
	stores.Put("/:id", storeHandler.Update)
	stores.Patch("/:id", storeHandler.Patch)
	stores.Delete("/:id", storeHandler.Delete)

	// Products
	products := app.Group("/product")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
}
