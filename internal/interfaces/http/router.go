package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/application/inventory"
	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ReceiveStock   *inventory.ReceiveStockUseCase
	CreateTransfer *inventory.CreateTransferUseCase
	TransferQuery  *inventory.TransferQueryUseCase
	StockQuery     *inventory.StockQueryUseCase
	LocationUC     *usecase.LocationUseCase
	ProductUC      *usecase.ProductUseCase
	JWTSecret      string
}

// Router registra las rutas de la API. Todas requieren Bearer Token: la
// identidad del empleado viene del sistema central, este servicio solo la valida.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Recepciones y auditoría de movimientos
	inventoryHandler := NewInventoryHandler(deps.ReceiveStock, deps.StockQuery)
	inv := api.Group("/inventory")
	inv.Post("/receipts", inventoryHandler.ReceiveStock)
	inv.Get("/movements", inventoryHandler.ListMovements)

	// Traslados bodega → vehículo
	transferHandler := NewTransferHandler(deps.CreateTransfer, deps.TransferQuery)
	transfers := api.Group("/transfers")
	transfers.Post("/", transferHandler.Create)
	transfers.Get("/", transferHandler.List)
	transfers.Get("/:id", transferHandler.GetByID)

	// Lecturas del ledger
	stockHandler := NewStockHandler(deps.StockQuery)
	stock := api.Group("/stock")
	stock.Get("/summary", stockHandler.Summary)
	stock.Get("/availability", stockHandler.Availability)
	stock.Get("/low", stockHandler.LowStock)
	stock.Get("/expiring", stockHandler.Expiring)
	stock.Get("/expired", stockHandler.Expired)
	stock.Get("/valuation", stockHandler.Valuation)
	api.Get("/batches/:id/lineage", stockHandler.Lineage)

	// Ubicaciones (administrativo)
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations := api.Group("/locations")
	locations.Post("/", locationHandler.Create)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)

	// Catálogo (seed/administración; el catálogo real vive en otro sistema)
	productHandler := NewProductHandler(deps.ProductUC)
	products := api.Group("/products")
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
}
