package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/application/dto"
	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/application/inventory"
)

// StockHandler lecturas del ledger: totales, disponibilidad, stock bajo,
// vencimientos, valoración y linaje.
type StockHandler struct {
	queryUC *inventory.StockQueryUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(queryUC *inventory.StockQueryUseCase) *StockHandler {
	return &StockHandler{queryUC: queryUC}
}

// Summary totales de stock por tipo de ubicación.
// GET /api/stock/summary
func (h *StockHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.queryUC.Summary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// Availability disponibilidad de un producto en una ubicación.
// GET /api/stock/availability?product_id=&location_id=
func (h *StockHandler) Availability(c *fiber.Ctx) error {
	productID, err := strconv.ParseInt(c.Query("product_id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id inválido"})
	}
	locationID, err := strconv.ParseInt(c.Query("location_id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "location_id inválido"})
	}
	availability, err := h.queryUC.Availability(c.Context(), productID, locationID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(availability)
}

// LowStock productos bajo su umbral.
// GET /api/stock/low
func (h *StockHandler) LowStock(c *fiber.Ctx) error {
	items, err := h.queryUC.LowStock(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(items), "products": items})
}

// Expiring lotes que vencen dentro de N días (default 30).
// GET /api/stock/expiring?days=
func (h *StockHandler) Expiring(c *fiber.Ctx) error {
	batches, err := h.queryUC.Expiring(c.Context(), c.QueryInt("days", 30))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(batches), "batches": batches})
}

// Expired lotes ya vencidos.
// GET /api/stock/expired
func (h *StockHandler) Expired(c *fiber.Ctx) error {
	batches, err := h.queryUC.Expired(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(batches), "batches": batches})
}

// Valuation valoración de inventario por producto con totales.
// GET /api/stock/valuation
func (h *StockHandler) Valuation(c *fiber.Ctx) error {
	valuation, err := h.queryUC.Valuation(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(valuation)
}

// Lineage cadena de linaje de un lote hasta la recepción original.
// GET /api/batches/:id/lineage
func (h *StockHandler) Lineage(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	chain, err := h.queryUC.Lineage(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"batch_id": id, "lineage": chain})
}
