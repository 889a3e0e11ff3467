package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/application/dto"
	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/application/inventory"
	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/infrastructure/metrics"
)

const dateLayout = "2006-01-02"

// InventoryHandler maneja recepciones de stock y la auditoría de movimientos.
type InventoryHandler struct {
	receiveUC *inventory.ReceiveStockUseCase
	queryUC   *inventory.StockQueryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(receiveUC *inventory.ReceiveStockUseCase, queryUC *inventory.StockQueryUseCase) *InventoryHandler {
	return &InventoryHandler{receiveUC: receiveUC, queryUC: queryUC}
}

// ReceiveStock registra una recepción de compra en la bodega principal.
// POST /api/inventory/receipts
func (h *InventoryHandler) ReceiveStock(c *fiber.Ctx) error {
	actorID := GetEmployeeID(c)
	if actorID <= 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.ReceiveStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	input := inventory.ReceiveStockInput{PurchaseID: in.PurchaseID, ActorID: actorID}
	for _, item := range in.Items {
		expiry, err := time.Parse(dateLayout, item.ExpiryDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "expiry_date debe ser YYYY-MM-DD"})
		}
		input.Items = append(input.Items, inventory.ReceiveItemInput{
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			BatchNumber: item.BatchNumber,
			ExpiryDate:  expiry,
			UnitPrice:   item.UnitPrice,
		})
	}

	batchIDs, err := h.receiveUC.ReceiveStock(c.Context(), input)
	if err != nil {
		metrics.ReceiptsTotal.WithLabelValues(metrics.ResultError).Inc()
		return respondError(c, err)
	}
	metrics.ReceiptsTotal.WithLabelValues(metrics.ResultOK).Inc()
	return c.Status(fiber.StatusCreated).JSON(dto.ReceiveStockResponse{BatchIDs: batchIDs})
}

// ListMovements lista la auditoría de movimientos por producto o por ubicación.
// GET /api/inventory/movements?product_id=&location_id=&from=&to=&limit=&offset=
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	from, err := parseOptionalDate(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from debe ser YYYY-MM-DD"})
	}
	to, err := parseOptionalDate(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to debe ser YYYY-MM-DD"})
	}

	var records []dto.MovementRecordDTO
	switch {
	case c.Query("product_id") != "":
		productID, err := strconv.ParseInt(c.Query("product_id"), 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id inválido"})
		}
		records, err = h.queryUC.MovementsByProduct(c.Context(), productID, from, to, limit, offset)
		if err != nil {
			return respondError(c, err)
		}
	case c.Query("location_id") != "":
		locationID, err := strconv.ParseInt(c.Query("location_id"), 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "location_id inválido"})
		}
		records, err = h.queryUC.MovementsByLocation(c.Context(), locationID, from, to, limit, offset)
		if err != nil {
			return respondError(c, err)
		}
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "se requiere product_id o location_id"})
	}

	return c.JSON(fiber.Map{"total": len(records), "movements": records})
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
