package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/application/dto"
	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/application/inventory"
	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/infrastructure/metrics"
)

// TransferHandler maneja traslados bodega → vehículo.
type TransferHandler struct {
	createUC *inventory.CreateTransferUseCase
	queryUC  *inventory.TransferQueryUseCase
}

// NewTransferHandler construye el handler.
func NewTransferHandler(createUC *inventory.CreateTransferUseCase, queryUC *inventory.TransferQueryUseCase) *TransferHandler {
	return &TransferHandler{createUC: createUC, queryUC: queryUC}
}

// Create ejecuta un traslado multi-línea atómico.
// POST /api/transfers
func (h *TransferHandler) Create(c *fiber.Ctx) error {
	actorID := GetEmployeeID(c)
	if actorID <= 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateTransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	input := inventory.CreateTransferInput{
		ToLocationID: in.ToLocationID,
		Notes:        in.Notes,
		ActorID:      actorID,
	}
	for _, item := range in.Items {
		input.Items = append(input.Items, inventory.TransferItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	result, err := h.createUC.CreateTransfer(c.Context(), input)
	if err != nil {
		metrics.TransfersTotal.WithLabelValues(metrics.ResultError).Inc()
		return respondError(c, err)
	}
	metrics.TransfersTotal.WithLabelValues(metrics.ResultOK).Inc()
	return c.Status(fiber.StatusCreated).JSON(dto.CreateTransferResponse{
		TransferID:     result.TransferID,
		TransferNumber: result.TransferNumber,
	})
}

// GetByID devuelve un traslado con sus líneas.
// GET /api/transfers/:id
func (h *TransferHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	transfer, err := h.queryUC.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(transfer)
}

// List devuelve traslados paginados.
// GET /api/transfers?limit=&offset=
func (h *TransferHandler) List(c *fiber.Ctx) error {
	transfers, err := h.queryUC.List(c.Context(), c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(transfers), "transfers": transfers})
}
