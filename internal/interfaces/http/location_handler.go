package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/application/dto"
	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/application/usecase"
	"github.com/Dinuli-Disara/Smart-Distribution-Management-System-sub000/internal/domain/entity"
)

// LocationHandler administración del registro de ubicaciones.
type LocationHandler struct {
	uc *usecase.LocationUseCase
}

// NewLocationHandler construye el handler.
func NewLocationHandler(uc *usecase.LocationUseCase) *LocationHandler {
	return &LocationHandler{uc: uc}
}

type createLocationRequest struct {
	Kind    string `json:"kind"`
	Name    string `json:"name"`
	VanCode string `json:"van_code,omitempty"`
}

type locationResponse struct {
	ID        int64  `json:"id"`
	Kind      string `json:"kind"`
	Name      string `json:"name"`
	VanCode   string `json:"van_code,omitempty"`
	CreatedAt string `json:"created_at"`
}

// Create registra una ubicación (STORE única o VAN).
// POST /api/locations
func (h *LocationHandler) Create(c *fiber.Ctx) error {
	var in createLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	location, err := h.uc.Create(in.Kind, in.Name, in.VanCode)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toLocationResponse(location))
}

// List devuelve todas las ubicaciones.
// GET /api/locations
func (h *LocationHandler) List(c *fiber.Ctx) error {
	locations, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	out := make([]locationResponse, 0, len(locations))
	for _, l := range locations {
		out = append(out, toLocationResponse(l))
	}
	return c.JSON(fiber.Map{"total": len(out), "locations": out})
}

// GetByID devuelve una ubicación.
// GET /api/locations/:id
func (h *LocationHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	location, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toLocationResponse(location))
}

func toLocationResponse(l *entity.Location) locationResponse {
	return locationResponse{
		ID:        l.ID,
		Kind:      l.Kind,
		Name:      l.Name,
		VanCode:   l.VanCode,
		CreatedAt: l.CreatedAt.Format(time.RFC3339),
	}
}
