package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/application/inventory"
	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/pkg/validator"
)

// InventoryHandler maneja los movimientos de stock y el historial (protegido).
type InventoryHandler struct {
	movements *inventory.ApplyStockMovementUseCase
	history   *inventory.HistoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(movements *inventory.ApplyStockMovementUseCase, history *inventory.HistoryUseCase) *InventoryHandler {
	return &InventoryHandler{movements: movements, history: history}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento de stock (IN/OUT)
// @Description  Aplica una entrada o salida. Las salidas se recortan a 0 (el
//
//	stock nunca queda negativo) pero el libro registra la cantidad
//	solicitada. Si el producto no existe la operación es un no-op:
//	applied=false, sin error.
//
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockMovementRequest  true  "product_id, type (IN|OUT), quantity, reason, new_box"
// @Success      200   {object}  dto.MovementResultDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.StockMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validator.ValidateStruct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.movements.Apply(c.Context(), GetUserID(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListTransactions godoc
// @Summary      Historial de transacciones
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Máximo de registros"  default(50)
// @Success      200    {object}  dto.TransactionListResponse
// @Router       /api/transactions [get]
func (h *InventoryHandler) ListTransactions(c *fiber.Ctx) error {
	out, err := h.history.Recent(c.QueryInt("limit", 0))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListProductTransactions godoc
// @Summary      Historial de un producto
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true   "ID del producto"
// @Param        limit  query  int     false  "Máximo de registros"  default(50)
// @Success      200    {object}  dto.TransactionListResponse
// @Router       /api/products/{id}/transactions [get]
func (h *InventoryHandler) ListProductTransactions(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.history.ByProduct(id, c.QueryInt("limit", 0))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
