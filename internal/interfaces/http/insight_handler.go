package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/application/insights"
	"github.com/jhoicas/Bodega-api/pkg/validator"
)

// InsightHandler sirve el análisis de inventario asistido por IA (protegido).
type InsightHandler struct {
	uc *insights.InsightUseCase
}

// NewInsightHandler construye el handler.
func NewInsightHandler(uc *insights.InsightUseCase) *InsightHandler {
	return &InsightHandler{uc: uc}
}

// Generate godoc
// @Summary      Generar insights del inventario
// @Description  Siempre responde 200: si el servicio externo falla o no está
//
//	configurado, devuelve available=false con la lista vacía en
//	lugar de un error duro.
//
// @Tags         insights
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InsightRequest  false  "Idioma destino (BCP-47)"
// @Success      200   {object}  dto.InsightReportDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/insights [post]
func (h *InsightHandler) Generate(c *fiber.Ctx) error {
	var in dto.InsightRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
		if err := validator.ValidateStruct(in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
	}
	out, err := h.uc.Generate(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Status godoc
// @Summary      Estado del servicio de insights
// @Tags         insights
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InsightStatusDTO
// @Router       /api/insights/status [get]
func (h *InsightHandler) Status(c *fiber.Ctx) error {
	return c.JSON(h.uc.Status())
}
