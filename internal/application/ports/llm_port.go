package ports

import (
	"context"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
)

// InsightSnapshot es el recorte acotado de estado que se envía al servicio de
// análisis: catálogo reducido, últimas N transacciones e idioma destino.
type InsightSnapshot struct {
	Products     []dto.ProductResponse
	Transactions []dto.TransactionResponse
	Language     string // BCP-47 ya normalizado al idioma soportado
}

// InsightService define el puerto de salida para los servicios de inteligencia
// artificial. Cualquier adaptador (Anthropic, Gemini, mock) debe implementar
// esta interfaz. Siguiendo el principio de inversión de dependencias (DIP),
// la capa de aplicación solo conoce este contrato, no la implementación.
type InsightService interface {
	// GenerateInsights analiza el snapshot y devuelve el informe estructurado.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	GenerateInsights(ctx context.Context, snapshot InsightSnapshot) (*dto.InsightReportDTO, error)

	// Configured indica si el adaptador tiene credenciales; cuando es false el
	// caso de uso rechaza la operación sin intentar la llamada.
	Configured() bool

	// Provider nombre del proveedor ("anthropic", "gemini").
	Provider() string
}
