package dto

import "time"

// Valores normalizados de prioridad, categoría y tendencia de los insights.
// Cualquier valor fuera del conjunto se normaliza al más conservador.
const (
	InsightPriorityHigh   = "high"
	InsightPriorityMedium = "medium"
	InsightPriorityLow    = "low"

	InsightCategoryRisk        = "risk"
	InsightCategoryOpportunity = "opportunity"
	InsightCategoryEfficiency  = "efficiency"

	ForecastTrendIncreasing = "increasing"
	ForecastTrendDecreasing = "decreasing"
	ForecastTrendStable     = "stable"
)

// InsightRequest entrada de POST /api/insights: idioma destino opcional
// (BCP-47; se ajusta al idioma soportado más cercano).
type InsightRequest struct {
	Language string `json:"language" validate:"omitempty,max=35"`
}

// InsightItemDTO un hallazgo priorizado del análisis.
type InsightItemDTO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"` // high | medium | low
	Category    string `json:"category"` // risk | opportunity | efficiency
	Action      string `json:"action"`
}

// ForecastItemDTO pronóstico de demanda por producto (opcional en la respuesta del modelo).
type ForecastItemDTO struct {
	ProductName string `json:"product_name"`
	Trend       string `json:"trend"` // increasing | decreasing | stable
	Reasoning   string `json:"reasoning"`
}

// InsightReportDTO respuesta del panel de insights. Available=false con la
// lista vacía es el estado degradado "análisis no disponible": nunca se
// responde con error duro por fallas del servicio externo.
type InsightReportDTO struct {
	Available   bool              `json:"available"`
	Reason      string            `json:"reason,omitempty"` // motivo cuando Available=false
	Summary     string            `json:"summary"`
	Insights    []InsightItemDTO  `json:"insights"`
	Forecast    []ForecastItemDTO `json:"forecast,omitempty"`
	GeneratedAt time.Time         `json:"generated_at"`
}

// InsightStatusDTO respuesta de GET /api/insights/status: permite a los
// clientes deshabilitar el botón de análisis cuando el servicio no está
// configurado, en lugar de intentar una llamada que fallará.
type InsightStatusDTO struct {
	Enabled  bool   `json:"enabled"`
	Provider string `json:"provider,omitempty"`
}
