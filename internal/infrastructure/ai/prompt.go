// Package ai contiene los adaptadores de los servicios de inteligencia
// artificial (Anthropic y Gemini) que implementan el puerto InsightService.
// Ambos usan net/http de la librería estándar; no requieren SDKs oficiales.
package ai

import (
	"encoding/json"
	"fmt"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/application/ports"
)

const (
	insightSystemPromptES = `Eres un analista de inventarios para pequeños negocios.
Recibirás el estado actual de un inventario (productos con cantidades, umbrales mínimos y precios) y sus movimientos recientes.
Devuelve ÚNICAMENTE un objeto JSON válido (sin markdown, sin bloques de código` + " ```json" + `) con esta estructura exacta:
{
  "summary": "<resumen ejecutivo del estado del inventario, máximo 300 caracteres>",
  "insights": [
    {
      "title": "<título corto>",
      "description": "<hallazgo concreto sobre el inventario>",
      "priority": "<high | medium | low>",
      "category": "<risk | opportunity | efficiency>",
      "action": "<acción recomendada, concreta y breve>"
    }
  ],
  "forecast": [
    {
      "product_name": "<nombre del producto>",
      "trend": "<increasing | decreasing | stable>",
      "reasoning": "<por qué, basado en los movimientos recientes>"
    }
  ]
}

Reglas:
- Entre 3 y 5 insights, ordenados por prioridad.
- priority, category y trend usan exactamente los valores listados, en inglés.
- summary, description, action y reasoning van en español.
- forecast solo para productos con movimientos recientes; puede ir vacío.
- No incluyas texto fuera del JSON. Solo el objeto JSON.`

	insightSystemPromptEN = `You are an inventory analyst for small businesses.
You will receive the current state of an inventory (products with quantities, minimum thresholds and prices) and its recent movements.
Return ONLY a valid JSON object (no markdown, no` + " ```json" + ` code fences) with this exact structure:
{
  "summary": "<executive summary of the inventory state, 300 characters max>",
  "insights": [
    {
      "title": "<short title>",
      "description": "<concrete finding about the inventory>",
      "priority": "<high | medium | low>",
      "category": "<risk | opportunity | efficiency>",
      "action": "<recommended action, concrete and brief>"
    }
  ],
  "forecast": [
    {
      "product_name": "<product name>",
      "trend": "<increasing | decreasing | stable>",
      "reasoning": "<why, based on recent movements>"
    }
  ]
}

Rules:
- Between 3 and 5 insights, ordered by priority.
- Use exactly the listed values for priority, category and trend.
- forecast only for products with recent movements; it may be empty.
- Do not include any text outside the JSON. Only the JSON object.`
)

// systemPromptFor devuelve el prompt del sistema para el idioma ya
// normalizado por el caso de uso ("es" o "en").
func systemPromptFor(language string) string {
	if language == "en" {
		return insightSystemPromptEN
	}
	return insightSystemPromptES
}

// snapshotUserContent serializa el snapshot como el mensaje de usuario: un
// JSON compacto con catálogo y movimientos recientes.
func snapshotUserContent(snapshot ports.InsightSnapshot) (string, error) {
	payload := struct {
		Products           []dto.ProductResponse     `json:"products"`
		RecentTransactions []dto.TransactionResponse `json:"recent_transactions"`
	}{
		Products:           snapshot.Products,
		RecentTransactions: snapshot.Transactions,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar snapshot: %w", err)
	}
	return string(body), nil
}

// llmInsightPayload es el JSON que esperamos recibir del modelo.
type llmInsightPayload struct {
	Summary  string `json:"summary"`
	Insights []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Priority    string `json:"priority"`
		Category    string `json:"category"`
		Action      string `json:"action"`
	} `json:"insights"`
	Forecast []struct {
		ProductName string `json:"product_name"`
		Trend       string `json:"trend"`
		Reasoning   string `json:"reasoning"`
	} `json:"forecast"`
}

// toReport mapea el payload del modelo al DTO del informe. La normalización
// de enumeraciones y el sello de tiempo quedan a cargo del caso de uso.
func (p *llmInsightPayload) toReport() *dto.InsightReportDTO {
	report := &dto.InsightReportDTO{
		Summary:  p.Summary,
		Insights: make([]dto.InsightItemDTO, 0, len(p.Insights)),
	}
	for _, item := range p.Insights {
		report.Insights = append(report.Insights, dto.InsightItemDTO{
			Title:       item.Title,
			Description: item.Description,
			Priority:    item.Priority,
			Category:    item.Category,
			Action:      item.Action,
		})
	}
	for _, item := range p.Forecast {
		report.Forecast = append(report.Forecast, dto.ForecastItemDTO{
			ProductName: item.ProductName,
			Trend:       item.Trend,
			Reasoning:   item.Reasoning,
		})
	}
	return report
}
