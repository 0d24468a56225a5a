package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/application/ports"
)

func TestExtractJSON_BloqueMarkdown(t *testing.T) {
	text := "Aquí está el análisis:\n```json\n{\"summary\": \"ok\"}\n```\nEspero que sirva."
	assert.Equal(t, `{"summary": "ok"}`, extractJSON(text))
}

func TestExtractJSON_JSONPuro(t *testing.T) {
	assert.Equal(t, `{"summary": "ok"}`, extractJSON(`{"summary": "ok"}`))
}

func TestExtractJSON_TextoAlrededor(t *testing.T) {
	text := `Claro, este es el resultado: {"summary": "ok"} ¿algo más?`
	assert.Equal(t, `{"summary": "ok"}`, extractJSON(text))
}

func TestExtractJSON_SinJSON(t *testing.T) {
	assert.Empty(t, extractJSON("no hay nada estructurado aquí"))
}

func TestSystemPromptFor_PorIdioma(t *testing.T) {
	assert.Contains(t, systemPromptFor("es"), "analista de inventarios")
	assert.Contains(t, systemPromptFor("en"), "inventory analyst")
	// Idiomas desconocidos caen al español, el idioma por defecto del sistema.
	assert.Contains(t, systemPromptFor(""), "analista de inventarios")
}

func TestSnapshotUserContent_SerializaCatalogoYMovimientos(t *testing.T) {
	snapshot := ports.InsightSnapshot{
		Products: []dto.ProductResponse{
			{ID: "p1", SKU: "S-1", Name: "Uno", Quantity: 3},
		},
		Transactions: []dto.TransactionResponse{
			{ID: "t1", ProductID: "p1", Type: "IN", Quantity: 3},
		},
		Language: "es",
	}
	content, err := snapshotUserContent(snapshot)
	require.NoError(t, err)
	assert.Contains(t, content, `"sku":"S-1"`)
	assert.Contains(t, content, `"recent_transactions"`)
}

func TestConfigured_SinAPIKey(t *testing.T) {
	assert.False(t, NewAnthropicService("", "claude-3-5-haiku-20241022").Configured())
	assert.True(t, NewAnthropicService("sk-test", "claude-3-5-haiku-20241022").Configured())
	assert.False(t, NewGeminiService("", "gemini-1.5-flash").Configured())
	assert.True(t, NewGeminiService("key", "gemini-1.5-flash").Configured())
}

func TestToReport_MapeaPayloadDelModelo(t *testing.T) {
	payload := llmInsightPayload{Summary: "resumen"}
	payload.Insights = append(payload.Insights, struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Priority    string `json:"priority"`
		Category    string `json:"category"`
		Action      string `json:"action"`
	}{Title: "Stock crítico", Priority: "high", Category: "risk", Action: "Reponer"})

	report := payload.toReport()
	assert.Equal(t, "resumen", report.Summary)
	require.Len(t, report.Insights, 1)
	assert.Equal(t, "Stock crítico", report.Insights[0].Title)
	assert.Empty(t, report.Forecast)
}
