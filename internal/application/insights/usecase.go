// Package insights orquesta el análisis de inventario asistido por IA.
// El análisis es una función best-effort: cualquier falla del servicio
// externo degrada a un informe vacío con Available=false, nunca a un error
// duro hacia el cliente.
package insights

import (
	"context"
	"time"

	"golang.org/x/text/language"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/application/ports"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// Timeout de 10 s por llamada al LLM: las latencias externas no deben
// bloquear los goroutines del servidor.
const llmTimeout = 10 * time.Second

// snapshotTransactionLimit cuántas transacciones recientes van en el snapshot
// que se envía al modelo. El catálogo va completo pero reducido a campos.
const snapshotTransactionLimit = 20

// Idiomas con prompt soportado. El primero es el fallback del matcher.
var supportedLanguages = []language.Tag{language.Spanish, language.English}

var languageMatcher = language.NewMatcher(supportedLanguages)

// InsightUseCase arma el snapshot acotado del inventario, delega en el
// adaptador de IA configurado y normaliza la respuesta.
type InsightUseCase struct {
	productRepo repository.ProductRepository
	txRepo      repository.TransactionRepository
	svc         ports.InsightService
	defaultLang string
}

// NewInsightUseCase construye el caso de uso. svc puede ser nil cuando ningún
// proveedor está configurado.
func NewInsightUseCase(
	productRepo repository.ProductRepository,
	txRepo repository.TransactionRepository,
	svc ports.InsightService,
	defaultLang string,
) *InsightUseCase {
	return &InsightUseCase{
		productRepo: productRepo,
		txRepo:      txRepo,
		svc:         svc,
		defaultLang: defaultLang,
	}
}

// Status indica si el análisis está disponible y con qué proveedor, para que
// los clientes deshabiliten la función en lugar de intentar llamadas que
// fallarán.
func (uc *InsightUseCase) Status() dto.InsightStatusDTO {
	if uc.svc == nil || !uc.svc.Configured() {
		return dto.InsightStatusDTO{Enabled: false}
	}
	return dto.InsightStatusDTO{Enabled: true, Provider: uc.svc.Provider()}
}

// Generate produce el informe de insights. Sin credenciales configuradas
// rechaza de inmediato, sin intentar la llamada externa.
func (uc *InsightUseCase) Generate(ctx context.Context, req dto.InsightRequest) (*dto.InsightReportDTO, error) {
	if uc.svc == nil || !uc.svc.Configured() {
		return unavailable("servicio de análisis no configurado"), nil
	}

	snapshot, err := uc.buildSnapshot(req.Language)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()

	report, err := uc.svc.GenerateInsights(ctx, *snapshot)
	if err != nil {
		// Degradación controlada: el panel muestra "análisis no disponible".
		return unavailable("el servicio de análisis no respondió"), nil
	}

	normalizeReport(report)
	return report, nil
}

func (uc *InsightUseCase) buildSnapshot(requestedLang string) (*ports.InsightSnapshot, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	transactions, err := uc.txRepo.ListRecent(snapshotTransactionLimit)
	if err != nil {
		return nil, err
	}

	snap := &ports.InsightSnapshot{
		Products:     make([]dto.ProductResponse, 0, len(products)),
		Transactions: make([]dto.TransactionResponse, 0, len(transactions)),
		Language:     uc.normalizeLanguage(requestedLang),
	}
	for _, p := range products {
		snap.Products = append(snap.Products, *dto.NewProductResponse(p))
	}
	for _, t := range transactions {
		snap.Transactions = append(snap.Transactions, *dto.NewTransactionResponse(t))
	}
	return snap, nil
}

// normalizeLanguage ajusta la etiqueta BCP-47 pedida al idioma soportado más
// cercano ("es-MX" → "es", "en-GB" → "en"); lo no reconocible cae al idioma
// por defecto de la configuración.
func (uc *InsightUseCase) normalizeLanguage(requested string) string {
	if requested == "" {
		requested = uc.defaultLang
	}
	tag, err := language.Parse(requested)
	if err != nil {
		tag = language.Make(uc.defaultLang)
	}
	_, index, _ := languageMatcher.Match(tag)
	base, _ := supportedLanguages[index].Base()
	return base.String()
}

func unavailable(reason string) *dto.InsightReportDTO {
	return &dto.InsightReportDTO{
		Available:   false,
		Reason:      reason,
		Insights:    []dto.InsightItemDTO{},
		GeneratedAt: time.Now(),
	}
}

// normalizeReport sanea el informe devuelto por el modelo: campos de
// enumeración fuera del conjunto caen al valor más conservador y las listas
// nulas se vuelven vacías para serializar como [] y no como null.
func normalizeReport(report *dto.InsightReportDTO) {
	report.Available = true
	report.Reason = ""
	if report.GeneratedAt.IsZero() {
		report.GeneratedAt = time.Now()
	}
	if report.Insights == nil {
		report.Insights = []dto.InsightItemDTO{}
	}
	for i := range report.Insights {
		item := &report.Insights[i]
		switch item.Priority {
		case dto.InsightPriorityHigh, dto.InsightPriorityMedium, dto.InsightPriorityLow:
		default:
			item.Priority = dto.InsightPriorityLow
		}
		switch item.Category {
		case dto.InsightCategoryRisk, dto.InsightCategoryOpportunity, dto.InsightCategoryEfficiency:
		default:
			item.Category = dto.InsightCategoryEfficiency
		}
	}
	for i := range report.Forecast {
		item := &report.Forecast[i]
		switch item.Trend {
		case dto.ForecastTrendIncreasing, dto.ForecastTrendDecreasing, dto.ForecastTrendStable:
		default:
			item.Trend = dto.ForecastTrendStable
		}
	}
}
