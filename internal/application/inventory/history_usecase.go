package inventory

import (
	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// defaultHistoryLimit tope por defecto del historial consultado vía API.
const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

// HistoryUseCase consulta el libro de transacciones. Solo lectura: el libro
// se escribe únicamente desde el motor de movimientos y las restauraciones.
type HistoryUseCase struct {
	txRepo repository.TransactionRepository
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(txRepo repository.TransactionRepository) *HistoryUseCase {
	return &HistoryUseCase{txRepo: txRepo}
}

// Recent devuelve las últimas transacciones, más reciente primero.
func (uc *HistoryUseCase) Recent(limit int) (*dto.TransactionListResponse, error) {
	records, err := uc.txRepo.ListRecent(clampLimit(limit))
	if err != nil {
		return nil, err
	}
	return toListResponse(records), nil
}

// ByProduct devuelve el historial de un producto, más reciente primero.
func (uc *HistoryUseCase) ByProduct(productID string, limit int) (*dto.TransactionListResponse, error) {
	records, err := uc.txRepo.ListByProduct(productID, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	return toListResponse(records), nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		return maxHistoryLimit
	}
	return limit
}

func toListResponse(records []*entity.Transaction) *dto.TransactionListResponse {
	out := &dto.TransactionListResponse{
		Items: make([]dto.TransactionResponse, 0, len(records)),
	}
	for _, t := range records {
		out.Items = append(out.Items, *dto.NewTransactionResponse(t))
	}
	out.Total = len(out.Items)
	return out
}
