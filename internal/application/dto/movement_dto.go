package dto

import (
	"time"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

// StockMovementRequest entrada para registrar un movimiento de stock.
// El mínimo de cantidad (min=1) se valida aquí, en el borde HTTP; el motor
// acepta lo que reciba sin re-validar.
type StockMovementRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Type      string `json:"type" validate:"required,oneof=IN OUT"`
	Quantity  int    `json:"quantity" validate:"min=1"`
	Reason    string `json:"reason" validate:"max=500"`
	NewBox    string `json:"new_box" validate:"omitempty,max=50"`
}

// MovementResultDTO resultado de un movimiento. Applied=false indica que el
// producto no existía y la operación fue un no-op silencioso.
type MovementResultDTO struct {
	Applied     bool                 `json:"applied"`
	Product     *ProductResponse     `json:"product,omitempty"`
	Transaction *TransactionResponse `json:"transaction,omitempty"`
}

// TransactionResponse salida de un registro del libro de transacciones.
type TransactionResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Type        string    `json:"type"`
	Quantity    int       `json:"quantity"`
	Reason      string    `json:"reason"`
	CreatedAt   time.Time `json:"created_at"`
	CreatedBy   string    `json:"created_by"`
}

// TransactionListResponse historial de transacciones, más reciente primero.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Total int                   `json:"total"`
}

// NewTransactionResponse mapea la entidad al DTO de salida.
func NewTransactionResponse(t *entity.Transaction) *TransactionResponse {
	if t == nil {
		return nil
	}
	return &TransactionResponse{
		ID:          t.ID,
		ProductID:   t.ProductID,
		ProductName: t.ProductName,
		Type:        t.Type,
		Quantity:    t.Quantity,
		Reason:      t.Reason,
		CreatedAt:   t.CreatedAt,
		CreatedBy:   t.CreatedBy,
	}
}
