package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

// CreateProductRequest entrada para crear un producto.
// MinThreshold nil aplica el valor por defecto del dominio (5).
type CreateProductRequest struct {
	SKU           string           `json:"sku" validate:"required,min=1,max=100"`
	Name          string           `json:"name" validate:"required,min=1,max=200"`
	Category      string           `json:"category" validate:"required,min=1,max=100"`
	Box           string           `json:"box" validate:"required,min=1,max=50"`
	Quantity      int              `json:"quantity" validate:"min=0"`
	MinThreshold  *int             `json:"min_threshold" validate:"omitempty,min=0"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	SellingPrice  *decimal.Decimal `json:"selling_price"`
	Description   string           `json:"description"`
}

// UpdateProductRequest parche explícito para edición directa: solo los campos
// presentes se aplican sobre el producto existente. La cantidad NO es editable
// por esta vía; todo cambio de cantidad pasa por el motor de movimientos.
type UpdateProductRequest struct {
	SKU           *string          `json:"sku" validate:"omitempty,min=1,max=100"`
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Category      *string          `json:"category" validate:"omitempty,min=1,max=100"`
	Box           *string          `json:"box" validate:"omitempty,min=1,max=50"`
	MinThreshold  *int             `json:"min_threshold" validate:"omitempty,min=0"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	SellingPrice  *decimal.Decimal `json:"selling_price"`
	Description   *string          `json:"description"`
}

// ProductResponse salida de un producto. LastUpdated va en epoch milisegundos
// (formato que consumen los clientes existentes).
type ProductResponse struct {
	ID            string          `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Quantity      int             `json:"quantity"`
	MinThreshold  int             `json:"min_threshold"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	Box           string          `json:"box"`
	Description   string          `json:"description"`
	LowStock      bool            `json:"low_stock"`
	OutOfStock    bool            `json:"out_of_stock"`
	CreatedAt     time.Time       `json:"created_at"`
	LastUpdated   int64           `json:"last_updated"` // epoch ms
}

// ProductListResponse catálogo completo.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// NewProductResponse mapea la entidad al DTO de salida.
func NewProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:            p.ID,
		SKU:           p.SKU,
		Name:          p.Name,
		Category:      p.Category,
		Quantity:      p.Quantity,
		MinThreshold:  p.MinThreshold,
		PurchasePrice: p.PurchasePrice,
		SellingPrice:  p.SellingPrice,
		Box:           p.Box,
		Description:   p.Description,
		LowStock:      p.IsLowStock(),
		OutOfStock:    p.IsOutOfStock(),
		CreatedAt:     p.CreatedAt,
		LastUpdated:   p.UpdatedAt.UnixMilli(),
	}
}
