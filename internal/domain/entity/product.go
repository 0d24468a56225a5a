package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultMinThreshold umbral mínimo de stock por defecto al crear un producto.
const DefaultMinThreshold = 5

// Product representa un producto del catálogo de inventario.
// Quantity solo se modifica vía movimientos de stock (motor de transacciones);
// las ediciones directas cubren el resto de campos. Los productos no se
// eliminan físicamente: ninguna operación expuesta hace delete.
type Product struct {
	ID            string
	SKU           string // código único del catálogo (unicidad validada en creación/edición)
	Name          string
	Category      string
	Quantity      int // invariante: >= 0 (las salidas se recortan en 0)
	MinThreshold  int // >= 0; por defecto DefaultMinThreshold
	PurchasePrice decimal.Decimal // precio de compra (costo)
	SellingPrice  decimal.Decimal // precio de venta
	Box           string          // etiqueta de caja/ubicación física
	Description   string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsLowStock indica stock bajo: cantidad positiva pero en o por debajo del umbral.
func (p *Product) IsLowStock() bool {
	return p.Quantity > 0 && p.Quantity <= p.MinThreshold
}

// IsOutOfStock indica producto agotado (cantidad cero o inferior).
func (p *Product) IsOutOfStock() bool {
	return p.Quantity <= 0
}
