// Package inventory contiene los servicios de dominio del inventario:
// cálculo de estadísticas agregadas y clasificación de stock.
package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

// Stats son las estadísticas derivadas del catálogo completo. No se persisten
// ni se cachean: se recalculan sobre la colección actual en cada cambio
// (O(n) sobre catálogos de cientos de productos, despreciable).
type Stats struct {
	TotalItems    int             // suma de cantidades
	LowStockItems int             // productos con 0 < cantidad <= umbral
	OutOfStock    int             // productos con cantidad <= 0
	TotalValue    decimal.Decimal // suma de cantidad * precio de compra (valoración a costo)
}

// ComputeStats recalcula las estadísticas a partir del catálogo actual.
// Función pura sin condiciones de error; catálogo vacío produce todo en cero.
//
// Convención de valoración: TotalValue usa el precio de COMPRA (costo), no el
// de venta. La valoración a costo es la convención contable adoptada para
// todo el sistema.
func ComputeStats(products []*entity.Product) Stats {
	stats := Stats{TotalValue: decimal.Zero}
	for _, p := range products {
		stats.TotalItems += p.Quantity
		if p.IsOutOfStock() {
			stats.OutOfStock++
		} else if p.IsLowStock() {
			stats.LowStockItems++
		}
		qty := decimal.NewFromInt(int64(p.Quantity))
		stats.TotalValue = stats.TotalValue.Add(qty.Mul(p.PurchasePrice))
	}
	return stats
}
