package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/inventory"
)

func producto(sku string, qty, min int, compra float64) *entity.Product {
	return &entity.Product{
		SKU:           sku,
		Name:          "Producto " + sku,
		Quantity:      qty,
		MinThreshold:  min,
		PurchasePrice: decimal.NewFromFloat(compra),
		SellingPrice:  decimal.NewFromFloat(compra * 1.5),
	}
}

// Catálogo vacío: todas las estadísticas en cero, sin error.
func TestComputeStats_CatalogoVacio(t *testing.T) {
	stats := inventory.ComputeStats(nil)

	assert.Equal(t, 0, stats.TotalItems)
	assert.Equal(t, 0, stats.LowStockItems)
	assert.Equal(t, 0, stats.OutOfStock)
	assert.True(t, stats.TotalValue.IsZero(), "el valor total de un catálogo vacío debe ser cero")
}

// Escenario de referencia: [{sku:A qty:10 min:5}, {sku:B qty:0 min:3}]
// → totalItems 10, lowStock 0, outOfStock 1.
func TestComputeStats_EscenarioReferencia(t *testing.T) {
	catalogo := []*entity.Product{
		producto("A", 10, 5, 2),
		producto("B", 0, 3, 4),
	}

	stats := inventory.ComputeStats(catalogo)

	assert.Equal(t, 10, stats.TotalItems)
	assert.Equal(t, 0, stats.LowStockItems, "qty 10 > min 5 no es stock bajo; qty 0 es agotado, no bajo")
	assert.Equal(t, 1, stats.OutOfStock)
	assert.True(t, stats.TotalValue.Equal(decimal.NewFromInt(20)), "10 unidades a costo 2 = 20")
}

// Stock bajo y agotado son clases mutuamente excluyentes y exhaustivas para q <= min.
func TestComputeStats_ClasificacionExcluyente(t *testing.T) {
	catalogo := []*entity.Product{
		producto("BAJO", 3, 5, 1),   // 0 < 3 <= 5 → bajo
		producto("LIMITE", 5, 5, 1), // 0 < 5 <= 5 → bajo (borde)
		producto("AGOTADO", 0, 5, 1),
		producto("OK", 6, 5, 1),
	}

	stats := inventory.ComputeStats(catalogo)

	assert.Equal(t, 2, stats.LowStockItems, "3/5 y 5/5 son stock bajo")
	assert.Equal(t, 1, stats.OutOfStock, "solo qty 0 cuenta como agotado")
}

// Un producto agotado nunca cuenta también como stock bajo.
func TestComputeStats_AgotadoNoEsBajo(t *testing.T) {
	catalogo := []*entity.Product{producto("X", 0, 10, 1)}

	stats := inventory.ComputeStats(catalogo)

	assert.Equal(t, 0, stats.LowStockItems)
	assert.Equal(t, 1, stats.OutOfStock)
}

// La valoración usa el precio de compra, no el de venta.
func TestComputeStats_ValoracionACosto(t *testing.T) {
	p := producto("V", 4, 2, 10) // venta = 15
	stats := inventory.ComputeStats([]*entity.Product{p})

	assert.True(t, stats.TotalValue.Equal(decimal.NewFromInt(40)),
		"4 unidades * costo 10 = 40 (no 60 a precio de venta)")
}

func TestProduct_Clasificadores(t *testing.T) {
	assert.True(t, producto("A", 1, 1, 0).IsLowStock())
	assert.False(t, producto("B", 0, 1, 0).IsLowStock(), "agotado no es stock bajo")
	assert.True(t, producto("C", 0, 1, 0).IsOutOfStock())
	assert.False(t, producto("D", 2, 1, 0).IsLowStock())
}
