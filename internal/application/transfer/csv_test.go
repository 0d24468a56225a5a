package transfer

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

func TestExportCSV_EncabezadoYFilas(t *testing.T) {
	products := []*entity.Product{
		{
			SKU:           "TALADRO-01",
			Name:          "Taladro percutor",
			Category:      "Herramientas",
			Quantity:      10,
			MinThreshold:  5,
			PurchasePrice: decimal.NewFromFloat(45.50),
			SellingPrice:  decimal.NewFromFloat(69.99),
			Box:           "A1",
			Description:   "700W, incluye maletín",
		},
	}

	out, err := ExportCSV(products)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "SKU,Name,Category,Quantity,Min Threshold,Purchase Price,Selling Price,Box Number,Description", lines[0])
	assert.Equal(t, "TALADRO-01,Taladro percutor,Herramientas,10,5,45.5,69.99,A1,\"700W, incluye maletín\"", lines[1])
}

func TestExportCSV_CatalogoVacioSoloEncabezado(t *testing.T) {
	out, err := ExportCSV(nil)
	require.NoError(t, err)
	assert.Equal(t, "SKU,Name,Category,Quantity,Min Threshold,Purchase Price,Selling Price,Box Number,Description\n", string(out))
}

func TestParseCSV_IdaYVuelta(t *testing.T) {
	original := []*entity.Product{
		{
			SKU:           "CABLE-2M",
			Name:          "Cable HDMI 2m",
			Category:      "Electrónica",
			Quantity:      33,
			MinThreshold:  10,
			PurchasePrice: decimal.NewFromFloat(2.10),
			SellingPrice:  decimal.NewFromFloat(5.00),
			Box:           "B2",
			Description:   "Con \"conector\" dorado",
		},
	}
	out, err := ExportCSV(original)
	require.NoError(t, err)

	rows, skipped, err := ParseCSV(strings.NewReader(string(out)))
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, rows, 1)

	got := rows[0]
	assert.Equal(t, "CABLE-2M", got.SKU)
	assert.Equal(t, "Cable HDMI 2m", got.Name)
	assert.Equal(t, "Electrónica", got.Category)
	assert.Equal(t, 33, got.Quantity)
	assert.Equal(t, 10, got.MinThreshold)
	assert.True(t, got.PurchasePrice.Equal(decimal.NewFromFloat(2.10)))
	assert.True(t, got.SellingPrice.Equal(decimal.NewFromFloat(5.00)))
	assert.Equal(t, "B2", got.Box)
	assert.Equal(t, "Con \"conector\" dorado", got.Description)
}

func TestParseCSV_FilasCortasSeDescartan(t *testing.T) {
	input := "SKU,Name,Category,Quantity,Min Threshold,Purchase Price,Selling Price,Box Number,Description\n" +
		"OK-1,Producto uno,Cat,3,1,1.00,2.00,A1,ok\n" +
		"CORTA,solo,tres\n" +
		"OK-2,Producto dos,Cat,5,2,1.00,2.00,A2,ok\n"

	rows, skipped, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	require.Len(t, rows, 2)
	assert.Equal(t, "OK-1", rows[0].SKU)
	assert.Equal(t, "OK-2", rows[1].SKU)
}

func TestParseCSV_NumericosInvalidosQuedanEnCero(t *testing.T) {
	input := "SKU,Name,Category,Quantity,Min Threshold,Purchase Price,Selling Price,Box Number,Description\n" +
		"X-1,Algo,Cat,abc,??,no-precio,4.50,C3,\n"

	rows, skipped, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, rows, 1)

	got := rows[0]
	assert.Equal(t, 0, got.Quantity)
	assert.Equal(t, 0, got.MinThreshold)
	assert.True(t, got.PurchasePrice.IsZero())
	assert.True(t, got.SellingPrice.Equal(decimal.NewFromFloat(4.50)))
}

func TestParseCSV_ColumnasOpcionalesAusentes(t *testing.T) {
	// Solo las 7 primeras columnas: caja y descripción quedan vacías.
	input := "SKU,Name,Category,Quantity,Min Threshold,Purchase Price,Selling Price\n" +
		"Y-1,Sin caja,Cat,2,1,1.00,2.00\n"

	rows, skipped, err := ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].Box)
	assert.Empty(t, rows[0].Description)
}

func TestParseCSV_ArchivoVacio(t *testing.T) {
	rows, skipped, err := ParseCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, skipped)
	assert.Empty(t, rows)
}

func TestExportFilename_LlevaLaFecha(t *testing.T) {
	now := time.Date(2025, 3, 9, 15, 0, 0, 0, time.UTC)
	assert.Equal(t, "inventario_2025-03-09.csv", ExportFilename(now))
	assert.Equal(t, "respaldo_bodega_2025-03-09.json", SnapshotFilename(now))
}
