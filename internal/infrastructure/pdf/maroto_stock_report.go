// Package pdf implementa la generación del reporte imprimible del inventario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Reporte de Inventario  │  Fecha de generación      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Unidades / Stock bajo / Agotados / Valor total    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | Caja | Cant | Mín | P.Compra | P.V │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda de generación                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/application/ports"
)

var _ ports.StockReportGenerator = (*MarotoStockReport)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoStockReport implementa StockReportGenerator usando Maroto v2.
type MarotoStockReport struct {
	businessName string
}

// NewMarotoStockReport construye el generador. businessName aparece en el header.
func NewMarotoStockReport(businessName string) *MarotoStockReport {
	return &MarotoStockReport{businessName: businessName}
}

// GenerateStockReport genera el PDF del inventario y devuelve sus bytes.
func (g *MarotoStockReport) GenerateStockReport(
	_ context.Context,
	products []dto.ProductResponse,
	stats dto.InventoryStatsDTO,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		WithAuthor(g.businessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(time.Now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(stats, len(products)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableProductRows(products) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del negocio (izq) y fecha de generación (der).
func (g *MarotoStockReport) headerRow(now time.Time) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(g.businessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de Inventario", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Generado: "+now.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

// summaryRow: estadísticas agregadas del catálogo.
func summaryRow(stats dto.InventoryStatsDTO, productCount int) core.Row {
	cell := func(label, value string, color *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Color: color, Top: 5}),
		)
	}
	lowColor := colorPrimary
	if stats.LowStockItems > 0 {
		lowColor = colorAlert
	}
	outColor := colorPrimary
	if stats.OutOfStock > 0 {
		outColor = colorAlert
	}
	return row.New(13).Add(
		cell("UNIDADES TOTALES", fmt.Sprintf("%d (%d productos)", stats.TotalItems, productCount), colorPrimary),
		cell("STOCK BAJO", fmt.Sprintf("%d", stats.LowStockItems), lowColor),
		cell("AGOTADOS", fmt.Sprintf("%d", stats.OutOfStock), outColor),
		cell("VALOR A COSTO", "$"+stats.TotalValue.StringFixed(2), colorPrimary),
	)
}

// tableHeaderRow: cabecera de la tabla de productos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Producto", 4, align.Left),
		h("Caja", 1, align.Center),
		h("Cant.", 1, align.Center),
		h("Mín.", 1, align.Center),
		h("P. Compra", 1, align.Right),
		h("P. Venta", 2, align.Right),
	)
}

// tableProductRows: una fila por producto; cantidad en rojo si está bajo o agotado.
func tableProductRows(products []dto.ProductResponse) []core.Row {
	result := make([]core.Row, 0, len(products))
	for _, p := range products {
		qtyColor := colorGray
		if p.LowStock || p.OutOfStock {
			qtyColor = colorAlert
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(p.SKU, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(4).Add(text.New(p.Name, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(1).Add(text.New(p.Box, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", p.Quantity), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1, Color: qtyColor,
			})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", p.MinThreshold), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New("$"+p.PurchasePrice.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New("$"+p.SellingPrice.StringFixed(2), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// footerRow: leyenda de generación.
func footerRow() core.Row {
	return row.New(6).Add(col.New(12).Add(
		text.New("Reporte generado automáticamente a partir del estado actual del inventario.", props.Text{
			Size: 7, Color: colorGray, Top: 1,
		}),
	))
}
