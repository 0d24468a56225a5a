package ports

import (
	"context"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
)

// StockReportGenerator puerto de generación del reporte PDF del inventario.
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, products []dto.ProductResponse, stats dto.InventoryStatsDTO) ([]byte, error)
}
