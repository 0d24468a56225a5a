// Package analytics arma las vistas agregadas del panel: estadísticas del
// inventario y movimientos recientes.
package analytics

import (
	"fmt"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/inventory"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// recentTransactionLimit cuántos movimientos recientes trae el resumen.
const recentTransactionLimit = 10

// DashboardUseCase arma el resumen del panel. Las estadísticas nunca se
// persisten: se derivan del catálogo actual en cada consulta.
type DashboardUseCase struct {
	productRepo repository.ProductRepository
	txRepo      repository.TransactionRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(productRepo repository.ProductRepository, txRepo repository.TransactionRepository) *DashboardUseCase {
	return &DashboardUseCase{productRepo: productRepo, txRepo: txRepo}
}

// Stats devuelve solo las estadísticas derivadas del catálogo.
func (uc *DashboardUseCase) Stats() (*dto.InventoryStatsDTO, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, fmt.Errorf("dashboard: catálogo: %w", err)
	}
	stats := inventory.ComputeStats(products)
	return &dto.InventoryStatsDTO{
		TotalItems:    stats.TotalItems,
		LowStockItems: stats.LowStockItems,
		OutOfStock:    stats.OutOfStock,
		TotalValue:    stats.TotalValue,
	}, nil
}

// Summary genera el resumen completo del panel.
func (uc *DashboardUseCase) Summary() (*dto.DashboardSummaryDTO, error) {
	// Catálogo y libro se consultan en paralelo (llamadas independientes).
	type productResult struct {
		rows []*entity.Product
		err  error
	}
	type txResult struct {
		rows []*entity.Transaction
		err  error
	}

	productChan := make(chan productResult, 1)
	txChan := make(chan txResult, 1)

	go func() {
		rows, err := uc.productRepo.List()
		productChan <- productResult{rows, err}
	}()
	go func() {
		rows, err := uc.txRepo.ListRecent(recentTransactionLimit)
		txChan <- txResult{rows, err}
	}()

	productRes := <-productChan
	txRes := <-txChan

	if productRes.err != nil {
		return nil, fmt.Errorf("dashboard: catálogo: %w", productRes.err)
	}
	if txRes.err != nil {
		return nil, fmt.Errorf("dashboard: movimientos: %w", txRes.err)
	}

	stats := inventory.ComputeStats(productRes.rows)
	summary := &dto.DashboardSummaryDTO{
		Stats: dto.InventoryStatsDTO{
			TotalItems:    stats.TotalItems,
			LowStockItems: stats.LowStockItems,
			OutOfStock:    stats.OutOfStock,
			TotalValue:    stats.TotalValue,
		},
		ProductCount:       len(productRes.rows),
		RecentTransactions: make([]dto.TransactionResponse, 0, len(txRes.rows)),
	}
	for _, t := range txRes.rows {
		summary.RecentTransactions = append(summary.RecentTransactions, *dto.NewTransactionResponse(t))
	}
	return summary, nil
}
