package dto

import "github.com/shopspring/decimal"

// InventoryStatsDTO estadísticas derivadas del catálogo completo.
// TotalValue se calcula a precio de compra (valoración a costo).
type InventoryStatsDTO struct {
	TotalItems    int             `json:"total_items"`
	LowStockItems int             `json:"low_stock_items"`
	OutOfStock    int             `json:"out_of_stock"`
	TotalValue    decimal.Decimal `json:"total_value"`
}

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary: estadísticas
// actuales más los movimientos recientes del libro.
type DashboardSummaryDTO struct {
	Stats              InventoryStatsDTO     `json:"stats"`
	ProductCount       int                   `json:"product_count"`
	RecentTransactions []TransactionResponse `json:"recent_transactions"`
}
