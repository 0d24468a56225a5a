package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bodega-api/internal/application/analytics"
	"github.com/jhoicas/Bodega-api/internal/application/auth"
	"github.com/jhoicas/Bodega-api/internal/application/catalog"
	"github.com/jhoicas/Bodega-api/internal/application/insights"
	"github.com/jhoicas/Bodega-api/internal/application/inventory"
	"github.com/jhoicas/Bodega-api/internal/application/ports"
	"github.com/jhoicas/Bodega-api/internal/application/transfer"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *catalog.ProductUseCase
	MovementUC  *inventory.ApplyStockMovementUseCase
	HistoryUC   *inventory.HistoryUseCase
	DashboardUC *analytics.DashboardUseCase
	InsightUC   *insights.InsightUseCase
	CSVUC       *transfer.CSVUseCase
	BackupUC    *transfer.BackupUseCase
	AuthUC      *auth.AuthUseCase
	PDF         ports.StockReportGenerator
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	anyRole := RequireRole(entity.RoleAdmin, entity.RoleBodeguero)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Products (protegido)
	products := protected.Group("/products", anyRole)
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)

	// Inventory movements + historial (protegido)
	inventoryHandler := NewInventoryHandler(deps.MovementUC, deps.HistoryUC)
	invGroup := protected.Group("/inventory", anyRole)
	invGroup.Post("/movements", inventoryHandler.RegisterMovement)
	protected.Get("/transactions", anyRole, inventoryHandler.ListTransactions)
	products.Get("/:id/transactions", inventoryHandler.ListProductTransactions)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard", anyRole)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
	dashboard.Get("/stats", dashboardHandler.Stats)

	// Insights IA (protegido)
	insightGroup := protected.Group("/insights", anyRole)
	insightHandler := NewInsightHandler(deps.InsightUC)
	insightGroup.Post("/", insightHandler.Generate)
	insightGroup.Get("/status", insightHandler.Status)

	// Transferencia: CSV, respaldos y reporte (protegido; restauraciones solo admin)
	transferHandler := NewTransferHandler(deps.CSVUC, deps.BackupUC, deps.ProductUC, deps.PDF, deps.DashboardUC)
	protected.Get("/export/csv", anyRole, transferHandler.ExportCSV)
	protected.Post("/import/csv", adminOnly, transferHandler.ImportCSV)
	protected.Get("/backup", anyRole, transferHandler.ExportBackup)
	protected.Post("/backup/restore", adminOnly, transferHandler.RestoreBackup)
	protected.Post("/backup/remote", anyRole, transferHandler.SaveRemoteBackup)
	protected.Get("/backup/remote", anyRole, transferHandler.RemoteBackupInfo)
	protected.Post("/backup/remote/restore", adminOnly, transferHandler.RestoreRemoteBackup)
	protected.Get("/reports/stock.pdf", anyRole, transferHandler.StockReportPDF)
}
