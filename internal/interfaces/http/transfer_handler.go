package http

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bodega-api/internal/application/catalog"
	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/application/ports"
	"github.com/jhoicas/Bodega-api/internal/application/transfer"
	"github.com/jhoicas/Bodega-api/internal/domain"
)

// TransferHandler maneja exportación/importación CSV, respaldos y el reporte
// PDF (protegido).
type TransferHandler struct {
	csvUC     *transfer.CSVUseCase
	backupUC  *transfer.BackupUseCase
	productUC *catalog.ProductUseCase
	pdf       ports.StockReportGenerator
	stats     statsProvider
}

// statsProvider es lo mínimo que el reporte PDF necesita del panel.
type statsProvider interface {
	Stats() (*dto.InventoryStatsDTO, error)
}

// NewTransferHandler construye el handler.
func NewTransferHandler(
	csvUC *transfer.CSVUseCase,
	backupUC *transfer.BackupUseCase,
	productUC *catalog.ProductUseCase,
	pdf ports.StockReportGenerator,
	stats statsProvider,
) *TransferHandler {
	return &TransferHandler{csvUC: csvUC, backupUC: backupUC, productUC: productUC, pdf: pdf, stats: stats}
}

// ExportCSV godoc
// @Summary      Exportar catálogo a CSV
// @Tags         transfer
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {string}  string  "archivo CSV"
// @Router       /api/export/csv [get]
func (h *TransferHandler) ExportCSV(c *fiber.Ctx) error {
	out, err := h.csvUC.Export()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", transfer.ExportFilename(time.Now())))
	return c.Send(out)
}

// ImportCSV godoc
// @Summary      Importar catálogo desde CSV
// @Description  Empareja por SKU: los existentes se actualizan en su sitio,
//
//	los nuevos se crean. Filas malformadas se descartan y se
//	cuentan en skipped.
//
// @Tags         transfer
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Archivo CSV"
// @Success      200   {object}  dto.ImportResultDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/import/csv [post]
func (h *TransferHandler) ImportCSV(c *fiber.Ctx) error {
	content, err := importPayload(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "se espera un archivo CSV (campo file) o el CSV en el cuerpo"})
	}
	result, err := h.csvUC.Import(bytes.NewReader(content))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_CSV", Message: err.Error()})
	}
	return c.JSON(result)
}

// importPayload acepta el CSV como multipart (campo file) o como cuerpo crudo.
func importPayload(c *fiber.Ctx) ([]byte, error) {
	if fileHeader, err := c.FormFile("file"); err == nil {
		f, err := fileHeader.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		buf := new(bytes.Buffer)
		if _, err := buf.ReadFrom(f); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	if len(c.Body()) == 0 {
		return nil, errors.New("cuerpo vacío")
	}
	return c.Body(), nil
}

// ExportBackup godoc
// @Summary      Descargar snapshot de respaldo (catálogo + libro)
// @Tags         transfer
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BackupSnapshotDTO
// @Router       /api/backup [get]
func (h *TransferHandler) ExportBackup(c *fiber.Ctx) error {
	snap, err := h.backupUC.Snapshot()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", transfer.SnapshotFilename(time.Now())))
	return c.JSON(snap)
}

// RestoreBackup godoc
// @Summary      Restaurar un snapshot de respaldo
// @Description  Los productos se reconcilian por SKU; el libro solo agrega
//
//	transacciones cuyo id no exista (append-only, sin duplicados).
//
// @Tags         transfer
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BackupSnapshotDTO  true  "Snapshot"
// @Success      200   {object}  dto.RestoreResultDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/backup/restore [post]
func (h *TransferHandler) RestoreBackup(c *fiber.Ctx) error {
	var snap dto.BackupSnapshotDTO
	if err := c.BodyParser(&snap); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "snapshot inválido"})
	}
	result, err := h.backupUC.Restore(&snap)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_SNAPSHOT", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(result)
}

// SaveRemoteBackup godoc
// @Summary      Guardar respaldo remoto (clave fija, reemplaza el anterior)
// @Tags         transfer
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BackupInfoDTO
// @Router       /api/backup/remote [post]
func (h *TransferHandler) SaveRemoteBackup(c *fiber.Ctx) error {
	info, err := h.backupUC.SaveRemote()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(info)
}

// RemoteBackupInfo godoc
// @Summary      Consultar el respaldo remoto
// @Tags         transfer
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.BackupInfoDTO
// @Router       /api/backup/remote [get]
func (h *TransferHandler) RemoteBackupInfo(c *fiber.Ctx) error {
	info, err := h.backupUC.RemoteInfo()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(info)
}

// RestoreRemoteBackup godoc
// @Summary      Restaurar desde el respaldo remoto
// @Tags         transfer
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RestoreResultDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/backup/remote/restore [post]
func (h *TransferHandler) RestoreRemoteBackup(c *fiber.Ctx) error {
	result, err := h.backupUC.RestoreRemote()
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_BACKUP", Message: "no hay respaldo remoto"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_SNAPSHOT", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(result)
}

// StockReportPDF godoc
// @Summary      Reporte PDF del inventario
// @Tags         transfer
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {string}  string  "archivo PDF"
// @Router       /api/reports/stock.pdf [get]
func (h *TransferHandler) StockReportPDF(c *fiber.Ctx) error {
	products, err := h.productUC.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	stats, err := h.stats.Stats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	pdfBytes, err := h.pdf.GenerateStockReport(c.Context(), products.Items, *stats)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q",
		fmt.Sprintf("inventario_%s.pdf", time.Now().Format("2006-01-02"))))
	return c.Send(pdfBytes)
}
