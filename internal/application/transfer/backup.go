package transfer

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jhoicas/Bodega-api/internal/application/catalog"
	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/application/ports"
	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// BackupUseCase arma y restaura snapshots completos (catálogo + libro de
// transacciones). El mismo formato sirve para el archivo descargable y para
// el respaldo remoto de clave fija.
type BackupUseCase struct {
	productRepo repository.ProductRepository
	txRepo      repository.TransactionRepository
	backupRepo  repository.BackupRepository
	importUC    *catalog.ImportUseCase
	publisher   ports.EventPublisher
}

// NewBackupUseCase construye el caso de uso.
func NewBackupUseCase(
	productRepo repository.ProductRepository,
	txRepo repository.TransactionRepository,
	backupRepo repository.BackupRepository,
	importUC *catalog.ImportUseCase,
	publisher ports.EventPublisher,
) *BackupUseCase {
	if publisher == nil {
		publisher = ports.NopPublisher{}
	}
	return &BackupUseCase{
		productRepo: productRepo,
		txRepo:      txRepo,
		backupRepo:  backupRepo,
		importUC:    importUC,
		publisher:   publisher,
	}
}

// Snapshot captura el estado completo: catálogo y libro entero.
func (uc *BackupUseCase) Snapshot() (*dto.BackupSnapshotDTO, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	transactions, err := uc.txRepo.ListRecent(0) // 0 = libro completo
	if err != nil {
		return nil, err
	}

	snap := &dto.BackupSnapshotDTO{
		Version:      entity.BackupVersion,
		Timestamp:    time.Now(),
		Products:     make([]dto.ProductResponse, 0, len(products)),
		Transactions: make([]dto.TransactionResponse, 0, len(transactions)),
	}
	for _, p := range products {
		snap.Products = append(snap.Products, *dto.NewProductResponse(p))
	}
	for _, t := range transactions {
		snap.Transactions = append(snap.Transactions, *dto.NewTransactionResponse(t))
	}
	return snap, nil
}

// SnapshotFilename nombre de descarga del snapshot con la fecha actual.
func SnapshotFilename(now time.Time) string {
	return fmt.Sprintf("respaldo_bodega_%s.json", now.Format("2006-01-02"))
}

// Restore aplica un snapshot sobre el estado actual. Los productos se
// reconcilian por SKU (mismas reglas que la importación CSV, conservando los
// ids del snapshot cuando no colisionan); los registros del libro se agregan
// solo si su id no está ya presente, porque el libro es append-only y nunca
// se sobreescribe.
func (uc *BackupUseCase) Restore(snap *dto.BackupSnapshotDTO) (*dto.RestoreResultDTO, error) {
	if snap == nil {
		return nil, domain.ErrInvalidInput
	}
	if snap.Version > entity.BackupVersion {
		return nil, fmt.Errorf("%w: versión de respaldo %d no soportada", domain.ErrInvalidInput, snap.Version)
	}

	batch := make([]catalog.IncomingProduct, 0, len(snap.Products))
	for _, p := range snap.Products {
		batch = append(batch, catalog.IncomingProduct{
			ID:            p.ID,
			SKU:           p.SKU,
			Name:          p.Name,
			Category:      p.Category,
			Quantity:      p.Quantity,
			MinThreshold:  p.MinThreshold,
			PurchasePrice: p.PurchasePrice,
			SellingPrice:  p.SellingPrice,
			Box:           p.Box,
			Description:   p.Description,
		})
	}
	imported, err := uc.importUC.Reconcile(batch)
	if err != nil {
		return nil, err
	}

	result := &dto.RestoreResultDTO{Products: *imported}
	for _, t := range snap.Transactions {
		if t.ID == "" {
			continue
		}
		exists, err := uc.txRepo.Exists(t.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}
		record := &entity.Transaction{
			ID:          t.ID,
			ProductID:   t.ProductID,
			ProductName: t.ProductName,
			Type:        t.Type,
			Quantity:    t.Quantity,
			Reason:      t.Reason,
			CreatedAt:   t.CreatedAt,
			CreatedBy:   t.CreatedBy,
		}
		if err := uc.txRepo.Append(record); err != nil {
			return nil, err
		}
		result.TransactionsAdded++
	}
	if result.TransactionsAdded > 0 {
		uc.publisher.Publish(ports.EventTransactionInserted, nil)
	}
	return result, nil
}

// SaveRemote guarda el snapshot actual bajo la clave fija, reemplazando el
// respaldo anterior.
func (uc *BackupUseCase) SaveRemote() (*dto.BackupInfoDTO, error) {
	snap, err := uc.Snapshot()
	if err != nil {
		return nil, err
	}
	payload, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("serializar respaldo: %w", err)
	}
	if err := uc.backupRepo.Save(entity.BackupKey, payload, snap.Timestamp); err != nil {
		return nil, err
	}
	return &dto.BackupInfoDTO{Exists: true, TakenAt: snap.Timestamp}, nil
}

// RestoreRemote carga el respaldo remoto y lo aplica.
func (uc *BackupUseCase) RestoreRemote() (*dto.RestoreResultDTO, error) {
	payload, _, err := uc.backupRepo.Load(entity.BackupKey)
	if err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, domain.ErrNotFound
	}
	var snap dto.BackupSnapshotDTO
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("%w: respaldo corrupto", domain.ErrInvalidInput)
	}
	return uc.Restore(&snap)
}

// RemoteInfo indica si existe un respaldo remoto y de cuándo es.
func (uc *BackupUseCase) RemoteInfo() (*dto.BackupInfoDTO, error) {
	payload, takenAt, err := uc.backupRepo.Load(entity.BackupKey)
	if err != nil {
		return nil, err
	}
	if payload == nil {
		return &dto.BackupInfoDTO{Exists: false}, nil
	}
	return &dto.BackupInfoDTO{Exists: true, TakenAt: takenAt}, nil
}
