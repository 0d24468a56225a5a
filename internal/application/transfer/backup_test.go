package transfer

import (
	"encoding/json"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Bodega-api/internal/application/catalog"
	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

// ─────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ─────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	byID map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{byID: make(map[string]*entity.Product)}
	for _, p := range products {
		r.byID[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) { return r.byID[id], nil }

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.byID {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Create(p *entity.Product) error { r.byID[p.ID] = p; return nil }
func (r *fakeProductRepo) Update(p *entity.Product) error { r.byID[p.ID] = p; return nil }
func (r *fakeProductRepo) Upsert(p *entity.Product) error { r.byID[p.ID] = p; return nil }

func (r *fakeProductRepo) UpsertBatch(products []*entity.Product) error {
	for _, p := range products {
		r.byID[p.ID] = p
	}
	return nil
}

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) { return r.byID[id], nil }
func (r *fakeProductRepo) UpdateStock(p *entity.Product) error             { r.byID[p.ID] = p; return nil }

type fakeTxRepo struct {
	records []*entity.Transaction
}

func (r *fakeTxRepo) Append(tx *entity.Transaction) error {
	r.records = append(r.records, tx)
	return nil
}

func (r *fakeTxRepo) ListRecent(limit int) ([]*entity.Transaction, error) {
	out := make([]*entity.Transaction, len(r.records))
	copy(out, r.records)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeTxRepo) ListByProduct(productID string, limit int) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range r.records {
		if t.ProductID == productID {
			out = append(out, t)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeTxRepo) Exists(id string) (bool, error) {
	for _, t := range r.records {
		if t.ID == id {
			return true, nil
		}
	}
	return false, nil
}

type fakeBackupRepo struct {
	payload []byte
	takenAt time.Time
}

func (r *fakeBackupRepo) Save(key string, payload []byte, takenAt time.Time) error {
	r.payload = payload
	r.takenAt = takenAt
	return nil
}

func (r *fakeBackupRepo) Load(key string) ([]byte, time.Time, error) {
	return r.payload, r.takenAt, nil
}

func backupFixture(products []*entity.Product, records []*entity.Transaction) (*BackupUseCase, *fakeProductRepo, *fakeTxRepo, *fakeBackupRepo) {
	productRepo := newFakeProductRepo(products...)
	txRepo := &fakeTxRepo{records: records}
	backupRepo := &fakeBackupRepo{}
	importUC := catalog.NewImportUseCase(productRepo, nil)
	uc := NewBackupUseCase(productRepo, txRepo, backupRepo, importUC, nil)
	return uc, productRepo, txRepo, backupRepo
}

func sampleProduct(id, sku, name string, qty int) *entity.Product {
	now := time.Now()
	return &entity.Product{
		ID:            id,
		SKU:           sku,
		Name:          name,
		Category:      "General",
		Quantity:      qty,
		MinThreshold:  5,
		PurchasePrice: decimal.NewFromInt(10),
		SellingPrice:  decimal.NewFromInt(15),
		Box:           "A1",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Snapshot
// ─────────────────────────────────────────────────────────────────────────────

func TestSnapshot_IncluyeCatalogoYLibroCompleto(t *testing.T) {
	records := []*entity.Transaction{
		{ID: "t1", ProductID: "p1", Type: entity.MovementTypeIN, Quantity: 5, CreatedAt: time.Now().Add(-time.Hour)},
		{ID: "t2", ProductID: "p1", Type: entity.MovementTypeOUT, Quantity: 2, CreatedAt: time.Now()},
	}
	uc, _, _, _ := backupFixture([]*entity.Product{sampleProduct("p1", "S-1", "Uno", 3)}, records)

	snap, err := uc.Snapshot()
	require.NoError(t, err)

	assert.Equal(t, entity.BackupVersion, snap.Version)
	assert.WithinDuration(t, time.Now(), snap.Timestamp, time.Second)
	require.Len(t, snap.Products, 1)
	assert.Equal(t, "S-1", snap.Products[0].SKU)
	assert.Len(t, snap.Transactions, 2)
}

// ─────────────────────────────────────────────────────────────────────────────
// Restauración
// ─────────────────────────────────────────────────────────────────────────────

func TestRestore_AgregaSoloTransaccionesNuevas(t *testing.T) {
	existing := &entity.Transaction{ID: "t1", ProductID: "p1", Type: entity.MovementTypeIN, Quantity: 5, CreatedAt: time.Now()}
	uc, _, txRepo, _ := backupFixture(
		[]*entity.Product{sampleProduct("p1", "S-1", "Uno", 3)},
		[]*entity.Transaction{existing},
	)

	snap := &dto.BackupSnapshotDTO{
		Version: entity.BackupVersion,
		Products: []dto.ProductResponse{
			*dto.NewProductResponse(sampleProduct("p1", "S-1", "Uno", 8)),
		},
		Transactions: []dto.TransactionResponse{
			{ID: "t1", ProductID: "p1", Type: entity.MovementTypeIN, Quantity: 5},
			{ID: "t2", ProductID: "p1", Type: entity.MovementTypeOUT, Quantity: 2, CreatedBy: "local-user"},
		},
	}

	result, err := uc.Restore(snap)
	require.NoError(t, err)

	// t1 ya existía: el libro es append-only y no se duplica ni reemplaza.
	assert.Equal(t, 1, result.TransactionsAdded)
	assert.Len(t, txRepo.records, 2)
	assert.Equal(t, 1, result.Products.Updated)
	assert.Zero(t, result.Products.Created)
}

func TestRestore_ConservaIdsDelSnapshot(t *testing.T) {
	uc, productRepo, _, _ := backupFixture(nil, nil)

	snap := &dto.BackupSnapshotDTO{
		Version: entity.BackupVersion,
		Products: []dto.ProductResponse{
			*dto.NewProductResponse(sampleProduct("id-del-respaldo", "S-9", "Nueve", 4)),
		},
	}

	result, err := uc.Restore(snap)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Products.Created)
	restored, err := productRepo.GetByID("id-del-respaldo")
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, "S-9", restored.SKU)
}

func TestRestore_VersionNoSoportada(t *testing.T) {
	uc, _, _, _ := backupFixture(nil, nil)

	_, err := uc.Restore(&dto.BackupSnapshotDTO{Version: entity.BackupVersion + 1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRestore_SnapshotNulo(t *testing.T) {
	uc, _, _, _ := backupFixture(nil, nil)

	_, err := uc.Restore(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ─────────────────────────────────────────────────────────────────────────────
// Respaldo remoto de clave fija
// ─────────────────────────────────────────────────────────────────────────────

func TestSaveRemote_GuardaBajoLaClaveFija(t *testing.T) {
	uc, _, _, backupRepo := backupFixture([]*entity.Product{sampleProduct("p1", "S-1", "Uno", 3)}, nil)

	info, err := uc.SaveRemote()
	require.NoError(t, err)
	assert.True(t, info.Exists)
	require.NotNil(t, backupRepo.payload)

	var stored dto.BackupSnapshotDTO
	require.NoError(t, json.Unmarshal(backupRepo.payload, &stored))
	assert.Equal(t, entity.BackupVersion, stored.Version)
	require.Len(t, stored.Products, 1)
	assert.Equal(t, "S-1", stored.Products[0].SKU)
}

func TestRestoreRemote_IdaYVuelta(t *testing.T) {
	uc, productRepo, _, _ := backupFixture(
		[]*entity.Product{sampleProduct("p1", "S-1", "Uno", 3)},
		[]*entity.Transaction{{ID: "t1", ProductID: "p1", Type: entity.MovementTypeIN, Quantity: 3, CreatedAt: time.Now()}},
	)

	_, err := uc.SaveRemote()
	require.NoError(t, err)

	// Simula pérdida local del catálogo.
	productRepo.byID = make(map[string]*entity.Product)

	result, err := uc.RestoreRemote()
	require.NoError(t, err)
	assert.Equal(t, 1, result.Products.Created)

	restored, err := productRepo.GetByID("p1")
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, 3, restored.Quantity)
}

func TestRestoreRemote_SinRespaldo(t *testing.T) {
	uc, _, _, _ := backupFixture(nil, nil)

	_, err := uc.RestoreRemote()
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRestoreRemote_PayloadCorrupto(t *testing.T) {
	uc, _, _, backupRepo := backupFixture(nil, nil)
	backupRepo.payload = []byte("{esto no es json")
	backupRepo.takenAt = time.Now()

	_, err := uc.RestoreRemote()
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRemoteInfo_ReportaExistencia(t *testing.T) {
	uc, _, _, _ := backupFixture(nil, nil)

	info, err := uc.RemoteInfo()
	require.NoError(t, err)
	assert.False(t, info.Exists)

	_, err = uc.SaveRemote()
	require.NoError(t, err)

	info, err = uc.RemoteInfo()
	require.NoError(t, err)
	assert.True(t, info.Exists)
	assert.WithinDuration(t, time.Now(), info.TakenAt, time.Second)
}
