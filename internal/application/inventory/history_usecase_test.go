package inventory

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

// memTxRepo es un libro en memoria, más reciente primero.
type memTxRepo struct {
	records []*entity.Transaction
}

func (r *memTxRepo) Append(tx *entity.Transaction) error {
	r.records = append(r.records, tx)
	return nil
}

func (r *memTxRepo) ListRecent(limit int) ([]*entity.Transaction, error) {
	out := make([]*entity.Transaction, len(r.records))
	copy(out, r.records)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *memTxRepo) ListByProduct(productID string, limit int) ([]*entity.Transaction, error) {
	all, _ := r.ListRecent(0)
	var out []*entity.Transaction
	for _, tx := range all {
		if tx.ProductID == productID {
			out = append(out, tx)
		}
	}
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *memTxRepo) Exists(id string) (bool, error) {
	for _, tx := range r.records {
		if tx.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func TestHistoryRecent_MasRecientePrimero(t *testing.T) {
	txRepo := &memTxRepo{}
	base := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, txRepo.Append(&entity.Transaction{
			ID:        string(rune('a' + i)),
			ProductID: "p1",
			Type:      entity.MovementTypeIN,
			Quantity:  i + 1,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	uc := NewHistoryUseCase(txRepo)

	out, err := uc.Recent(0)
	require.NoError(t, err)

	require.Equal(t, 3, out.Total)
	assert.Equal(t, "c", out.Items[0].ID, "el más reciente va primero")
	assert.Equal(t, "a", out.Items[2].ID)
}

func TestHistoryByProduct_FiltraPorProducto(t *testing.T) {
	txRepo := &memTxRepo{}
	require.NoError(t, txRepo.Append(&entity.Transaction{ID: "t1", ProductID: "p1", Type: entity.MovementTypeIN, Quantity: 1, CreatedAt: time.Now()}))
	require.NoError(t, txRepo.Append(&entity.Transaction{ID: "t2", ProductID: "p2", Type: entity.MovementTypeOUT, Quantity: 2, CreatedAt: time.Now()}))
	uc := NewHistoryUseCase(txRepo)

	out, err := uc.ByProduct("p1", 0)
	require.NoError(t, err)

	require.Equal(t, 1, out.Total)
	assert.Equal(t, "t1", out.Items[0].ID)
}

func TestHistoryRecent_LimiteAcotado(t *testing.T) {
	assert.Equal(t, defaultHistoryLimit, clampLimit(0))
	assert.Equal(t, defaultHistoryLimit, clampLimit(-5))
	assert.Equal(t, 25, clampLimit(25))
	assert.Equal(t, maxHistoryLimit, clampLimit(10_000))
}
