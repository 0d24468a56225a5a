package catalog_test

import (
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Bodega-api/internal/application/catalog"
	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

// fakeRepo implementación en memoria de repository.ProductRepository.
type fakeRepo struct {
	byID map[string]*entity.Product
}

func newFakeRepo(products ...*entity.Product) *fakeRepo {
	r := &fakeRepo{byID: map[string]*entity.Product{}}
	for _, p := range products {
		r.byID[p.ID] = p
	}
	return r
}

func (r *fakeRepo) List() ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.byID {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (r *fakeRepo) GetByID(id string) (*entity.Product, error) { return r.byID[id], nil }

func (r *fakeRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.byID {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) Create(p *entity.Product) error { r.byID[p.ID] = p; return nil }
func (r *fakeRepo) Update(p *entity.Product) error { r.byID[p.ID] = p; return nil }
func (r *fakeRepo) Upsert(p *entity.Product) error { r.byID[p.ID] = p; return nil }

func (r *fakeRepo) UpsertBatch(products []*entity.Product) error {
	for _, p := range products {
		r.byID[p.ID] = p
	}
	return nil
}

func (r *fakeRepo) GetForUpdate(id string) (*entity.Product, error) { return r.byID[id], nil }
func (r *fakeRepo) UpdateStock(p *entity.Product) error             { r.byID[p.ID] = p; return nil }

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func decPtr(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

// ──────────────────────────────────────────────────────────────────────────────
// Product editor
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_AplicaDefaults(t *testing.T) {
	uc := catalog.NewProductUseCase(newFakeRepo(), nil)

	out, err := uc.Create(dto.CreateProductRequest{
		SKU: "A-1", Name: "Tornillos", Category: "Ferretería", Box: "C3",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, out.Quantity, "stock inicial por defecto es 0")
	assert.Equal(t, entity.DefaultMinThreshold, out.MinThreshold, "umbral por defecto es 5")
	assert.True(t, out.PurchasePrice.IsZero())
	assert.True(t, out.SellingPrice.IsZero())
	assert.NotEmpty(t, out.ID)
}

func TestCreate_SKUDuplicadoRechazado(t *testing.T) {
	repo := newFakeRepo(&entity.Product{ID: "p1", SKU: "A-1", Name: "Existente"})
	uc := catalog.NewProductUseCase(repo, nil)

	_, err := uc.Create(dto.CreateProductRequest{
		SKU: "A-1", Name: "Otro", Category: "X", Box: "B1",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate,
		"la reconciliación de importaciones depende de SKUs únicos")
}

func TestCreate_PrecioNegativoInvalido(t *testing.T) {
	uc := catalog.NewProductUseCase(newFakeRepo(), nil)

	_, err := uc.Create(dto.CreateProductRequest{
		SKU: "A-1", Name: "X", Category: "X", Box: "B1", PurchasePrice: decPtr(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdate_ParcheSoloCamposPresentes(t *testing.T) {
	repo := newFakeRepo(&entity.Product{
		ID: "p1", SKU: "A-1", Name: "Tornillos", Category: "Ferretería",
		Quantity: 7, MinThreshold: 5, Box: "C3", Description: "caja x100",
		PurchasePrice: decimal.NewFromInt(2), SellingPrice: decimal.NewFromInt(3),
	})
	uc := catalog.NewProductUseCase(repo, nil)

	out, err := uc.Update("p1", dto.UpdateProductRequest{
		Name:         strPtr("Tornillos 5mm"),
		SellingPrice: decPtr(4),
	})
	require.NoError(t, err)

	assert.Equal(t, "Tornillos 5mm", out.Name)
	assert.True(t, out.SellingPrice.Equal(decimal.NewFromInt(4)))
	// Lo no provisto queda intacto
	assert.Equal(t, "Ferretería", out.Category)
	assert.Equal(t, 7, out.Quantity, "la edición directa nunca toca la cantidad")
	assert.Equal(t, "caja x100", out.Description)
	assert.True(t, out.PurchasePrice.Equal(decimal.NewFromInt(2)))
}

func TestUpdate_NoProduceTransaccion(t *testing.T) {
	// El editor no conoce el libro de transacciones: el tipo no tiene acceso a
	// TransactionRepository, así que basta verificar que solo cambia UpdatedAt.
	repo := newFakeRepo(&entity.Product{ID: "p1", SKU: "A-1", Name: "X", Quantity: 3})
	uc := catalog.NewProductUseCase(repo, nil)

	out, err := uc.Update("p1", dto.UpdateProductRequest{MinThreshold: intPtr(9)})
	require.NoError(t, err)
	assert.Equal(t, 9, out.MinThreshold)
	assert.Equal(t, 3, out.Quantity)
}

func TestUpdate_SKUAjenoRechazado(t *testing.T) {
	repo := newFakeRepo(
		&entity.Product{ID: "p1", SKU: "A-1", Name: "Uno"},
		&entity.Product{ID: "p2", SKU: "B-2", Name: "Dos"},
	)
	uc := catalog.NewProductUseCase(repo, nil)

	_, err := uc.Update("p1", dto.UpdateProductRequest{SKU: strPtr("B-2")})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUpdate_ProductoInexistente(t *testing.T) {
	uc := catalog.NewProductUseCase(newFakeRepo(), nil)

	out, err := uc.Update("nope", dto.UpdateProductRequest{Name: strPtr("X")})
	require.NoError(t, err)
	assert.Nil(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Bulk import reconciler
// ──────────────────────────────────────────────────────────────────────────────

func incoming(sku, name string, qty int) catalog.IncomingProduct {
	return catalog.IncomingProduct{
		SKU: sku, Name: name, Category: "General", Quantity: qty,
		MinThreshold: 5, Box: "A1",
		PurchasePrice: decimal.NewFromInt(1), SellingPrice: decimal.NewFromInt(2),
	}
}

func TestReconcile_SKUExistenteActualizaPreservandoID(t *testing.T) {
	repo := newFakeRepo(&entity.Product{ID: "id-original", SKU: "A-1", Name: "Viejo", Quantity: 2})
	uc := catalog.NewImportUseCase(repo, nil)

	res, err := uc.Reconcile([]catalog.IncomingProduct{incoming("A-1", "Nuevo nombre", 8)})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Updated)
	assert.Equal(t, 0, res.Created)
	p := repo.byID["id-original"]
	require.NotNil(t, p, "el id del producto existente se preserva")
	assert.Equal(t, "Nuevo nombre", p.Name)
	assert.Equal(t, 8, p.Quantity)
}

func TestReconcile_SKUNuevoCreaConIDFresco(t *testing.T) {
	repo := newFakeRepo()
	uc := catalog.NewImportUseCase(repo, nil)

	res, err := uc.Reconcile([]catalog.IncomingProduct{incoming("Z-9", "Nuevo", 1)})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Created)
	require.Len(t, repo.byID, 1)
	for id := range repo.byID {
		assert.NotEmpty(t, id)
	}
}

func TestReconcile_RespaldoConservaIDSinColision(t *testing.T) {
	repo := newFakeRepo()
	uc := catalog.NewImportUseCase(repo, nil)

	in := incoming("Z-9", "Restaurado", 1)
	in.ID = "id-del-respaldo"
	_, err := uc.Reconcile([]catalog.IncomingProduct{in})
	require.NoError(t, err)

	assert.NotNil(t, repo.byID["id-del-respaldo"],
		"restaurar un respaldo conserva los ids para no dejar huérfano el libro")
}

func TestReconcile_ColisionDeIDRegeneraID(t *testing.T) {
	repo := newFakeRepo(&entity.Product{ID: "ocupado", SKU: "A-1", Name: "Existente"})
	uc := catalog.NewImportUseCase(repo, nil)

	in := incoming("Z-9", "Choca", 1)
	in.ID = "ocupado"
	_, err := uc.Reconcile([]catalog.IncomingProduct{in})
	require.NoError(t, err)

	assert.Equal(t, "A-1", repo.byID["ocupado"].SKU, "el producto existente no se pisa")
	assert.Len(t, repo.byID, 2)
}

func TestReconcile_LoteMixto(t *testing.T) {
	repo := newFakeRepo(&entity.Product{ID: "p1", SKU: "A-1", Name: "Uno"})
	uc := catalog.NewImportUseCase(repo, nil)

	res, err := uc.Reconcile([]catalog.IncomingProduct{
		incoming("A-1", "Uno v2", 3),
		incoming("B-2", "Dos", 4),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Updated)
	assert.Equal(t, 1, res.Created)
	assert.Len(t, repo.byID, 2)
}
