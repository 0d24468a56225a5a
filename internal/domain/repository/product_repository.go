package repository

import "github.com/jhoicas/Bodega-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia del catálogo de productos.
// Las implementaciones deben ser usables tanto con el pool como dentro de una
// transacción (ver infrastructure/postgres).
type ProductRepository interface {
	// List devuelve el catálogo completo ordenado por nombre.
	List() ([]*entity.Product, error)
	GetByID(id string) (*entity.Product, error)
	// GetBySKU busca por SKU exacto (case-sensitive). nil si no existe.
	GetBySKU(sku string) (*entity.Product, error)
	Create(product *entity.Product) error
	// Update reemplaza los campos descriptivos y de precio; la cantidad se
	// modifica solo vía UpdateStock desde el motor de movimientos.
	Update(product *entity.Product) error
	// Upsert inserta o reemplaza por id (usado por importación y respaldos).
	Upsert(product *entity.Product) error
	// UpsertBatch aplica Upsert a un lote ya reconciliado por SKU.
	UpsertBatch(products []*entity.Product) error
	// GetForUpdate obtiene el producto bloqueando la fila (SELECT FOR UPDATE)
	// dentro de la transacción en curso. nil si no existe.
	GetForUpdate(id string) (*entity.Product, error)
	// UpdateStock fija cantidad, caja y fecha de actualización. Debe llamarse
	// con la fila bloqueada por GetForUpdate en la misma transacción.
	UpdateStock(product *entity.Product) error
}
