package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, sku, name, category, quantity, min_threshold, purchase_price, selling_price, box, description, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.SKU, &p.Name, &p.Category, &p.Quantity, &p.MinThreshold,
		&p.PurchasePrice, &p.SellingPrice, &p.Box, &p.Description, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List devuelve el catálogo completo ordenado por nombre.
func (r *ProductRepo) List() ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY name, id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// GetByID obtiene un producto por ID. nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetBySKU obtiene un producto por SKU exacto. nil si no existe.
func (r *ProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, sku))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by sku: %w", err)
	}
	return p, nil
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.SKU, product.Name, product.Category, product.Quantity,
		product.MinThreshold, product.PurchasePrice, product.SellingPrice,
		product.Box, product.Description, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// Update actualiza campos descriptivos y precios. La cantidad no se toca por
// esta vía (se maneja vía UpdateStock desde el motor de movimientos).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET sku = $2, name = $3, category = $4, min_threshold = $5,
		    purchase_price = $6, selling_price = $7, box = $8, description = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.SKU, product.Name, product.Category, product.MinThreshold,
		product.PurchasePrice, product.SellingPrice, product.Box, product.Description, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Upsert inserta o reemplaza el producto completo por id (importación y respaldos).
func (r *ProductRepo) Upsert(product *entity.Product) error {
	_, err := r.q.Exec(context.Background(), upsertProductSQL, upsertProductArgs(product)...)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("upsert product: %w", err)
	}
	return nil
}

const upsertProductSQL = `
	INSERT INTO products (` + productColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	ON CONFLICT (id) DO UPDATE SET
		sku = EXCLUDED.sku, name = EXCLUDED.name, category = EXCLUDED.category,
		quantity = EXCLUDED.quantity, min_threshold = EXCLUDED.min_threshold,
		purchase_price = EXCLUDED.purchase_price, selling_price = EXCLUDED.selling_price,
		box = EXCLUDED.box, description = EXCLUDED.description, updated_at = EXCLUDED.updated_at`

func upsertProductArgs(p *entity.Product) []any {
	return []any{
		p.ID, p.SKU, p.Name, p.Category, p.Quantity, p.MinThreshold,
		p.PurchasePrice, p.SellingPrice, p.Box, p.Description, p.CreatedAt, p.UpdatedAt,
	}
}

// UpsertBatch aplica el upsert a un lote reconciliado en un solo round-trip.
func (r *ProductRepo) UpsertBatch(products []*entity.Product) error {
	if len(products) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, p := range products {
		batch.Queue(upsertProductSQL, upsertProductArgs(p)...)
	}
	results := r.q.SendBatch(context.Background(), batch)
	defer results.Close()

	for range products {
		if _, err := results.Exec(); err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("upsert batch: %w", err)
		}
	}
	return nil
}

// GetForUpdate obtiene el producto bloqueando la fila. Solo tiene sentido
// dentro de una transacción: el lock vive hasta el Commit/Rollback.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product for update: %w", err)
	}
	return p, nil
}

// UpdateStock fija cantidad, caja y fecha de actualización (motor de movimientos).
func (r *ProductRepo) UpdateStock(product *entity.Product) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET quantity = $2, box = $3, updated_at = $4 WHERE id = $1`,
		product.ID, product.Quantity, product.Box, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}
