package inventory

import (
	"context"

	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la actualización del producto y
// el append al libro de transacciones se confirmen o descarten juntos: el
// motor de inventario nunca deja el producto y el libro desincronizados.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		txRepo repository.TransactionRepository,
	) error) error
}
