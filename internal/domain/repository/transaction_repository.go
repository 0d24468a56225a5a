package repository

import "github.com/jhoicas/Bodega-api/internal/domain/entity"

// TransactionRepository define el puerto del libro de transacciones.
// El libro es append-only: no existen operaciones de update ni delete.
type TransactionRepository interface {
	// Append agrega un registro al libro. Genera ID si viene vacío.
	Append(tx *entity.Transaction) error
	// ListRecent devuelve las últimas `limit` transacciones, más reciente
	// primero. Con limit <= 0 devuelve el libro completo (respaldos).
	ListRecent(limit int) ([]*entity.Transaction, error)
	// ListByProduct devuelve el historial de un producto, más reciente primero.
	ListByProduct(productID string, limit int) ([]*entity.Transaction, error)
	// Exists indica si ya hay una transacción con ese id (restauración de respaldos).
	Exists(id string) (bool, error)
}
