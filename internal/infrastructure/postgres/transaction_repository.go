package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

const transactionColumns = `id, product_id, product_name, type, quantity, reason, created_at, created_by`

// TransactionRepo implementación del libro de transacciones sobre PostgreSQL.
// El libro es append-only: este adaptador no expone UPDATE ni DELETE.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Append agrega un registro al libro. Genera ID y fecha si vienen vacíos.
func (r *TransactionRepo) Append(tx *entity.Transaction) error {
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now()
	}
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.ProductID, tx.ProductName, tx.Type, tx.Quantity, tx.Reason, tx.CreatedAt, tx.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// ListRecent devuelve las últimas `limit` transacciones, más reciente primero.
// Con limit <= 0 devuelve el libro completo (respaldos).
func (r *TransactionRepo) ListRecent(limit int) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY created_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}
	return r.list(query, args...)
}

// ListByProduct devuelve el historial de un producto, más reciente primero.
func (r *TransactionRepo) ListByProduct(productID string, limit int) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE product_id = $1 ORDER BY created_at DESC, id DESC`
	args := []any{productID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}
	return r.list(query, args...)
}

// Exists indica si ya hay una transacción con ese id (restauración de respaldos).
func (r *TransactionRepo) Exists(id string) (bool, error) {
	var exists bool
	err := r.q.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM transactions WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("transaction exists: %w", err)
	}
	return exists, nil
}

func (r *TransactionRepo) list(query string, args ...any) ([]*entity.Transaction, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*entity.Transaction
	for rows.Next() {
		var t entity.Transaction
		err := rows.Scan(
			&t.ID, &t.ProductID, &t.ProductName, &t.Type, &t.Quantity,
			&t.Reason, &t.CreatedAt, &t.CreatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		transactions = append(transactions, &t)
	}
	return transactions, rows.Err()
}
