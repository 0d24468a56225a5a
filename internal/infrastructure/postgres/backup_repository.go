package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

var _ repository.BackupRepository = (*BackupRepo)(nil)

// BackupRepo persiste snapshots serializados bajo una clave fija: cada Save
// reemplaza la fila anterior (equivalente a un archivo de nombre fijo).
type BackupRepo struct {
	q Querier
}

// NewBackupRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBackupRepository(q Querier) *BackupRepo {
	return &BackupRepo{q: q}
}

// Save guarda el snapshot, reemplazando el contenido previo de la clave.
func (r *BackupRepo) Save(key string, payload []byte, takenAt time.Time) error {
	query := `
		INSERT INTO backups (key, payload, taken_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, taken_at = EXCLUDED.taken_at`
	_, err := r.q.Exec(context.Background(), query, key, payload, takenAt)
	if err != nil {
		return fmt.Errorf("save backup: %w", err)
	}
	return nil
}

// Load devuelve el snapshot y su fecha. (nil, zero, nil) si no hay respaldo.
func (r *BackupRepo) Load(key string) ([]byte, time.Time, error) {
	var payload []byte
	var takenAt time.Time
	err := r.q.QueryRow(context.Background(),
		`SELECT payload, taken_at FROM backups WHERE key = $1`, key,
	).Scan(&payload, &takenAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, time.Time{}, nil
		}
		return nil, time.Time{}, fmt.Errorf("load backup: %w", err)
	}
	return payload, takenAt, nil
}
