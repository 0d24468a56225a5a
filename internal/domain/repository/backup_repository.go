package repository

import "time"

// BackupRepository persiste el snapshot remoto serializado bajo una clave
// fija: cada Save reemplaza el contenido anterior (sin versionado).
type BackupRepository interface {
	Save(key string, payload []byte, takenAt time.Time) error
	// Load devuelve el snapshot y su fecha. (nil, zero, nil) si no hay respaldo.
	Load(key string) (payload []byte, takenAt time.Time, err error)
}
