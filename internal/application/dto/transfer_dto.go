package dto

import "time"

// BackupSnapshotDTO snapshot serializado completo del catálogo y el libro,
// usado tanto para exportar/importar archivos como para el respaldo remoto
// de clave fija.
type BackupSnapshotDTO struct {
	Version      int                   `json:"version"`
	Timestamp    time.Time             `json:"timestamp"`
	Products     []ProductResponse     `json:"products"`
	Transactions []TransactionResponse `json:"transactions"`
}

// ImportResultDTO resumen de una importación CSV o restauración de respaldo.
// Skipped cuenta filas malformadas descartadas en silencio.
type ImportResultDTO struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
}

// RestoreResultDTO resumen de una restauración de snapshot: reconciliación
// del catálogo más los registros del libro agregados (los ya presentes por
// id se dejan intactos).
type RestoreResultDTO struct {
	Products          ImportResultDTO `json:"products"`
	TransactionsAdded int             `json:"transactions_added"`
}

// BackupInfoDTO metadatos del respaldo remoto almacenado.
type BackupInfoDTO struct {
	Exists  bool      `json:"exists"`
	TakenAt time.Time `json:"taken_at,omitempty"`
}
