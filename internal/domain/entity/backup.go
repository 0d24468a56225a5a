package entity

// BackupVersion versión del formato de snapshot de respaldo.
const BackupVersion = 1

// BackupKey clave fija del respaldo remoto: cada guardado reemplaza al
// anterior (equivalente a un archivo de nombre fijo, sin versionado).
const BackupKey = "bodega-backup"
