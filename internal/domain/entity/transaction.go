package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIN  = "IN"  // entrada (reposición)
	MovementTypeOUT = "OUT" // salida (venta/consumo)
)

// LocalActorID identidad fija usada cuando un movimiento no proviene de un
// usuario autenticado (restauraciones de respaldo, herramientas locales).
const LocalActorID = "local-user"

// Transaction es un registro inmutable del libro de movimientos: se crea
// exactamente una vez por cada cambio de cantidad de un producto y nunca se
// modifica ni elimina. Quantity guarda siempre la cantidad SOLICITADA, aunque
// la salida se haya recortado en cero (ver motor de inventario).
type Transaction struct {
	ID          string
	ProductID   string // referencia sin constraint: puede quedar huérfana
	ProductName string // denormalizado al momento de crear; no se sincroniza con renombres
	Type        string // IN | OUT
	Quantity    int    // positivo: cantidad solicitada
	Reason      string // texto libre; anotado si hubo cambio de caja
	CreatedAt   time.Time
	CreatedBy   string // UserID del actor, o LocalActorID
}
