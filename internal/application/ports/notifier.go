package ports

// Eventos emitidos por el canal de notificación de cambios. Las sesiones
// conectadas los usan para converger con el estado remoto. stock_in y
// stock_out son eventos distinguibles: la finalización de una salida de
// stock debe poder señalizarse de forma diferente a una entrada.
const (
	EventProductsChanged     = "products_changed"
	EventTransactionInserted = "transaction_inserted"
	EventStockIn             = "stock_in"
	EventStockOut            = "stock_out"
)

// EventPublisher puerto de publicación de eventos hacia las sesiones
// suscritas. Las implementaciones no deben bloquear al caller.
type EventPublisher interface {
	Publish(event string, payload interface{})
}

// NopPublisher descarta todos los eventos (tests y herramientas locales).
type NopPublisher struct{}

func (NopPublisher) Publish(string, interface{}) {}
