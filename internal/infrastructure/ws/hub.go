// Package ws implementa el canal de notificación de cambios sobre WebSocket.
// Cada evento se difunde a todas las sesiones conectadas como un sobre JSON
// {"event": ..., "payload": ...}; los clientes lo usan para refrescar su
// estado (y para distinguir salidas de stock de entradas).
package ws

import (
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"

	"github.com/jhoicas/Bodega-api/internal/application/ports"
	"github.com/jhoicas/Bodega-api/pkg/logger"
)

var _ ports.EventPublisher = (*Hub)(nil)

// envelope es el sobre JSON que viaja por el socket.
type envelope struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload,omitempty"`
}

// Hub mantiene el conjunto de sesiones conectadas y difunde eventos.
// Publish nunca bloquea al caller: si el buffer de difusión está lleno el
// evento se descarta (los clientes convergen con el siguiente).
type Hub struct {
	log        *logger.Logger
	clients    map[*websocket.Conn]bool
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	broadcast  chan []byte
	mu         sync.Mutex
}

// NewHub construye el hub. Llamar Run en un goroutine propio.
func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		log:        log,
		clients:    make(map[*websocket.Conn]bool),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		broadcast:  make(chan []byte, 64),
	}
}

// Run atiende registros, bajas y difusión. Bucle infinito: ejecutar en goroutine.
func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			count := len(h.clients)
			h.mu.Unlock()
			h.log.Debug().Int("sesiones", count).Msg("sesión WS conectada")

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish implementa ports.EventPublisher. No bloquea: con el buffer lleno el
// evento se descarta y se deja constancia en el log.
func (h *Hub) Publish(event string, payload interface{}) {
	message, err := json.Marshal(envelope{Event: event, Payload: payload})
	if err != nil {
		h.log.Error().Err(err).Str("event", event).Msg("serializar evento WS")
		return
	}
	select {
	case h.broadcast <- message:
	default:
		h.log.Warn().Str("event", event).Msg("buffer de difusión lleno, evento descartado")
	}
}

// Handler devuelve el handler de conexión para la ruta GET /ws.
func (h *Hub) Handler() func(*websocket.Conn) {
	return func(conn *websocket.Conn) {
		h.register <- conn
		defer func() { h.unregister <- conn }()

		for {
			// Bucle de keep-alive: solo leemos para detectar el cierre.
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}
}
