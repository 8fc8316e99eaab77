package http

import (
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/menu-inventory-api/internal/application/snapshot"
	"github.com/jhoicas/menu-inventory-api/pkg/logger"
)

// changedPing aviso de cambio que se empuja a los clientes conectados.
// Sin payload: el cliente reacciona volviendo a pedir su vista.
var changedPing = []byte(`{"event":"changed"}`)

// Hub fan-out de notificaciones de cambio hacia los clientes WebSocket.
// Cada reemplazo del mirror dispara un ping a todas las conexiones vivas.
type Hub struct {
	log *logger.Logger

	mu    sync.Mutex
	conns map[uuid.UUID]*websocket.Conn
}

// NewHub construye el hub y lo suscribe a los reemplazos del mirror.
func NewHub(store *snapshot.Store, log *logger.Logger) *Hub {
	h := &Hub{
		log:   log,
		conns: make(map[uuid.UUID]*websocket.Conn),
	}
	store.OnReplace(h.broadcast)
	return h
}

// UpgradeRequired middleware que corta las peticiones que no son upgrade de WebSocket.
func (h *Hub) UpgradeRequired(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Handler atiende una conexión: la registra y queda leyendo hasta que el
// cliente cierra. Las escrituras salen solo desde broadcast.
func (h *Hub) Handler() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		key := uuid.New()
		h.mu.Lock()
		h.conns[key] = conn
		h.mu.Unlock()

		defer func() {
			h.mu.Lock()
			delete(h.conns, key)
			h.mu.Unlock()
			_ = conn.Close()
		}()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
}

// broadcast empuja el ping de cambio a todas las conexiones; las que
// fallan se descartan (el defer del handler las limpia al cortarse).
func (h *Hub) broadcast() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for key, conn := range h.conns {
		if err := conn.WriteMessage(websocket.TextMessage, changedPing); err != nil {
			h.log.Debug().Err(err).Msg("cliente websocket caído")
			delete(h.conns, key)
		}
	}
}
