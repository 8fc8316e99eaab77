package http

import (
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/menu-inventory-api/internal/application/form"
	"github.com/jhoicas/menu-inventory-api/internal/application/snapshot"
	"github.com/jhoicas/menu-inventory-api/internal/application/table"
	"github.com/jhoicas/menu-inventory-api/internal/domain/repository"
	"github.com/jhoicas/menu-inventory-api/pkg/logger"
	"github.com/jhoicas/menu-inventory-api/pkg/menuid"
)

// HeaderSessionID identifica la sesión de UI de un cliente. Se emite en el
// primer contacto y el cliente lo reenvía en cada petición.
const HeaderSessionID = "X-Session-ID"

// Session estado de UI de un cliente conectado: su tabla (selección,
// orden, búsqueda, página) y su formulario (Creating/Editing).
type Session struct {
	ID       string
	Table    *table.Controller
	Form     *form.Form
	lastSeen time.Time
}

// SessionManager crea y expira sesiones, y mantiene la tabla de cada una
// sincronizada con el mirror: en cada reemplazo del snapshot todas las
// sesiones reciben las filas frescas (y pierden su selección, igual que
// en cada refetch).
type SessionManager struct {
	store *snapshot.Store
	coll  repository.MenuCollection
	ids   *menuid.Generator
	log   *logger.Logger
	ttl   time.Duration

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewSessionManager construye el manager y se suscribe a los reemplazos del mirror.
func NewSessionManager(store *snapshot.Store, coll repository.MenuCollection, ids *menuid.Generator, ttl time.Duration, log *logger.Logger) *SessionManager {
	m := &SessionManager{
		store:    store,
		coll:     coll,
		ids:      ids,
		log:      log,
		ttl:      ttl,
		sessions: make(map[string]*Session),
	}
	store.OnReplace(m.replaceAll)
	return m
}

// Get devuelve la sesión de la petición, creándola si no existe o expiró.
// Siempre escribe el header de sesión en la respuesta.
func (m *SessionManager) Get(c *fiber.Ctx) *Session {
	id := c.Get(HeaderSessionID)
	now := time.Now()

	m.mu.Lock()
	m.sweepLocked(now)
	s, ok := m.sessions[id]
	if !ok {
		id = uuid.New().String()
		s = &Session{
			ID:    id,
			Table: table.New(),
			Form:  form.New(m.coll, m.ids, m.store, m.log),
		}
		s.Table.ReplaceSnapshot(m.store.Items())
		m.sessions[id] = s
	}
	s.lastSeen = now
	m.mu.Unlock()

	c.Set(HeaderSessionID, id)
	return s
}

// replaceAll empuja el snapshot fresco a la tabla de todas las sesiones vivas.
func (m *SessionManager) replaceAll() {
	items := m.store.Items()
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.sessions {
		s.Table.ReplaceSnapshot(items)
	}
}

// sweepLocked descarta sesiones inactivas. Llamar con m.mu tomado.
func (m *SessionManager) sweepLocked(now time.Time) {
	for id, s := range m.sessions {
		if now.Sub(s.lastSeen) > m.ttl {
			delete(m.sessions, id)
		}
	}
}
