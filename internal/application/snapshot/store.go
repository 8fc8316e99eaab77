// Package snapshot mantiene el mirror en memoria de la colección remota.
// El mirror es caché derivada y descartable: la fuente de verdad es la
// colección; en cada notificación de cambio se refetchea todo y se
// reemplaza el contenido completo, sin patching incremental.
package snapshot

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/jhoicas/menu-inventory-api/internal/domain/entity"
	"github.com/jhoicas/menu-inventory-api/internal/domain/repository"
	"github.com/jhoicas/menu-inventory-api/pkg/logger"
)

// Store es el espejo local de la colección de ítems del menú.
//
// Cada Refresh lleva un token monotónico: si al terminar un refetch ya se
// emitió uno más nuevo, el resultado viejo se descarta en lugar de pisar
// al más reciente (invalidate → reload → swap).
type Store struct {
	coll    repository.MenuCollection
	watcher repository.CollectionWatcher
	log     *logger.Logger

	issued atomic.Uint64 // último token de refetch emitido

	mu      sync.RWMutex
	items   []entity.MenuItem
	lastErr error // último fallo de lectura; se conserva el snapshot bueno anterior

	subMu sync.RWMutex
	subs  map[uuid.UUID]func()
}

// New construye el store vacío.
func New(coll repository.MenuCollection, watcher repository.CollectionWatcher, log *logger.Logger) *Store {
	return &Store{
		coll:    coll,
		watcher: watcher,
		log:     log,
		subs:    make(map[uuid.UUID]func()),
	}
}

// Run hace el read-all inicial y luego queda suscrito a la colección:
// cada notificación (de cualquier tipo, ecos propios incluidos) dispara
// un refetch completo. Bloquea hasta que ctx se cancela.
func (s *Store) Run(ctx context.Context) error {
	if err := s.Refresh(ctx); err != nil {
		s.log.Error().Err(err).Msg("carga inicial de la colección")
	}
	return s.watcher.Watch(ctx, func() {
		// El refetch corre aparte para no bloquear la escucha; si llegan
		// varias notificaciones seguidas los refetch se coalescen vía token.
		go func() {
			if err := s.Refresh(ctx); err != nil && ctx.Err() == nil {
				s.log.Error().Err(err).Msg("refetch tras notificación de cambio")
			}
		}()
	})
}

// Refresh hace un read-all y reemplaza el mirror completo. Toda fila vuelve
// con Selected=false. Si la lectura falla se conserva el último snapshot
// bueno y el error queda disponible para un banner no bloqueante.
func (s *Store) Refresh(ctx context.Context) error {
	token := s.issued.Add(1)

	items, err := s.coll.ReadAll(ctx)

	s.mu.Lock()
	if s.issued.Load() != token {
		// Un refetch más nuevo ya arrancó: este resultado está superado.
		s.mu.Unlock()
		return nil
	}
	if err != nil {
		s.lastErr = err
		s.mu.Unlock()
		return err
	}
	s.items = items
	s.lastErr = nil
	s.mu.Unlock()

	s.notify()
	return nil
}

// Items devuelve una copia del mirror actual.
func (s *Store) Items() []entity.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.MenuItem, len(s.items))
	copy(out, s.items)
	return out
}

// Item busca un ítem por ID en el mirror actual.
func (s *Store) Item(id string) (entity.MenuItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return entity.MenuItem{}, false
}

// LastError devuelve el último fallo de lectura (nil si el último refetch fue bueno).
func (s *Store) LastError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// OnReplace registra un callback que se invoca después de cada reemplazo
// del mirror. Devuelve la función para desuscribirse.
func (s *Store) OnReplace(fn func()) func() {
	key := uuid.New()
	s.subMu.Lock()
	s.subs[key] = fn
	s.subMu.Unlock()
	return func() {
		s.subMu.Lock()
		delete(s.subs, key)
		s.subMu.Unlock()
	}
}

func (s *Store) notify() {
	s.subMu.RLock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.RUnlock()
	for _, fn := range fns {
		fn()
	}
}
