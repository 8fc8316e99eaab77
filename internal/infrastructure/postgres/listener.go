package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/menu-inventory-api/internal/domain/repository"
)

// Canal NOTIFY publicado por el trigger de menu_items.
const notifyChannel = "menu_items_changed"

var _ repository.CollectionWatcher = (*Listener)(nil)

// Listener implementa CollectionWatcher con LISTEN/NOTIFY de PostgreSQL.
// La notificación no trae payload: el trigger dispara por statement y el
// consumidor reacciona refetcheando la colección completa.
type Listener struct {
	pool *pgxpool.Pool
}

// NewListener construye el watcher sobre el pool.
func NewListener(pool *pgxpool.Pool) *Listener {
	return &Listener{pool: pool}
}

// Watch toma una conexión dedicada del pool, se suscribe al canal y bloquea
// invocando onChange en cada notificación. Retorna nil cuando ctx se cancela.
func (l *Listener) Watch(ctx context.Context, onChange func()) error {
	pc, err := l.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire listener conn: %w", err)
	}
	// Hijack: la conexión queda fuera del pool mientras dure la escucha.
	conn := pc.Hijack()
	defer conn.Close(context.Background())

	if _, err := conn.Exec(ctx, "LISTEN "+notifyChannel); err != nil {
		return fmt.Errorf("listen %s: %w", notifyChannel, err)
	}

	for {
		if _, err := conn.WaitForNotification(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("wait for notification: %w", err)
		}
		onChange()
	}
}
