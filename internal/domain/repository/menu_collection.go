package repository

import (
	"context"

	"github.com/jhoicas/menu-inventory-api/internal/domain/entity"
)

// MenuCollection define el puerto hacia la colección remota de ítems del menú (DIP).
// El mirror local nunca es fuente de verdad: siempre se refetchea completo.
type MenuCollection interface {
	// ReadAll devuelve todos los documentos de la colección (consistencia eventual).
	ReadAll(ctx context.Context) ([]entity.MenuItem, error)
	// CreateWithID inserta un documento con ID explícito. ErrDuplicate si ya existe.
	CreateWithID(ctx context.Context, id string, f entity.Fields) error
	// UpdateFields sobreescribe los campos nombrados de un documento existente.
	// Last-write-wins: sin chequeo de versión. ErrNotFound si el ID no existe.
	UpdateFields(ctx context.Context, id string, f entity.Fields) error
	// DeleteOne elimina un documento por ID. Borrar un ID inexistente no es error.
	DeleteOne(ctx context.Context, id string) error
}

// CollectionWatcher define la suscripción de cambios sobre la colección.
type CollectionWatcher interface {
	// Watch bloquea e invoca onChange en cada notificación de cambio, incluidos
	// los ecos de las escrituras propias. La notificación no trae payload: solo
	// significa "algo cambió". Retorna cuando ctx se cancela.
	Watch(ctx context.Context, onChange func()) error
}
