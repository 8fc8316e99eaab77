package usecase

import (
	"context"

	"github.com/jhoicas/menu-inventory-api/internal/domain"
	"github.com/jhoicas/menu-inventory-api/internal/domain/repository"
	"github.com/jhoicas/menu-inventory-api/pkg/logger"
)

// MenuUseCase acciones destructivas sobre la colección: borrado individual
// y en lote. Ambas exigen confirmación interactiva previa; los fallos de
// escritura remota se loguean y se tragan (la suscripción refresca la vista).
type MenuUseCase struct {
	coll repository.MenuCollection
	log  *logger.Logger
}

// NewMenuUseCase construye el caso de uso.
func NewMenuUseCase(coll repository.MenuCollection, log *logger.Logger) *MenuUseCase {
	return &MenuUseCase{coll: coll, log: log}
}

// Delete elimina un ítem por ID, previa confirmación.
func (uc *MenuUseCase) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return domain.ErrConfirmationRequired
	}
	if err := uc.coll.DeleteOne(ctx, id); err != nil {
		uc.log.Error().Err(err).Str("id", id).Msg("eliminar ítem del menú")
	}
	return nil
}

// BulkDelete elimina los ítems seleccionados, previa confirmación única
// para todo el lote.
func (uc *MenuUseCase) BulkDelete(ctx context.Context, ids []string, confirmed bool) error {
	if !confirmed {
		return domain.ErrConfirmationRequired
	}
	for _, id := range ids {
		if err := uc.coll.DeleteOne(ctx, id); err != nil {
			uc.log.Error().Err(err).Str("id", id).Msg("eliminar ítem del menú (lote)")
		}
	}
	return nil
}
