package usecase

import (
	"context"

	"github.com/jhoicas/menu-inventory-api/internal/domain/entity"
	"github.com/jhoicas/menu-inventory-api/internal/domain/view"
)

// SnapshotReader acceso de solo lectura al mirror para armar el reporte.
type SnapshotReader interface {
	Items() []entity.MenuItem
}

// ReportUseCase genera el reporte PDF del listado del menú con el agregado
// de ventas globales al pie.
type ReportUseCase struct {
	store SnapshotReader
	gen   MenuReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(store SnapshotReader, gen MenuReportGenerator) *ReportUseCase {
	return &ReportUseCase{store: store, gen: gen}
}

// Generate arma el PDF con el contenido actual del mirror.
func (uc *ReportUseCase) Generate(ctx context.Context) ([]byte, error) {
	items := uc.store.Items()
	return uc.gen.GenerateMenuReport(ctx, items, view.TotalSales(items))
}
