package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/menu-inventory-api/internal/domain/entity"
)

// MenuReportGenerator puerto hacia el generador del reporte PDF del menú.
type MenuReportGenerator interface {
	GenerateMenuReport(ctx context.Context, items []entity.MenuItem, totalSales decimal.Decimal) ([]byte, error)
}
