// Package pdf genera el reporte imprimible del listado del menú:
// encabezado, tabla con todas las filas del mirror y el total de ventas
// globales al pie (el mismo agregado que muestra la tabla en pantalla).
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/menu-inventory-api/internal/application/usecase"
	"github.com/jhoicas/menu-inventory-api/internal/domain/entity"
	"github.com/jhoicas/menu-inventory-api/internal/domain/view"
)

var _ usecase.MenuReportGenerator = (*MarotoReportGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReportGenerator implementa usecase.MenuReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateMenuReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateMenuReport(
	_ context.Context,
	items []entity.MenuItem,
	totalSales decimal.Decimal,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Menu List", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, it := range items {
		m.AddRows(itemRow(it))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(totalSales))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título del reporte y fecha de generación.
func headerRow() core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New("Menu List", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New(time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := func(label string, width int, al align.Type) core.Col {
		return col.New(width).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7, Align: al, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(6).Add(
		header("ID", 2, align.Left),
		header("Category", 2, align.Left),
		header("Name", 2, align.Left),
		header("Size", 2, align.Left),
		header("Cost", 1, align.Right),
		header("Stock", 1, align.Right),
		header("Left", 1, align.Right),
		header("Price", 1, align.Right),
	)
}

func itemRow(it entity.MenuItem) core.Row {
	cell := func(value string, width int, al align.Type) core.Col {
		return col.New(width).Add(text.New(value, props.Text{Size: 7, Align: al, Top: 1}))
	}
	return row.New(5).Add(
		cell(it.ID, 2, align.Left),
		cell(it.Category, 2, align.Left),
		cell(it.Name, 2, align.Left),
		cell(it.Size, 2, align.Left),
		cell(it.Cost.StringFixed(2), 1, align.Right),
		cell(strconv.Itoa(it.AmountStock), 1, align.Right),
		cell(strconv.Itoa(it.RemainingStock), 1, align.Right),
		cell(it.Price.StringFixed(2), 1, align.Right),
	)
}

// totalRow: ventas totales sobre la colección completa, sin filtro.
func totalRow(totalSales decimal.Decimal) core.Row {
	return row.New(8).Add(
		col.New(9).Add(text.New("Total Sales", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
		})),
		col.New(3).Add(text.New(view.FormatAmount(totalSales), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Color: colorPrimary,
		})),
	)
}
