package table_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/menu-inventory-api/internal/application/table"
	"github.com/jhoicas/menu-inventory-api/internal/domain"
	"github.com/jhoicas/menu-inventory-api/internal/domain/entity"
	"github.com/jhoicas/menu-inventory-api/internal/domain/view"
)

func fila(id, name string, price string) entity.MenuItem {
	return entity.MenuItem{
		ID:       id,
		Category: entity.CategoryMainCourse,
		Name:     name,
		Size:     "Regular Portion",
		Price:    decimal.RequireFromString(price),
		Cost:     decimal.RequireFromString("1.00"),
	}
}

func controllerCon(rows ...entity.MenuItem) *table.Controller {
	c := table.New()
	c.ReplaceSnapshot(rows)
	return c
}

// ──────────────────────────────────────────────────────────────────────────────
// Sort
// ──────────────────────────────────────────────────────────────────────────────

// Una columna recién clickeada ordena ascendente; el segundo click alterna
// a descendente.
func TestSortBy_PrimerClickAscSegundoDesc(t *testing.T) {
	c := controllerCon(fila("B", "Dos", "2.00"), fila("A", "Uno", "1.00"), fila("C", "Tres", "3.00"))

	require.NoError(t, c.SortBy("id"))
	rows := c.Rows()
	assert.Equal(t, "A", rows[0].ID)
	assert.Equal(t, view.Asc, c.SortDirections()["id"])

	require.NoError(t, c.SortBy("id"))
	rows = c.Rows()
	assert.Equal(t, "C", rows[0].ID)
	assert.Equal(t, view.Desc, c.SortDirections()["id"])

	// Tercer click: vuelve a asc (siempre alterna alejándose de asc primero)
	require.NoError(t, c.SortBy("id"))
	assert.Equal(t, view.Asc, c.SortDirections()["id"])
}

// La dirección registrada para una columna persiste aunque se ordene por otra.
func TestSortBy_DireccionesPorColumnaPersisten(t *testing.T) {
	c := controllerCon(fila("B", "Dos", "2.00"), fila("A", "Uno", "1.00"))

	require.NoError(t, c.SortBy("id"))  // id: asc
	require.NoError(t, c.SortBy("price")) // price: asc, id conserva asc

	dirs := c.SortDirections()
	assert.Equal(t, view.Asc, dirs["id"])
	assert.Equal(t, view.Asc, dirs["price"])

	// Al volver a id, su "asc" registrado alterna a desc
	require.NoError(t, c.SortBy("id"))
	assert.Equal(t, view.Desc, c.SortDirections()["id"])
}

// Columna desconocida → entrada inválida.
func TestSortBy_ColumnaDesconocida(t *testing.T) {
	c := controllerCon(fila("A", "Uno", "1.00"))
	assert.ErrorIs(t, c.SortBy("selected"), domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Selección
// ──────────────────────────────────────────────────────────────────────────────

// ToggleAll dos veces seguidas (sin otra mutación en el medio) devuelve
// cada flag a su valor original.
func TestToggleAll_DosVecesRestaura(t *testing.T) {
	c := controllerCon(fila("A", "Uno", "1.00"), fila("B", "Dos", "2.00"))
	c.ToggleOne("B")

	antes := c.Rows()
	c.ToggleAll()
	for _, r := range c.Rows() {
		assert.True(t, r.Selected)
	}
	c.ToggleAll()
	assert.Equal(t, antes, c.Rows())
}

// ToggleOne afecta exactamente una fila y no recalcula el flag global.
func TestToggleOne_NoTocaElFlagGlobal(t *testing.T) {
	c := controllerCon(fila("A", "Uno", "1.00"), fila("B", "Dos", "2.00"))

	c.ToggleAll()
	require.True(t, c.SelectAll())

	// Deseleccionar una fila: el checkbox global sigue reflejando su último
	// valor seteado, no la conjunción de todas las filas.
	c.ToggleOne("A")
	rows := c.Rows()
	assert.False(t, rows[0].Selected)
	assert.True(t, rows[1].Selected)
	assert.True(t, c.SelectAll(), "el flag global no se recalcula")
}

func TestSelectedIDs(t *testing.T) {
	c := controllerCon(fila("A", "Uno", "1.00"), fila("B", "Dos", "2.00"), fila("C", "Tres", "3.00"))
	c.ToggleOne("A")
	c.ToggleOne("C")
	assert.Equal(t, []string{"A", "C"}, c.SelectedIDs())
}

// ──────────────────────────────────────────────────────────────────────────────
// ReplaceSnapshot
// ──────────────────────────────────────────────────────────────────────────────

// Un refetch fresco pierde la selección y el orden local; el flag global
// conserva su último valor seteado.
func TestReplaceSnapshot_PierdeSeleccionYOrden(t *testing.T) {
	c := controllerCon(fila("A", "Uno", "1.00"), fila("B", "Dos", "2.00"))
	require.NoError(t, c.SortBy("id"))
	require.NoError(t, c.SortBy("id")) // desc: B primero
	c.ToggleAll()

	c.ReplaceSnapshot([]entity.MenuItem{fila("A", "Uno", "1.00"), fila("B", "Dos", "2.00")})

	rows := c.Rows()
	assert.Equal(t, "A", rows[0].ID, "vuelve el orden de la colección")
	for _, r := range rows {
		assert.False(t, r.Selected, "la selección no sobrevive al refetch")
	}
	assert.True(t, c.SelectAll(), "el flag conserva su último valor")
}

// ──────────────────────────────────────────────────────────────────────────────
// Estado transitorio y vista
// ──────────────────────────────────────────────────────────────────────────────

func TestSetPage_Validacion(t *testing.T) {
	c := table.New()
	assert.ErrorIs(t, c.SetPage(0), domain.ErrInvalidInput)
	assert.ErrorIs(t, c.SetPage(-3), domain.ErrInvalidInput)
	assert.NoError(t, c.SetPage(2))
}

// Cambiar la búsqueda no resetea la página actual (comportamiento literal).
func TestSetSearch_NoReseteaPagina(t *testing.T) {
	c := controllerCon(fila("A", "Uno", "1.00"))
	require.NoError(t, c.SetPage(3))
	c.SetSearch("uno")
	assert.Equal(t, 3, c.View().Page)
}

// View integra filtro, orden previo, paginación y agregado global.
func TestView_Integracion(t *testing.T) {
	rows := make([]entity.MenuItem, 0, 25)
	for i := 0; i < 25; i++ {
		f := fila(string(rune('A'+i%26))+string(rune('A'+i/26)), "Dish", "10.00")
		f.AmountStock = 2
		f.RemainingStock = 1
		rows = append(rows, f)
	}
	c := controllerCon(rows...)

	v := c.View()
	assert.Len(t, v.Rows, 10)
	assert.Equal(t, 3, v.TotalPages)
	assert.True(t, v.TotalSales.Equal(decimal.RequireFromString("250")), "25 * (2-1) * 10.00")

	require.NoError(t, c.SetPage(3))
	assert.Len(t, c.View().Rows, 5)
}
