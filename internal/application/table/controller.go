// Package table es el estado de tabla de un cliente: las filas del mirror
// con su flag de selección, las direcciones de orden por columna, el texto
// de búsqueda y la página actual. Cada operación reemplaza la colección de
// filas completa en lugar de mutar entradas sueltas.
package table

import (
	"sync"

	"github.com/jhoicas/menu-inventory-api/internal/domain"
	"github.com/jhoicas/menu-inventory-api/internal/domain/entity"
	"github.com/jhoicas/menu-inventory-api/internal/domain/view"
)

// Controller posee el estado de UI de la tabla y expone las operaciones
// que lo transforman. La vista derivada se recomputa completa en View().
type Controller struct {
	mu        sync.Mutex
	rows      []entity.MenuItem
	selectAll bool
	sortDirs  map[string]view.Direction
	search    string
	page      int
}

// New construye un controller vacío en la página 1.
func New() *Controller {
	return &Controller{
		sortDirs: make(map[string]view.Direction),
		page:     1,
	}
}

// ReplaceSnapshot reemplaza las filas con un refetch fresco del mirror.
// La selección se pierde (el fetch no trae Selected) y el orden vuelve al
// de la colección; el flag select-all conserva su último valor seteado.
func (c *Controller) ReplaceSnapshot(items []entity.MenuItem) {
	rows := make([]entity.MenuItem, len(items))
	copy(rows, items)
	c.mu.Lock()
	c.rows = rows
	c.mu.Unlock()
}

// SetSearch cambia el texto de búsqueda. No resetea la página actual.
func (c *Controller) SetSearch(q string) {
	c.mu.Lock()
	c.search = q
	c.mu.Unlock()
}

// SetPage cambia la página actual (mínimo 1).
func (c *Controller) SetPage(page int) error {
	if page < 1 {
		return domain.ErrInvalidInput
	}
	c.mu.Lock()
	c.page = page
	c.mu.Unlock()
	return nil
}

// SortBy reordena las filas por la columna dada. La dirección siguiente es
// "asc" salvo que la última usada para esa columna ya sea "asc", en cuyo
// caso alterna a "desc". Las direcciones registradas para otras columnas
// persisten pero no tienen efecto visible hasta que se vuelvan a clickear.
func (c *Controller) SortBy(column string) error {
	if !view.SortableColumn(column) {
		return domain.ErrInvalidInput
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	dir := view.Asc
	if c.sortDirs[column] == view.Asc {
		dir = view.Desc
	}
	c.sortDirs[column] = dir
	c.rows = view.SortRows(c.rows, column, dir)
	return nil
}

// ToggleAll alterna el flag global y escribe el nuevo valor en todas las filas.
func (c *Controller) ToggleAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selectAll = !c.selectAll
	rows := make([]entity.MenuItem, len(c.rows))
	for i, r := range c.rows {
		r.Selected = c.selectAll
		rows[i] = r
	}
	c.rows = rows
}

// ToggleOne alterna la selección de exactamente una fila. El flag global
// no se recalcula: el checkbox de "select all" refleja su último valor
// seteado, no la conjunción de todas las filas.
func (c *Controller) ToggleOne(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rows := make([]entity.MenuItem, len(c.rows))
	for i, r := range c.rows {
		if r.ID == id {
			r.Selected = !r.Selected
		}
		rows[i] = r
	}
	c.rows = rows
}

// View recomputa la vista derivada completa: filtro → paginación → agregado.
func (c *Controller) View() view.Derived {
	c.mu.Lock()
	defer c.mu.Unlock()
	return view.Compute(c.rows, c.search, c.page)
}

// SelectedIDs devuelve los IDs de las filas actualmente seleccionadas.
func (c *Controller) SelectedIDs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	var ids []string
	for _, r := range c.rows {
		if r.Selected {
			ids = append(ids, r.ID)
		}
	}
	return ids
}

// Item busca una fila por ID.
func (c *Controller) Item(id string) (entity.MenuItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, r := range c.rows {
		if r.ID == id {
			return r, true
		}
	}
	return entity.MenuItem{}, false
}

// Rows devuelve una copia de todas las filas en su orden actual.
func (c *Controller) Rows() []entity.MenuItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]entity.MenuItem, len(c.rows))
	copy(out, c.rows)
	return out
}

// Search devuelve el texto de búsqueda actual.
func (c *Controller) Search() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.search
}

// SelectAll devuelve el último valor seteado del flag global.
func (c *Controller) SelectAll() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selectAll
}

// SortDirections devuelve una copia del mapa columna → última dirección usada.
func (c *Controller) SortDirections() map[string]view.Direction {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]view.Direction, len(c.sortDirs))
	for k, v := range c.sortDirs {
		out[k] = v
	}
	return out
}
