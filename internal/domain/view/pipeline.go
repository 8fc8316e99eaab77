// Package view implementa la cadena de derivación de la tabla del menú:
// filtrar por texto de búsqueda → paginar → agregar ventas totales.
// Todas las funciones son puras; se recomputa todo en cada cambio del
// mirror o del estado transitorio de UI (búsqueda, página).
package view

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/menu-inventory-api/internal/domain/entity"
)

// PageSize filas por página de la tabla.
const PageSize = 10

// Derived es la vista derivada que se renderiza: las filas de la página
// actual, el total de páginas para el control de paginación y el agregado
// de ventas sobre la colección completa.
type Derived struct {
	Rows       []entity.MenuItem
	Page       int
	TotalPages int
	TotalSales decimal.Decimal
}

// Compute recalcula la vista derivada desde cero.
// El agregado de ventas se calcula sobre TODO el mirror, no sobre el
// subconjunto filtrado/paginado: la tabla refleja la búsqueda activa pero
// el total de ventas es global. La asimetría es intencional.
func Compute(all []entity.MenuItem, query string, page int) Derived {
	filtered := Filter(all, query)
	return Derived{
		Rows:       Page(filtered, page),
		Page:       page,
		TotalPages: TotalPages(len(filtered)),
		TotalSales: TotalSales(all),
	}
}

// Filter retiene las filas donde el texto de búsqueda (en minúsculas) es
// substring de name, size, category o id (también en minúsculas).
// Búsqueda vacía retiene todas las filas. Idempotente.
func Filter(rows []entity.MenuItem, query string) []entity.MenuItem {
	q := strings.ToLower(query)
	out := make([]entity.MenuItem, 0, len(rows))
	for _, r := range rows {
		if strings.Contains(strings.ToLower(r.Name), q) ||
			strings.Contains(strings.ToLower(r.Size), q) ||
			strings.Contains(strings.ToLower(r.Category), q) ||
			strings.Contains(strings.ToLower(r.ID), q) {
			out = append(out, r)
		}
	}
	return out
}

// TotalPages devuelve ceil(n / PageSize). Un conjunto vacío da 0 páginas;
// los controles de paginación se deshabilitan en ambos extremos.
func TotalPages(n int) int {
	return (n + PageSize - 1) / PageSize
}

// Page devuelve la porción [(page-1)*PageSize, page*PageSize) del
// conjunto filtrado (y ya ordenado aguas arriba). Fuera de rango → vacío.
func Page(rows []entity.MenuItem, page int) []entity.MenuItem {
	start := (page - 1) * PageSize
	if start < 0 || start >= len(rows) {
		return []entity.MenuItem{}
	}
	end := start + PageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

// TotalSales suma (AmountStock - RemainingStock) * Price sobre todas las
// filas recibidas. Invariante bajo filtro, orden y paginación: cambiar la
// búsqueda o la página no debe alterar el total mostrado.
func TotalSales(rows []entity.MenuItem) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Sales())
	}
	return total
}
