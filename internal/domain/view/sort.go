package view

import (
	"sort"

	"github.com/jhoicas/menu-inventory-api/internal/domain/entity"
)

// Direction sentido de ordenamiento de una columna.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Columnas ordenables de la tabla.
const (
	ColID             = "id"
	ColCategory       = "category"
	ColName           = "name"
	ColSize           = "size"
	ColCost           = "cost"
	ColAmountStock    = "amountStock"
	ColRemainingStock = "remainingStock"
	ColPrice          = "price"
)

// numericColumns columnas que se comparan como punto flotante; el resto
// se compara lexicográficamente sobre el string crudo.
var numericColumns = map[string]bool{
	ColCost:           true,
	ColAmountStock:    true,
	ColRemainingStock: true,
	ColPrice:          true,
}

// SortableColumn indica si column es una columna ordenable conocida.
func SortableColumn(column string) bool {
	switch column {
	case ColID, ColCategory, ColName, ColSize, ColCost, ColAmountStock, ColRemainingStock, ColPrice:
		return true
	}
	return false
}

// SortRows devuelve una copia de rows ordenada por la columna dada.
// Estable: los empates conservan el orden relativo original. No muta
// ningún campo de las filas.
func SortRows(rows []entity.MenuItem, column string, dir Direction) []entity.MenuItem {
	out := make([]entity.MenuItem, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		if numericColumns[column] {
			a, b := numericValue(out[i], column), numericValue(out[j], column)
			if dir == Asc {
				return a < b
			}
			return a > b
		}
		a, b := stringValue(out[i], column), stringValue(out[j], column)
		if dir == Asc {
			return a < b
		}
		return a > b
	})
	return out
}

func numericValue(m entity.MenuItem, column string) float64 {
	switch column {
	case ColCost:
		return m.Cost.InexactFloat64()
	case ColPrice:
		return m.Price.InexactFloat64()
	case ColAmountStock:
		return float64(m.AmountStock)
	case ColRemainingStock:
		return float64(m.RemainingStock)
	}
	return 0
}

func stringValue(m entity.MenuItem, column string) string {
	switch column {
	case ColID:
		return m.ID
	case ColCategory:
		return m.Category
	case ColName:
		return m.Name
	case ColSize:
		return m.Size
	}
	return ""
}
