// Package menuid genera identificadores legibles para ítems del menú:
// un prefijo de 3 letras según la categoría más el timestamp actual en
// base 36, todo en mayúsculas (ej. "BEVK3F8G2").
//
// La unicidad es probabilística: dos asignaciones dentro del mismo
// milisegundo colisionan. Aceptado para el volumen de un menú.
package menuid

import (
	"strconv"
	"strings"
	"time"
)

// Generator asigna IDs. El reloj es inyectable para tests.
type Generator struct {
	now func() time.Time
}

// New construye un generador con el reloj del sistema.
func New() *Generator {
	return &Generator{now: time.Now}
}

// NewWithClock construye un generador con un reloj fijo (tests).
func NewWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

// Generate deriva el ID desde la categoría (case-insensitive) y la hora
// actual. Categorías no reconocidas caen al prefijo de Main Course.
func (g *Generator) Generate(category string) string {
	var prefix string
	switch strings.ToLower(category) {
	case "appetizers":
		prefix = "APP"
	case "desserts":
		prefix = "DES"
	case "beverages":
		prefix = "BEV"
	default:
		prefix = "MNC"
	}
	ts := strconv.FormatInt(g.now().UnixMilli(), 36)
	return strings.ToUpper(prefix + ts)
}
