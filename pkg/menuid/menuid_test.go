package menuid_test

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/menu-inventory-api/pkg/menuid"
)

// relojFijo devuelve un generador clavado en el timestamp dado (ms desde epoch).
func relojFijo(ms int64) *menuid.Generator {
	return menuid.NewWithClock(func() time.Time { return time.UnixMilli(ms) })
}

// Escenario de referencia: timestamp cuyo base-36 es "k3f8g2" + categoría
// Beverages → "BEVK3F8G2".
func TestGenerate_EscenarioBeverages(t *testing.T) {
	ms, err := strconv.ParseInt("k3f8g2", 36, 64)
	require.NoError(t, err)

	id := relojFijo(ms).Generate("Beverages")
	assert.Equal(t, "BEVK3F8G2", id)
}

// Prefijos por categoría; lo no reconocido cae a MNC.
func TestGenerate_Prefijos(t *testing.T) {
	g := relojFijo(1)
	assert.True(t, strings.HasPrefix(g.Generate("Appetizers"), "APP"))
	assert.True(t, strings.HasPrefix(g.Generate("Desserts"), "DES"))
	assert.True(t, strings.HasPrefix(g.Generate("Beverages"), "BEV"))
	assert.True(t, strings.HasPrefix(g.Generate("Main Course"), "MNC"))
	assert.True(t, strings.HasPrefix(g.Generate("no-existe"), "MNC"))
	assert.True(t, strings.HasPrefix(g.Generate(""), "MNC"))
}

// La categoría matchea case-insensitive y el ID sale todo en mayúsculas.
func TestGenerate_CaseInsensitiveYMayusculas(t *testing.T) {
	g := relojFijo(123456789)
	id := g.Generate("bEvErAgEs")
	assert.True(t, strings.HasPrefix(id, "BEV"))
	assert.Equal(t, strings.ToUpper(id), id)
}

// Mismo milisegundo → mismo ID: la unicidad es probabilística por diseño.
func TestGenerate_MismoMilisegundoColisiona(t *testing.T) {
	g := relojFijo(42)
	assert.Equal(t, g.Generate("Desserts"), g.Generate("Desserts"))
}
