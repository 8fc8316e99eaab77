package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/menu-inventory-api/internal/application/dto"
	"github.com/jhoicas/menu-inventory-api/internal/domain/entity"
)

func bebida(confirm bool) dto.SaveItemRequest {
	return dto.SaveItemRequest{
		Category:       entity.CategoryBeverages,
		Name:           "Iced Tea",
		Size:           "Large",
		Price:          "25.5",
		Cost:           "10",
		AmountStock:    "20",
		RemainingStock: "15",
		Confirm:        confirm,
	}
}

// Crear no pide confirmación: 201 con ID prefijado por categoría.
func TestSave_Crear(t *testing.T) {
	coll := newMemColl()
	app, store := testApp(t, coll)
	c := &cliente{t: t, app: app}

	resp := c.do(http.MethodPost, "/api/items", bebida(false))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	out := decode[dto.SaveItemResponse](t, resp)
	assert.True(t, out.Created)
	assert.True(t, strings.HasPrefix(out.ID, "BEV"), "id generado: %s", out.ID)

	// El precio se normaliza a dos decimales antes de persistir.
	require.NoError(t, store.Refresh(context.Background()))
	v := decode[vistaJSON](t, c.do(http.MethodGet, "/api/table/view", nil))
	require.Len(t, v.Rows, 1)
	assert.Equal(t, out.ID, v.Rows[0].ID)
	items, err := coll.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "25.50", items[0].Price.StringFixed(2))
}

// Stock total menor que el restante bloquea el guardado con errores por campo.
func TestSave_ValidacionDeStock(t *testing.T) {
	app, _ := testApp(t, newMemColl())
	c := &cliente{t: t, app: app}

	in := bebida(false)
	in.AmountStock = "5"
	in.RemainingStock = "9"
	resp := c.do(http.MethodPost, "/api/items", in)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out := decode[dto.ValidationErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", out.Code)
	assert.Equal(t, "Amount of stock cannot be less than remaining stock", out.Fields["amountStock"])
	assert.Equal(t, "Remaining stock cannot be greater than amount of stock", out.Fields["remainingStock"])
}

// Editar prellena el formulario; guardar sin confirmar devuelve 428 y con
// confirmación actualiza el mismo ID.
func TestSave_FlujoDeEdicion(t *testing.T) {
	coll := newMemColl(itemDe("BEV001", entity.CategoryBeverages, "Iced Tea", "Large", "25.00", 20, 15))
	app, _ := testApp(t, coll)
	c := &cliente{t: t, app: app}

	resp := c.do(http.MethodPost, "/api/items/BEV001/edit", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	edit := decode[dto.EditFormResponse](t, resp)
	assert.True(t, edit.Editing)
	assert.Equal(t, "BEV001", edit.ID)
	assert.Equal(t, "Iced Tea", edit.Name)
	assert.Equal(t, "25.00", edit.Price)

	in := bebida(false)
	in.Name = "Hot Tea"
	resp = c.do(http.MethodPost, "/api/items", in)
	require.Equal(t, http.StatusPreconditionRequired, resp.StatusCode)
	assert.Equal(t, "CONFIRM_REQUIRED", decode[dto.ErrorResponse](t, resp).Code)

	in.Confirm = true
	resp = c.do(http.MethodPost, "/api/items", in)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.SaveItemResponse](t, resp)
	assert.Equal(t, "BEV001", out.ID)
	assert.False(t, out.Created)

	items, err := coll.ReadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1, "editar no crea un ítem nuevo")
	assert.Equal(t, "Hot Tea", items[0].Name)
}

func TestBeginEdit_NoEncontrado(t *testing.T) {
	app, _ := testApp(t, newMemColl())
	c := &cliente{t: t, app: app}

	resp := c.do(http.MethodPost, "/api/items/NOEXISTE/edit", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)
}

// Eliminar exige confirmación explícita.
func TestDelete_Confirmacion(t *testing.T) {
	coll := newMemColl(itemDe("APP001", entity.CategoryAppetizers, "Lumpia", "Small Plate", "50.00", 10, 4))
	app, _ := testApp(t, coll)
	c := &cliente{t: t, app: app}

	resp := c.do(http.MethodDelete, "/api/items/APP001", dto.ConfirmRequest{Confirm: false})
	assert.Equal(t, http.StatusPreconditionRequired, resp.StatusCode)
	resp.Body.Close()

	resp = c.do(http.MethodDelete, "/api/items/APP001", dto.ConfirmRequest{Confirm: true})
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	items, err := coll.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

// El borrado en lote opera sobre la selección de la sesión.
func TestBulkDelete_SeleccionDeLaSesion(t *testing.T) {
	coll := newMemColl(
		itemDe("A1", entity.CategoryBeverages, "Uno", "Regular", "5.00", 1, 1),
		itemDe("B2", entity.CategoryBeverages, "Dos", "Regular", "9.00", 1, 1),
		itemDe("C3", entity.CategoryBeverages, "Tres", "Regular", "7.00", 1, 1),
	)
	app, _ := testApp(t, coll)
	c := &cliente{t: t, app: app}
	c.do(http.MethodGet, "/api/table/view", nil)
	c.do(http.MethodPost, "/api/table/select/A1", nil)
	c.do(http.MethodPost, "/api/table/select/C3", nil)

	resp := c.do(http.MethodPost, "/api/items/bulk-delete", dto.ConfirmRequest{Confirm: false})
	assert.Equal(t, http.StatusPreconditionRequired, resp.StatusCode)
	resp.Body.Close()

	resp = c.do(http.MethodPost, "/api/items/bulk-delete", dto.ConfirmRequest{Confirm: true})
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	items, err := coll.ReadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "B2", items[0].ID)
}

func TestCancelForm(t *testing.T) {
	app, _ := testApp(t, newMemColl())
	c := &cliente{t: t, app: app}

	resp := c.do(http.MethodPost, "/api/form/cancel", dto.ConfirmRequest{Confirm: false})
	assert.Equal(t, http.StatusPreconditionRequired, resp.StatusCode)
	resp.Body.Close()

	resp = c.do(http.MethodPost, "/api/form/cancel", dto.ConfirmRequest{Confirm: true})
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()
}

func TestCatalog(t *testing.T) {
	app, _ := testApp(t, newMemColl())
	c := &cliente{t: t, app: app}

	out := decode[dto.CatalogResponse](t, c.do(http.MethodGet, "/api/catalog", nil))
	assert.Equal(t, entity.Categories, out.Categories)
	assert.Contains(t, out.SizeOptions[entity.CategoryBeverages], "Large")
}

func TestReport_DevuelvePDF(t *testing.T) {
	coll := newMemColl(itemDe("BEV001", entity.CategoryBeverages, "Iced Tea", "Large", "25.00", 20, 15))
	app, _ := testApp(t, coll)

	req := httptest.NewRequest(http.MethodGet, "/api/menu/report.pdf", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "%PDF"))
}
