package http

import (
	"github.com/gofiber/fiber/v2"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	TableHandler *TableHandler
	MenuHandler  *MenuHandler
	Hub          *Hub
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Tabla: vista derivada + estado transitorio por sesión
	tbl := api.Group("/table")
	tbl.Get("/view", deps.TableHandler.View)
	tbl.Put("/search", deps.TableHandler.SetSearch)
	tbl.Put("/page", deps.TableHandler.SetPage)
	tbl.Post("/sort", deps.TableHandler.SortBy)
	tbl.Post("/select/all", deps.TableHandler.ToggleAll)
	tbl.Post("/select/:id", deps.TableHandler.ToggleOne)

	// Formulario e ítems
	api.Post("/items", deps.MenuHandler.Save)
	api.Post("/items/bulk-delete", deps.MenuHandler.BulkDelete)
	api.Post("/items/:id/edit", deps.MenuHandler.BeginEdit)
	api.Delete("/items/:id", deps.MenuHandler.Delete)
	api.Post("/form/cancel", deps.MenuHandler.CancelForm)
	api.Get("/catalog", deps.MenuHandler.Catalog)
	api.Get("/menu/report.pdf", deps.MenuHandler.Report)

	// Push de cambios: un ping por cada reemplazo del mirror
	app.Use("/ws", deps.Hub.UpgradeRequired)
	app.Get("/ws/table", deps.Hub.Handler())
}
