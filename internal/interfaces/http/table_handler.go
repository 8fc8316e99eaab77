package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/menu-inventory-api/internal/application/dto"
	"github.com/jhoicas/menu-inventory-api/internal/application/snapshot"
	"github.com/jhoicas/menu-inventory-api/internal/domain"
	"github.com/jhoicas/menu-inventory-api/internal/domain/entity"
	"github.com/jhoicas/menu-inventory-api/internal/domain/view"
)

// TableHandler maneja la vista de tabla y su estado transitorio por sesión.
type TableHandler struct {
	sessions *SessionManager
	store    *snapshot.Store
}

// NewTableHandler construye el handler.
func NewTableHandler(sessions *SessionManager, store *snapshot.Store) *TableHandler {
	return &TableHandler{sessions: sessions, store: store}
}

// View godoc
// @Summary      Vista derivada de la tabla
// @Tags         table
// @Produce      json
// @Success      200  {object}  dto.TableViewResponse
// @Router       /api/table/view [get]
func (h *TableHandler) View(c *fiber.Ctx) error {
	s := h.sessions.Get(c)
	return c.JSON(h.viewResponse(s))
}

// SetSearch godoc
// @Summary      Cambiar texto de búsqueda
// @Tags         table
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SearchRequest  true  "Texto de búsqueda"
// @Success      200   {object}  dto.TableViewResponse
// @Router       /api/table/search [put]
func (h *TableHandler) SetSearch(c *fiber.Ctx) error {
	s := h.sessions.Get(c)
	var in dto.SearchRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	s.Table.SetSearch(in.Query)
	return c.JSON(h.viewResponse(s))
}

// SetPage godoc
// @Summary      Cambiar página actual
// @Tags         table
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PageRequest  true  "Página (desde 1)"
// @Success      200   {object}  dto.TableViewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/table/page [put]
func (h *TableHandler) SetPage(c *fiber.Ctx) error {
	s := h.sessions.Get(c)
	var in dto.PageRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := s.Table.SetPage(in.Page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la página debe ser >= 1"})
	}
	return c.JSON(h.viewResponse(s))
}

// SortBy godoc
// @Summary      Ordenar por columna (la dirección alterna sola)
// @Tags         table
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SortRequest  true  "Columna"
// @Success      200   {object}  dto.TableViewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/table/sort [post]
func (h *TableHandler) SortBy(c *fiber.Ctx) error {
	s := h.sessions.Get(c)
	var in dto.SortRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := s.Table.SortBy(in.Column); err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "columna no ordenable: " + in.Column})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(h.viewResponse(s))
}

// ToggleAll godoc
// @Summary      Alternar selección de todas las filas
// @Tags         table
// @Produce      json
// @Success      200  {object}  dto.TableViewResponse
// @Router       /api/table/select/all [post]
func (h *TableHandler) ToggleAll(c *fiber.Ctx) error {
	s := h.sessions.Get(c)
	s.Table.ToggleAll()
	return c.JSON(h.viewResponse(s))
}

// ToggleOne godoc
// @Summary      Alternar selección de una fila
// @Tags         table
// @Produce      json
// @Param        id  path  string  true  "ID del ítem"
// @Success      200  {object}  dto.TableViewResponse
// @Router       /api/table/select/{id} [post]
func (h *TableHandler) ToggleOne(c *fiber.Ctx) error {
	s := h.sessions.Get(c)
	s.Table.ToggleOne(c.Params("id"))
	return c.JSON(h.viewResponse(s))
}

// viewResponse recomputa la vista derivada y la envuelve con el estado de
// UI de la sesión y el banner del último fallo de lectura, si lo hay.
func (h *TableHandler) viewResponse(s *Session) dto.TableViewResponse {
	derived := s.Table.View()

	rows := make([]dto.ItemResponse, 0, len(derived.Rows))
	for _, r := range derived.Rows {
		rows = append(rows, toItemResponse(r))
	}

	dirs := make(map[string]string)
	for col, dir := range s.Table.SortDirections() {
		dirs[col] = string(dir)
	}

	out := dto.TableViewResponse{
		Rows:           rows,
		Page:           derived.Page,
		TotalPages:     derived.TotalPages,
		TotalSales:     view.FormatAmount(derived.TotalSales),
		SearchQuery:    s.Table.Search(),
		SelectAll:      s.Table.SelectAll(),
		SortDirections: dirs,
	}
	if err := h.store.LastError(); err != nil {
		out.Banner = "No se pudo refrescar el listado; mostrando el último estado conocido."
	}
	return out
}

func toItemResponse(m entity.MenuItem) dto.ItemResponse {
	return dto.ItemResponse{
		ID:             m.ID,
		Category:       m.Category,
		Name:           m.Name,
		Size:           m.Size,
		Price:          m.Price.StringFixed(2),
		Cost:           m.Cost.StringFixed(2),
		AmountStock:    m.AmountStock,
		RemainingStock: m.RemainingStock,
		Selected:       m.Selected,
	}
}
