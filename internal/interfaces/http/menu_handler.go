package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/menu-inventory-api/internal/application/dto"
	"github.com/jhoicas/menu-inventory-api/internal/application/form"
	"github.com/jhoicas/menu-inventory-api/internal/application/usecase"
	"github.com/jhoicas/menu-inventory-api/internal/domain"
	"github.com/jhoicas/menu-inventory-api/internal/domain/entity"
)

// MenuHandler maneja el formulario de ítems y las acciones destructivas.
type MenuHandler struct {
	sessions *SessionManager
	menuUC   *usecase.MenuUseCase
	reportUC *usecase.ReportUseCase
}

// NewMenuHandler construye el handler.
func NewMenuHandler(sessions *SessionManager, menuUC *usecase.MenuUseCase, reportUC *usecase.ReportUseCase) *MenuHandler {
	return &MenuHandler{sessions: sessions, menuUC: menuUC, reportUC: reportUC}
}

// Save godoc
// @Summary      Submit del formulario: crea o actualiza según el estado de la sesión
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveItemRequest  true  "Campos del formulario"
// @Success      201   {object}  dto.SaveItemResponse
// @Failure      400   {object}  dto.ValidationErrorResponse
// @Failure      428   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *MenuHandler) Save(c *fiber.Ctx) error {
	s := h.sessions.Get(c)
	var in dto.SaveItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := s.Form.Submit(c.Context(), form.Values{
		Category:       in.Category,
		Name:           in.Name,
		Size:           in.Size,
		Price:          in.Price,
		Cost:           in.Cost,
		AmountStock:    in.AmountStock,
		RemainingStock: in.RemainingStock,
	}, in.Confirm)
	if err != nil {
		var fieldErrs form.FieldErrors
		if errors.As(err, &fieldErrs) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ValidationErrorResponse{Code: "VALIDATION", Fields: fieldErrs})
		}
		if errors.Is(err, domain.ErrConfirmationRequired) {
			return c.Status(fiber.StatusPreconditionRequired).JSON(dto.ErrorResponse{Code: "CONFIRM_REQUIRED", Message: "actualizar un ítem requiere confirmación"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	status := fiber.StatusOK
	if res.Created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(dto.SaveItemResponse{ID: res.ID, Created: res.Created})
}

// BeginEdit godoc
// @Summary      Entrar en modo edición con los campos prellenados
// @Tags         items
// @Produce      json
// @Param        id  path  string  true  "ID del ítem"
// @Success      200  {object}  dto.EditFormResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id}/edit [post]
func (h *MenuHandler) BeginEdit(c *fiber.Ctx) error {
	s := h.sessions.Get(c)
	v, err := s.Form.BeginEdit(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ítem no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.EditFormResponse{
		Editing:        true,
		ID:             s.Form.EditingID(),
		Category:       v.Category,
		Name:           v.Name,
		Size:           v.Size,
		Price:          v.Price,
		Cost:           v.Cost,
		AmountStock:    v.AmountStock,
		RemainingStock: v.RemainingStock,
	})
}

// CancelForm godoc
// @Summary      Cancelar el formulario descartando los valores sin guardar
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConfirmRequest  true  "Confirmación"
// @Success      204
// @Failure      428   {object}  dto.ErrorResponse
// @Router       /api/form/cancel [post]
func (h *MenuHandler) CancelForm(c *fiber.Ctx) error {
	s := h.sessions.Get(c)
	var in dto.ConfirmRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := s.Form.Cancel(in.Confirm); err != nil {
		return c.Status(fiber.StatusPreconditionRequired).JSON(dto.ErrorResponse{Code: "CONFIRM_REQUIRED", Message: "cancelar requiere confirmación"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete godoc
// @Summary      Eliminar un ítem
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del ítem"
// @Param        body  body  dto.ConfirmRequest  true  "Confirmación"
// @Success      204
// @Failure      428   {object}  dto.ErrorResponse
// @Router       /api/items/{id} [delete]
func (h *MenuHandler) Delete(c *fiber.Ctx) error {
	h.sessions.Get(c)
	var in dto.ConfirmRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.menuUC.Delete(c.Context(), c.Params("id"), in.Confirm); err != nil {
		return c.Status(fiber.StatusPreconditionRequired).JSON(dto.ErrorResponse{Code: "CONFIRM_REQUIRED", Message: "eliminar requiere confirmación"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// BulkDelete godoc
// @Summary      Eliminar en lote las filas seleccionadas de la sesión
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConfirmRequest  true  "Confirmación"
// @Success      204
// @Failure      428   {object}  dto.ErrorResponse
// @Router       /api/items/bulk-delete [post]
func (h *MenuHandler) BulkDelete(c *fiber.Ctx) error {
	s := h.sessions.Get(c)
	var in dto.ConfirmRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	ids := s.Table.SelectedIDs()
	if err := h.menuUC.BulkDelete(c.Context(), ids, in.Confirm); err != nil {
		return c.Status(fiber.StatusPreconditionRequired).JSON(dto.ErrorResponse{Code: "CONFIRM_REQUIRED", Message: "eliminar en lote requiere confirmación"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Report godoc
// @Summary      Reporte PDF del listado del menú
// @Tags         items
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/menu/report.pdf [get]
func (h *MenuHandler) Report(c *fiber.Ctx) error {
	pdfBytes, err := h.reportUC.Generate(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="menu-list.pdf"`)
	return c.Send(pdfBytes)
}

// Catalog godoc
// @Summary      Categorías válidas y opciones de tamaño por categoría
// @Tags         items
// @Produce      json
// @Success      200  {object}  dto.CatalogResponse
// @Router       /api/catalog [get]
func (h *MenuHandler) Catalog(c *fiber.Ctx) error {
	sizes := make(map[string][]string, len(entity.Categories))
	for _, cat := range entity.Categories {
		sizes[cat] = entity.SizeOptions(cat)
	}
	return c.JSON(dto.CatalogResponse{Categories: entity.Categories, SizeOptions: sizes})
}
