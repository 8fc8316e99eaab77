// Package form implementa la máquina de estados del formulario de ítems:
// Creating (sin ítem objetivo) y Editing (un ID objetivo). El submit crea
// con ID asignado por el allocator o actualiza in-place, y siempre vuelve
// a Creating.
package form

import (
	"context"
	"strconv"
	"sync"

	"github.com/jhoicas/menu-inventory-api/internal/domain"
	"github.com/jhoicas/menu-inventory-api/internal/domain/entity"
	"github.com/jhoicas/menu-inventory-api/internal/domain/repository"
	"github.com/jhoicas/menu-inventory-api/pkg/logger"
	"github.com/jhoicas/menu-inventory-api/pkg/menuid"
	"github.com/shopspring/decimal"
)

// Values son los campos del formulario tal como los tipea el usuario
// (strings crudos, todavía sin normalizar).
type Values struct {
	Category       string `json:"category"`
	Name           string `json:"name"`
	Size           string `json:"size"`
	Price          string `json:"price"`
	Cost           string `json:"cost"`
	AmountStock    string `json:"amountStock"`
	RemainingStock string `json:"remainingStock"`
}

// FieldErrors errores de validación por campo (inline, bloquean el submit).
type FieldErrors map[string]string

func (e FieldErrors) Error() string { return "validación de formulario" }

// Lookup acceso de solo lectura al mirror, para prellenar en modo edición.
type Lookup interface {
	Item(id string) (entity.MenuItem, bool)
}

// Result resultado de un submit aceptado.
type Result struct {
	ID      string
	Created bool // false = update in-place
}

// Form es la máquina de estados del formulario de un cliente.
type Form struct {
	coll  repository.MenuCollection
	ids   *menuid.Generator
	store Lookup
	log   *logger.Logger

	mu        sync.Mutex
	editingID string // "" = Creating
	values    Values
}

// New construye el formulario en estado Creating.
func New(coll repository.MenuCollection, ids *menuid.Generator, store Lookup, log *logger.Logger) *Form {
	return &Form{coll: coll, ids: ids, store: store, log: log}
}

// BeginEdit pasa a Editing prellenando todos los campos desde la entrada
// actual del mirror. Size solo se prellena si hay categoría.
func (f *Form) BeginEdit(id string) (Values, error) {
	item, ok := f.store.Item(id)
	if !ok {
		return Values{}, domain.ErrNotFound
	}
	v := Values{
		Category:       item.Category,
		Name:           item.Name,
		Price:          item.Price.StringFixed(2),
		Cost:           item.Cost.StringFixed(2),
		AmountStock:    strconv.Itoa(item.AmountStock),
		RemainingStock: strconv.Itoa(item.RemainingStock),
	}
	if item.Category != "" {
		v.Size = item.Size
	}
	f.mu.Lock()
	f.editingID = id
	f.values = v
	f.mu.Unlock()
	return v, nil
}

// Submit valida y persiste. En Creating no pide confirmación; en Editing
// exige confirmed=true antes de enviar. Tras pasar validación y
// confirmación el formulario siempre vuelve a Creating con campos limpios,
// incluso si la escritura remota falló (el fallo se loguea y se traga:
// sin rollback ni retry).
func (f *Form) Submit(ctx context.Context, v Values, confirmed bool) (Result, error) {
	if errs := Validate(v); len(errs) > 0 {
		return Result{}, errs
	}

	f.mu.Lock()
	editingID := f.editingID
	f.mu.Unlock()

	if editingID != "" && !confirmed {
		return Result{}, domain.ErrConfirmationRequired
	}

	fields := normalize(v)

	var res Result
	if editingID == "" {
		id := f.ids.Generate(v.Category)
		if err := f.coll.CreateWithID(ctx, id, fields); err != nil {
			f.log.Error().Err(err).Str("id", id).Msg("crear ítem del menú")
		}
		res = Result{ID: id, Created: true}
	} else {
		// Last-write-wins: pisa lo que haya sin chequear versión.
		if err := f.coll.UpdateFields(ctx, editingID, fields); err != nil {
			f.log.Error().Err(err).Str("id", editingID).Msg("actualizar ítem del menú")
		}
		res = Result{ID: editingID}
	}

	f.reset()
	return res, nil
}

// Cancel descarta los valores sin guardar y vuelve a Creating. Requiere
// confirmación interactiva.
func (f *Form) Cancel(confirmed bool) error {
	if !confirmed {
		return domain.ErrConfirmationRequired
	}
	f.reset()
	return nil
}

// EditingID devuelve el ID objetivo ("" si el estado es Creating).
func (f *Form) EditingID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.editingID
}

// IsEditing indica si el formulario está en estado Editing.
func (f *Form) IsEditing() bool { return f.EditingID() != "" }

// Values devuelve los valores prellenados actuales.
func (f *Form) Values() Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

func (f *Form) reset() {
	f.mu.Lock()
	f.editingID = ""
	f.values = Values{}
	f.mu.Unlock()
}

// Validate aplica la única validación de campos del formulario: el orden
// de cantidades de stock, contra los valores en curso del propio
// formulario (no contra lo persistido). No hay validación de presencia,
// rango numérico ni consistencia categoría/tamaño.
func Validate(v Values) FieldErrors {
	errs := FieldErrors{}
	amount := parseIntField(v.AmountStock)
	remaining := parseIntField(v.RemainingStock)
	if amount < remaining {
		errs["amountStock"] = "Amount of stock cannot be less than remaining stock"
	}
	if remaining > amount {
		errs["remainingStock"] = "Remaining stock cannot be greater than amount of stock"
	}
	return errs
}

// normalize convierte los valores crudos a campos persistibles: price y
// cost quedan fijados a dos decimales; los numéricos no parseables caen a cero.
func normalize(v Values) entity.Fields {
	return entity.Fields{
		Category:       v.Category,
		Name:           v.Name,
		Size:           v.Size,
		Price:          parseAmountField(v.Price),
		Cost:           parseAmountField(v.Cost),
		AmountStock:    parseIntField(v.AmountStock),
		RemainingStock: parseIntField(v.RemainingStock),
	}
}

func parseAmountField(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d.Round(2)
}

func parseIntField(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
