package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem representa un ítem del menú tal como vive en la colección remota.
// Selected es estado transitorio de UI: nunca se persiste y vuelve a false en
// cada refetch completo de la colección.
type MenuItem struct {
	ID             string
	Category       string
	Name           string
	Size           string // solo tiene sentido cuando Category está definida
	Price          decimal.Decimal // venta, dos decimales
	Cost           decimal.Decimal // costo, dos decimales
	AmountStock    int
	RemainingStock int
	Selected       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Fields agrupa los campos editables de un MenuItem (todo menos ID y Selected).
// Es lo que el formulario envía en un create o update.
type Fields struct {
	Category       string
	Name           string
	Size           string
	Price          decimal.Decimal
	Cost           decimal.Decimal
	AmountStock    int
	RemainingStock int
}

// Sold devuelve las unidades vendidas (stock total menos stock restante).
func (m MenuItem) Sold() int {
	return m.AmountStock - m.RemainingStock
}

// Sales devuelve el importe vendido del ítem: (AmountStock - RemainingStock) * Price.
func (m MenuItem) Sales() decimal.Decimal {
	return decimal.NewFromInt(int64(m.Sold())).Mul(m.Price)
}
