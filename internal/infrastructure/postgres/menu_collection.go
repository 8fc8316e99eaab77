package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/menu-inventory-api/internal/domain"
	"github.com/jhoicas/menu-inventory-api/internal/domain/entity"
	"github.com/jhoicas/menu-inventory-api/internal/domain/repository"
)

var _ repository.MenuCollection = (*MenuCollectionRepo)(nil)

// MenuCollectionRepo implementación del puerto MenuCollection sobre PostgreSQL
// (usable con pool o tx). La tabla menu_items hace de colección de documentos
// con ID string; un trigger NOTIFY publica cada cambio en el canal de escucha.
type MenuCollectionRepo struct {
	q Querier
}

// NewMenuCollection construye el adaptador de persistencia. Pasar pool o tx (Querier).
func NewMenuCollection(q Querier) *MenuCollectionRepo {
	return &MenuCollectionRepo{q: q}
}

// ReadAll devuelve la colección completa. Selected siempre arranca en false:
// es estado de UI y no se persiste.
func (r *MenuCollectionRepo) ReadAll(ctx context.Context) ([]entity.MenuItem, error) {
	query := `
		SELECT id, category, name, size, price, cost, amount_stock, remaining_stock, created_at, updated_at
		FROM menu_items ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("read all menu items: %w", err)
	}
	defer rows.Close()
	var list []entity.MenuItem
	for rows.Next() {
		var m entity.MenuItem
		if err := rows.Scan(&m.ID, &m.Category, &m.Name, &m.Size, &m.Price, &m.Cost,
			&m.AmountStock, &m.RemainingStock, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// CreateWithID inserta un documento con ID explícito asignado por el allocator.
func (r *MenuCollectionRepo) CreateWithID(ctx context.Context, id string, f entity.Fields) error {
	now := time.Now()
	query := `
		INSERT INTO menu_items (id, category, name, size, price, cost, amount_stock, remaining_stock, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		id, f.Category, f.Name, f.Size, f.Price, f.Cost, f.AmountStock, f.RemainingStock, now, now,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert menu item: %w", err)
	}
	return nil
}

// UpdateFields sobreescribe los campos del documento. Last-write-wins:
// sin chequeo de versión, la escritura más tardía pisa a la anterior.
func (r *MenuCollectionRepo) UpdateFields(ctx context.Context, id string, f entity.Fields) error {
	query := `
		UPDATE menu_items
		SET category = $2, name = $3, size = $4, price = $5, cost = $6, amount_stock = $7, remaining_stock = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		id, f.Category, f.Name, f.Size, f.Price, f.Cost, f.AmountStock, f.RemainingStock, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("update menu item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteOne elimina un documento por ID. Borrar un ID inexistente no es error.
func (r *MenuCollectionRepo) DeleteOne(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete menu item: %w", err)
	}
	return nil
}
