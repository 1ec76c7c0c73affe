package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/inventario-tiendas/internal/domain/entity"
	"github.com/tu-usuario/inventario-tiendas/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo historial de movimientos sobre PostgreSQL (usable con pool o tx).
// Append-only: solo INSERT y SELECT.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create inserta el movimiento; id y created_at los asigna la base y quedan
// en m vía RETURNING.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	query := `
		INSERT INTO movements (store_id, product_id, kind, quantity, user_id, note)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`
	note := (*string)(nil)
	if m.Note != "" {
		note = &m.Note
	}
	err := r.q.QueryRow(ctx, query,
		m.StoreID, m.ProductID, m.Kind, m.Quantity, m.UserID, note,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// List devuelve el historial enriquecido, más reciente primero (desempate por
// id de inserción). storeID vacío lista todas las tiendas.
func (r *MovementRepo) List(ctx context.Context, storeID string, limit int) ([]repository.MovementRow, error) {
	query := `
		SELECT m.id, m.store_id, m.product_id, m.kind, m.quantity, m.user_id,
		       COALESCE(m.note, '') AS note, m.created_at,
		       p.sku, p.name AS product_name,
		       COALESCE(u.username, '') AS username,
		       s.name AS store_name
		FROM movements m
		JOIN products p ON p.id = m.product_id
		JOIN stores s ON s.id = m.store_id
		LEFT JOIN users u ON u.id = m.user_id`
	args := []any{}
	pos := 1
	if storeID != "" {
		query += fmt.Sprintf(" WHERE m.store_id = $%d", pos)
		args = append(args, storeID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY m.created_at DESC, m.id DESC LIMIT $%d", pos)
	args = append(args, limit)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []repository.MovementRow
	for rows.Next() {
		var row repository.MovementRow
		if err := rows.Scan(
			&row.ID, &row.StoreID, &row.ProductID, &row.Kind, &row.Quantity,
			&row.UserID, &row.Note, &row.CreatedAt,
			&row.SKU, &row.ProductName, &row.Username, &row.StoreName,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
