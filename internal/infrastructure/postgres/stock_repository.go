package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventario-tiendas/internal/domain/entity"
	"github.com/tu-usuario/inventario-tiendas/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene cantidad y mínimo de un par (tienda, producto).
// Devuelve nil cuando el par nunca fue tocado.
func (r *StockRepo) Get(ctx context.Context, storeID, productID string) (*entity.StockEntry, error) {
	query := `
		SELECT store_id, product_id, quantity, minimum, updated_at
		FROM stock_entries WHERE store_id = $1 AND product_id = $2`
	var e entity.StockEntry
	err := r.q.QueryRow(ctx, query, storeID, productID).Scan(
		&e.StoreID, &e.ProductID, &e.Quantity, &e.Minimum, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock entry: %w", err)
	}
	return &e, nil
}

// GetForUpdate obtiene la fila y la bloquea (SELECT FOR UPDATE). Usar dentro
// de una tx; devuelve nil cuando el par nunca fue tocado.
func (r *StockRepo) GetForUpdate(ctx context.Context, storeID, productID string) (*entity.StockEntry, error) {
	query := `
		SELECT store_id, product_id, quantity, minimum, updated_at
		FROM stock_entries WHERE store_id = $1 AND product_id = $2
		FOR UPDATE`
	var e entity.StockEntry
	err := r.q.QueryRow(ctx, query, storeID, productID).Scan(
		&e.StoreID, &e.ProductID, &e.Quantity, &e.Minimum, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock entry for update: %w", err)
	}
	return &e, nil
}

// EnsureRow crea la fila en cero si no existe; si ya existe la deja intacta.
func (r *StockRepo) EnsureRow(ctx context.Context, storeID, productID string) error {
	query := `
		INSERT INTO stock_entries (store_id, product_id, quantity, minimum, updated_at)
		VALUES ($1, $2, 0, 0, now())
		ON CONFLICT (store_id, product_id) DO NOTHING`
	_, err := r.q.Exec(ctx, query, storeID, productID)
	if err != nil {
		return fmt.Errorf("ensure stock entry: %w", err)
	}
	return nil
}

// Upsert inserta o actualiza cantidad y mínimo del par (tienda, producto).
func (r *StockRepo) Upsert(ctx context.Context, entry *entity.StockEntry) error {
	query := `
		INSERT INTO stock_entries (store_id, product_id, quantity, minimum, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (store_id, product_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, minimum = EXCLUDED.minimum, updated_at = now()`
	_, err := r.q.Exec(ctx, query, entry.StoreID, entry.ProductID, entry.Quantity, entry.Minimum)
	if err != nil {
		return fmt.Errorf("upsert stock entry: %w", err)
	}
	return nil
}

// SetMinimum fija solo el mínimo: crea la fila con cantidad 0 si no existe,
// y si existe no toca la cantidad.
func (r *StockRepo) SetMinimum(ctx context.Context, storeID, productID string, minimum decimal.Decimal) error {
	query := `
		INSERT INTO stock_entries (store_id, product_id, quantity, minimum, updated_at)
		VALUES ($1, $2, 0, $3, now())
		ON CONFLICT (store_id, product_id)
		DO UPDATE SET minimum = EXCLUDED.minimum, updated_at = now()`
	_, err := r.q.Exec(ctx, query, storeID, productID, minimum)
	if err != nil {
		return fmt.Errorf("set minimum: %w", err)
	}
	return nil
}

// StatusReport lista todos los productos de la tienda con su cantidad y mínimo.
// LEFT JOIN: un producto sin fila de stock sale con ceros. Orden por nombre.
func (r *StockRepo) StatusReport(ctx context.Context, storeID string) ([]repository.StatusReportRow, error) {
	query := `
		SELECT p.id, p.sku, p.name, p.unit,
		       COALESCE(se.quantity, 0) AS quantity,
		       COALESCE(se.minimum, 0) AS minimum
		FROM products p
		LEFT JOIN stock_entries se ON se.product_id = p.id AND se.store_id = $1
		WHERE p.store_id = $1
		ORDER BY p.name`
	rows, err := r.q.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("status report: %w", err)
	}
	defer rows.Close()
	var list []repository.StatusReportRow
	for rows.Next() {
		var row repository.StatusReportRow
		if err := rows.Scan(&row.ProductID, &row.SKU, &row.Name, &row.Unit, &row.Quantity, &row.Minimum); err != nil {
			return nil, fmt.Errorf("scan status report row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
