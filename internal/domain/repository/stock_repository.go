package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventario-tiendas/internal/domain/entity"
)

// StatusReportRow fila cruda del reporte de stock por tienda: cada producto del
// catálogo con su cantidad y mínimo (cero cuando no hay fila de stock).
type StatusReportRow struct {
	ProductID string
	SKU       string
	Name      string
	Unit      string
	Quantity  decimal.Decimal
	Minimum   decimal.Decimal
}

// StockRepository define el puerto para consultar/actualizar el stock por tienda+producto.
// Get y GetForUpdate devuelven nil (sin error) cuando el par nunca fue tocado:
// el caso de uso necesita distinguir "sin fila" de "cantidad cero" para rechazar
// egresos contra stock inexistente.
type StockRepository interface {
	Get(ctx context.Context, storeID, productID string) (*entity.StockEntry, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE). Usar dentro de una tx.
	GetForUpdate(ctx context.Context, storeID, productID string) (*entity.StockEntry, error)
	// EnsureRow crea la fila con cantidad y mínimo 0 si no existe; si ya
	// existe no la toca. Idempotente, pensada para usarse antes de
	// GetForUpdate cuando la fila puede no existir todavía.
	EnsureRow(ctx context.Context, storeID, productID string) error
	Upsert(ctx context.Context, entry *entity.StockEntry) error
	// SetMinimum crea la fila con cantidad 0 si no existe, o actualiza solo el mínimo.
	SetMinimum(ctx context.Context, storeID, productID string, minimum decimal.Decimal) error
	// StatusReport lista todos los productos de la tienda con cantidad/mínimo
	// (LEFT JOIN, ausencia = 0), ordenados por nombre de producto.
	StatusReport(ctx context.Context, storeID string) ([]StatusReportRow, error)
}
