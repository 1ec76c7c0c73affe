package repository

import (
	"context"

	"github.com/tu-usuario/inventario-tiendas/internal/domain/entity"
)

// MovementRow movimiento enriquecido con datos de presentación
// (sku/producto/usuario/tienda) para listados y exportes.
type MovementRow struct {
	entity.Movement
	SKU         string
	ProductName string
	Username    string
	StoreName   string
}

// MovementRepository define el puerto de persistencia del historial de movimientos.
// El historial es append-only: no hay update ni delete.
type MovementRepository interface {
	// Create inserta el movimiento y rellena ID y CreatedAt asignados por la base.
	Create(ctx context.Context, m *entity.Movement) error
	// List devuelve los movimientos más recientes primero (desempate por id de
	// inserción). storeID vacío = todas las tiendas.
	List(ctx context.Context, storeID string, limit int) ([]MovementRow, error)
}
