package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementIngreso = "INGRESO" // entrada de mercadería
	MovementSalida  = "SALIDA"  // salida (venta, merma, retiro)
)

// Movement es una fila inmutable del historial de stock: un ingreso o una
// salida. El ID y el timestamp los asigna la base de datos al insertar;
// Quantity es siempre positiva (el signo vive en Kind).
type Movement struct {
	ID        int64
	StoreID   string
	ProductID string
	Kind      string // INGRESO | SALIDA
	Quantity  decimal.Decimal
	UserID    string // usuario responsable del movimiento
	Note      string
	CreatedAt time.Time
}
