package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockEntry es la proyección de último valor del stock de un producto en una
// tienda: cantidad disponible y umbral mínimo de reposición.
// Invariante: Quantity >= 0 siempre; se valida antes de cada mutación.
type StockEntry struct {
	StoreID   string
	ProductID string
	Quantity  decimal.Decimal
	Minimum   decimal.Decimal
	UpdatedAt time.Time
}
