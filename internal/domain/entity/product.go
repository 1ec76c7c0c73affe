package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo.
// El stock por tienda vive en StockEntry, no aquí.
type Product struct {
	ID          string
	SKU         string // código único
	Name        string
	Description string
	Unit        string // unidad de medida: UND, KG, LT...
	UnitPrice   decimal.Decimal
	Category    string
	Supplier    string
	Active      bool
	StoreID     string // tienda dueña del producto en el catálogo
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
