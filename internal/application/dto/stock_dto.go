package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdjustStockRequest body para POST /api/stock/adjust.
// Delta positivo = ingreso; negativo = salida; cero se rechaza.
type AdjustStockRequest struct {
	StoreID   string          `json:"store_id"`
	ProductID string          `json:"product_id"`
	Delta     decimal.Decimal `json:"delta"`
	Note      string          `json:"note,omitempty"`
}

// SetMinimumRequest body para POST /api/stock/minimum.
type SetMinimumRequest struct {
	StoreID   string          `json:"store_id"`
	ProductID string          `json:"product_id"`
	Minimum   decimal.Decimal `json:"minimum"`
}

// StockEntryResponse cantidad y mínimo actuales de un par (tienda, producto).
// Cuando el par nunca fue tocado, ambos son cero.
type StockEntryResponse struct {
	StoreID   string          `json:"store_id"`
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	Minimum   decimal.Decimal `json:"minimum"`
}

// StockStatusRowDTO fila del reporte de estado de stock por tienda.
type StockStatusRowDTO struct {
	ProductID string          `json:"product_id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	Quantity  decimal.Decimal `json:"quantity"`
	Minimum   decimal.Decimal `json:"minimum"`
	Status    string          `json:"status"` // SIN STOCK | BAJO MINIMO | OK
}

// StockReportResponse reporte completo de una tienda.
type StockReportResponse struct {
	StoreID string              `json:"store_id"`
	Rows    []StockStatusRowDTO `json:"rows"`
}

// MovementResponse un movimiento del historial, con datos de presentación.
type MovementResponse struct {
	ID          int64           `json:"id"`
	StoreID     string          `json:"store_id"`
	StoreName   string          `json:"store_name"`
	ProductID   string          `json:"product_id"`
	SKU         string          `json:"sku"`
	ProductName string          `json:"product_name"`
	Kind        string          `json:"kind"`
	Quantity    decimal.Decimal `json:"quantity"`
	UserID      string          `json:"user_id"`
	Username    string          `json:"username"`
	Note        string          `json:"note,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// MovementListResponse historial de movimientos, más reciente primero.
type MovementListResponse struct {
	Total int                `json:"total"`
	Items []MovementResponse `json:"items"`
}
