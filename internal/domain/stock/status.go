package stock

import "github.com/shopspring/decimal"

// Estados de stock para el reporte por tienda.
const (
	StatusSinStock   = "SIN STOCK"
	StatusBajoMinimo = "BAJO MINIMO"
	StatusOK         = "OK"
)

// Classify clasifica el estado de un producto (servicio de dominio, función pura):
//
//	cantidad == 0            -> SIN STOCK
//	0 < cantidad <= minimo   -> BAJO MINIMO  (la frontera cantidad == minimo es BAJO MINIMO)
//	cantidad > minimo        -> OK
func Classify(quantity, minimum decimal.Decimal) string {
	if quantity.IsZero() {
		return StatusSinStock
	}
	if quantity.LessThanOrEqual(minimum) {
		return StatusBajoMinimo
	}
	return StatusOK
}
