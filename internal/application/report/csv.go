package report

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/tu-usuario/inventario-tiendas/internal/application/dto"
)

// csvHeader columnas del export, en el orden que espera planilla de cálculo.
var csvHeader = []string{"Tienda", "Producto", "Stock", "Mínimo", "Estado"}

// RenderCSV serializa el reporte de stock como CSV UTF-8.
// La columna Producto combina SKU y nombre ("SKU-001 - Arroz Extra 1kg").
func RenderCSV(storeName string, report *dto.StockReportResponse) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("reporte csv: %w", err)
	}
	for _, r := range report.Rows {
		record := []string{
			storeName,
			r.SKU + " - " + r.Name,
			r.Quantity.String(),
			r.Minimum.String(),
			r.Status,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("reporte csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("reporte csv: %w", err)
	}
	return buf.Bytes(), nil
}
