package report_test

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario-tiendas/internal/application/dto"
	"github.com/tu-usuario/inventario-tiendas/internal/application/report"
	"github.com/tu-usuario/inventario-tiendas/internal/domain/stock"
)

func sampleReport() *dto.StockReportResponse {
	return &dto.StockReportResponse{
		StoreID: "t1",
		Rows: []dto.StockStatusRowDTO{
			{SKU: "SKU-001", Name: "Arroz Extra 1kg", Quantity: decimal.NewFromInt(30), Minimum: decimal.NewFromInt(5), Status: stock.StatusOK},
			{SKU: "SKU-002", Name: "Aceite, Girasol 1L", Quantity: decimal.NewFromInt(3), Minimum: decimal.NewFromInt(5), Status: stock.StatusBajoMinimo},
			{SKU: "SKU-003", Name: "Detergente 500g", Quantity: decimal.Zero, Minimum: decimal.NewFromInt(2), Status: stock.StatusSinStock},
		},
	}
}

func TestRenderCSV_EncabezadoYFilas(t *testing.T) {
	out, err := report.RenderCSV("Tienda Centro", sampleReport())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4, "encabezado + 3 filas")

	assert.Equal(t, []string{"Tienda", "Producto", "Stock", "Mínimo", "Estado"}, records[0])
	assert.Equal(t, []string{"Tienda Centro", "SKU-001 - Arroz Extra 1kg", "30", "5", "OK"}, records[1])
	// La coma del nombre queda correctamente entre comillas en el CSV.
	assert.Equal(t, "SKU-002 - Aceite, Girasol 1L", records[2][1])
	assert.Equal(t, "BAJO MINIMO", records[2][4])
	assert.Equal(t, "SIN STOCK", records[3][4])
}

func TestRenderCSV_ReporteVacio(t *testing.T) {
	out, err := report.RenderCSV("Tienda Norte", &dto.StockReportResponse{StoreID: "t2"})
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "solo encabezado")
}

func TestRenderText_TablaCompleta(t *testing.T) {
	now := time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)
	out := report.RenderText("Tienda Centro", sampleReport(), now)

	assert.Contains(t, out, "REPORTE DE STOCK — Tienda Centro")
	assert.Contains(t, out, "10/05/2024 09:30")
	assert.Contains(t, out, "SKU-001")
	assert.Contains(t, out, "BAJO MINIMO")
	assert.Contains(t, out, "SIN STOCK")
	assert.Contains(t, out, "Total productos: 3")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// título + fecha + separador + encabezado + separador + 3 filas + separador + total
	assert.Len(t, lines, 10)
}
