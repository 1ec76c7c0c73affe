package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/tu-usuario/inventario-tiendas/internal/application/dto"
)

// RenderText arma el reporte de stock como tabla de texto plano de ancho fijo,
// apta para terminal o correo.
func RenderText(storeName string, report *dto.StockReportResponse, now time.Time) string {
	var b strings.Builder

	title := fmt.Sprintf("REPORTE DE STOCK — %s", storeName)
	b.WriteString(title + "\n")
	b.WriteString(now.Format("02/01/2006 15:04") + "\n")
	b.WriteString(strings.Repeat("=", 78) + "\n")
	fmt.Fprintf(&b, "%-12s %-34s %10s %8s  %-11s\n", "SKU", "PRODUCTO", "STOCK", "MINIMO", "ESTADO")
	b.WriteString(strings.Repeat("-", 78) + "\n")

	for _, r := range report.Rows {
		fmt.Fprintf(&b, "%-12s %-34s %10s %8s  %-11s\n",
			truncate(r.SKU, 12),
			truncate(r.Name, 34),
			r.Quantity.String(),
			r.Minimum.String(),
			r.Status,
		)
	}

	b.WriteString(strings.Repeat("=", 78) + "\n")
	fmt.Fprintf(&b, "Total productos: %d\n", len(report.Rows))
	return b.String()
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
