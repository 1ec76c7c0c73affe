package report

import (
	"context"

	"github.com/tu-usuario/inventario-tiendas/internal/application/dto"
	"github.com/tu-usuario/inventario-tiendas/internal/domain/entity"
)

// StockReportPDFGenerator puerto hacia la infraestructura que produce el PDF
// del reporte de stock.
type StockReportPDFGenerator interface {
	GenerateStockReportPDF(ctx context.Context, store *entity.Store, report *dto.StockReportResponse) ([]byte, error)
}
