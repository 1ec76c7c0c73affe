package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventario-tiendas/internal/application/dto"
	"github.com/tu-usuario/inventario-tiendas/internal/application/ledger"
	"github.com/tu-usuario/inventario-tiendas/internal/application/report"
	"github.com/tu-usuario/inventario-tiendas/internal/domain"
	"github.com/tu-usuario/inventario-tiendas/internal/domain/entity"
	"github.com/tu-usuario/inventario-tiendas/internal/domain/repository"
)

// ReportHandler reporte de estado de stock por tienda y alertas.
// Formatos: json (defecto), csv, text, pdf.
type ReportHandler struct {
	uc        *ledger.UseCase
	storeRepo repository.StoreRepository
	pdfGen    report.StockReportPDFGenerator
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *ledger.UseCase, storeRepo repository.StoreRepository, pdfGen report.StockReportPDFGenerator) *ReportHandler {
	return &ReportHandler{uc: uc, storeRepo: storeRepo, pdfGen: pdfGen}
}

// StockReport godoc
// @Summary      Reporte de estado de stock de una tienda
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        store_id  path   string  true   "ID de la tienda"
// @Param        format    query  string  false  "json | csv | text | pdf"  default(json)
// @Success      200  {object}  dto.StockReportResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/stock/{store_id} [get]
func (h *ReportHandler) StockReport(c *fiber.Ctx) error {
	storeID := c.Params("store_id")
	out, err := h.uc.StatusReport(c.UserContext(), storeID)
	if err != nil {
		return respondStockError(c, err)
	}

	format := c.Query("format", "json")
	if format == "json" {
		return c.JSON(out)
	}
	// Exportar (csv/text/pdf) es solo para administradores.
	if GetRole(c) != entity.RoleAdmin {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo ADMIN puede exportar reportes"})
	}

	store, err := h.storeRepo.GetByID(storeID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if store == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tienda no encontrada"})
	}

	switch format {
	case "csv":
		data, err := report.RenderCSV(store.Name, out)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte_stock.csv"`)
		return c.Send(data)
	case "text":
		c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return c.SendString(report.RenderText(store.Name, out, time.Now()))
	case "pdf":
		data, err := h.pdfGen.GenerateStockReportPDF(c.UserContext(), store, out)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="reporte_stock.pdf"`)
		return c.Send(data)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "format debe ser json, csv, text o pdf"})
	}
}

// Alerts godoc
// @Summary      Alertas de stock (SIN STOCK y BAJO MINIMO) de una tienda
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        store_id  path  string  true  "ID de la tienda"
// @Success      200  {array}   dto.StockStatusRowDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/alerts/{store_id} [get]
func (h *ReportHandler) Alerts(c *fiber.Ctx) error {
	out, err := h.uc.LowStockItems(c.UserContext(), c.Params("store_id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tienda no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
