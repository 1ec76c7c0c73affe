package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventario-tiendas/internal/application/dto"
	"github.com/tu-usuario/inventario-tiendas/internal/application/ledger"
	"github.com/tu-usuario/inventario-tiendas/internal/domain"
)

// StockHandler maneja el libro de stock: ajustes, mínimos, consulta e historial.
type StockHandler struct {
	uc *ledger.UseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *ledger.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Adjust godoc
// @Summary      Ajustar stock (delta positivo = ingreso, negativo = salida)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "store_id, product_id, delta, note"
// @Success      200   {object}  dto.StockEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/stock/adjust [post]
func (h *StockHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.StoreID == "" || in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "store_id y product_id son requeridos"})
	}
	err := h.uc.Adjust(c.UserContext(), ledger.AdjustInput{
		StoreID:   in.StoreID,
		ProductID: in.ProductID,
		Delta:     in.Delta,
		UserID:    GetUserID(c),
		Note:      in.Note,
	})
	if err != nil {
		return respondStockError(c, err)
	}
	out, err := h.uc.CurrentQuantity(c.UserContext(), in.StoreID, in.ProductID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SetMinimum godoc
// @Summary      Fijar mínimo de reposición de un par (tienda, producto)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetMinimumRequest  true  "store_id, product_id, minimum"
// @Success      200   {object}  dto.StockEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/minimum [post]
func (h *StockHandler) SetMinimum(c *fiber.Ctx) error {
	var in dto.SetMinimumRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.StoreID == "" || in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "store_id y product_id son requeridos"})
	}
	if err := h.uc.SetMinimum(c.UserContext(), in.StoreID, in.ProductID, in.Minimum); err != nil {
		return respondStockError(c, err)
	}
	out, err := h.uc.CurrentQuantity(c.UserContext(), in.StoreID, in.ProductID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Current godoc
// @Summary      Consultar cantidad y mínimo actuales
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        store_id    query  string  true  "ID de la tienda"
// @Param        product_id  query  string  true  "ID del producto"
// @Success      200  {object}  dto.StockEntryResponse
// @Router       /api/stock/current [get]
func (h *StockHandler) Current(c *fiber.Ctx) error {
	storeID := c.Query("store_id")
	productID := c.Query("product_id")
	if storeID == "" || productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "store_id y product_id son requeridos"})
	}
	out, err := h.uc.CurrentQuantity(c.UserContext(), storeID, productID)
	if err != nil {
		return respondStockError(c, err)
	}
	return c.JSON(out)
}

// Movements godoc
// @Summary      Historial de movimientos, más reciente primero
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        store_id  query  string  false  "Filtrar por tienda"
// @Param        limit     query  int     false  "Límite (máx 500)"  default(200)
// @Success      200  {object}  dto.MovementListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/movements [get]
func (h *StockHandler) Movements(c *fiber.Ctx) error {
	out, err := h.uc.ListMovements(c.UserContext(), c.Query("store_id"), c.QueryInt("limit", 0))
	if err != nil {
		return respondStockError(c, err)
	}
	return c.JSON(out)
}

func respondStockError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "ajuste inválido: delta cero o datos incompletos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tienda o producto no encontrados"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para el egreso"})
	case errors.Is(err, domain.ErrUnknownStockEntry):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "UNKNOWN_STOCK_ENTRY", Message: "no se puede egresar stock de un producto sin ingresos"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
