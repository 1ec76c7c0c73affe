package ledger

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/inventario-tiendas/internal/application/dto"
	"github.com/tu-usuario/inventario-tiendas/internal/domain"
	"github.com/tu-usuario/inventario-tiendas/internal/domain/entity"
	"github.com/tu-usuario/inventario-tiendas/internal/domain/repository"
	"github.com/tu-usuario/inventario-tiendas/internal/domain/stock"
)

// Límites del listado de movimientos.
const (
	defaultMovementLimit = 200
	maxMovementLimit     = 500
)

// UseCase es el libro mayor de stock: mantiene la cantidad actual por
// (tienda, producto) y el historial append-only de movimientos. Los ajustes
// corren dentro de una transacción con bloqueo de fila (SELECT FOR UPDATE);
// las lecturas usan los repositorios atados al pool.
type UseCase struct {
	txRunner    TxRunner
	storeRepo   repository.StoreRepository
	productRepo repository.ProductRepository
	stockRepo   repository.StockRepository
	movRepo     repository.MovementRepository
}

// NewUseCase construye el caso de uso del libro de stock.
func NewUseCase(
	txRunner TxRunner,
	storeRepo repository.StoreRepository,
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
	movRepo repository.MovementRepository,
) *UseCase {
	return &UseCase{
		txRunner:    txRunner,
		storeRepo:   storeRepo,
		productRepo: productRepo,
		stockRepo:   stockRepo,
		movRepo:     movRepo,
	}
}

// AdjustInput entrada para un ajuste de stock.
// Delta positivo = INGRESO, negativo = SALIDA; cero se rechaza.
type AdjustInput struct {
	StoreID   string
	ProductID string
	Delta     decimal.Decimal
	UserID    string // usuario responsable, queda registrado en el movimiento
	Note      string
}

// Adjust aplica un delta al stock de (tienda, producto) y registra exactamente
// un movimiento, o nada si la validación falla.
//
// Reglas:
//   - delta == 0                         -> ErrInvalidInput
//   - sin fila de stock y delta < 0      -> ErrUnknownStockEntry
//   - cantidad resultante < 0            -> ErrInsufficientStock
//
// La lectura y la escritura van en la misma transacción para que la cantidad
// nunca quede negativa bajo ajustes concurrentes sobre el mismo par.
func (uc *UseCase) Adjust(ctx context.Context, in AdjustInput) error {
	if in.Delta.IsZero() || in.StoreID == "" || in.ProductID == "" || in.UserID == "" {
		return domain.ErrInvalidInput
	}
	if err := uc.validatePair(ctx, in.StoreID, in.ProductID); err != nil {
		return err
	}

	return uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		movRepo repository.MovementRepository,
	) error {
		// Bloquea la fila de stock; nil cuando el par nunca fue tocado.
		entry, err := stockRepo.GetForUpdate(ctx, in.StoreID, in.ProductID)
		if err != nil {
			return err
		}
		if entry == nil {
			if in.Delta.IsNegative() {
				return domain.ErrUnknownStockEntry
			}
			// Crea la fila vacía de forma idempotente y la relee con bloqueo:
			// dos primeros ingresos concurrentes (o un set-minimum simultáneo)
			// quedan serializados sobre la misma fila en vez de pisarse.
			if err := stockRepo.EnsureRow(ctx, in.StoreID, in.ProductID); err != nil {
				return err
			}
			entry, err = stockRepo.GetForUpdate(ctx, in.StoreID, in.ProductID)
			if err != nil {
				return err
			}
			if entry == nil {
				return fmt.Errorf("stock entry missing after ensure: %s/%s", in.StoreID, in.ProductID)
			}
		}
		nueva := entry.Quantity.Add(in.Delta)
		if nueva.IsNegative() {
			return domain.ErrInsufficientStock
		}
		entry.Quantity = nueva
		if err := stockRepo.Upsert(ctx, entry); err != nil {
			return err
		}

		kind := entity.MovementIngreso
		if in.Delta.IsNegative() {
			kind = entity.MovementSalida
		}
		return movRepo.Create(ctx, &entity.Movement{
			StoreID:   in.StoreID,
			ProductID: in.ProductID,
			Kind:      kind,
			Quantity:  in.Delta.Abs(),
			UserID:    in.UserID,
			Note:      in.Note,
		})
	})
}

// SetMinimum fija el umbral de reposición de (tienda, producto). Crea la fila
// con cantidad 0 si no existe; si existe, solo cambia el mínimo.
func (uc *UseCase) SetMinimum(ctx context.Context, storeID, productID string, minimum decimal.Decimal) error {
	if minimum.IsNegative() || storeID == "" || productID == "" {
		return domain.ErrInvalidInput
	}
	if err := uc.validatePair(ctx, storeID, productID); err != nil {
		return err
	}
	return uc.stockRepo.SetMinimum(ctx, storeID, productID, minimum)
}

// CurrentQuantity devuelve cantidad y mínimo actuales; (0, 0) cuando el par
// nunca fue tocado. Lectura pura, sin efectos.
func (uc *UseCase) CurrentQuantity(ctx context.Context, storeID, productID string) (*dto.StockEntryResponse, error) {
	entry, err := uc.stockRepo.Get(ctx, storeID, productID)
	if err != nil {
		return nil, err
	}
	out := &dto.StockEntryResponse{
		StoreID:   storeID,
		ProductID: productID,
		Quantity:  decimal.Zero,
		Minimum:   decimal.Zero,
	}
	if entry != nil {
		out.Quantity = entry.Quantity
		out.Minimum = entry.Minimum
	}
	return out, nil
}

// StatusReport clasifica cada producto de la tienda (SIN STOCK / BAJO MINIMO /
// OK), ordenado por nombre de producto. El estado no se almacena: se recalcula
// en cada lectura a partir de (cantidad, mínimo).
func (uc *UseCase) StatusReport(ctx context.Context, storeID string) (*dto.StockReportResponse, error) {
	st, err := uc.storeRepo.GetByID(storeID)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, domain.ErrNotFound
	}
	rows, err := uc.stockRepo.StatusReport(ctx, storeID)
	if err != nil {
		return nil, err
	}
	out := &dto.StockReportResponse{
		StoreID: storeID,
		Rows:    make([]dto.StockStatusRowDTO, 0, len(rows)),
	}
	for _, r := range rows {
		out.Rows = append(out.Rows, dto.StockStatusRowDTO{
			ProductID: r.ProductID,
			SKU:       r.SKU,
			Name:      r.Name,
			Unit:      r.Unit,
			Quantity:  r.Quantity,
			Minimum:   r.Minimum,
			Status:    stock.Classify(r.Quantity, r.Minimum),
		})
	}
	return out, nil
}

// LowStockItems devuelve solo las filas del reporte en SIN STOCK o BAJO MINIMO
// (alertas del dashboard).
func (uc *UseCase) LowStockItems(ctx context.Context, storeID string) ([]dto.StockStatusRowDTO, error) {
	report, err := uc.StatusReport(ctx, storeID)
	if err != nil {
		return nil, err
	}
	alerts := make([]dto.StockStatusRowDTO, 0)
	for _, r := range report.Rows {
		if r.Status != stock.StatusOK {
			alerts = append(alerts, r)
		}
	}
	return alerts, nil
}

// ListMovements lista el historial, más reciente primero. storeID vacío = todas
// las tiendas. limit fuera de rango se normaliza (defecto 200, tope 500).
func (uc *UseCase) ListMovements(ctx context.Context, storeID string, limit int) (*dto.MovementListResponse, error) {
	if limit <= 0 {
		limit = defaultMovementLimit
	}
	if limit > maxMovementLimit {
		limit = maxMovementLimit
	}
	if storeID != "" {
		st, err := uc.storeRepo.GetByID(storeID)
		if err != nil {
			return nil, err
		}
		if st == nil {
			return nil, domain.ErrNotFound
		}
	}
	rows, err := uc.movRepo.List(ctx, storeID, limit)
	if err != nil {
		return nil, err
	}
	out := &dto.MovementListResponse{Items: make([]dto.MovementResponse, 0, len(rows))}
	for _, r := range rows {
		out.Items = append(out.Items, dto.MovementResponse{
			ID:          r.ID,
			StoreID:     r.StoreID,
			StoreName:   r.StoreName,
			ProductID:   r.ProductID,
			SKU:         r.SKU,
			ProductName: r.ProductName,
			Kind:        r.Kind,
			Quantity:    r.Quantity,
			UserID:      r.UserID,
			Username:    r.Username,
			Note:        r.Note,
			CreatedAt:   r.CreatedAt,
		})
	}
	out.Total = len(out.Items)
	return out, nil
}

// validatePair verifica que la tienda exista y que el producto exista y
// pertenezca a su catálogo. Un producto de otra tienda se trata igual que uno
// inexistente: aceptarlo crearía stock fantasma que el reporte (filtrado por
// catálogo de la tienda) nunca mostraría.
func (uc *UseCase) validatePair(ctx context.Context, storeID, productID string) error {
	st, err := uc.storeRepo.GetByID(storeID)
	if err != nil {
		return err
	}
	if st == nil {
		return domain.ErrNotFound
	}
	p, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if p == nil || p.StoreID != storeID {
		return domain.ErrNotFound
	}
	return nil
}
