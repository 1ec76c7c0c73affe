package ledger_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario-tiendas/internal/application/ledger"
	"github.com/tu-usuario/inventario-tiendas/internal/domain"
	"github.com/tu-usuario/inventario-tiendas/internal/domain/entity"
	"github.com/tu-usuario/inventario-tiendas/internal/domain/repository"
	"github.com/tu-usuario/inventario-tiendas/internal/domain/stock"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// El estado mutable (stock + movimientos) vive en memState; el TxRunner fake
// clona el estado antes de ejecutar el callback y solo lo promueve si no hubo
// error, imitando el Commit/Rollback del runner real. Así los tests pueden
// verificar "todo o nada" sin base de datos.
// ──────────────────────────────────────────────────────────────────────────────

type memState struct {
	entries map[string]*entity.StockEntry // clave storeID|productID
	movs    []entity.Movement
	nextID  int64
}

func newMemState() *memState {
	return &memState{entries: make(map[string]*entity.StockEntry), nextID: 1}
}

func (s *memState) clone() *memState {
	c := newMemState()
	c.nextID = s.nextID
	for k, v := range s.entries {
		cp := *v
		c.entries[k] = &cp
	}
	c.movs = append(c.movs, s.movs...)
	return c
}

func key(storeID, productID string) string { return storeID + "|" + productID }

type harness struct {
	stores   map[string]*entity.Store
	products map[string]*entity.Product
	users    map[string]*entity.User
	state    *memState
	now      time.Time // reloj manual, avanza solo cuando el test lo pide
}

func newHarness() *harness {
	return &harness{
		stores:   make(map[string]*entity.Store),
		products: make(map[string]*entity.Product),
		users:    make(map[string]*entity.User),
		state:    newMemState(),
		now:      time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC),
	}
}

func (h *harness) addStore(id, name string) {
	h.stores[id] = &entity.Store{ID: id, Name: name}
}

func (h *harness) addProduct(id, sku, name, unit, storeID string) {
	h.products[id] = &entity.Product{ID: id, SKU: sku, Name: name, Unit: unit, StoreID: storeID, Active: true}
}

func (h *harness) addUser(id, username string) {
	h.users[id] = &entity.User{ID: id, Username: username, Role: entity.RoleVendedor, Active: true}
}

// fakeStoreRepo / fakeProductRepo: catálogo de solo lectura para los tests.

type fakeStoreRepo struct{ h *harness }

func (r *fakeStoreRepo) Create(*entity.Store) error { return nil }
func (r *fakeStoreRepo) GetByID(id string) (*entity.Store, error) {
	return r.h.stores[id], nil
}
func (r *fakeStoreRepo) GetByName(name string) (*entity.Store, error) {
	for _, s := range r.h.stores {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, nil
}
func (r *fakeStoreRepo) Update(*entity.Store) error               { return nil }
func (r *fakeStoreRepo) List(int, int) ([]*entity.Store, error)   { return nil, nil }
func (r *fakeStoreRepo) Delete(string) error                      { return nil }

type fakeProductRepo struct{ h *harness }

func (r *fakeProductRepo) Create(*entity.Product) error { return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.h.products[id], nil
}
func (r *fakeProductRepo) GetBySKU(string) (*entity.Product, error)          { return nil, nil }
func (r *fakeProductRepo) Update(*entity.Product) error                      { return nil }
func (r *fakeProductRepo) List(string, int, int) ([]*entity.Product, error)  { return nil, nil }
func (r *fakeProductRepo) Delete(string) error                               { return nil }

// fakeStockRepo opera sobre un memState concreto (el vivo o el clon de la tx).

type fakeStockRepo struct {
	h     *harness
	state *memState
}

func (r *fakeStockRepo) Get(_ context.Context, storeID, productID string) (*entity.StockEntry, error) {
	e, ok := r.state.entries[key(storeID, productID)]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeStockRepo) GetForUpdate(ctx context.Context, storeID, productID string) (*entity.StockEntry, error) {
	return r.Get(ctx, storeID, productID)
}

func (r *fakeStockRepo) EnsureRow(_ context.Context, storeID, productID string) error {
	k := key(storeID, productID)
	if _, ok := r.state.entries[k]; !ok {
		r.state.entries[k] = &entity.StockEntry{
			StoreID: storeID, ProductID: productID,
			Quantity: decimal.Zero, Minimum: decimal.Zero,
		}
	}
	return nil
}

func (r *fakeStockRepo) Upsert(_ context.Context, entry *entity.StockEntry) error {
	cp := *entry
	cp.UpdatedAt = r.h.now
	r.state.entries[key(entry.StoreID, entry.ProductID)] = &cp
	return nil
}

func (r *fakeStockRepo) SetMinimum(_ context.Context, storeID, productID string, minimum decimal.Decimal) error {
	k := key(storeID, productID)
	if e, ok := r.state.entries[k]; ok {
		e.Minimum = minimum
		return nil
	}
	r.state.entries[k] = &entity.StockEntry{
		StoreID: storeID, ProductID: productID,
		Quantity: decimal.Zero, Minimum: minimum,
	}
	return nil
}

func (r *fakeStockRepo) StatusReport(_ context.Context, storeID string) ([]repository.StatusReportRow, error) {
	var rows []repository.StatusReportRow
	for _, p := range r.h.products {
		if p.StoreID != storeID {
			continue
		}
		row := repository.StatusReportRow{
			ProductID: p.ID, SKU: p.SKU, Name: p.Name, Unit: p.Unit,
			Quantity: decimal.Zero, Minimum: decimal.Zero,
		}
		if e, ok := r.state.entries[key(storeID, p.ID)]; ok {
			row.Quantity = e.Quantity
			row.Minimum = e.Minimum
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows, nil
}

type fakeMovementRepo struct {
	h     *harness
	state *memState
}

func (r *fakeMovementRepo) Create(_ context.Context, m *entity.Movement) error {
	m.ID = r.state.nextID
	r.state.nextID++
	m.CreatedAt = r.h.now
	r.state.movs = append(r.state.movs, *m)
	return nil
}

func (r *fakeMovementRepo) List(_ context.Context, storeID string, limit int) ([]repository.MovementRow, error) {
	var rows []repository.MovementRow
	for _, m := range r.state.movs {
		if storeID != "" && m.StoreID != storeID {
			continue
		}
		row := repository.MovementRow{Movement: m}
		if p, ok := r.h.products[m.ProductID]; ok {
			row.SKU = p.SKU
			row.ProductName = p.Name
		}
		if u, ok := r.h.users[m.UserID]; ok {
			row.Username = u.Username
		}
		if s, ok := r.h.stores[m.StoreID]; ok {
			row.StoreName = s.Name
		}
		rows = append(rows, row)
	}
	// Más reciente primero; empate de timestamp resuelto por orden de inserción (id mayor primero).
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].CreatedAt.Equal(rows[j].CreatedAt) {
			return rows[i].CreatedAt.After(rows[j].CreatedAt)
		}
		return rows[i].ID > rows[j].ID
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

// fakeTxRunner clona, ejecuta y promueve solo en éxito.

type fakeTxRunner struct{ h *harness }

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	stockRepo repository.StockRepository,
	movRepo repository.MovementRepository,
) error) error {
	tx := t.h.state.clone()
	err := fn(&fakeStockRepo{h: t.h, state: tx}, &fakeMovementRepo{h: t.h, state: tx})
	if err != nil {
		return err // rollback: el estado vivo no se toca
	}
	t.h.state = tx
	return nil
}

func newUseCase(h *harness) *ledger.UseCase {
	return ledger.NewUseCase(
		&fakeTxRunner{h: h},
		&fakeStoreRepo{h: h},
		&fakeProductRepo{h: h},
		&fakeStockRepo{h: h, state: h.state},
		&fakeMovementRepo{h: h, state: h.state},
	)
}

// Ojo: los repos de lectura del caso de uso capturan el memState inicial; tras
// un commit el harness apunta a otro estado. Para leer después de ajustar, los
// tests construyen el caso de uso de lectura sobre el estado vigente.
func readUseCase(h *harness) *ledger.UseCase { return newUseCase(h) }

func dec(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func seedCatalog(h *harness) {
	h.addStore("t1", "Tienda Centro")
	h.addStore("t2", "Tienda Norte")
	h.addProduct("p10", "SKU-010", "Arroz Extra 1kg", "UND", "t1")
	h.addProduct("p11", "SKU-011", "Aceite Girasol 1L", "UND", "t1")
	h.addProduct("p99", "SKU-099", "Detergente 500g", "UND", "t2")
	h.addUser("u1", "admin")
	h.addUser("u2", "vendedor1")
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenarios del ajuste
// ──────────────────────────────────────────────────────────────────────────────

// Ingreso inicial sobre libro vacío: crea la fila con la cantidad del delta y
// registra un INGRESO por el mismo monto.
func TestAdjust_IngresoInicial(t *testing.T) {
	h := newHarness()
	seedCatalog(h)
	uc := newUseCase(h)

	err := uc.Adjust(context.Background(), ledger.AdjustInput{
		StoreID: "t1", ProductID: "p10", Delta: dec("20"), UserID: "u1",
	})
	require.NoError(t, err)

	cur, err := readUseCase(h).CurrentQuantity(context.Background(), "t1", "p10")
	require.NoError(t, err)
	assert.True(t, cur.Quantity.Equal(dec("20")), "cantidad debe ser 20, es %s", cur.Quantity)
	assert.True(t, cur.Minimum.IsZero())

	movs, err := readUseCase(h).ListMovements(context.Background(), "t1", 0)
	require.NoError(t, err)
	require.Len(t, movs.Items, 1)
	assert.Equal(t, entity.MovementIngreso, movs.Items[0].Kind)
	assert.True(t, movs.Items[0].Quantity.Equal(dec("20")))
	assert.Equal(t, "u1", movs.Items[0].UserID)
	assert.Equal(t, "admin", movs.Items[0].Username)
	assert.Equal(t, "SKU-010", movs.Items[0].SKU)
}

// Egreso posterior: descuenta y registra una SALIDA con cantidad positiva y nota.
func TestAdjust_EgresoDescuentaYRegistraSalida(t *testing.T) {
	h := newHarness()
	seedCatalog(h)
	require.NoError(t, newUseCase(h).Adjust(context.Background(), ledger.AdjustInput{
		StoreID: "t1", ProductID: "p10", Delta: dec("20"), UserID: "u1",
	}))

	err := newUseCase(h).Adjust(context.Background(), ledger.AdjustInput{
		StoreID: "t1", ProductID: "p10", Delta: dec("-5"), UserID: "u2", Note: "venta",
	})
	require.NoError(t, err)

	cur, err := readUseCase(h).CurrentQuantity(context.Background(), "t1", "p10")
	require.NoError(t, err)
	assert.True(t, cur.Quantity.Equal(dec("15")))

	movs, err := readUseCase(h).ListMovements(context.Background(), "t1", 0)
	require.NoError(t, err)
	require.Len(t, movs.Items, 2)
	// Más reciente primero
	assert.Equal(t, entity.MovementSalida, movs.Items[0].Kind)
	assert.True(t, movs.Items[0].Quantity.Equal(dec("5")), "la SALIDA registra |delta|")
	assert.Equal(t, "venta", movs.Items[0].Note)
	assert.Equal(t, "vendedor1", movs.Items[0].Username)
}

// Egreso mayor al disponible: falla con stock insuficiente y no deja rastro
// (ni cambio de cantidad ni movimiento).
func TestAdjust_StockInsuficienteNoDejaRastro(t *testing.T) {
	h := newHarness()
	seedCatalog(h)
	require.NoError(t, newUseCase(h).Adjust(context.Background(), ledger.AdjustInput{
		StoreID: "t1", ProductID: "p10", Delta: dec("15"), UserID: "u1",
	}))

	err := newUseCase(h).Adjust(context.Background(), ledger.AdjustInput{
		StoreID: "t1", ProductID: "p10", Delta: dec("-100"), UserID: "u2",
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	cur, _ := readUseCase(h).CurrentQuantity(context.Background(), "t1", "p10")
	assert.True(t, cur.Quantity.Equal(dec("15")), "la cantidad no debe cambiar tras el rechazo")

	movs, _ := readUseCase(h).ListMovements(context.Background(), "t1", 0)
	assert.Len(t, movs.Items, 1, "el rechazo no agrega movimiento")
}

// Egreso contra un par que nunca tuvo ingreso: ErrUnknownStockEntry y no se
// crea la fila de stock.
func TestAdjust_EgresoSinEntradaPrevia(t *testing.T) {
	h := newHarness()
	seedCatalog(h)

	err := newUseCase(h).Adjust(context.Background(), ledger.AdjustInput{
		StoreID: "t2", ProductID: "p99", Delta: dec("-1"), UserID: "u1",
	})
	require.ErrorIs(t, err, domain.ErrUnknownStockEntry)

	cur, _ := readUseCase(h).CurrentQuantity(context.Background(), "t2", "p99")
	assert.True(t, cur.Quantity.IsZero())
	assert.True(t, cur.Minimum.IsZero())

	movs, _ := readUseCase(h).ListMovements(context.Background(), "", 0)
	assert.Empty(t, movs.Items)
}

func TestAdjust_DeltaCeroEsInvalido(t *testing.T) {
	h := newHarness()
	seedCatalog(h)

	err := newUseCase(h).Adjust(context.Background(), ledger.AdjustInput{
		StoreID: "t1", ProductID: "p10", Delta: decimal.Zero, UserID: "u1",
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdjust_TiendaOProductoInexistente(t *testing.T) {
	h := newHarness()
	seedCatalog(h)
	uc := newUseCase(h)

	err := uc.Adjust(context.Background(), ledger.AdjustInput{
		StoreID: "no-existe", ProductID: "p10", Delta: dec("1"), UserID: "u1",
	})
	require.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Adjust(context.Background(), ledger.AdjustInput{
		StoreID: "t1", ProductID: "no-existe", Delta: dec("1"), UserID: "u1",
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// Un producto que pertenece al catálogo de otra tienda se trata como
// inexistente: ni ajuste ni mínimo, y no queda rastro en stock ni movimientos.
// (Si se aceptara, el reporte de la tienda jamás mostraría ese stock.)
func TestAdjust_ProductoDeOtraTiendaEsNotFound(t *testing.T) {
	h := newHarness()
	seedCatalog(h) // p99 pertenece a t2

	err := newUseCase(h).Adjust(context.Background(), ledger.AdjustInput{
		StoreID: "t1", ProductID: "p99", Delta: dec("20"), UserID: "u1",
	})
	require.ErrorIs(t, err, domain.ErrNotFound)

	err = newUseCase(h).SetMinimum(context.Background(), "t1", "p99", dec("5"))
	require.ErrorIs(t, err, domain.ErrNotFound)

	cur, _ := readUseCase(h).CurrentQuantity(context.Background(), "t1", "p99")
	assert.True(t, cur.Quantity.IsZero())
	assert.True(t, cur.Minimum.IsZero())

	movs, _ := readUseCase(h).ListMovements(context.Background(), "", 0)
	assert.Empty(t, movs.Items)

	report, err := readUseCase(h).StatusReport(context.Background(), "t1")
	require.NoError(t, err)
	for _, row := range report.Rows {
		assert.NotEqual(t, "p99", row.ProductID, "el reporte de t1 no debe listar productos de t2")
	}
}

// minimumRaceStockRepo simula otra sesión que fija el mínimo justo antes de
// que el ajuste cree la fila: EnsureRow encuentra la fila ya existente y no la toca.
type minimumRaceStockRepo struct {
	*fakeStockRepo
	minimum decimal.Decimal
}

func (r *minimumRaceStockRepo) EnsureRow(ctx context.Context, storeID, productID string) error {
	if err := r.fakeStockRepo.SetMinimum(ctx, storeID, productID, r.minimum); err != nil {
		return err
	}
	return r.fakeStockRepo.EnsureRow(ctx, storeID, productID)
}

type minimumRaceTxRunner struct {
	h       *harness
	minimum decimal.Decimal
}

func (t *minimumRaceTxRunner) Run(_ context.Context, fn func(
	stockRepo repository.StockRepository,
	movRepo repository.MovementRepository,
) error) error {
	tx := t.h.state.clone()
	err := fn(
		&minimumRaceStockRepo{fakeStockRepo: &fakeStockRepo{h: t.h, state: tx}, minimum: t.minimum},
		&fakeMovementRepo{h: t.h, state: tx},
	)
	if err != nil {
		return err
	}
	t.h.state = tx
	return nil
}

// El primer ingreso sobre un par sin fila no debe pisar un mínimo fijado por
// otra sesión entre la lectura inicial y la creación de la fila: tras crearla
// de forma idempotente se relee bajo bloqueo y se parte de esos valores.
func TestAdjust_PrimerIngresoNoPisaMinimoConcurrente(t *testing.T) {
	h := newHarness()
	seedCatalog(h)
	uc := ledger.NewUseCase(
		&minimumRaceTxRunner{h: h, minimum: dec("5")},
		&fakeStoreRepo{h: h},
		&fakeProductRepo{h: h},
		&fakeStockRepo{h: h, state: h.state},
		&fakeMovementRepo{h: h, state: h.state},
	)

	err := uc.Adjust(context.Background(), ledger.AdjustInput{
		StoreID: "t1", ProductID: "p10", Delta: dec("10"), UserID: "u1",
	})
	require.NoError(t, err)

	cur, err := readUseCase(h).CurrentQuantity(context.Background(), "t1", "p10")
	require.NoError(t, err)
	assert.True(t, cur.Quantity.Equal(dec("10")))
	assert.True(t, cur.Minimum.Equal(dec("5")), "el mínimo fijado por la otra sesión debe conservarse, es %s", cur.Minimum)

	movs, _ := readUseCase(h).ListMovements(context.Background(), "t1", 0)
	require.Len(t, movs.Items, 1)
	assert.Equal(t, entity.MovementIngreso, movs.Items[0].Kind)
}

// Propiedad: tras cada ajuste exitoso la cantidad es la suma de los deltas
// aplicados; los rechazados no alteran la suma.
func TestAdjust_CantidadEsSumaDeDeltas(t *testing.T) {
	h := newHarness()
	seedCatalog(h)

	deltas := []string{"10", "-3", "7.5", "-14.5", "-1", "2", "-100", "0.5"}
	running := decimal.Zero
	for _, ds := range deltas {
		delta := dec(ds)
		err := newUseCase(h).Adjust(context.Background(), ledger.AdjustInput{
			StoreID: "t1", ProductID: "p10", Delta: delta, UserID: "u1",
		})
		next := running.Add(delta)
		if next.IsNegative() {
			require.Error(t, err, "delta %s debió rechazarse", ds)
		} else {
			require.NoError(t, err, "delta %s debió aplicarse", ds)
			running = next
		}
		cur, gerr := readUseCase(h).CurrentQuantity(context.Background(), "t1", "p10")
		require.NoError(t, gerr)
		assert.True(t, cur.Quantity.Equal(running),
			"tras delta %s: cantidad %s, suma esperada %s", ds, cur.Quantity, running)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas
// ──────────────────────────────────────────────────────────────────────────────

// Dos lecturas consecutivas sin ajuste intermedio devuelven lo mismo.
func TestCurrentQuantity_LecturaIdempotente(t *testing.T) {
	h := newHarness()
	seedCatalog(h)
	require.NoError(t, newUseCase(h).Adjust(context.Background(), ledger.AdjustInput{
		StoreID: "t1", ProductID: "p10", Delta: dec("8"), UserID: "u1",
	}))

	uc := readUseCase(h)
	a, err := uc.CurrentQuantity(context.Background(), "t1", "p10")
	require.NoError(t, err)
	b, err := uc.CurrentQuantity(context.Background(), "t1", "p10")
	require.NoError(t, err)
	assert.True(t, a.Quantity.Equal(b.Quantity))
	assert.True(t, a.Minimum.Equal(b.Minimum))
}

func TestSetMinimum_CreaFilaConCantidadCero(t *testing.T) {
	h := newHarness()
	seedCatalog(h)
	uc := newUseCase(h)

	require.NoError(t, uc.SetMinimum(context.Background(), "t1", "p11", dec("4")))

	cur, err := uc.CurrentQuantity(context.Background(), "t1", "p11")
	require.NoError(t, err)
	assert.True(t, cur.Quantity.IsZero(), "set-minimum no toca la cantidad")
	assert.True(t, cur.Minimum.Equal(dec("4")))
}

func TestSetMinimum_NegativoEsInvalido(t *testing.T) {
	h := newHarness()
	seedCatalog(h)

	err := newUseCase(h).SetMinimum(context.Background(), "t1", "p11", dec("-1"))
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Escenario E del libro: cantidad 15 y mínimo 15 clasifica BAJO MINIMO
// (la frontera es inclusiva).
func TestStatusReport_FronteraMinimoInclusiva(t *testing.T) {
	h := newHarness()
	seedCatalog(h)
	require.NoError(t, newUseCase(h).Adjust(context.Background(), ledger.AdjustInput{
		StoreID: "t1", ProductID: "p10", Delta: dec("20"), UserID: "u1",
	}))
	require.NoError(t, newUseCase(h).Adjust(context.Background(), ledger.AdjustInput{
		StoreID: "t1", ProductID: "p10", Delta: dec("-5"), UserID: "u2", Note: "venta",
	}))
	require.NoError(t, newUseCase(h).SetMinimum(context.Background(), "t1", "p10", dec("15")))

	report, err := readUseCase(h).StatusReport(context.Background(), "t1")
	require.NoError(t, err)
	require.Len(t, report.Rows, 2, "todos los productos de la tienda aparecen")

	// Orden estable por nombre: "Aceite..." antes que "Arroz..."
	assert.Equal(t, "SKU-011", report.Rows[0].SKU)
	assert.Equal(t, stock.StatusSinStock, report.Rows[0].Status, "producto sin fila de stock")

	assert.Equal(t, "SKU-010", report.Rows[1].SKU)
	assert.Equal(t, stock.StatusBajoMinimo, report.Rows[1].Status, "15 <= 15 es BAJO MINIMO")
}

func TestStatusReport_TiendaInexistente(t *testing.T) {
	h := newHarness()
	seedCatalog(h)

	_, err := newUseCase(h).StatusReport(context.Background(), "no-existe")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLowStockItems_FiltraSoloAlertas(t *testing.T) {
	h := newHarness()
	seedCatalog(h)
	// p10 queda OK (30 > 5); p11 queda sin stock.
	require.NoError(t, newUseCase(h).Adjust(context.Background(), ledger.AdjustInput{
		StoreID: "t1", ProductID: "p10", Delta: dec("30"), UserID: "u1",
	}))
	require.NoError(t, newUseCase(h).SetMinimum(context.Background(), "t1", "p10", dec("5")))

	alerts, err := readUseCase(h).LowStockItems(context.Background(), "t1")
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "SKU-011", alerts[0].SKU)
	assert.Equal(t, stock.StatusSinStock, alerts[0].Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Historial de movimientos
// ──────────────────────────────────────────────────────────────────────────────

func TestListMovements_OrdenYFiltro(t *testing.T) {
	h := newHarness()
	seedCatalog(h)

	// Tres movimientos con el mismo timestamp (reloj manual congelado):
	// el desempate es por orden de inserción.
	require.NoError(t, newUseCase(h).Adjust(context.Background(), ledger.AdjustInput{
		StoreID: "t1", ProductID: "p10", Delta: dec("10"), UserID: "u1",
	}))
	require.NoError(t, newUseCase(h).Adjust(context.Background(), ledger.AdjustInput{
		StoreID: "t2", ProductID: "p99", Delta: dec("3"), UserID: "u1",
	}))
	h.now = h.now.Add(time.Minute)
	require.NoError(t, newUseCase(h).Adjust(context.Background(), ledger.AdjustInput{
		StoreID: "t1", ProductID: "p10", Delta: dec("-2"), UserID: "u2",
	}))

	all, err := readUseCase(h).ListMovements(context.Background(), "", 0)
	require.NoError(t, err)
	require.Len(t, all.Items, 3)
	// Timestamps no crecientes; a igual timestamp, el insertado después primero.
	for i := 1; i < len(all.Items); i++ {
		assert.False(t, all.Items[i-1].CreatedAt.Before(all.Items[i].CreatedAt))
		if all.Items[i-1].CreatedAt.Equal(all.Items[i].CreatedAt) {
			assert.Greater(t, all.Items[i-1].ID, all.Items[i].ID)
		}
	}

	soloT1, err := readUseCase(h).ListMovements(context.Background(), "t1", 0)
	require.NoError(t, err)
	require.Len(t, soloT1.Items, 2)
	for _, m := range soloT1.Items {
		assert.Equal(t, "t1", m.StoreID)
		assert.Equal(t, "Tienda Centro", m.StoreName)
	}
}

func TestListMovements_LimiteSeNormaliza(t *testing.T) {
	h := newHarness()
	seedCatalog(h)
	for i := 0; i < 5; i++ {
		require.NoError(t, newUseCase(h).Adjust(context.Background(), ledger.AdjustInput{
			StoreID: "t1", ProductID: "p10", Delta: dec("1"), UserID: "u1",
		}))
	}

	out, err := readUseCase(h).ListMovements(context.Background(), "t1", 2)
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)

	// limit <= 0 usa el defecto (200), que aquí devuelve todo.
	out, err = readUseCase(h).ListMovements(context.Background(), "t1", -7)
	require.NoError(t, err)
	assert.Len(t, out.Items, 5)
}

func TestListMovements_TiendaInexistente(t *testing.T) {
	h := newHarness()
	seedCatalog(h)

	_, err := newUseCase(h).ListMovements(context.Background(), "no-existe", 10)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
