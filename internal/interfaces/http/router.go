package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/inventario-tiendas/internal/application/auth"
	"github.com/tu-usuario/inventario-tiendas/internal/application/ledger"
	"github.com/tu-usuario/inventario-tiendas/internal/application/report"
	"github.com/tu-usuario/inventario-tiendas/internal/application/usecase"
	"github.com/tu-usuario/inventario-tiendas/internal/domain/entity"
	"github.com/tu-usuario/inventario-tiendas/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	StoreUC    *usecase.StoreUseCase
	ProductUC  *usecase.ProductUseCase
	EmployeeUC *usecase.EmployeeUseCase
	UserUC     *usecase.UserUseCase
	LedgerUC   *ledger.UseCase
	StoreRepo  repository.StoreRepository
	PDFGen     report.StockReportPDFGenerator
	JWTSecret  string
}

// Router registra las rutas de la API.
//
// Permisos por rol:
//   - VENDEDOR:  consultar stock y reportes, ajustar stock (ventas/ingresos)
//   - ENCARGADO: además, gestionar catálogo y fijar mínimos
//   - ADMIN:     además, tiendas, empleados, usuarios y export de reportes
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	anyRole := RequireRole(entity.RoleAdmin, entity.RoleEncargado, entity.RoleVendedor)
	managers := RequireRole(entity.RoleAdmin, entity.RoleEncargado)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth: login público; registro solo ADMIN.
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", AuthMiddleware(deps.JWTSecret), adminOnly, authHandler.Register)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Stores: lectura para todos, escritura solo ADMIN.
	stores := protected.Group("/stores")
	storeHandler := NewStoreHandler(deps.StoreUC)
	stores.Get("/", anyRole, storeHandler.List)
	stores.Get("/:id", anyRole, storeHandler.GetByID)
	stores.Post("/", adminOnly, storeHandler.Create)
	stores.Put("/:id", adminOnly, storeHandler.Update)
	stores.Delete("/:id", adminOnly, storeHandler.Delete)

	// Products: lectura para todos, escritura ADMIN + ENCARGADO.
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", anyRole, productHandler.List)
	products.Get("/:id", anyRole, productHandler.GetByID)
	products.Post("/", managers, productHandler.Create)
	products.Put("/:id", managers, productHandler.Update)
	products.Delete("/:id", managers, productHandler.Delete)

	// Stock: ajustar y consultar para todos los roles; mínimos ADMIN + ENCARGADO.
	stock := protected.Group("/stock")
	stockHandler := NewStockHandler(deps.LedgerUC)
	stock.Post("/adjust", anyRole, stockHandler.Adjust)
	stock.Post("/minimum", managers, stockHandler.SetMinimum)
	stock.Get("/current", anyRole, stockHandler.Current)
	stock.Get("/movements", anyRole, stockHandler.Movements)

	// Reports: lectura para todos; el export (csv/text/pdf) lo limita el handler a ADMIN.
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.LedgerUC, deps.StoreRepo, deps.PDFGen)
	reports.Get("/stock/:store_id", anyRole, reportHandler.StockReport)
	reports.Get("/alerts/:store_id", anyRole, reportHandler.Alerts)

	// Employees: solo ADMIN.
	employees := protected.Group("/employees", adminOnly)
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	// Users: solo ADMIN.
	users := protected.Group("/users", adminOnly)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)
}
