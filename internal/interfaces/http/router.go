package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-api/internal/application/auth"
	"github.com/tu-usuario/almacen-api/internal/application/inventory"
	"github.com/tu-usuario/almacen-api/internal/application/reporting"
	"github.com/tu-usuario/almacen-api/internal/application/usecase"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC     *usecase.CompanyUseCase
	StockUC       *usecase.StockUseCase
	InvoiceUC     *usecase.InvoiceUseCase
	RecordInvoice *inventory.InvoiceRecorder
	ReportQuery   *reporting.ReportQuery
	ReportPDF     *reporting.ReportPDFUseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Companies (protegido)
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", RequireRole(entity.RoleAdmin), companyHandler.Delete)

	// Products en stock (protegido; el CRUD directo es solo admin, los
	// ajustes normales de stock van por /invoices)
	products := protected.Group("/products")
	stockHandler := NewStockHandler(deps.StockUC)
	products.Get("/", stockHandler.List)
	products.Get("/:id", stockHandler.GetByID)
	products.Post("/", RequireRole(entity.RoleAdmin), stockHandler.Create)
	products.Put("/:id", RequireRole(entity.RoleAdmin), stockHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), stockHandler.Delete)

	// Invoices (protegido)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.RecordInvoice, deps.InvoiceUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportQuery, deps.ReportPDF)
	reports.Get("/", reportHandler.Aggregate)
	reports.Get("/summary", reportHandler.Summary)
	reports.Get("/pdf", reportHandler.ExportPDF)
}
