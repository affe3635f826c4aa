package http

import (
	"github.com/gofiber/fiber/v2"
	appactivity "github.com/jhoicas/Ventas-api/internal/application/activity"
	"github.com/jhoicas/Ventas-api/internal/application/auth"
	"github.com/jhoicas/Ventas-api/internal/application/inventory"
	"github.com/jhoicas/Ventas-api/internal/application/invitation"
	"github.com/jhoicas/Ventas-api/internal/application/report"
	"github.com/jhoicas/Ventas-api/internal/application/sales"
	"github.com/jhoicas/Ventas-api/internal/application/usecase"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ProductUC    *usecase.ProductUseCase
	LocationUC   *usecase.LocationUseCase
	UserUC       *usecase.UserUseCase
	SettingsUC   *usecase.SettingsUseCase
	InventoryUC  *inventory.InventoryUseCase
	RecordSale   *sales.RecordSaleUseCase
	VoidSale     *sales.VoidSaleUseCase
	SaleQuery    *sales.QueryUseCase
	ReceiptPDF   *sales.ReceiptPDFUseCase
	InvitationUC *invitation.UseCase
	ActivityUC   *appactivity.QueryUseCase
	ReportUC     *report.UseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
// Roles: admin administra todo; gerente opera catálogo, inventario y reportes;
// cajero registra y consulta ventas.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	adminOnly := RequireRole(entity.RoleAdmin)
	managers := RequireRole(entity.RoleAdmin, entity.RoleGerente)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Aceptar invitación (público, se valida con el token del correo)
	invitationHandler := NewInvitationHandler(deps.InvitationUC)
	api.Post("/invitations/accept", invitationHandler.Accept)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (lectura para todos; mutaciones admin y gerente)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", managers, productHandler.Create)
	products.Put("/:id", managers, productHandler.Update)
	products.Delete("/:id", managers, productHandler.Deactivate)

	// Locations (lectura para todos; mutaciones admin y gerente)
	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Post("/", managers, locationHandler.Create)
	locations.Put("/:id", managers, locationHandler.Update)
	locations.Delete("/:id", managers, locationHandler.Deactivate)

	// Inventory (ajustes y traslados admin y gerente; consulta para todos)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	invGroup.Get("/products/:id", inventoryHandler.Levels)
	invGroup.Post("/adjust", managers, inventoryHandler.Adjust)
	invGroup.Post("/transfer", managers, inventoryHandler.Transfer)

	// Sales (registrar y consultar para todos los roles; anular admin y gerente)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.RecordSale, deps.VoidSale, deps.SaleQuery, deps.ReceiptPDF)
	salesGroup.Post("/", saleHandler.Record)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Get("/:id/receipt.pdf", saleHandler.Receipt)
	salesGroup.Post("/:id/void", managers, saleHandler.Void)

	// Invitations (solo admin)
	invitations := protected.Group("/invitations", adminOnly)
	invitations.Post("/", invitationHandler.Create)
	invitations.Get("/", invitationHandler.List)
	invitations.Delete("/:id", invitationHandler.Cancel)

	// Users (admin y gerente)
	users := protected.Group("/users", managers)
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)

	// Activity log (admin y gerente)
	activityGroup := protected.Group("/activity", managers)
	activityHandler := NewActivityHandler(deps.ActivityUC)
	activityGroup.Get("/", activityHandler.List)

	// Settings (lectura para todos; actualización solo admin)
	settingsGroup := protected.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settingsGroup.Get("/", settingsHandler.Get)
	settingsGroup.Put("/", adminOnly, settingsHandler.Update)

	// Reports (admin y gerente)
	reports := protected.Group("/reports", managers)
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/sales", reportHandler.SalesSummary)
	reports.Get("/sales/export.pdf", reportHandler.ExportPDF)
	reports.Get("/sales/export.xml", reportHandler.ExportXML)
	reports.Get("/low-stock", reportHandler.LowStock)
}
