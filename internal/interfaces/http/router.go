package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kavins/produccion-api/internal/application/analytics"
	"github.com/kavins/produccion-api/internal/application/auth"
	"github.com/kavins/produccion-api/internal/application/production"
	"github.com/kavins/produccion-api/internal/application/report"
	"github.com/kavins/produccion-api/internal/application/usecase"
	"github.com/kavins/produccion-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	OrderUC      *usecase.OrderUseCase
	FabricUC     *usecase.FabricUseCase
	SeamstressUC *usecase.SeamstressUseCase
	ReferenceUC  *usecase.ReferenceUseCase
	ConfirmCut   *production.ConfirmCutUseCase
	Distribute   *production.DistributeUseCase
	FinishSplit  *production.FinishSplitUseCase
	OrderSheet   *report.OrderSheetUseCase
	DashboardUC  *analytics.DashboardUseCase
	AuthUC       *auth.AuthUseCase
	JWTSecret    string
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

	// Fabrics: el ledger de telas (protegido)
	fabrics := protected.Group("/fabrics")
	fabricHandler := NewFabricHandler(deps.FabricUC)
	fabrics.Post("/", fabricHandler.Create)
	fabrics.Get("/", fabricHandler.List)
	fabrics.Get("/:id", fabricHandler.GetByID)
	fabrics.Put("/:id", fabricHandler.Update)
	fabrics.Delete("/:id", RequireRole(entity.RoleAdmin), fabricHandler.Delete)

	// Seamstresses (protegido)
	seamstresses := protected.Group("/seamstresses")
	seamstressHandler := NewSeamstressHandler(deps.SeamstressUC)
	seamstresses.Post("/", seamstressHandler.Create)
	seamstresses.Get("/", seamstressHandler.List)
	seamstresses.Get("/:id", seamstressHandler.GetByID)
	seamstresses.Put("/:id", seamstressHandler.Update)
	seamstresses.Delete("/:id", RequireRole(entity.RoleAdmin), seamstressHandler.Delete)

	// References: catálogo de modelos (protegido)
	references := protected.Group("/references")
	referenceHandler := NewReferenceHandler(deps.ReferenceUC)
	references.Post("/", referenceHandler.Create)
	references.Get("/", referenceHandler.List)
	references.Get("/:id", referenceHandler.GetByID)
	references.Put("/:id", referenceHandler.Update)
	references.Delete("/:id", RequireRole(entity.RoleAdmin), referenceHandler.Delete)

	// Orders: CRUD + ciclo de producción (protegido)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	productionHandler := NewProductionHandler(deps.ConfirmCut, deps.Distribute, deps.FinishSplit, deps.OrderSheet)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id", orderHandler.Update)
	orders.Delete("/:id", RequireRole(entity.RoleAdmin), orderHandler.Delete)
	orders.Post("/:id/cut", productionHandler.ConfirmCut)
	orders.Post("/:id/distribute", productionHandler.Distribute)
	orders.Post("/:id/splits/:splitId/finish", productionHandler.FinishSplit)
	orders.Get("/:id/sheet", productionHandler.OrderSheet)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.GetStats)
}
