package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/history"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/ledger"
	"github.com/Luiz2608/Software-Financeiro---Paraiba/internal/application/registry"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ServiceName      string
	DB               Pinger
	Upload           InvoiceProcessor
	UploadMaxMB      int
	PersonUC         *registry.PersonUseCase
	ClassificationUC *registry.ClassificationUseCase
	MovementUC       *ledger.MovementUseCase
	History          *history.Service
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", Health(deps.ServiceName, deps.DB))

	api := app.Group("/api")

	// Carga de notas fiscales
	invoiceHandler := NewInvoiceHandler(deps.Upload, deps.UploadMaxMB)
	api.Post("/invoices/process", invoiceHandler.Process)

	persons := api.Group("/persons")
	personHandler := NewPersonHandler(deps.PersonUC)
	persons.Get("/", personHandler.List)
	persons.Post("/", personHandler.Create)
	persons.Get("/:id", personHandler.Get)
	persons.Put("/:id", personHandler.Update)
	persons.Delete("/:id", personHandler.Deactivate)
	persons.Patch("/:id/activate", personHandler.Activate)

	classifications := api.Group("/classifications")
	classificationHandler := NewClassificationHandler(deps.ClassificationUC)
	classifications.Get("/", classificationHandler.List)
	classifications.Post("/", classificationHandler.Create)
	classifications.Get("/:id", classificationHandler.Get)
	classifications.Put("/:id", classificationHandler.Update)
	classifications.Delete("/:id", classificationHandler.Deactivate)
	classifications.Patch("/:id/activate", classificationHandler.Activate)

	movements := api.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Get("/", movementHandler.List)
	movements.Get("/:id", movementHandler.Get)
	movements.Put("/:id", movementHandler.Update)
	movements.Delete("/:id", movementHandler.Delete)
	movements.Get("/:id/pdf", movementHandler.Voucher)
	movements.Post("/:id/classifications/:classificationId", movementHandler.LinkClassification)
	api.Post("/installments/:id/settle", movementHandler.Settle)

	hist := api.Group("/history")
	historyHandler := NewHistoryHandler(deps.History)
	hist.Get("/", historyHandler.List)
	hist.Delete("/", historyHandler.Clear)
	hist.Get("/:id", historyHandler.Get)
	hist.Delete("/:id", historyHandler.Delete)
}
