package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ransara-lk/supermarket-api/internal/application/checkout"
	"github.com/ransara-lk/supermarket-api/internal/application/ledger"
	"github.com/ransara-lk/supermarket-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LedgerUC   *ledger.StockLedgerUseCase
	BatchUC    *usecase.StockBatchUseCase
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	CartUC     *usecase.CartUseCase
	CheckoutUC *checkout.CheckoutUseCase
	SupplierUC *usecase.SupplierUseCase
	FeedbackUC *usecase.FeedbackUseCase
	JWTSecret  string
}

// Router registra las rutas de la API. Todas las rutas pasan por CurrentUser:
// con Bearer token usan esa identidad, sin token caen al usuario demo.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", CurrentUser(deps.JWTSecret))

	// Stock ledger
	transactions := api.Group("/transactions")
	transactionHandler := NewTransactionHandler(deps.LedgerUC)
	transactions.Post("/", transactionHandler.Create)
	transactions.Get("/", transactionHandler.List)
	transactions.Get("/:id", transactionHandler.GetByID)
	transactions.Put("/:id", transactionHandler.Update)
	transactions.Delete("/:id", transactionHandler.Delete) // siempre 405

	// Stock batches
	batches := api.Group("/batches")
	batchHandler := NewBatchHandler(deps.BatchUC)
	batches.Post("/", batchHandler.Create)
	batches.Get("/", batchHandler.List)
	batches.Get("/:id", batchHandler.GetByID)

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Categories
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)

	// Cart
	cart := api.Group("/cart")
	cartHandler := NewCartHandler(deps.CartUC)
	cart.Get("/", cartHandler.View)
	cart.Post("/add", cartHandler.Add)
	cart.Put("/update", cartHandler.Update)
	cart.Delete("/remove/:product_id", cartHandler.Remove)

	// Orders
	orders := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.CheckoutUC)
	orders.Post("/checkout", orderHandler.Checkout)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id/status", orderHandler.UpdateStatus)

	// Suppliers
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/analytics", supplierHandler.Analytics)
	suppliers.Get("/export/csv", supplierHandler.ExportCSV)
	suppliers.Get("/export/pdf", supplierHandler.ExportPDF)
	suppliers.Post("/import/csv", supplierHandler.ImportCSV)
	suppliers.Post("/ai/train", supplierHandler.TrainModel)
	suppliers.Get("/ai/predict/:id", supplierHandler.PredictReliability)
	suppliers.Post("/ai/predict-all", supplierHandler.PredictAll)
	suppliers.Get("/ai/recommendations", supplierHandler.Recommendations)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Feedback
	feedback := api.Group("/feedback")
	feedbackHandler := NewFeedbackHandler(deps.FeedbackUC)
	feedback.Get("/", feedbackHandler.List)
	feedback.Post("/", feedbackHandler.Create)
	feedback.Put("/reply/:id", feedbackHandler.Reply)
	feedback.Put("/:id", feedbackHandler.Update)
	feedback.Delete("/:id", feedbackHandler.Delete)
}
