package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/petshop-storefront/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC *usecase.ProductUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	// Products: lectura pública, escritura protegida si hay JWT_SECRET
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	requireWrite := AuthMiddleware(deps.JWTSecret)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", requireWrite, productHandler.Create)
	products.Put("/:id", requireWrite, productHandler.Update)
	products.Delete("/:id", requireWrite, productHandler.Delete)
}
