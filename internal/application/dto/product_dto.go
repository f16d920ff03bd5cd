package dto

import "github.com/jhoicas/petshop-storefront/internal/domain/entity"

// CreateProductRequest entrada para crear o actualizar un producto (camelCase, como la envía el storefront).
type CreateProductRequest = entity.ProductFields

// ProductListResponse cuerpo de GET /api/v1/products.
type ProductListResponse struct {
	Products []entity.Product `json:"products"`
}

// ProductEnvelope cuerpo de POST y PUT /api/v1/products.
type ProductEnvelope struct {
	Data entity.Product `json:"data"`
}
