package repository

import (
	"context"

	"github.com/jhoicas/petshop-storefront/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product del lado de la API (DIP).
// List devuelve los productos del más reciente al más antiguo.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id entity.ProductID) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context) ([]*entity.Product, error)
	Delete(ctx context.Context, id entity.ProductID) error
}
