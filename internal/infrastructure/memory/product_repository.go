package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/petshop-storefront/internal/domain"
	"github.com/jhoicas/petshop-storefront/internal/domain/entity"
	"github.com/jhoicas/petshop-storefront/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo catálogo en memoria para desarrollo y tests (DB_DRIVER=memory).
type ProductRepo struct {
	mu    sync.RWMutex
	items []entity.Product // más reciente primero
}

// NewProductRepository construye el repositorio con un catálogo inicial opcional.
func NewProductRepository(seed ...entity.Product) *ProductRepo {
	return &ProductRepo{items: append([]entity.Product{}, seed...)}
}

// Create antepone el producto.
func (r *ProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.items {
		if p.ID == product.ID {
			return domain.ErrInvalidInput
		}
	}
	r.items = append([]entity.Product{*product}, r.items...)
	return nil
}

// GetByID nil si no existe.
func (r *ProductRepo) GetByID(_ context.Context, id entity.ProductID) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.items {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

// Update reemplaza el producto en su posición.
func (r *ProductRepo) Update(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.items {
		if p.ID == product.ID {
			r.items[i] = *product
			return nil
		}
	}
	return domain.ErrNotFound
}

// List copia del catálogo.
func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.items))
	for i := range r.items {
		cp := r.items[i]
		out = append(out, &cp)
	}
	return out, nil
}

// Delete quita el producto; ErrNotFound si no existe.
func (r *ProductRepo) Delete(_ context.Context, id entity.ProductID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.items {
		if p.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
