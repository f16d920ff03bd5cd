package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/petshop-storefront/internal/application/dto"
	"github.com/jhoicas/petshop-storefront/internal/domain"
	"github.com/jhoicas/petshop-storefront/internal/domain/entity"
	"github.com/jhoicas/petshop-storefront/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD del catálogo expuestos por la API.
type ProductUseCase struct {
	repo     repository.ProductRepository
	validate *validator.Validate
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, validate: validator.New()}
}

// Create crea un nuevo producto con id UUID. Todos los campos son obligatorios y el precio
// debe ser un decimal >= 0; se guarda con dos decimales ("10.5" → "10.50").
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*entity.Product, error) {
	price, err := uc.check(in)
	if err != nil {
		return nil, err
	}
	product := &entity.Product{
		ID:          entity.ProductID(uuid.New().String()),
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		PetCategory: strings.TrimSpace(in.PetCategory),
		SubCategory: strings.TrimSpace(in.SubCategory),
		Price:       entity.Price(price.StringFixed(2)),
		Image:       strings.TrimSpace(in.Image),
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update reemplaza los seis campos del producto id. Devuelve domain.ErrNotFound si no existe.
func (uc *ProductUseCase) Update(ctx context.Context, id entity.ProductID, in dto.CreateProductRequest) (*entity.Product, error) {
	price, err := uc.check(in)
	if err != nil {
		return nil, err
	}
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.Name = strings.TrimSpace(in.Name)
	product.Description = strings.TrimSpace(in.Description)
	product.PetCategory = strings.TrimSpace(in.PetCategory)
	product.SubCategory = strings.TrimSpace(in.SubCategory)
	product.Price = entity.Price(price.StringFixed(2))
	product.Image = strings.TrimSpace(in.Image)
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// List lista el catálogo completo, del más reciente al más antiguo.
func (uc *ProductUseCase) List(ctx context.Context) ([]entity.Product, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]entity.Product, 0, len(list))
	for _, p := range list {
		items = append(items, *p)
	}
	return items, nil
}

// GetByID obtiene un producto; nil si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id entity.ProductID) (*entity.Product, error) {
	return uc.repo.GetByID(ctx, id)
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, id entity.ProductID) error {
	return uc.repo.Delete(ctx, id)
}

func (uc *ProductUseCase) check(in dto.CreateProductRequest) (decimal.Decimal, error) {
	if err := uc.validate.Struct(in); err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	price, err := decimal.NewFromString(strings.TrimSpace(in.Price))
	if err != nil || price.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: precio %q", domain.ErrInvalidInput, in.Price)
	}
	return price, nil
}
