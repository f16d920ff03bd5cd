package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/petshop-storefront/internal/domain"
	"github.com/jhoicas/petshop-storefront/internal/domain/entity"
	"github.com/jhoicas/petshop-storefront/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, description, pet_category, sub_category, price, image`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	price, err := product.Price.Decimal()
	if err != nil {
		return fmt.Errorf("%w: precio %q", domain.ErrInvalidInput, product.Price)
	}
	query := `
		INSERT INTO products (id, name, description, pet_category, sub_category, price, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.q.Exec(ctx, query,
		string(product.ID), product.Name, product.Description, product.PetCategory,
		product.SubCategory, price, product.Image,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrInvalidInput
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID; nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id entity.ProductID) (*entity.Product, error) {
	row := r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, string(id))
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Update actualiza los campos editables. ErrNotFound si no hay fila.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	price, err := product.Price.Decimal()
	if err != nil {
		return fmt.Errorf("%w: precio %q", domain.ErrInvalidInput, product.Price)
	}
	query := `
		UPDATE products SET name = $2, description = $3, pet_category = $4, sub_category = $5,
			price = $6, image = $7, updated_at = now()
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		string(product.ID), product.Name, product.Description, product.PetCategory,
		product.SubCategory, price, product.Image,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista el catálogo, más reciente primero.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	list := []*entity.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Delete elimina un producto por ID. ErrNotFound si no hay fila.
func (r *ProductRepo) Delete(ctx context.Context, id entity.ProductID) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, string(id))
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var (
		p     entity.Product
		id    string
		price decimal.Decimal
	)
	if err := row.Scan(&id, &p.Name, &p.Description, &p.PetCategory, &p.SubCategory, &price, &p.Image); err != nil {
		return nil, err
	}
	p.ID = entity.ProductID(id)
	p.Price = entity.Price(price.StringFixed(2))
	return &p, nil
}
