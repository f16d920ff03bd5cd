package cart

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/petshop-storefront/internal/domain"
	"github.com/jhoicas/petshop-storefront/internal/domain/entity"
)

// Summary lo que renderiza la vista del carrito.
type Summary struct {
	Items []entity.CartItem
	Total decimal.Decimal
}

// FormattedTotal total con dos decimales seguido de "$" (ej. "15.75$").
func (s Summary) FormattedTotal() string {
	return s.Total.StringFixed(2) + "$"
}

// Empty indica que no hay líneas en el carrito.
func (s Summary) Empty() bool { return len(s.Items) == 0 }

// Service casos de uso del carrito (sólo lectura sobre el catálogo).
type Service struct {
	store Store
}

// NewService construye el servicio.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Summary lee el carrito y suma los precios.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	items, err := s.store.ReadAll(ctx)
	if err != nil {
		return Summary{}, err
	}
	total, err := Total(items)
	if err != nil {
		return Summary{}, err
	}
	return Summary{Items: items, Total: total}, nil
}

// Add añade una línea si el store admite escrituras.
func (s *Service) Add(ctx context.Context, item entity.CartItem) error {
	w, ok := s.store.(Writer)
	if !ok {
		return fmt.Errorf("%w: el carrito es de sólo lectura", domain.ErrInvalidInput)
	}
	return w.Add(ctx, item)
}

// Total suma exacta de los precios. Un precio no numérico cuenta como dato local corrupto.
func Total(items []entity.CartItem) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, it := range items {
		price, err := it.Price.Decimal()
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: precio %q del producto %s", domain.ErrMalformedLocalData, it.Price, it.ID)
		}
		sum = sum.Add(price)
	}
	return sum, nil
}
