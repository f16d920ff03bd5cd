package cart

import (
	"context"

	"github.com/jhoicas/petshop-storefront/internal/domain/entity"
)

// Store puerto de lectura del carrito persistido en almacenamiento local.
// Clave ausente → carrito vacío; valor corrupto → domain.ErrMalformedLocalData.
type Store interface {
	ReadAll(ctx context.Context) ([]entity.CartItem, error)
}

// Writer puerto opcional para añadir líneas al carrito.
type Writer interface {
	Add(ctx context.Context, item entity.CartItem) error
}
