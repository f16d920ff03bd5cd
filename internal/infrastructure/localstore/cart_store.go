package localstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/jhoicas/petshop-storefront/internal/application/cart"
	"github.com/jhoicas/petshop-storefront/internal/domain"
	"github.com/jhoicas/petshop-storefront/internal/domain/entity"
	"github.com/jhoicas/petshop-storefront/pkg/logger"
)

// CartKey clave bajo la que se guarda el carrito.
const CartKey = "products"

var (
	_ cart.Store  = (*CartStore)(nil)
	_ cart.Writer = (*CartStore)(nil)
)

// CartStore carrito guardado como arreglo JSON bajo CartKey.
type CartStore struct {
	storage *FileStorage
	log     *logger.Logger
}

// NewCartStore construye el store sobre el almacenamiento dado.
func NewCartStore(storage *FileStorage, log *logger.Logger) *CartStore {
	if log == nil {
		log = logger.Nop()
	}
	return &CartStore{storage: storage, log: log.Named("cart")}
}

// ReadAll clave ausente → carrito vacío con aviso en el log; valor corrupto → ErrMalformedLocalData.
func (s *CartStore) ReadAll(ctx context.Context) ([]entity.CartItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, ok, err := s.storage.Get(CartKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.log.Warn().Str("key", CartKey).Msg("carrito no encontrado en almacenamiento local, se usa vacío")
		return []entity.CartItem{}, nil
	}
	return decodeItems(raw)
}

// Add añade item al final del carrito.
func (s *CartStore) Add(ctx context.Context, item entity.CartItem) error {
	items, err := s.ReadAll(ctx)
	if err != nil {
		return err
	}
	items = append(items, item)
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("serializar carrito: %w", err)
	}
	return s.storage.Set(CartKey, string(raw))
}

func decodeItems(raw string) ([]entity.CartItem, error) {
	trimmed := bytes.TrimSpace([]byte(raw))
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, fmt.Errorf("%w: clave %q vacía", domain.ErrMalformedLocalData, CartKey)
	}
	var items []entity.CartItem
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("%w: clave %q: %v", domain.ErrMalformedLocalData, CartKey, err)
	}
	return items, nil
}
