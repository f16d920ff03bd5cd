package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/jhoicas/petshop-storefront/internal/application/cart"
)

// CartView renderiza el carrito leído del almacenamiento local.
type CartView struct {
	svc *cart.Service
	out io.Writer
}

// NewCartView construye la vista.
func NewCartView(svc *cart.Service, out io.Writer) *CartView {
	return &CartView{svc: svc, out: out}
}

// Render imprime el total y las líneas.
func (v *CartView) Render(ctx context.Context) error {
	summary, err := v.svc.Summary(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(v.out, "Total Price: %s\n", summary.FormattedTotal())
	renderProducts(v.out, summary.Items)
	return nil
}
