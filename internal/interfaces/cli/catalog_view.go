package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jhoicas/petshop-storefront/internal/application/catalog"
	"github.com/jhoicas/petshop-storefront/internal/domain/entity"
)

// noProducts mensaje de lista vacía, igual en catálogo y carrito.
const noProducts = "No Products Found"

// CatalogView renderiza la vista filtrada y el modal abierto.
type CatalogView struct {
	state *catalog.State
	out   io.Writer
}

// NewCatalogView recibe el estado ya construido; la vista no lo crea ni lo destruye.
func NewCatalogView(state *catalog.State, out io.Writer) *CatalogView {
	return &CatalogView{state: state, out: out}
}

// Render imprime filtro activo, productos y, si está abierto, el formulario del modal.
func (v *CatalogView) Render() {
	header := "filter: " + v.state.ActiveFilter().String()
	if v.state.Stale() {
		header += " (stale, run refresh)"
	}
	fmt.Fprintln(v.out, header)
	renderProducts(v.out, v.state.FilteredProducts())
	v.RenderModal()
}

// RenderModal imprime el formulario de la variante abierta; nada si está cerrado.
func (v *CatalogView) RenderModal() {
	variant := v.state.ModalVariant()
	switch variant {
	case catalog.VariantCreateProduct, catalog.VariantUpdateProduct:
		fmt.Fprintf(v.out, "== %s ==\n", variant.Title())
		fields := v.state.FormFields()
		for _, name := range catalog.FieldNames {
			val, _ := catalog.Field(fields, name)
			fmt.Fprintf(v.out, "  %-12s %q\n", name, val)
		}
		fmt.Fprintln(v.out, "  (set <field> <value>, submit, close)")
	case catalog.VariantNone:
	}
}

func renderProducts(out io.Writer, products []entity.Product) {
	if len(products) == 0 {
		fmt.Fprintln(out, noProducts)
		return
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPET\tSUB\tPRICE")
	for _, p := range products {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Name, p.PetCategory, p.SubCategory, p.Price)
	}
	tw.Flush()
}
