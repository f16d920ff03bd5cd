package catalog

import (
	"fmt"

	"github.com/jhoicas/petshop-storefront/internal/domain"
)

// ModalVariant formulario que muestra el modal. Conjunto cerrado.
type ModalVariant int

const (
	VariantNone ModalVariant = iota
	VariantCreateProduct
	VariantUpdateProduct
)

// String nombre de la variante tal como la nombra la vista.
func (v ModalVariant) String() string {
	switch v {
	case VariantCreateProduct:
		return "CreateProduct"
	case VariantUpdateProduct:
		return "UpdateProduct"
	case VariantNone:
		return ""
	}
	return fmt.Sprintf("ModalVariant(%d)", int(v))
}

// Title encabezado del formulario de cada variante.
func (v ModalVariant) Title() string {
	switch v {
	case VariantCreateProduct:
		return "Create Product"
	case VariantUpdateProduct:
		return "Update Product"
	case VariantNone:
		return ""
	}
	return ""
}

// ParseModalVariant traduce el nombre a la variante; un nombre desconocido es un error explícito.
func ParseModalVariant(name string) (ModalVariant, error) {
	switch name {
	case "CreateProduct":
		return VariantCreateProduct, nil
	case "UpdateProduct":
		return VariantUpdateProduct, nil
	}
	return VariantNone, fmt.Errorf("%w: %q", domain.ErrUnknownVariant, name)
}

// ModalController estado del modal: Closed u Open(variant). Cerrar siempre resetea el formulario.
type ModalController struct {
	isOpen  bool
	variant ModalVariant
	form    *FormState
}

// NewModalController construye el controlador cerrado, atado al formulario que resetea.
func NewModalController(form *FormState) *ModalController {
	return &ModalController{form: form}
}

// Open alterna: cerrado → abierto con v; abierto con otra variante → abierto con v;
// abierto con la misma variante → cerrado.
func (m *ModalController) Open(v ModalVariant) {
	if v == VariantNone {
		m.Close()
		return
	}
	if m.isOpen && m.variant == v {
		m.Close()
		return
	}
	m.isOpen = true
	m.variant = v
}

// Close pasa a Closed desde cualquier estado y resetea el formulario.
func (m *ModalController) Close() {
	m.isOpen = false
	m.variant = VariantNone
	if m.form != nil {
		m.form.Reset()
	}
}

// IsOpen indica si el modal está abierto.
func (m *ModalController) IsOpen() bool { return m.isOpen }

// Variant variante abierta, VariantNone si está cerrado.
func (m *ModalController) Variant() ModalVariant { return m.variant }
