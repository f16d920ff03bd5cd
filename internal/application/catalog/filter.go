package catalog

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/petshop-storefront/internal/domain/entity"
)

// FilterAll valor de selector que desactiva el filtro de categoría o subcategoría.
const FilterAll = "all"

// Filter predicado activo sobre el catálogo. Sólo hay uno activo a la vez; el conjunto es cerrado.
type Filter interface {
	Match(p entity.Product) bool
	String() string
	filter()
}

type noFilter struct{}

func (noFilter) Match(entity.Product) bool { return true }
func (noFilter) String() string            { return "none" }
func (noFilter) filter()                   {}

// petFilter coincidencia exacta, sensible a mayúsculas.
type petFilter struct{ category string }

func (f petFilter) Match(p entity.Product) bool { return p.PetCategory == f.category }
func (f petFilter) String() string              { return "pet=" + f.category }
func (petFilter) filter()                       {}

// subCategoryFilter igualdad tras case folding en ambos lados.
type subCategoryFilter struct{ folded string }

func (f subCategoryFilter) Match(p entity.Product) bool { return fold(p.SubCategory) == f.folded }
func (f subCategoryFilter) String() string              { return "sub=" + f.folded }
func (subCategoryFilter) filter()                       {}

// searchFilter subcadena del nombre tras case folding. El término vacío coincide con todo.
type searchFilter struct{ folded string }

func (f searchFilter) Match(p entity.Product) bool {
	return strings.Contains(fold(p.Name), f.folded)
}
func (f searchFilter) String() string { return "search=" + f.folded }
func (searchFilter) filter()          {}

// NoFilter deja pasar todos los productos.
func NoFilter() Filter { return noFilter{} }

// PetCategory filtro por categoría de mascota; "all" equivale a NoFilter.
func PetCategory(category string) Filter {
	if category == FilterAll {
		return noFilter{}
	}
	return petFilter{category: category}
}

// SubCategory filtro por subcategoría; "all" (sin importar mayúsculas) equivale a NoFilter.
func SubCategory(sub string) Filter {
	folded := fold(sub)
	if folded == FilterAll {
		return noFilter{}
	}
	return subCategoryFilter{folded: folded}
}

// SearchTerm filtro por subcadena del nombre.
func SearchTerm(term string) Filter {
	return searchFilter{folded: fold(term)}
}

// apply devuelve siempre un slice nuevo.
func apply(f Filter, products []entity.Product) []entity.Product {
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

func fold(s string) string {
	return cases.Fold().String(s)
}
