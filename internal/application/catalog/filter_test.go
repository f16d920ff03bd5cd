package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/petshop-storefront/internal/application/catalog"
	"github.com/jhoicas/petshop-storefront/internal/domain/entity"
)

func TestFilters_Match(t *testing.T) {
	p := entity.Product{Name: "Nylon Leash", PetCategory: "dog", SubCategory: "Accessories"}

	cases := []struct {
		name   string
		filter catalog.Filter
		want   bool
	}{
		{"none", catalog.NoFilter(), true},
		{"pet exacto", catalog.PetCategory("dog"), true},
		{"pet mayúsculas", catalog.PetCategory("DOG"), false},
		{"pet all", catalog.PetCategory("all"), true},
		{"sub fold", catalog.SubCategory("accessories"), true},
		{"sub otro", catalog.SubCategory("toys"), false},
		{"search vacío", catalog.SearchTerm(""), true},
		{"search fold", catalog.SearchTerm("LEASH"), true},
		{"search no", catalog.SearchTerm("collar"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.filter.Match(p))
		})
	}
}
