package entity_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/petshop-storefront/internal/domain/entity"
)

func TestProduct_UnmarshalIDYPrecioFlexibles(t *testing.T) {
	var list []entity.Product
	raw := `[
		{"id":"b7c1","name":"Bone","pet_category":"dog","sub_category":"toys","price":"10.50","image":"x.png"},
		{"id":42,"name":"Ball","price":3.5}
	]`
	require.NoError(t, json.Unmarshal([]byte(raw), &list))
	require.Len(t, list, 2)

	assert.Equal(t, entity.ProductID("b7c1"), list[0].ID)
	assert.Equal(t, "dog", list[0].PetCategory)
	assert.Equal(t, "toys", list[0].SubCategory)
	assert.Equal(t, entity.Price("10.50"), list[0].Price)

	assert.Equal(t, entity.ProductID("42"), list[1].ID)
	assert.Equal(t, entity.Price("3.5"), list[1].Price)
}

func TestProduct_MarshalPrecioComoTexto(t *testing.T) {
	b, err := json.Marshal(entity.Product{ID: "1", Price: "10.50"})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"price":"10.50"`)
	assert.Contains(t, string(b), `"id":"1"`)
}

func TestPrice_Decimal(t *testing.T) {
	d, err := entity.Price(" 10.50 ").Decimal()
	require.NoError(t, err)
	assert.Equal(t, "10.5", d.String())

	_, err = entity.Price("").Decimal()
	assert.Error(t, err)
}

func TestProductID_RechazaObjetos(t *testing.T) {
	var p entity.Product
	assert.Error(t, json.Unmarshal([]byte(`{"id":{"x":1}}`), &p))
}

func TestFieldsOf(t *testing.T) {
	p := entity.Product{ID: "1", Name: "n", Description: "d", PetCategory: "cat", SubCategory: "s", Price: "1.00", Image: "i"}
	f := entity.FieldsOf(p)
	assert.Equal(t, entity.ProductFields{Name: "n", Description: "d", PetCategory: "cat", SubCategory: "s", Price: "1.00", Image: "i"}, f)
}
