package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/petshop-storefront/internal/application/catalog"
	"github.com/jhoicas/petshop-storefront/internal/domain"
	"github.com/jhoicas/petshop-storefront/internal/domain/entity"
)

func TestFormState_InicialVacio(t *testing.T) {
	form := catalog.NewFormState()
	assert.Equal(t, entity.ProductFields{}, form.Fields())
}

func TestFormState_SetFieldReemplazaSoloUnaClave(t *testing.T) {
	form := catalog.NewFormState()
	require.NoError(t, form.SetField(catalog.FieldName, "Bone"))
	before := form.Fields()

	require.NoError(t, form.SetField(catalog.FieldPetCategory, "dog"))
	after := form.Fields()

	assert.Equal(t, "Bone", after.Name)
	assert.Equal(t, "dog", after.PetCategory)
	assert.Empty(t, before.PetCategory, "la copia anterior no cambia")
}

func TestFormState_ClaveDesconocida(t *testing.T) {
	form := catalog.NewFormState()
	err := form.SetField("stock", "3")
	assert.ErrorIs(t, err, domain.ErrUnknownField)
	assert.Equal(t, entity.ProductFields{}, form.Fields())
}

func TestFormState_Reset(t *testing.T) {
	form := catalog.NewFormState()
	for _, name := range catalog.FieldNames {
		require.NoError(t, form.SetField(name, "x"))
	}
	form.Reset()
	for _, name := range catalog.FieldNames {
		v, err := catalog.Field(form.Fields(), name)
		require.NoError(t, err)
		assert.Empty(t, v, name)
	}
}

func TestFormState_Validate(t *testing.T) {
	form := catalog.NewFormState()
	assert.NoError(t, form.Validate(validFields()))

	f := validFields()
	f.Image = ""
	assert.ErrorIs(t, form.Validate(f), domain.ErrValidation)
}
