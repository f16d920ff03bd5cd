package catalog

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/petshop-storefront/internal/domain"
	"github.com/jhoicas/petshop-storefront/internal/domain/entity"
)

// Claves fijas del formulario de producto.
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldPetCategory = "petCategory"
	FieldSubCategory = "subCategory"
	FieldPrice       = "price"
	FieldImage       = "image"
)

// FieldNames orden de presentación de los campos.
var FieldNames = []string{FieldName, FieldDescription, FieldPetCategory, FieldSubCategory, FieldPrice, FieldImage}

// FormState buffer de entrada del modal de crear/actualizar. Cada SetField produce un valor nuevo.
type FormState struct {
	fields   entity.ProductFields
	validate *validator.Validate
}

// NewFormState construye el formulario con todos los campos vacíos.
func NewFormState() *FormState {
	return &FormState{validate: validator.New()}
}

// SetField reemplaza el valor de una clave. Una clave desconocida devuelve ErrUnknownField.
func (f *FormState) SetField(name, value string) error {
	next, err := withField(f.fields, name, value)
	if err != nil {
		return err
	}
	f.fields = next
	return nil
}

// Fill reemplaza todos los campos de una vez (al abrir el modal de edición).
func (f *FormState) Fill(fields entity.ProductFields) {
	f.fields = fields
}

// Reset vuelve todos los campos a "".
func (f *FormState) Reset() {
	f.fields = entity.ProductFields{}
}

// Fields copia de los valores actuales.
func (f *FormState) Fields() entity.ProductFields {
	return f.fields
}

// Validate exige que los seis campos no estén vacíos.
func (f *FormState) Validate(fields entity.ProductFields) error {
	if err := f.validate.Struct(fields); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return nil
}

// Field devuelve el valor de una clave.
func Field(fields entity.ProductFields, name string) (string, error) {
	switch name {
	case FieldName:
		return fields.Name, nil
	case FieldDescription:
		return fields.Description, nil
	case FieldPetCategory:
		return fields.PetCategory, nil
	case FieldSubCategory:
		return fields.SubCategory, nil
	case FieldPrice:
		return fields.Price, nil
	case FieldImage:
		return fields.Image, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownField, name)
}

func withField(fields entity.ProductFields, name, value string) (entity.ProductFields, error) {
	switch name {
	case FieldName:
		fields.Name = value
	case FieldDescription:
		fields.Description = value
	case FieldPetCategory:
		fields.PetCategory = value
	case FieldSubCategory:
		fields.SubCategory = value
	case FieldPrice:
		fields.Price = value
	case FieldImage:
		fields.Image = value
	default:
		return fields, fmt.Errorf("%w: %q", domain.ErrUnknownField, name)
	}
	return fields, nil
}
