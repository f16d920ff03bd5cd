package entity

// ProductFields los seis campos editables de un producto, tal como se envían al crear o actualizar.
// Las etiquetas validate exigen que ninguno quede vacío.
type ProductFields struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	PetCategory string `json:"petCategory" validate:"required"`
	SubCategory string `json:"subCategory" validate:"required"`
	Price       string `json:"price" validate:"required"`
	Image       string `json:"image" validate:"required"`
}

// FieldsOf extrae los campos editables de un producto existente.
func FieldsOf(p Product) ProductFields {
	return ProductFields{
		Name:        p.Name,
		Description: p.Description,
		PetCategory: p.PetCategory,
		SubCategory: p.SubCategory,
		Price:       string(p.Price),
		Image:       p.Image,
	}
}
