package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ProductID identificador estable de un producto. En el cable puede llegar como string o número.
type ProductID string

// UnmarshalJSON acepta "abc", "1" o 1.
func (id *ProductID) UnmarshalJSON(b []byte) error {
	s, err := stringOrNumber(b)
	if err != nil {
		return fmt.Errorf("product id: %w", err)
	}
	*id = ProductID(s)
	return nil
}

// Price precio decimal transportado como texto ("10.50"). Se convierte a decimal sólo para aritmética.
type Price string

// UnmarshalJSON acepta "10.50" o 10.5.
func (p *Price) UnmarshalJSON(b []byte) error {
	s, err := stringOrNumber(b)
	if err != nil {
		return fmt.Errorf("price: %w", err)
	}
	*p = Price(s)
	return nil
}

// Decimal parsea el precio. Un precio vacío o no numérico es un error.
func (p Price) Decimal() (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(string(p)))
}

// Product representa un producto del catálogo de mascotas tal como lo devuelve la API.
type Product struct {
	ID          ProductID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PetCategory string    `json:"pet_category"` // dog, cat, bird...
	SubCategory string    `json:"sub_category"` // food, toys, accessories...
	Price       Price     `json:"price"`
	Image       string    `json:"image"`
}

// CartItem línea del carrito guardada en almacenamiento local. Misma forma que Product.
type CartItem = Product

func stringOrNumber(b []byte) (string, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return "", nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}
