package entity

import "github.com/shopspring/decimal"

// Product producto dentro de una bodega del catálogo WIMS.
// La identidad es ID; el emparejamiento de escaneos se hace por nombre
// normalizado, nunca por ID (la etiqueta escaneada no lo conoce).
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Quantity    int
	CategoryID  string
}
