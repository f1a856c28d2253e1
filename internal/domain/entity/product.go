package entity

import "github.com/shopspring/decimal"

// Product representa un artículo del catálogo mayorista.
// QuantityInStock es informativo: crear una orden nunca lo descuenta.
type Product struct {
	ID              int64
	Name            string // único
	Description     string // opcional
	Price           decimal.Decimal
	QuantityInStock int
}
