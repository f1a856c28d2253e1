package entity

import "github.com/shopspring/decimal"

// OrderItem es una línea de una orden. UnitPrice es una foto del precio al
// momento de crear la orden: cambios posteriores al Product no la afectan.
type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int // positivo
	UnitPrice decimal.Decimal
}
