package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice es la factura de una orden. Relación uno a uno estricta: el
// order_id lleva constraint UNIQUE. TotalAmount lo aporta el llamador,
// nunca se recalcula desde las líneas de la orden.
type Invoice struct {
	ID            int64
	OrderID       int64
	InvoiceNumber string // único, legible, lo aporta el llamador
	InvoiceDate   time.Time
	TotalAmount   decimal.Decimal
	Paid          bool
}
