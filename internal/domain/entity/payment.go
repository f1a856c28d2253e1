package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de un pago.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// ValidPaymentStatus indica si s pertenece al enum cerrado de estados de pago.
func ValidPaymentStatus(s string) bool {
	return s == PaymentStatusPending || s == PaymentStatusCompleted || s == PaymentStatusFailed
}

// Payment es un pago registrado contra una orden. Una orden admite varios
// pagos (parciales o en exceso): no se valida el total contra la orden.
type Payment struct {
	ID          int64
	OrderID     int64
	Amount      decimal.Decimal
	PaymentDate time.Time // asignado por el servidor al crear
	Status      string
	Method      string // texto libre: card, transferencia, efectivo... opcional
}
