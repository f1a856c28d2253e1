package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePaymentRequest entrada para registrar un pago contra una orden.
// No se valida el monto contra el total de la orden: se admiten pagos
// parciales y en exceso.
type CreatePaymentRequest struct {
	OrderID int64           `json:"order_id"`
	Amount  decimal.Decimal `json:"amount"`
	Status  string          `json:"status"` // opcional, por defecto pending
	Method  string          `json:"method"` // texto libre, opcional
}

// UpdatePaymentStatusRequest entrada para sobrescribir el estado del pago.
type UpdatePaymentStatusRequest struct {
	Status string `json:"status"`
}

// PaymentResponse salida de un pago.
type PaymentResponse struct {
	ID          int64           `json:"id"`
	OrderID     int64           `json:"order_id"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"payment_date"`
	Status      string          `json:"status"`
	Method      string          `json:"method,omitempty"`
}

// PaymentListResponse lista paginada de pagos.
type PaymentListResponse struct {
	Items []PaymentResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
