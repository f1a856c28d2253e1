package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest entrada para emitir la factura de una orden.
// TotalAmount lo aporta el llamador, no se calcula desde las líneas.
type CreateInvoiceRequest struct {
	OrderID       int64           `json:"order_id"`
	InvoiceNumber string          `json:"invoice_number"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Paid          bool            `json:"paid"`
}

// UpdateInvoicePaidRequest entrada para marcar la factura como pagada o no.
type UpdateInvoicePaidRequest struct {
	Paid bool `json:"paid"`
}

// InvoiceResponse salida de una factura.
type InvoiceResponse struct {
	ID            int64           `json:"id"`
	OrderID       int64           `json:"order_id"`
	InvoiceNumber string          `json:"invoice_number"`
	InvoiceDate   time.Time       `json:"invoice_date"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Paid          bool            `json:"paid"`
}

// InvoiceListResponse lista paginada de facturas.
type InvoiceListResponse struct {
	Items []InvoiceResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
