package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemInput línea de una orden nueva. UnitPrice lo fija el llamador y
// queda congelado como foto del precio al momento de crear la orden.
type OrderItemInput struct {
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateOrderRequest entrada para crear una orden con sus líneas.
// Una lista de items vacía es válida.
type CreateOrderRequest struct {
	ClientID int64            `json:"client_id"`
	Status   string           `json:"status"` // opcional, por defecto pending
	Items    []OrderItemInput `json:"items"`
}

// UpdateOrderStatusRequest entrada para sobrescribir el estado.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderItemResponse salida de una línea de orden.
type OrderItemResponse struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// OrderResponse salida de una orden con sus líneas.
type OrderResponse struct {
	ID        int64               `json:"id"`
	ClientID  int64               `json:"client_id"`
	CreatedAt time.Time           `json:"created_at"`
	Status    string              `json:"status"`
	Items     []OrderItemResponse `json:"items"`
}

// OrderListResponse lista paginada de órdenes (sin líneas, como el listado
// plano de cabeceras).
type OrderListResponse struct {
	Items []OrderResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
