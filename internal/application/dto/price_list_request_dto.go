package dto

import "time"

// CreatePriceListRequest entrada para registrar una solicitud de lista de
// precios. Status es texto libre; por defecto "pending".
type CreatePriceListRequest struct {
	ClientID int64  `json:"client_id"`
	Status   string `json:"status"`
}

// UpdatePriceListRequestStatus entrada para sobrescribir el estado (texto libre).
type UpdatePriceListRequestStatus struct {
	Status string `json:"status"`
}

// PriceListRequestResponse salida de una solicitud.
type PriceListRequestResponse struct {
	ID          int64     `json:"id"`
	ClientID    int64     `json:"client_id"`
	RequestedAt time.Time `json:"requested_at"`
	Status      string    `json:"status"`
}

// PriceListRequestListResponse lista paginada de solicitudes.
type PriceListRequestListResponse struct {
	Items []PriceListRequestResponse `json:"items"`
	Page  PageResponse               `json:"page"`
}
