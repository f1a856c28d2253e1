package entity

import "time"

// PriceListRequest es una solicitud de lista de precios hecha por un cliente.
// A diferencia de Order y Payment, Status aquí es texto libre (pending, sent,
// declined u otro valor que el personal quiera anotar).
type PriceListRequest struct {
	ID          int64
	ClientID    int64
	RequestedAt time.Time
	Status      string
}
