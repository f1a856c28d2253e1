package entity

import "time"

// Estados válidos de una orden. No existe máquina de transiciones:
// cualquier estado puede sobrescribirse por cualquier otro.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// ValidOrderStatus indica si s pertenece al enum cerrado de estados de orden.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order representa una orden de compra de un cliente. Es dueña exclusiva de
// sus OrderItems, Payments y de su Invoice: borrarla arrastra a los tres.
type Order struct {
	ID        int64
	ClientID  int64
	CreatedAt time.Time // asignado por el servidor al crear, inmutable
	Status    string
}
