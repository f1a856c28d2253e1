package usecase

import (
	"context"

	"github.com/jhoicas/Mayorista-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con repos atados a una misma transacción.
// Lo implementa postgres.TxRunner; los tests lo sustituyen por un fake en
// memoria. Es el único punto del sistema donde una operación lógica toca
// más de una fila.
type TxRunner interface {
	// RunOrder: crear orden + líneas como unidad atómica.
	RunOrder(ctx context.Context, fn func(
		orders repository.OrderRepository,
		items repository.OrderItemRepository,
	) error) error

	// RunOrderCascade: borrar orden con líneas, pagos y factura en una sola
	// transacción, en ese orden.
	RunOrderCascade(ctx context.Context, fn func(
		orders repository.OrderRepository,
		items repository.OrderItemRepository,
		payments repository.PaymentRepository,
		invoices repository.InvoiceRepository,
	) error) error
}
