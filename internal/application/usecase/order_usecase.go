package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Mayorista-api/internal/application/dto"
	"github.com/jhoicas/Mayorista-api/internal/domain"
	"github.com/jhoicas/Mayorista-api/internal/domain/entity"
	"github.com/jhoicas/Mayorista-api/internal/domain/repository"
)

// OrderUseCase casos de uso de órdenes. Crear y borrar son las dos únicas
// operaciones multi-fila del sistema y corren dentro del TxRunner.
type OrderUseCase struct {
	tx    TxRunner
	repo  repository.OrderRepository
	items repository.OrderItemRepository
}

// NewOrderUseCase construye el caso de uso. repo/items van sobre el pool
// para las lecturas; tx abre su propia transacción para las escrituras.
func NewOrderUseCase(tx TxRunner, repo repository.OrderRepository, items repository.OrderItemRepository) *OrderUseCase {
	return &OrderUseCase{tx: tx, repo: repo, items: items}
}

// Create inserta la orden y sus líneas como unidad atómica. Si cualquier
// línea falla (por ejemplo product_id inexistente) la transacción completa
// se revierte: jamás queda una orden parcial. Una lista de items vacía es
// válida. UnitPrice queda congelado como foto del precio.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	status := in.Status
	if status == "" {
		status = entity.OrderStatusPending
	}
	if !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	order := entity.Order{
		ClientID:  in.ClientID,
		CreatedAt: time.Now(),
		Status:    status,
	}
	created := make([]entity.OrderItem, 0, len(in.Items))
	err := uc.tx.RunOrder(ctx, func(orders repository.OrderRepository, items repository.OrderItemRepository) error {
		if err := orders.Create(ctx, &order); err != nil {
			return err
		}
		for _, it := range in.Items {
			item := entity.OrderItem{
				OrderID:   order.ID,
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				UnitPrice: it.UnitPrice,
			}
			if err := items.Create(ctx, &item); err != nil {
				return err
			}
			created = append(created, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toOrderResponse(&order, created), nil
}

// GetByID obtiene una orden con sus líneas. Devuelve (nil, nil) si no existe.
func (uc *OrderUseCase) GetByID(ctx context.Context, id int64) (*dto.OrderResponse, error) {
	order, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	items, err := uc.items.ListByOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	lines := make([]entity.OrderItem, 0, len(items))
	for _, it := range items {
		lines = append(lines, *it)
	}
	return toOrderResponse(order, lines), nil
}

// List lista cabeceras de órdenes con paginación (sin líneas).
func (uc *OrderUseCase) List(ctx context.Context, skip, limit int) (*dto.OrderListResponse, error) {
	skip, limit = dto.NormalizePage(skip, limit)
	list, err := uc.repo.List(ctx, limit, skip)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o, nil))
	}
	return &dto.OrderListResponse{
		Items: items,
		Page:  dto.PageResponse{Skip: skip, Limit: limit},
	}, nil
}

// UpdateStatus sobrescribe el estado sin chequear transiciones: delivered →
// pending es legal. El enum cerrado sí se valida.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, id int64, status string) (*dto.OrderResponse, error) {
	if !entity.ValidOrderStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	if err := uc.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	order.Status = status
	items, err := uc.items.ListByOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	lines := make([]entity.OrderItem, 0, len(items))
	for _, it := range items {
		lines = append(lines, *it)
	}
	return toOrderResponse(order, lines), nil
}

// Delete borra la orden y todo lo que posee en una sola transacción:
// líneas, pagos y factura primero, la cabecera al final. ErrNotFound si la
// orden no existe.
func (uc *OrderUseCase) Delete(ctx context.Context, id int64) error {
	order, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}
	return uc.tx.RunOrderCascade(ctx, func(
		orders repository.OrderRepository,
		items repository.OrderItemRepository,
		payments repository.PaymentRepository,
		invoices repository.InvoiceRepository,
	) error {
		if err := items.DeleteByOrder(ctx, id); err != nil {
			return err
		}
		if err := payments.DeleteByOrder(ctx, id); err != nil {
			return err
		}
		if err := invoices.DeleteByOrder(ctx, id); err != nil {
			return err
		}
		return orders.Delete(ctx, id)
	})
}

func toOrderResponse(o *entity.Order, items []entity.OrderItem) *dto.OrderResponse {
	lines := make([]dto.OrderItemResponse, 0, len(items))
	for _, it := range items {
		lines = append(lines, dto.OrderItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return &dto.OrderResponse{
		ID:        o.ID,
		ClientID:  o.ClientID,
		CreatedAt: o.CreatedAt,
		Status:    o.Status,
		Items:     lines,
	}
}
