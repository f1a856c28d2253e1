package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Mayorista-api/internal/application/dto"
	"github.com/jhoicas/Mayorista-api/internal/domain"
	"github.com/jhoicas/Mayorista-api/internal/domain/entity"
	"github.com/jhoicas/Mayorista-api/internal/domain/repository"
)

// PaymentUseCase casos de uso de pagos. Una orden admite varios pagos y no
// se valida el total: los pagos parciales y el sobrepago son legales.
type PaymentUseCase struct {
	repo repository.PaymentRepository
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(repo repository.PaymentRepository) *PaymentUseCase {
	return &PaymentUseCase{repo: repo}
}

// Create registra un pago. No pre-chequea la orden: el FK del motor decide,
// y su violación llega como ErrConflict.
func (uc *PaymentUseCase) Create(ctx context.Context, in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	status := in.Status
	if status == "" {
		status = entity.PaymentStatusPending
	}
	if !entity.ValidPaymentStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	payment := &entity.Payment{
		OrderID:     in.OrderID,
		Amount:      in.Amount,
		PaymentDate: time.Now(),
		Status:      status,
		Method:      in.Method,
	}
	if err := uc.repo.Create(ctx, payment); err != nil {
		return nil, err
	}
	return toPaymentResponse(payment), nil
}

// GetByID obtiene un pago. Devuelve (nil, nil) si no existe.
func (uc *PaymentUseCase) GetByID(ctx context.Context, id int64) (*dto.PaymentResponse, error) {
	payment, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, nil
	}
	return toPaymentResponse(payment), nil
}

// List lista pagos con paginación.
func (uc *PaymentUseCase) List(ctx context.Context, skip, limit int) (*dto.PaymentListResponse, error) {
	skip, limit = dto.NormalizePage(skip, limit)
	list, err := uc.repo.List(ctx, limit, skip)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPaymentResponse(p))
	}
	return &dto.PaymentListResponse{
		Items: items,
		Page:  dto.PageResponse{Skip: skip, Limit: limit},
	}, nil
}

// UpdateStatus sobrescribe el estado del pago (enum cerrado).
func (uc *PaymentUseCase) UpdateStatus(ctx context.Context, id int64, status string) (*dto.PaymentResponse, error) {
	if !entity.ValidPaymentStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	payment, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, nil
	}
	if err := uc.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	payment.Status = status
	return toPaymentResponse(payment), nil
}

// Delete elimina un pago. ErrNotFound si no existe.
func (uc *PaymentUseCase) Delete(ctx context.Context, id int64) error {
	payment, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if payment == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		ID:          p.ID,
		OrderID:     p.OrderID,
		Amount:      p.Amount,
		PaymentDate: p.PaymentDate,
		Status:      p.Status,
		Method:      p.Method,
	}
}
