package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Mayorista-api/internal/application/dto"
	"github.com/jhoicas/Mayorista-api/internal/domain"
	"github.com/jhoicas/Mayorista-api/internal/domain/entity"
	"github.com/jhoicas/Mayorista-api/internal/domain/repository"
)

// InvoiceUseCase casos de uso de facturas. Una factura por orden, número
// único legible aportado por el llamador, total aportado por el llamador
// (nunca recalculado desde las líneas).
type InvoiceUseCase struct {
	repo repository.InvoiceRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(repo repository.InvoiceRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo}
}

// Create emite la factura de una orden. ErrDuplicate si la orden ya tiene
// factura o el número colisiona; ambos los decide el constraint único.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.InvoiceNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	invoice := &entity.Invoice{
		OrderID:       in.OrderID,
		InvoiceNumber: in.InvoiceNumber,
		InvoiceDate:   time.Now(),
		TotalAmount:   in.TotalAmount,
		Paid:          in.Paid,
	}
	if err := uc.repo.Create(ctx, invoice); err != nil {
		return nil, err
	}
	return toInvoiceResponse(invoice), nil
}

// GetByID obtiene una factura. Devuelve (nil, nil) si no existe.
func (uc *InvoiceUseCase) GetByID(ctx context.Context, id int64) (*dto.InvoiceResponse, error) {
	invoice, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, nil
	}
	return toInvoiceResponse(invoice), nil
}

// List lista facturas con paginación.
func (uc *InvoiceUseCase) List(ctx context.Context, skip, limit int) (*dto.InvoiceListResponse, error) {
	skip, limit = dto.NormalizePage(skip, limit)
	list, err := uc.repo.List(ctx, limit, skip)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *toInvoiceResponse(inv))
	}
	return &dto.InvoiceListResponse{
		Items: items,
		Page:  dto.PageResponse{Skip: skip, Limit: limit},
	}, nil
}

// UpdatePaid marca la factura como pagada o no pagada.
func (uc *InvoiceUseCase) UpdatePaid(ctx context.Context, id int64, paid bool) (*dto.InvoiceResponse, error) {
	invoice, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, nil
	}
	if err := uc.repo.UpdatePaid(ctx, id, paid); err != nil {
		return nil, err
	}
	invoice.Paid = paid
	return toInvoiceResponse(invoice), nil
}

// Delete elimina una factura. ErrNotFound si no existe.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id int64) error {
	invoice, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:            inv.ID,
		OrderID:       inv.OrderID,
		InvoiceNumber: inv.InvoiceNumber,
		InvoiceDate:   inv.InvoiceDate,
		TotalAmount:   inv.TotalAmount,
		Paid:          inv.Paid,
	}
}
