package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Mayorista-api/internal/application/dto"
	"github.com/jhoicas/Mayorista-api/internal/domain"
	"github.com/jhoicas/Mayorista-api/internal/domain/entity"
	"github.com/jhoicas/Mayorista-api/internal/domain/repository"
)

// PriceListRequestUseCase casos de uso de solicitudes de lista de precios.
// Status es texto libre a propósito: no se valida contra ningún enum, a
// diferencia de Order y Payment.
type PriceListRequestUseCase struct {
	repo repository.PriceListRequestRepository
}

// NewPriceListRequestUseCase construye el caso de uso.
func NewPriceListRequestUseCase(repo repository.PriceListRequestRepository) *PriceListRequestUseCase {
	return &PriceListRequestUseCase{repo: repo}
}

// Create registra una solicitud; status por defecto "pending".
func (uc *PriceListRequestUseCase) Create(ctx context.Context, in dto.CreatePriceListRequest) (*dto.PriceListRequestResponse, error) {
	status := in.Status
	if status == "" {
		status = "pending"
	}
	req := &entity.PriceListRequest{
		ClientID:    in.ClientID,
		RequestedAt: time.Now(),
		Status:      status,
	}
	if err := uc.repo.Create(ctx, req); err != nil {
		return nil, err
	}
	return toPriceListRequestResponse(req), nil
}

// GetByID obtiene una solicitud. Devuelve (nil, nil) si no existe.
func (uc *PriceListRequestUseCase) GetByID(ctx context.Context, id int64) (*dto.PriceListRequestResponse, error) {
	req, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, nil
	}
	return toPriceListRequestResponse(req), nil
}

// List lista solicitudes con paginación.
func (uc *PriceListRequestUseCase) List(ctx context.Context, skip, limit int) (*dto.PriceListRequestListResponse, error) {
	skip, limit = dto.NormalizePage(skip, limit)
	list, err := uc.repo.List(ctx, limit, skip)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PriceListRequestResponse, 0, len(list))
	for _, req := range list {
		items = append(items, *toPriceListRequestResponse(req))
	}
	return &dto.PriceListRequestListResponse{
		Items: items,
		Page:  dto.PageResponse{Skip: skip, Limit: limit},
	}, nil
}

// UpdateStatus sobrescribe el estado con el texto que venga.
func (uc *PriceListRequestUseCase) UpdateStatus(ctx context.Context, id int64, status string) (*dto.PriceListRequestResponse, error) {
	if status == "" {
		return nil, domain.ErrInvalidInput
	}
	req, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, nil
	}
	if err := uc.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	req.Status = status
	return toPriceListRequestResponse(req), nil
}

// Delete elimina una solicitud. ErrNotFound si no existe.
func (uc *PriceListRequestUseCase) Delete(ctx context.Context, id int64) error {
	req, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if req == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, id)
}

func toPriceListRequestResponse(r *entity.PriceListRequest) *dto.PriceListRequestResponse {
	return &dto.PriceListRequestResponse{
		ID:          r.ID,
		ClientID:    r.ClientID,
		RequestedAt: r.RequestedAt,
		Status:      r.Status,
	}
}
