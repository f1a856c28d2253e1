package repository

import (
	"context"

	"github.com/jhoicas/Mayorista-api/internal/domain/entity"
)

// PriceListRequestRepository define el puerto de persistencia para
// PriceListRequest (DIP).
type PriceListRequestRepository interface {
	Create(ctx context.Context, req *entity.PriceListRequest) error
	GetByID(ctx context.Context, id int64) (*entity.PriceListRequest, error)
	List(ctx context.Context, limit, offset int) ([]*entity.PriceListRequest, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}
