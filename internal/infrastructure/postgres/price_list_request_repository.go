package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Mayorista-api/internal/domain"
	"github.com/jhoicas/Mayorista-api/internal/domain/entity"
	"github.com/jhoicas/Mayorista-api/internal/domain/repository"
)

var _ repository.PriceListRequestRepository = (*PriceListRequestRepo)(nil)

// PriceListRequestRepo implementación del puerto PriceListRequestRepository
// sobre PostgreSQL.
type PriceListRequestRepo struct {
	q Querier
}

// NewPriceListRequestRepository construye el adaptador de persistencia para
// solicitudes de lista de precios.
func NewPriceListRequestRepository(q Querier) *PriceListRequestRepo {
	return &PriceListRequestRepo{q: q}
}

// Create persiste una solicitud. Un client_id inexistente viola el FK.
func (r *PriceListRequestRepo) Create(ctx context.Context, req *entity.PriceListRequest) error {
	query := `
		INSERT INTO price_list_requests (client_id, requested_at, status)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.q.QueryRow(ctx, query, req.ClientID, req.RequestedAt, req.Status).Scan(&req.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert price list request: %w", err)
	}
	return nil
}

// GetByID obtiene una solicitud por ID. Devuelve (nil, nil) si no existe.
func (r *PriceListRequestRepo) GetByID(ctx context.Context, id int64) (*entity.PriceListRequest, error) {
	query := `SELECT id, client_id, requested_at, status FROM price_list_requests WHERE id = $1`
	var plr entity.PriceListRequest
	err := r.q.QueryRow(ctx, query, id).Scan(&plr.ID, &plr.ClientID, &plr.RequestedAt, &plr.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get price list request: %w", err)
	}
	return &plr, nil
}

// List lista solicitudes con paginación.
func (r *PriceListRequestRepo) List(ctx context.Context, limit, offset int) ([]*entity.PriceListRequest, error) {
	query := `SELECT id, client_id, requested_at, status FROM price_list_requests ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list price list requests: %w", err)
	}
	defer rows.Close()
	var list []*entity.PriceListRequest
	for rows.Next() {
		var plr entity.PriceListRequest
		if err := rows.Scan(&plr.ID, &plr.ClientID, &plr.RequestedAt, &plr.Status); err != nil {
			return nil, fmt.Errorf("scan price list request: %w", err)
		}
		list = append(list, &plr)
	}
	return list, rows.Err()
}

// UpdateStatus sobrescribe el estado (texto libre, no se valida contra enum).
func (r *PriceListRequestRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	_, err := r.q.Exec(ctx, `UPDATE price_list_requests SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update price list request status: %w", err)
	}
	return nil
}

// Delete elimina una solicitud por ID.
func (r *PriceListRequestRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM price_list_requests WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete price list request: %w", err)
	}
	return nil
}
