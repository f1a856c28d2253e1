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

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación del puerto InvoiceRepository sobre PostgreSQL
// (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador de persistencia para facturas.
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste una factura. Dos constraints únicos respaldan la relación:
// order_id (una factura por orden) e invoice_number; cualquiera de los dos
// en colisión devuelve ErrDuplicate. Un order_id inexistente viola el FK.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (order_id, invoice_number, invoice_date, total_amount, paid)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		invoice.OrderID, invoice.InvoiceNumber, invoice.InvoiceDate, invoice.TotalAmount, invoice.Paid,
	).Scan(&invoice.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID. Devuelve (nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(ctx context.Context, id int64) (*entity.Invoice, error) {
	query := `
		SELECT id, order_id, invoice_number, invoice_date, total_amount, paid
		FROM invoices WHERE id = $1`
	var inv entity.Invoice
	err := r.q.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.OrderID, &inv.InvoiceNumber, &inv.InvoiceDate, &inv.TotalAmount, &inv.Paid,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// List lista facturas con paginación.
func (r *InvoiceRepo) List(ctx context.Context, limit, offset int) ([]*entity.Invoice, error) {
	query := `
		SELECT id, order_id, invoice_number, invoice_date, total_amount, paid
		FROM invoices ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(&inv.ID, &inv.OrderID, &inv.InvoiceNumber, &inv.InvoiceDate, &inv.TotalAmount, &inv.Paid); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}

// UpdatePaid sobrescribe la marca de pagado.
func (r *InvoiceRepo) UpdatePaid(ctx context.Context, id int64, paid bool) error {
	_, err := r.q.Exec(ctx, `UPDATE invoices SET paid = $2 WHERE id = $1`, id, paid)
	if err != nil {
		return fmt.Errorf("update invoice paid: %w", err)
	}
	return nil
}

// Delete elimina una factura por ID.
func (r *InvoiceRepo) Delete(ctx context.Context, id int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

// DeleteByOrder elimina la factura de una orden si existe (cascada explícita).
func (r *InvoiceRepo) DeleteByOrder(ctx context.Context, orderID int64) error {
	_, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE order_id = $1`, orderID)
	if err != nil {
		return fmt.Errorf("delete invoice by order: %w", err)
	}
	return nil
}
