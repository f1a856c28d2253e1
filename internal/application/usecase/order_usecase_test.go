package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Mayorista-api/internal/application/dto"
	"github.com/jhoicas/Mayorista-api/internal/application/usecase"
	"github.com/jhoicas/Mayorista-api/internal/domain"
	"github.com/jhoicas/Mayorista-api/internal/domain/entity"
	"github.com/jhoicas/Mayorista-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Store en memoria con semántica transaccional
//
// El fakeTxRunner toma un snapshot del store antes de ejecutar el callback y
// lo restaura si el callback falla, imitando el rollback de PostgreSQL.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	orders   map[int64]entity.Order
	items    map[int64]entity.OrderItem
	payments map[int64]entity.Payment
	invoices map[int64]entity.Invoice
	nextID   int64

	// failItemCreate simula una violación de FK al insertar la n-ésima línea.
	failItemCreate int
	itemCreates    int
}

func newMemStore() *memStore {
	return &memStore{
		orders:         make(map[int64]entity.Order),
		items:          make(map[int64]entity.OrderItem),
		payments:       make(map[int64]entity.Payment),
		invoices:       make(map[int64]entity.Invoice),
		nextID:         1,
		failItemCreate: -1,
	}
}

func (s *memStore) snapshot() *memStore {
	cp := newMemStore()
	cp.nextID = s.nextID
	cp.failItemCreate = s.failItemCreate
	cp.itemCreates = s.itemCreates
	for k, v := range s.orders {
		cp.orders[k] = v
	}
	for k, v := range s.items {
		cp.items[k] = v
	}
	for k, v := range s.payments {
		cp.payments[k] = v
	}
	for k, v := range s.invoices {
		cp.invoices[k] = v
	}
	return cp
}

func (s *memStore) restore(snap *memStore) {
	s.orders = snap.orders
	s.items = snap.items
	s.payments = snap.payments
	s.invoices = snap.invoices
	s.nextID = snap.nextID
}

// ── repos fake sobre el store ─────────────────────────────────────────────────

type fakeOrderRepo struct{ s *memStore }

func (r *fakeOrderRepo) Create(_ context.Context, o *entity.Order) error {
	o.ID = r.s.nextID
	r.s.nextID++
	r.s.orders[o.ID] = *o
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id int64) (*entity.Order, error) {
	o, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (r *fakeOrderRepo) List(_ context.Context, limit, offset int) ([]*entity.Order, error) {
	var out []*entity.Order
	for id := int64(1); id < r.s.nextID; id++ {
		if o, ok := r.s.orders[id]; ok {
			cp := o
			out = append(out, &cp)
		}
	}
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id int64, status string) error {
	o, ok := r.s.orders[id]
	if !ok {
		return domain.ErrNotFound
	}
	o.Status = status
	r.s.orders[id] = o
	return nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, id int64) error {
	delete(r.s.orders, id)
	return nil
}

type fakeItemRepo struct{ s *memStore }

func (r *fakeItemRepo) Create(_ context.Context, it *entity.OrderItem) error {
	r.s.itemCreates++
	if r.s.failItemCreate >= 0 && r.s.itemCreates > r.s.failItemCreate {
		return domain.ErrConflict
	}
	it.ID = r.s.nextID
	r.s.nextID++
	r.s.items[it.ID] = *it
	return nil
}

func (r *fakeItemRepo) ListByOrder(_ context.Context, orderID int64) ([]*entity.OrderItem, error) {
	var out []*entity.OrderItem
	for id := int64(1); id < r.s.nextID; id++ {
		if it, ok := r.s.items[id]; ok && it.OrderID == orderID {
			cp := it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeItemRepo) DeleteByOrder(_ context.Context, orderID int64) error {
	for id, it := range r.s.items {
		if it.OrderID == orderID {
			delete(r.s.items, id)
		}
	}
	return nil
}

type fakePaymentRepo struct{ s *memStore }

func (r *fakePaymentRepo) Create(_ context.Context, p *entity.Payment) error {
	p.ID = r.s.nextID
	r.s.nextID++
	r.s.payments[p.ID] = *p
	return nil
}

func (r *fakePaymentRepo) GetByID(_ context.Context, id int64) (*entity.Payment, error) {
	p, ok := r.s.payments[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *fakePaymentRepo) List(_ context.Context, _, _ int) ([]*entity.Payment, error) {
	return nil, nil
}

func (r *fakePaymentRepo) UpdateStatus(_ context.Context, id int64, status string) error {
	p, ok := r.s.payments[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Status = status
	r.s.payments[id] = p
	return nil
}

func (r *fakePaymentRepo) Delete(_ context.Context, id int64) error {
	delete(r.s.payments, id)
	return nil
}

func (r *fakePaymentRepo) DeleteByOrder(_ context.Context, orderID int64) error {
	for id, p := range r.s.payments {
		if p.OrderID == orderID {
			delete(r.s.payments, id)
		}
	}
	return nil
}

type fakeInvoiceRepo struct{ s *memStore }

func (r *fakeInvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	inv.ID = r.s.nextID
	r.s.nextID++
	r.s.invoices[inv.ID] = *inv
	return nil
}

func (r *fakeInvoiceRepo) GetByID(_ context.Context, id int64) (*entity.Invoice, error) {
	inv, ok := r.s.invoices[id]
	if !ok {
		return nil, nil
	}
	return &inv, nil
}

func (r *fakeInvoiceRepo) List(_ context.Context, _, _ int) ([]*entity.Invoice, error) {
	return nil, nil
}

func (r *fakeInvoiceRepo) UpdatePaid(_ context.Context, id int64, paid bool) error {
	inv, ok := r.s.invoices[id]
	if !ok {
		return domain.ErrNotFound
	}
	inv.Paid = paid
	r.s.invoices[id] = inv
	return nil
}

func (r *fakeInvoiceRepo) Delete(_ context.Context, id int64) error {
	delete(r.s.invoices, id)
	return nil
}

func (r *fakeInvoiceRepo) DeleteByOrder(_ context.Context, orderID int64) error {
	for id, inv := range r.s.invoices {
		if inv.OrderID == orderID {
			delete(r.s.invoices, id)
		}
	}
	return nil
}

// ── TxRunner fake con rollback por snapshot ──────────────────────────────────

type fakeTxRunner struct{ s *memStore }

func (tx *fakeTxRunner) RunOrder(ctx context.Context, fn func(
	orders repository.OrderRepository,
	items repository.OrderItemRepository,
) error) error {
	snap := tx.s.snapshot()
	if err := fn(&fakeOrderRepo{tx.s}, &fakeItemRepo{tx.s}); err != nil {
		tx.s.restore(snap)
		return err
	}
	return nil
}

func (tx *fakeTxRunner) RunOrderCascade(ctx context.Context, fn func(
	orders repository.OrderRepository,
	items repository.OrderItemRepository,
	payments repository.PaymentRepository,
	invoices repository.InvoiceRepository,
) error) error {
	snap := tx.s.snapshot()
	if err := fn(&fakeOrderRepo{tx.s}, &fakeItemRepo{tx.s}, &fakePaymentRepo{tx.s}, &fakeInvoiceRepo{tx.s}); err != nil {
		tx.s.restore(snap)
		return err
	}
	return nil
}

func newOrderUseCase(s *memStore) *usecase.OrderUseCase {
	return usecase.NewOrderUseCase(&fakeTxRunner{s}, &fakeOrderRepo{s}, &fakeItemRepo{s})
}

func price(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderCreate_OrdenYLineasJuntas(t *testing.T) {
	s := newMemStore()
	uc := newOrderUseCase(s)

	out, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		ClientID: 7,
		Items: []dto.OrderItemInput{
			{ProductID: 1, Quantity: 3, UnitPrice: price("10.50")},
			{ProductID: 2, Quantity: 1, UnitPrice: price("99.99")},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), out.ClientID)
	assert.Equal(t, entity.OrderStatusPending, out.Status, "sin estado explícito la orden nace pending")
	require.Len(t, out.Items, 2)
	assert.True(t, out.Items[0].UnitPrice.Equal(price("10.50")),
		"unit_price debe ser la foto del precio enviada, no el precio actual del catálogo")

	assert.Len(t, s.orders, 1)
	assert.Len(t, s.items, 2)
}

func TestOrderCreate_ListaDeItemsVaciaEsValida(t *testing.T) {
	s := newMemStore()
	uc := newOrderUseCase(s)

	out, err := uc.Create(context.Background(), dto.CreateOrderRequest{ClientID: 7})
	require.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.Len(t, s.orders, 1)
}

func TestOrderCreate_EstadoInvalido_RetornaErrInvalidInput(t *testing.T) {
	s := newMemStore()
	uc := newOrderUseCase(s)

	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		ClientID: 7,
		Status:   "enviadisima",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, s.orders, "nada debe persistirse con estado inválido")
}

func TestOrderCreate_CantidadCero_RetornaErrInvalidInput(t *testing.T) {
	s := newMemStore()
	uc := newOrderUseCase(s)

	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		ClientID: 7,
		Items:    []dto.OrderItemInput{{ProductID: 1, Quantity: 0, UnitPrice: price("5")}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Si la segunda línea falla, la transacción completa se revierte: ni la
// orden ni la primera línea deben quedar persistidas.
func TestOrderCreate_FalloEnLinea_NoDejaOrdenParcial(t *testing.T) {
	s := newMemStore()
	s.failItemCreate = 1 // la segunda inserción de línea falla
	uc := newOrderUseCase(s)

	_, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		ClientID: 7,
		Items: []dto.OrderItemInput{
			{ProductID: 1, Quantity: 1, UnitPrice: price("10")},
			{ProductID: 999, Quantity: 1, UnitPrice: price("20")},
		},
	})
	require.Error(t, err)
	assert.Empty(t, s.orders, "la orden no debe quedar tras el rollback")
	assert.Empty(t, s.items, "ninguna línea debe quedar tras el rollback")
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateStatus
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderUpdateStatus_SobrescribeSinMaquinaDeEstados(t *testing.T) {
	s := newMemStore()
	uc := newOrderUseCase(s)

	out, err := uc.Create(context.Background(), dto.CreateOrderRequest{ClientID: 7})
	require.NoError(t, err)

	// delivered → pending es legal: no hay transiciones prohibidas.
	_, err = uc.UpdateStatus(context.Background(), out.ID, entity.OrderStatusDelivered)
	require.NoError(t, err)
	res, err := uc.UpdateStatus(context.Background(), out.ID, entity.OrderStatusPending)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPending, res.Status)
}

func TestOrderUpdateStatus_OrdenInexistente_RetornaNil(t *testing.T) {
	s := newMemStore()
	uc := newOrderUseCase(s)

	res, err := uc.UpdateStatus(context.Background(), 42, entity.OrderStatusShipped)
	require.NoError(t, err)
	assert.Nil(t, res)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete en cascada
// ──────────────────────────────────────────────────────────────────────────────

func TestOrderDelete_CascadaNoDejaResiduos(t *testing.T) {
	s := newMemStore()
	uc := newOrderUseCase(s)

	out, err := uc.Create(context.Background(), dto.CreateOrderRequest{
		ClientID: 7,
		Items:    []dto.OrderItemInput{{ProductID: 1, Quantity: 2, UnitPrice: price("15")}},
	})
	require.NoError(t, err)

	// Pago y factura colgando de la orden
	payments := &fakePaymentRepo{s}
	require.NoError(t, payments.Create(context.Background(), &entity.Payment{
		OrderID: out.ID, Amount: price("30"), Status: entity.PaymentStatusCompleted,
	}))
	invoices := &fakeInvoiceRepo{s}
	require.NoError(t, invoices.Create(context.Background(), &entity.Invoice{
		OrderID: out.ID, InvoiceNumber: "F-001", TotalAmount: price("30"),
	}))

	require.NoError(t, uc.Delete(context.Background(), out.ID))

	assert.Empty(t, s.orders)
	assert.Empty(t, s.items)
	assert.Empty(t, s.payments)
	assert.Empty(t, s.invoices)
}

func TestOrderDelete_OrdenInexistente_RetornaErrNotFound(t *testing.T) {
	s := newMemStore()
	uc := newOrderUseCase(s)

	err := uc.Delete(context.Background(), 42)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
