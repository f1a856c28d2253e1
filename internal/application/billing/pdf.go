package billing

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Mayorista-api/internal/domain"
	"github.com/jhoicas/Mayorista-api/internal/domain/entity"
	"github.com/jhoicas/Mayorista-api/internal/domain/repository"
)

// InvoiceLine línea ya resuelta para imprimir: nombre de producto en vez de
// ID, y subtotal precalculado.
type InvoiceLine struct {
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// InvoicePDFGenerator puerto de renderizado; lo implementa el adaptador
// Maroto en infraestructura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, client *entity.User, lines []InvoiceLine) ([]byte, error)
}

// PDFUseCase arma la representación gráfica de una factura: junta factura,
// orden, cliente y líneas con nombre de producto, y delega el render.
type PDFUseCase struct {
	invoices repository.InvoiceRepository
	orders   repository.OrderRepository
	users    repository.UserRepository
	items    repository.OrderItemRepository
	products repository.ProductRepository
	gen      InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	invoices repository.InvoiceRepository,
	orders repository.OrderRepository,
	users repository.UserRepository,
	items repository.OrderItemRepository,
	products repository.ProductRepository,
	gen InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{invoices: invoices, orders: orders, users: users, items: items, products: products, gen: gen}
}

// Render genera el PDF de la factura. ErrNotFound si la factura no existe.
// Los subtotales de línea son informativos para la impresión: el total de la
// factura sigue siendo el que aportó el llamador al crearla.
func (uc *PDFUseCase) Render(ctx context.Context, invoiceID int64) ([]byte, error) {
	invoice, err := uc.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	order, err := uc.orders.GetByID(ctx, invoice.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	client, err := uc.users.GetByID(ctx, order.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}

	orderItems, err := uc.items.ListByOrder(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	lines := make([]InvoiceLine, 0, len(orderItems))
	for _, it := range orderItems {
		name := "?"
		product, err := uc.products.GetByID(ctx, it.ProductID)
		if err != nil {
			return nil, err
		}
		if product != nil {
			name = product.Name
		}
		qty := decimal.NewFromInt(int64(it.Quantity))
		lines = append(lines, InvoiceLine{
			ProductName: name,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.UnitPrice.Mul(qty),
		})
	}
	return uc.gen.GenerateInvoicePDF(ctx, invoice, client, lines)
}
