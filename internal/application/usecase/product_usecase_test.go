package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Mayorista-api/internal/application/dto"
	"github.com/jhoicas/Mayorista-api/internal/application/usecase"
	"github.com/jhoicas/Mayorista-api/internal/domain"
	"github.com/jhoicas/Mayorista-api/internal/domain/entity"
)

type fakeProductRepo struct {
	byID   map[int64]entity.Product
	nextID int64
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: make(map[int64]entity.Product), nextID: 1}
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	for _, existing := range r.byID {
		if existing.Name == p.Name {
			return domain.ErrDuplicate
		}
	}
	p.ID = r.nextID
	r.nextID++
	r.byID[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *fakeProductRepo) GetByName(_ context.Context, name string) (*entity.Product, error) {
	for _, p := range r.byID {
		if p.Name == name {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	if _, ok := r.byID[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.byID[p.ID] = *p
	return nil
}

func (r *fakeProductRepo) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for id := int64(1); id < r.nextID; id++ {
		if p, ok := r.byID[id]; ok {
			cp := p
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

func (r *fakeProductRepo) Delete(_ context.Context, id int64) error {
	delete(r.byID, id)
	return nil
}

// racedProductRepo simula dos creaciones concurrentes con el mismo nombre:
// el pre-chequeo no ve nada, pero el índice único ya le dio la fila al otro.
type racedProductRepo struct {
	*fakeProductRepo
}

func (r *racedProductRepo) GetByName(_ context.Context, _ string) (*entity.Product, error) {
	return nil, nil
}

func (r *racedProductRepo) Create(_ context.Context, _ *entity.Product) error {
	return domain.ErrDuplicate
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_NombreDuplicado_RetornaErrDuplicate(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Harina 25kg", Price: price("80.00"), QuantityInStock: 10,
	})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Harina 25kg", Price: price("75.00"), QuantityInStock: 5,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_CarreraPorNombre_ElIndiceUnicoDecide(t *testing.T) {
	repo := &racedProductRepo{fakeProductRepo: newFakeProductRepo()}
	uc := usecase.NewProductUseCase(repo)

	// El pre-chequeo pasa pero el insert pierde contra el índice único:
	// el perdedor recibe ErrDuplicate, no un error interno.
	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Harina 25kg", Price: price("80.00"), QuantityInStock: 10,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_NombreVacio_RetornaErrInvalidInput(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "", Price: price("10"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_PrecioNegativo_RetornaErrInvalidInput(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Azúcar 50kg", Price: price("-1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update parcial
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUpdate_SoloLosCamposPresentes(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:            "Aceite 20L",
		Description:     "Bidón industrial",
		Price:           price("120.00"),
		QuantityInStock: 40,
	})
	require.NoError(t, err)

	// Solo cambia el stock; nombre, descripción y precio quedan intactos.
	out, err := uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{
		QuantityInStock: intPtr(35),
	})
	require.NoError(t, err)
	assert.Equal(t, "Aceite 20L", out.Name)
	assert.Equal(t, "Bidón industrial", out.Description)
	assert.True(t, out.Price.Equal(price("120.00")))
	assert.Equal(t, 35, out.QuantityInStock)
}

func TestProductUpdate_NombreVacio_RetornaErrInvalidInput(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Arroz 50kg", Price: price("95.00"),
	})
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{
		Name: strPtr(""),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_Inexistente_RetornaNil(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	out, err := uc.Update(context.Background(), 42, dto.UpdateProductRequest{
		QuantityInStock: intPtr(1),
	})
	require.NoError(t, err)
	assert.Nil(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// List con paginación skip/limit
// ──────────────────────────────────────────────────────────────────────────────

func TestProductList_PaginacionPorDefecto(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	for _, name := range []string{"A", "B", "C"} {
		_, err := uc.Create(context.Background(), dto.CreateProductRequest{
			Name: name, Price: price("1"),
		})
		require.NoError(t, err)
	}

	// Valores fuera de rango caen a los defaults skip=0, limit=100.
	out, err := uc.List(context.Background(), -5, 0)
	require.NoError(t, err)
	assert.Len(t, out.Items, 3)
	assert.Equal(t, 0, out.Page.Skip)
	assert.Equal(t, 100, out.Page.Limit)
}

func TestProductList_SkipYLimit(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	for _, name := range []string{"A", "B", "C", "D"} {
		_, err := uc.Create(context.Background(), dto.CreateProductRequest{
			Name: name, Price: price("1"),
		})
		require.NoError(t, err)
	}

	out, err := uc.List(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "B", out.Items[0].Name)
	assert.Equal(t, "C", out.Items[1].Name)
}
