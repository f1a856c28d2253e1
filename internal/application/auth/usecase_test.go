package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Mayorista-api/internal/application/auth"
	"github.com/jhoicas/Mayorista-api/internal/application/dto"
	"github.com/jhoicas/Mayorista-api/internal/domain"
	"github.com/jhoicas/Mayorista-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del repositorio de usuarios
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byEmail map[string]*entity.User
	nextID  int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User), nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrDuplicate
	}
	u.ID = r.nextID
	r.nextID++
	cp := *u
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	cp := *u
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	for email, u := range r.byEmail {
		if u.ID == id {
			delete(r.byEmail, email)
			return nil
		}
	}
	return domain.ErrNotFound
}

func testJWTConfig() auth.JWTConfig {
	return auth.JWTConfig{Secret: "test-secret", ExpMinutes: 30, Issuer: "test"}
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, password, role string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), &entity.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_RolPorDefectoEsClient(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "nuevo@example.com",
		Password: "secreto123",
		FullName: "Cliente Nuevo",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleClient, out.Role, "sin rol explícito el usuario debe quedar como client")
	assert.NotZero(t, out.ID)
}

func TestRegister_RolInvalido_RetornaErrInvalidInput(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "nuevo@example.com",
		Password: "secreto123",
		Role:     "superadmin",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_EmailDuplicado_RetornaErrDuplicate(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWTConfig())
	seedUser(t, repo, "repetido@example.com", "algo", entity.RoleClient)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "repetido@example.com",
		Password: "otra-clave",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRegister_NuncaDevuelveElHash(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	out, err := uc.Register(context.Background(), dto.RegisterRequest{
		Email:    "nuevo@example.com",
		Password: "secreto123",
	})
	require.NoError(t, err)

	// El password almacenado debe ser un hash bcrypt, no el texto plano.
	stored, err := repo.GetByEmail(context.Background(), "nuevo@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secreto123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreto123")))
	_ = out
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas_DevuelveBearer(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWTConfig())
	seedUser(t, repo, "cliente@example.com", "secreto123", entity.RoleClient)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "cliente@example.com",
		Password: "secreto123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.Equal(t, "bearer", out.TokenType)
}

// El error de email inexistente y el de password incorrecto deben ser el
// MISMO error: la respuesta no debe revelar qué emails están registrados.
func TestLogin_EmailInexistenteYPasswordIncorrecto_MismoError(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWTConfig())
	seedUser(t, repo, "cliente@example.com", "secreto123", entity.RoleClient)

	_, errNoExiste := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "fantasma@example.com",
		Password: "lo-que-sea",
	})
	_, errMalPassword := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "cliente@example.com",
		Password: "incorrecto",
	})

	assert.ErrorIs(t, errNoExiste, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, errMalPassword, domain.ErrInvalidCredentials)
	assert.Equal(t, errNoExiste, errMalPassword, "ambos fallos deben ser indistinguibles")
}
