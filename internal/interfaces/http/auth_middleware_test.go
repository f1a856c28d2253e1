package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Mayorista-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Mayorista-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Mayorista-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "mayorista-api-test"
	testExpMin    = 30
)

// fakeResolver resuelve emails contra un mapa en memoria, como haría el
// repositorio de usuarios contra la base de datos.
type fakeResolver struct {
	users map[string]*entity.User
}

func (r *fakeResolver) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func newResolver() *fakeResolver {
	return &fakeResolver{users: map[string]*entity.User{
		"admin@example.com": {ID: 1, Email: "admin@example.com", Role: entity.RoleAdmin},
		"staff@example.com": {ID: 2, Email: "staff@example.com", Role: entity.RoleStaff},
		"cliente@example.com": {
			ID: 3, Email: "cliente@example.com", Role: entity.RoleClient,
		},
	}}
}

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y resolver el usuario
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(resolver *fakeResolver, allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret, resolver),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			user := apphttp.GetCurrentUser(c)
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": user.Role,
			})
		},
	)
	return app
}

// tokenFor genera un JWT para el email indicado.
func tokenFor(t *testing.T, email string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, email, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: El usuario tiene el rol requerido → debe pasar (HTTP 200).
func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp(newResolver(), entity.RoleAdmin)
	resp := doRequest(t, app, tokenFor(t, "admin@example.com"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin debe poder acceder a ruta restringida a admin")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, entity.RoleAdmin, body["role"])
}

// Caso 1b: El usuario tiene uno de los roles permitidos (multi-rol) → HTTP 200.
func TestRequireRole_StaffAccedeRutaAdminOStaff(t *testing.T) {
	app := buildTestApp(newResolver(), entity.RoleAdmin, entity.RoleStaff)
	resp := doRequest(t, app, tokenFor(t, "staff@example.com"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"staff debe poder acceder a ruta que permite admin o staff")
}

// Caso 2: El usuario tiene un rol diferente al requerido → HTTP 403 Forbidden.
func TestRequireRole_ClientBloqueadoEnRutaAdminOStaff(t *testing.T) {
	app := buildTestApp(newResolver(), entity.RoleAdmin, entity.RoleStaff)
	resp := doRequest(t, app, tokenFor(t, "cliente@example.com"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"client no debe poder escribir en el catálogo")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"la respuesta de error debe incluir el código FORBIDDEN")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestAuthMiddleware_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(newResolver(), entity.RoleClient)
	resp := doRequest(t, app, "") // sin header
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token inválido / malformado → HTTP 401 INVALID_TOKEN.
func TestAuthMiddleware_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(newResolver(), entity.RoleClient)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Token firmado pero cuyo usuario ya no existe → HTTP 401. El rol efectivo
// siempre se resuelve contra la base de datos: un token viejo no mantiene
// vivo a un usuario borrado.
func TestAuthMiddleware_UsuarioBorrado_Retorna401(t *testing.T) {
	app := buildTestApp(newResolver(), entity.RoleClient)
	resp := doRequest(t, app, tokenFor(t, "borrado@example.com"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"token de usuario inexistente debe rechazarse")
}

// Token expirado → HTTP 401.
func TestAuthMiddleware_TokenExpirado_Retorna401(t *testing.T) {
	app := buildTestApp(newResolver(), entity.RoleAdmin)
	tok, err := pkgjwt.Generate(testJWTSecret, "admin@example.com", testIssuer, -1)
	require.NoError(t, err)

	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// El rol que manda es el actual de la base de datos, no el del momento de
// emisión del token: si el usuario fue degradado, el token viejo no conserva
// los permisos.
func TestAuthMiddleware_RolActualManda(t *testing.T) {
	resolver := newResolver()
	app := buildTestApp(resolver, entity.RoleAdmin)
	token := tokenFor(t, "admin@example.com")

	// Antes de la degradación el acceso funciona.
	resp := doRequest(t, app, token)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Degradar al usuario con el mismo token todavía vigente.
	resolver.users["admin@example.com"].Role = entity.RoleClient

	resp = doRequest(t, app, token)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"el token viejo no debe conservar permisos de admin")
}
