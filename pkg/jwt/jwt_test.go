package jwt_test

import (
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/Mayorista-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testEmail  = "cliente@example.com"
	testIssuer = "mayorista-api-test"
	testExpMin = 30
)

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testEmail, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	email, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testEmail, email, "el subject debe ser el email original")
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testSecret, testEmail, testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

// firmarConExpiracion firma un HS256 con exp a resolución de segundos, para
// probar el borde exacto que Generate (en minutos) no puede expresar.
func firmarConExpiracion(t *testing.T, exp time.Time) string {
	t.Helper()
	now := time.Now()
	claims := gojwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   testEmail,
		IssuedAt:  gojwt.NewNumericDate(now),
		ExpiresAt: gojwt.NewNumericDate(exp),
	}
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return tok
}

func TestJWT_BordeDeExpiracion_UnSegundo(t *testing.T) {
	// Sin leeway: un segundo antes de expirar vale, un segundo después no.
	vigente := firmarConExpiracion(t, time.Now().Add(time.Second))
	email, err := pkgjwt.Parse(testSecret, vigente)
	require.NoError(t, err, "a falta de un segundo el token sigue vigente")
	assert.Equal(t, testEmail, email)

	vencido := firmarConExpiracion(t, time.Now().Add(-time.Second))
	_, err = pkgjwt.Parse(testSecret, vencido)
	assert.Error(t, err, "un segundo después de exp el token ya no vale")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testEmail, testIssuer, testExpMin)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret", tok)
	assert.Error(t, err, "un token firmado con otro secret no debe validar")
}

func TestJWT_TokenMalformado_RetornaError(t *testing.T) {
	_, err := pkgjwt.Parse(testSecret, "token.invalido.aqui")
	assert.Error(t, err)
}

func TestJWT_SecretVacio_RetornaError(t *testing.T) {
	_, err := pkgjwt.Generate("", testEmail, testIssuer, testExpMin)
	assert.Error(t, err, "generar sin secret debe fallar")

	tok, err := pkgjwt.Generate(testSecret, testEmail, testIssuer, testExpMin)
	require.NoError(t, err)
	_, err = pkgjwt.Parse("", tok)
	assert.Error(t, err, "parsear sin secret debe fallar")
}

func TestJWT_SubjectVacio_RetornaError(t *testing.T) {
	// Un token sin subject es técnicamente firmable pero no identifica a nadie.
	tok, err := pkgjwt.Generate(testSecret, "", testIssuer, testExpMin)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token sin subject debe rechazarse al parsear")
}
