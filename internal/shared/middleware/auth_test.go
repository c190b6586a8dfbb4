package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore-api/pkg/jwt"
)

const (
	testSecret = "unit-test-secret"
	testIssuer = "bookstore-api"
)

func newProtectedRouter(issuer *jwt.Issuer, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handlers := append([]gin.HandlerFunc{Authenticate(issuer)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetInt64(CtxUserID),
			"email":   c.GetString(CtxEmail),
		})
	})
	r.GET("/protected", handlers...)
	return r
}

func get(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthenticateMissingHeader(t *testing.T) {
	r := newProtectedRouter(jwt.NewIssuer(testSecret, testIssuer))

	w := get(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateRejectsNonBearerScheme(t *testing.T) {
	r := newProtectedRouter(jwt.NewIssuer(testSecret, testIssuer))

	w := get(r, "Basic YWRtaW46czNjcmV0")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateRejectsGarbageToken(t *testing.T) {
	r := newProtectedRouter(jwt.NewIssuer(testSecret, testIssuer))

	w := get(r, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateRejectsForeignSignature(t *testing.T) {
	token, err := jwt.NewIssuer("other-secret", testIssuer).
		Generate(3, "admin@bookstore.local", nil)
	require.NoError(t, err)

	r := newProtectedRouter(jwt.NewIssuer(testSecret, testIssuer))
	w := get(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateExposesIdentity(t *testing.T) {
	issuer := jwt.NewIssuer(testSecret, testIssuer)
	token, err := issuer.Generate(3, "admin@bookstore.local", []string{RoleAdministrator})
	require.NoError(t, err)

	r := newProtectedRouter(issuer)
	w := get(r, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin@bookstore.local")
}

func TestRequireRoleAdmitsAdministrator(t *testing.T) {
	issuer := jwt.NewIssuer(testSecret, testIssuer)
	token, err := issuer.Generate(3, "admin@bookstore.local", []string{RoleAdministrator})
	require.NoError(t, err)

	r := newProtectedRouter(issuer, RequireRole(RoleAdministrator))
	w := get(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoleRejectsPlainUser(t *testing.T) {
	issuer := jwt.NewIssuer(testSecret, testIssuer)
	token, err := issuer.Generate(5, "reader@bookstore.local", []string{"Reader"})
	require.NoError(t, err)

	r := newProtectedRouter(issuer, RequireRole(RoleAdministrator))
	w := get(r, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRoleRejectsTokenWithoutRoles(t *testing.T) {
	issuer := jwt.NewIssuer(testSecret, testIssuer)
	token, err := issuer.Generate(6, "norole@bookstore.local", nil)
	require.NoError(t, err)

	r := newProtectedRouter(issuer, RequireRole(RoleAdministrator))
	w := get(r, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
