package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore-api/internal/domains/user"
	"bookstore-api/pkg/logger"
)

type fakeService struct {
	username string
	password string
	token    string
}

func (f *fakeService) Login(_ context.Context, req *user.LoginRequest) (*user.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.Username != f.username || req.Password != f.password {
		return nil, user.ErrInvalidCredentials
	}
	return &user.LoginResponse{Token: f.token}, nil
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewUserHandler(&fakeService{
		username: "admin",
		password: "s3cret",
		token:    "signed-token",
	}, logger.NewNop())

	r := gin.New()
	r.POST("/api/users", h.Login)
	return r
}

func postLogin(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/users", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginSuccessReturnsToken(t *testing.T) {
	r := newRouter()

	w := postLogin(t, r, `{"username":"admin","password":"s3cret"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp user.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.Token)
}

func TestLoginFailureDoesNotEchoCredentials(t *testing.T) {
	r := newRouter()

	w := postLogin(t, r, `{"username":"admin","password":"guessed-wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	body := w.Body.String()
	assert.NotContains(t, body, "admin")
	assert.NotContains(t, body, "guessed-wrong")
	assert.Contains(t, body, user.ErrInvalidCredentials.Error())
}

func TestLoginMissingPasswordIs400(t *testing.T) {
	r := newRouter()

	w := postLogin(t, r, `{"username":"admin"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginMalformedBodyIs400(t *testing.T) {
	r := newRouter()

	w := postLogin(t, r, `{"username":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
