package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore-api/internal/domains/author"
	"bookstore-api/internal/shared/response"
	"bookstore-api/pkg/logger"
)

// fakeService drives the handler with canned outcomes.
type fakeService struct {
	authors map[int64]author.AuthorResponse
	nextID  int64

	listErr error
}

func newFakeService() *fakeService {
	return &fakeService{authors: map[int64]author.AuthorResponse{}, nextID: 1}
}

func (f *fakeService) List(context.Context) ([]author.AuthorResponse, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := []author.AuthorResponse{}
	for _, a := range f.authors {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeService) Get(_ context.Context, id int64) (*author.AuthorResponse, error) {
	if id < 1 {
		return nil, author.ErrInvalidID
	}
	a, ok := f.authors[id]
	if !ok {
		return nil, author.ErrAuthorNotFound
	}
	return &a, nil
}

func (f *fakeService) Create(_ context.Context, req *author.CreateAuthorRequest) (*author.AuthorResponse, error) {
	if req == nil {
		return nil, author.ErrEmptyRequest
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	a := author.AuthorResponse{ID: f.nextID, FirstName: req.FirstName, LastName: req.LastName}
	f.nextID++
	f.authors[a.ID] = a
	return &a, nil
}

func (f *fakeService) Update(_ context.Context, id int64, req *author.UpdateAuthorRequest) error {
	if id < 1 {
		return author.ErrInvalidID
	}
	if req == nil {
		return author.ErrEmptyRequest
	}
	if id != req.ID {
		return author.ErrIDMismatch
	}
	if _, ok := f.authors[id]; !ok {
		return author.ErrAuthorNotFound
	}
	f.authors[id] = author.AuthorResponse{ID: id, FirstName: req.FirstName, LastName: req.LastName}
	return nil
}

func (f *fakeService) Delete(_ context.Context, id int64) error {
	if id < 1 {
		return author.ErrInvalidID
	}
	if _, ok := f.authors[id]; !ok {
		return author.ErrAuthorNotFound
	}
	delete(f.authors, id)
	return nil
}

func newRouter(svc author.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthorHandler(svc, logger.NewNop())

	r := gin.New()
	r.GET("/api/authors", h.List)
	r.GET("/api/authors/:id", h.Get)
	r.POST("/api/authors", h.Create)
	r.PUT("/api/authors/:id", h.Update)
	r.DELETE("/api/authors/:id", h.Delete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateReturnsEntityWithIdentifier(t *testing.T) {
	r := newRouter(newFakeService())

	w := doJSON(t, r, http.MethodPost, "/api/authors",
		`{"first_name":"Ada","last_name":"Lovelace"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var got author.AuthorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Positive(t, got.ID)
	assert.Equal(t, "Ada", got.FirstName)
}

func TestCreateValidationFailureIs400(t *testing.T) {
	r := newRouter(newFakeService())

	w := doJSON(t, r, http.MethodPost, "/api/authors", `{"last_name":"Lovelace"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "first_name")
}

func TestGetUnknownAuthorIs404WithEmptyBody(t *testing.T) {
	r := newRouter(newFakeService())

	w := doJSON(t, r, http.MethodGet, "/api/authors/9999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestGetNonNumericIDIs400(t *testing.T) {
	r := newRouter(newFakeService())

	w := doJSON(t, r, http.MethodGet, "/api/authors/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateBodyIDMismatchIs400(t *testing.T) {
	svc := newFakeService()
	r := newRouter(svc)

	created := doJSON(t, r, http.MethodPost, "/api/authors",
		`{"first_name":"Ada","last_name":"Lovelace"}`)
	require.Equal(t, http.StatusCreated, created.Code)

	w := doJSON(t, r, http.MethodPut, "/api/authors/1",
		`{"id":2,"first_name":"Ada","last_name":"Byron"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateSucceedsWithNoContent(t *testing.T) {
	r := newRouter(newFakeService())

	created := doJSON(t, r, http.MethodPost, "/api/authors",
		`{"first_name":"Ada","last_name":"Lovelace"}`)
	require.Equal(t, http.StatusCreated, created.Code)

	w := doJSON(t, r, http.MethodPut, "/api/authors/1",
		`{"id":1,"first_name":"Ada","last_name":"Byron"}`)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteTwiceIs204Then404(t *testing.T) {
	r := newRouter(newFakeService())

	created := doJSON(t, r, http.MethodPost, "/api/authors",
		`{"first_name":"Ada","last_name":"Lovelace"}`)
	require.Equal(t, http.StatusCreated, created.Code)

	first := doJSON(t, r, http.MethodDelete, "/api/authors/1", "")
	assert.Equal(t, http.StatusNoContent, first.Code)

	second := doJSON(t, r, http.MethodDelete, "/api/authors/1", "")
	assert.Equal(t, http.StatusNotFound, second.Code)
	assert.Empty(t, second.Body.String())
}

func TestUnexpectedFaultIsGeneric500(t *testing.T) {
	svc := newFakeService()
	svc.listErr = errors.New("connection reset")
	r := newRouter(svc)

	w := doJSON(t, r, http.MethodGet, "/api/authors", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), response.InternalMessage)
	assert.NotContains(t, w.Body.String(), "connection reset")
}
