package handlers

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

	"fakturo/internal/core/apperror"
	"fakturo/internal/domain/clients"
	"fakturo/internal/infrastructure/http/v1/dto"
	"fakturo/internal/infrastructure/http/v1/middleware"
)

// fakeClientRepo is an in-memory clients.Repository.
type fakeClientRepo struct {
	byID   map[int]*clients.Client
	nextID int
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{byID: make(map[int]*clients.Client), nextID: 1}
}

func (f *fakeClientRepo) List(ctx context.Context) ([]clients.Client, error) {
	out := make([]clients.Client, 0, len(f.byID))
	for _, c := range f.byID {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeClientRepo) GetByID(ctx context.Context, id int) (*clients.Client, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, apperror.NewNotFound("client", id)
	}
	return c, nil
}

func (f *fakeClientRepo) GetDetail(ctx context.Context, id int) (*clients.ClientDetail, error) {
	c, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &clients.ClientDetail{Client: *c, InvoiceIDs: []int{}}, nil
}

func (f *fakeClientRepo) Create(ctx context.Context, c *clients.Client) error {
	c.ID = f.nextID
	f.nextID++
	f.byID[c.ID] = c
	return nil
}

func (f *fakeClientRepo) CreateMany(ctx context.Context, cs []clients.Client) (int64, error) {
	for i := range cs {
		c := cs[i]
		_ = f.Create(ctx, &c)
	}
	return int64(len(cs)), nil
}

func (f *fakeClientRepo) Update(ctx context.Context, c *clients.Client) error {
	if _, ok := f.byID[c.ID]; !ok {
		return apperror.NewConcurrentModification("client", c.ID)
	}
	f.byID[c.ID] = c
	return nil
}

func (f *fakeClientRepo) Delete(ctx context.Context, id int) error {
	if _, ok := f.byID[id]; !ok {
		return apperror.NewNotFound("client", id)
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeClientRepo) Exists(ctx context.Context, id int) (bool, error) {
	_, ok := f.byID[id]
	return ok, nil
}

func newClientRouter(repo clients.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.Trace())
	r.Use(middleware.ErrorHandler())

	h := NewClientHandler(clients.NewService(repo))
	api := r.Group("/api/clients")
	api.GET("", h.List)
	api.POST("", h.Create)
	api.GET("/:id", h.Get)
	api.PUT("/:id", h.Replace)
	api.DELETE("/:id", h.Delete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestCreateClientReturnsLocationAndBody(t *testing.T) {
	r := newClientRouter(newFakeClientRepo())

	w := doJSON(t, r, http.MethodPost, "/api/clients",
		`{"name":"Acme","email":"acme@example.com","phoneNumber":"555-0101"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/clients/1", w.Header().Get("Location"))

	var resp dto.ClientResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.ID)
	assert.Equal(t, "Acme", resp.Name)
}

func TestCreateClientValidationFailure(t *testing.T) {
	r := newClientRouter(newFakeClientRepo())

	// Missing required name fails binding.
	w := doJSON(t, r, http.MethodPost, "/api/clients", `{"email":"a@b.c"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apperror.CodeValidation, decodeError(t, w).Code)
}

func TestGetMissingClientReturns404(t *testing.T) {
	r := newClientRouter(newFakeClientRepo())

	w := doJSON(t, r, http.MethodGet, "/api/clients/99", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, apperror.CodeNotFound, decodeError(t, w).Code)
}

func TestReplaceClientIDMismatchReturns400(t *testing.T) {
	repo := newFakeClientRepo()
	_ = repo.Create(context.Background(), &clients.Client{Name: "Acme"})
	r := newClientRouter(repo)

	w := doJSON(t, r, http.MethodPut, "/api/clients/1",
		`{"id":2,"name":"Acme","email":"a@b.c","phoneNumber":"555"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apperror.CodeInvalidInput, decodeError(t, w).Code)
}

func TestReplaceVanishedClientReturns404(t *testing.T) {
	r := newClientRouter(newFakeClientRepo())

	w := doJSON(t, r, http.MethodPut, "/api/clients/5",
		`{"id":5,"name":"Acme","email":"a@b.c","phoneNumber":"555"}`)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, apperror.CodeNotFound, decodeError(t, w).Code)
}

func TestReplaceClientReturns204(t *testing.T) {
	repo := newFakeClientRepo()
	_ = repo.Create(context.Background(), &clients.Client{Name: "Acme"})
	r := newClientRouter(repo)

	w := doJSON(t, r, http.MethodPut, "/api/clients/1",
		`{"id":1,"name":"Acme Renamed","email":"a@b.c","phoneNumber":"555"}`)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "Acme Renamed", repo.byID[1].Name)
}

func TestDeleteClient(t *testing.T) {
	repo := newFakeClientRepo()
	_ = repo.Create(context.Background(), &clients.Client{Name: "Acme"})
	r := newClientRouter(repo)

	w := doJSON(t, r, http.MethodDelete, "/api/clients/1", "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/clients/1", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, apperror.CodeNotFound, decodeError(t, w).Code)
}

func TestBadIDParamReturns400(t *testing.T) {
	r := newClientRouter(newFakeClientRepo())

	w := doJSON(t, r, http.MethodGet, "/api/clients/abc", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apperror.CodeInvalidInput, decodeError(t, w).Code)
}
