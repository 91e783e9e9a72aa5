package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fakturo/internal/core/apperror"
	"fakturo/internal/core/types"
	"fakturo/internal/domain/products"
	"fakturo/internal/infrastructure/http/v1/middleware"
)

// fakeProductRepo is an in-memory products.Repository.
type fakeProductRepo struct {
	byID      map[int]*products.Product
	nextID    int
	lastDelta int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: make(map[int]*products.Product), nextID: 1}
}

func (f *fakeProductRepo) List(ctx context.Context) ([]products.Product, error) {
	out := make([]products.Product, 0, len(f.byID))
	for _, p := range f.byID {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id int) (*products.Product, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, apperror.NewNotFound("product", id)
	}
	return p, nil
}

func (f *fakeProductRepo) GetDetail(ctx context.Context, id int) (*products.ProductDetail, error) {
	p, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &products.ProductDetail{Product: *p, InvoiceItemIDs: []int{}}, nil
}

func (f *fakeProductRepo) Create(ctx context.Context, p *products.Product) error {
	p.ID = f.nextID
	f.nextID++
	f.byID[p.ID] = p
	return nil
}

func (f *fakeProductRepo) CreateMany(ctx context.Context, ps []products.Product) (int64, error) {
	for i := range ps {
		p := ps[i]
		_ = f.Create(ctx, &p)
	}
	return int64(len(ps)), nil
}

func (f *fakeProductRepo) Update(ctx context.Context, p *products.Product) error {
	if _, ok := f.byID[p.ID]; !ok {
		return apperror.NewConcurrentModification("product", p.ID)
	}
	f.byID[p.ID] = p
	return nil
}

func (f *fakeProductRepo) IncreaseQuantity(ctx context.Context, id int, delta int) error {
	p, ok := f.byID[id]
	if !ok {
		return apperror.NewNotFound("product", id)
	}
	p.Quantity += delta
	f.lastDelta = delta
	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id int) error {
	if _, ok := f.byID[id]; !ok {
		return apperror.NewNotFound("product", id)
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeProductRepo) Exists(ctx context.Context, id int) (bool, error) {
	_, ok := f.byID[id]
	return ok, nil
}

func newProductRouter(repo products.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.Trace())
	r.Use(middleware.ErrorHandler())

	h := NewProductHandler(products.NewService(repo))
	api := r.Group("/api/products")
	api.GET("", h.List)
	api.POST("", h.Create)
	api.GET("/:id", h.Get)
	api.PUT("/:id", h.Replace)
	api.DELETE("/:id", h.Delete)
	api.POST("/:id/increase-quantity", h.IncreaseQuantity)
	return r
}

func seedProduct(repo *fakeProductRepo) *products.Product {
	p := &products.Product{
		Name:          "Widget",
		Quantity:      3,
		Price:         types.MustMoney("5.00"),
		AvailableFrom: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	_ = repo.Create(context.Background(), p)
	return p
}

func TestIncreaseQuantityEndpoint(t *testing.T) {
	repo := newFakeProductRepo()
	seedProduct(repo)
	r := newProductRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/api/products/1/increase-quantity", `{"delta":4}`)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 7, repo.byID[1].Quantity)
}

func TestIncreaseQuantityNegativeDeltaReturns400(t *testing.T) {
	repo := newFakeProductRepo()
	seedProduct(repo)
	r := newProductRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/api/products/1/increase-quantity", `{"delta":-1}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apperror.CodeInvalidInput, decodeError(t, w).Code)
	assert.Equal(t, 3, repo.byID[1].Quantity)
}

func TestIncreaseQuantityMissingProductReturns404(t *testing.T) {
	r := newProductRouter(newFakeProductRepo())

	w := doJSON(t, r, http.MethodPost, "/api/products/9/increase-quantity", `{"delta":1}`)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, apperror.CodeNotFound, decodeError(t, w).Code)
}

func TestCreateProductRejectsNonPositivePrice(t *testing.T) {
	r := newProductRouter(newFakeProductRepo())

	w := doJSON(t, r, http.MethodPost, "/api/products",
		`{"name":"Widget","quantity":1,"price":0,"availableFrom":"2023-05-01T00:00:00Z"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apperror.CodeValidation, decodeError(t, w).Code)
}
