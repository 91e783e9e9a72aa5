package products

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fakturo/internal/core/apperror"
	"fakturo/internal/core/types"
)

// fakeRepo is an in-memory Repository for service tests.
type fakeRepo struct {
	byID      map[int]*Product
	updateErr error
	increased map[int]int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		byID:      make(map[int]*Product),
		increased: make(map[int]int),
	}
}

func (f *fakeRepo) List(ctx context.Context) ([]Product, error) {
	out := make([]Product, 0, len(f.byID))
	for _, p := range f.byID {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id int) (*Product, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, apperror.NewNotFound("product", id)
	}
	return p, nil
}

func (f *fakeRepo) GetDetail(ctx context.Context, id int) (*ProductDetail, error) {
	p, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ProductDetail{Product: *p}, nil
}

func (f *fakeRepo) Create(ctx context.Context, p *Product) error {
	p.ID = len(f.byID) + 1
	f.byID[p.ID] = p
	return nil
}

func (f *fakeRepo) CreateMany(ctx context.Context, ps []Product) (int64, error) {
	for i := range ps {
		p := ps[i]
		_ = f.Create(ctx, &p)
	}
	return int64(len(ps)), nil
}

func (f *fakeRepo) Update(ctx context.Context, p *Product) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.byID[p.ID] = p
	return nil
}

func (f *fakeRepo) IncreaseQuantity(ctx context.Context, id int, delta int) error {
	if _, ok := f.byID[id]; !ok {
		return apperror.NewNotFound("product", id)
	}
	f.increased[id] += delta
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int) error {
	if _, ok := f.byID[id]; !ok {
		return apperror.NewNotFound("product", id)
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeRepo) Exists(ctx context.Context, id int) (bool, error) {
	_, ok := f.byID[id]
	return ok, nil
}

func validProduct(id int) *Product {
	return &Product{
		ID:            id,
		Name:          "Widget",
		Quantity:      3,
		Price:         types.MustMoney("5.00"),
		AvailableFrom: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestReplaceRejectsIDMismatch(t *testing.T) {
	svc := NewService(newFakeRepo())

	err := svc.Replace(context.Background(), 1, validProduct(2))
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
}

func TestReplaceVanishedRowBecomesNotFound(t *testing.T) {
	repo := newFakeRepo()
	repo.updateErr = apperror.NewConcurrentModification("product", 1)
	svc := NewService(repo)

	// Row does not exist, so zero rows affected means it vanished.
	err := svc.Replace(context.Background(), 1, validProduct(1))
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeNotFound, appErr.Code)
}

func TestReplaceKeepsConflictWhenRowStillExists(t *testing.T) {
	repo := newFakeRepo()
	repo.byID[1] = validProduct(1)
	repo.updateErr = apperror.NewConcurrentModification("product", 1)
	svc := NewService(repo)

	err := svc.Replace(context.Background(), 1, validProduct(1))
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeConcurrentModification, appErr.Code)
}

func TestIncreaseQuantityRejectsNegativeDelta(t *testing.T) {
	repo := newFakeRepo()
	repo.byID[1] = validProduct(1)
	svc := NewService(repo)

	err := svc.IncreaseQuantity(context.Background(), 1, -5)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
	assert.Empty(t, repo.increased)
}

func TestIncreaseQuantity(t *testing.T) {
	repo := newFakeRepo()
	repo.byID[1] = validProduct(1)
	svc := NewService(repo)

	require.NoError(t, svc.IncreaseQuantity(context.Background(), 1, 7))
	assert.Equal(t, 7, repo.increased[1])

	// Zero delta is a valid no-op.
	require.NoError(t, svc.IncreaseQuantity(context.Background(), 1, 0))
	assert.Equal(t, 7, repo.increased[1])
}

func TestCreateValidates(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	err := svc.Create(context.Background(), &Product{Name: ""})
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeValidation, appErr.Code)
	assert.Empty(t, repo.byID)

	p := validProduct(0)
	require.NoError(t, svc.Create(context.Background(), p))
	assert.Equal(t, 1, p.ID)
}
