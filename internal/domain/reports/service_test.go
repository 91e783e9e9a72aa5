package reports

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fakturo/internal/core/apperror"
	"fakturo/internal/core/types"
)

// fakeRepo returns canned rows per report. Nil slices model empty result sets.
type fakeRepo struct {
	monthlyCounts []MonthlyCountRow
	monthlySums   []MonthlySumRow
	namedRows     []NamedProductQuantityRow
	quantityRows  []ProductQuantityRow
	incomeRows    []ProductIncomeRow
	itemPrices    []ItemPriceRow
	clientRows    []ClientQuantityRow
	maxValues     *MaxValues
	err           error

	gotLimit int
}

func (f *fakeRepo) ClientTransactionsOverTime(ctx context.Context, clientID int) ([]MonthlyCountRow, error) {
	return f.monthlyCounts, f.err
}

func (f *fakeRepo) ClientMoneySpentOverTime(ctx context.Context, clientID int) ([]MonthlySumRow, error) {
	return f.monthlySums, f.err
}

func (f *fakeRepo) TopProductsByClient(ctx context.Context, clientID int, limit int) ([]NamedProductQuantityRow, error) {
	f.gotLimit = limit
	return f.namedRows, f.err
}

func (f *fakeRepo) InvoicesOverTime(ctx context.Context) ([]MonthlyCountRow, error) {
	return f.monthlyCounts, f.err
}

func (f *fakeRepo) TotalProfitOverTime(ctx context.Context) ([]MonthlySumRow, error) {
	return f.monthlySums, f.err
}

func (f *fakeRepo) TopSellingProducts(ctx context.Context, limit int) ([]ProductQuantityRow, error) {
	f.gotLimit = limit
	return f.quantityRows, f.err
}

func (f *fakeRepo) TopIncomeProducts(ctx context.Context, limit int) ([]ProductIncomeRow, error) {
	f.gotLimit = limit
	return f.incomeRows, f.err
}

func (f *fakeRepo) ItemPricesForInvoice(ctx context.Context, invoiceID int) ([]ItemPriceRow, error) {
	return f.itemPrices, f.err
}

func (f *fakeRepo) ProductAvailabilityByMonth(ctx context.Context) ([]MonthlyCountRow, error) {
	return f.monthlyCounts, f.err
}

func (f *fakeRepo) ProductTransactionsOverTime(ctx context.Context, productID int) ([]MonthlyCountRow, error) {
	return f.monthlyCounts, f.err
}

func (f *fakeRepo) ProductProfitOverTime(ctx context.Context, productID int) ([]MonthlySumRow, error) {
	return f.monthlySums, f.err
}

func (f *fakeRepo) ProductPurchasesByClient(ctx context.Context, productID int) ([]ClientQuantityRow, error) {
	return f.clientRows, f.err
}

func (f *fakeRepo) MaxProductValues(ctx context.Context) (*MaxValues, error) {
	return f.maxValues, f.err
}

func month(y, m, count int) MonthlyCountRow {
	return MonthlyCountRow{MonthBucket: MonthBucket{Year: y, Month: m}, Count: count}
}

func TestEmptyReportsReturnNoData(t *testing.T) {
	svc := NewService(&fakeRepo{})
	ctx := context.Background()

	calls := map[string]func() error{
		"client transactions": func() error { _, err := svc.ClientTransactionsOverTime(ctx, 1); return err },
		"client money spent":  func() error { _, err := svc.ClientMoneySpentOverTime(ctx, 1); return err },
		"top products":        func() error { _, err := svc.TopProductsByClient(ctx, 1); return err },
		"invoices over time":  func() error { _, err := svc.InvoicesOverTime(ctx); return err },
		"total profit":        func() error { _, err := svc.TotalProfitOverTime(ctx); return err },
		"top selling":         func() error { _, err := svc.TopSellingProducts(ctx); return err },
		"top income":          func() error { _, err := svc.TopIncomeProducts(ctx); return err },
		"item prices":         func() error { _, err := svc.ItemPricesForInvoice(ctx, 1); return err },
		"quantity over time":  func() error { _, err := svc.ProductQuantityOverTime(ctx); return err },
		"product tx":          func() error { _, err := svc.ProductTransactionsOverTime(ctx, 1); return err },
		"product profit":      func() error { _, err := svc.ProductProfitOverTime(ctx, 1); return err },
		"purchases by client": func() error { _, err := svc.ProductPurchasesByClient(ctx, 1); return err },
		"max values":          func() error { _, err := svc.MaxProductValues(ctx); return err },
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			err := call()
			require.Error(t, err)
			assert.True(t, apperror.IsNoData(err), "want NO_DATA, got %v", err)
		})
	}
}

func TestRepoErrorsAreNotNoData(t *testing.T) {
	svc := NewService(&fakeRepo{err: errors.New("connection reset")})

	_, err := svc.InvoicesOverTime(context.Background())
	require.Error(t, err)
	assert.False(t, apperror.IsNoData(err))
}

func TestProductQuantityOverTimeAccumulates(t *testing.T) {
	repo := &fakeRepo{
		monthlyCounts: []MonthlyCountRow{
			month(2023, 11, 2),
			month(2023, 12, 1),
			month(2024, 2, 4),
		},
	}
	svc := NewService(repo)

	rows, err := svc.ProductQuantityOverTime(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, 2, rows[0].Cumulative)
	assert.Equal(t, 3, rows[1].Cumulative)
	assert.Equal(t, 7, rows[2].Cumulative)

	// Bucket keys pass through untouched.
	assert.Equal(t, 2023, rows[0].Year)
	assert.Equal(t, 11, rows[0].Month)
	assert.Equal(t, 2024, rows[2].Year)

	// A second run starts from zero again.
	again, err := svc.ProductQuantityOverTime(context.Background())
	require.NoError(t, err)
	assert.Equal(t, rows, again)
}

func TestTopNLimitsArePassedThrough(t *testing.T) {
	ctx := context.Background()

	repo := &fakeRepo{namedRows: []NamedProductQuantityRow{{ProductName: "Widget", TotalQuantity: 3}}}
	_, err := NewService(repo).TopProductsByClient(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, TopProductsPerClientLimit, repo.gotLimit)

	repo = &fakeRepo{quantityRows: []ProductQuantityRow{{ProductID: 1, TotalQuantity: 3}}}
	_, err = NewService(repo).TopSellingProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, TopSellingProductsLimit, repo.gotLimit)

	repo = &fakeRepo{incomeRows: []ProductIncomeRow{{ProductID: 1, TotalIncome: types.MustMoney("9.99")}}}
	_, err = NewService(repo).TopIncomeProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, TopIncomeProductsLimit, repo.gotLimit)
}

func TestMaxProductValues(t *testing.T) {
	repo := &fakeRepo{maxValues: &MaxValues{MaxPrice: types.MustMoney("120.50"), MaxQuantity: 40}}

	vals, err := NewService(repo).MaxProductValues(context.Background())
	require.NoError(t, err)
	assert.True(t, vals.MaxPrice.Equal(types.MustMoney("120.50")))
	assert.Equal(t, 40, vals.MaxQuantity)
}
