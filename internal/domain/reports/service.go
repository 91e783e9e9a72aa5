package reports

import (
	"context"
	"fmt"

	"fakturo/internal/core/apperror"
)

const (
	noDataForClient  = "No data available for the specified client."
	noDataForProduct = "No data available for the specified product."
	noDataForInvoice = "No data available for the specified invoice."
	noData           = "No data available"
)

// Service provides report generation operations.
type Service struct {
	repo Repository
}

// NewService creates a new reports service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ClientTransactionsOverTime counts one client's invoices per issue month.
func (s *Service) ClientTransactionsOverTime(ctx context.Context, clientID int) ([]MonthlyCountRow, error) {
	rows, err := s.repo.ClientTransactionsOverTime(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("client transactions over time: %w", err)
	}
	if len(rows) == 0 {
		return nil, apperror.NewNoData(noDataForClient)
	}
	return rows, nil
}

// ClientMoneySpentOverTime sums one client's invoice totals per issue month.
func (s *Service) ClientMoneySpentOverTime(ctx context.Context, clientID int) ([]MonthlySumRow, error) {
	rows, err := s.repo.ClientMoneySpentOverTime(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("client money spent over time: %w", err)
	}
	if len(rows) == 0 {
		return nil, apperror.NewNoData(noDataForClient)
	}
	return rows, nil
}

// TopProductsByClient ranks the products one client bought most, by quantity.
func (s *Service) TopProductsByClient(ctx context.Context, clientID int) ([]NamedProductQuantityRow, error) {
	rows, err := s.repo.TopProductsByClient(ctx, clientID, TopProductsPerClientLimit)
	if err != nil {
		return nil, fmt.Errorf("top products by client: %w", err)
	}
	if len(rows) == 0 {
		return nil, apperror.NewNoData(noDataForClient)
	}
	return rows, nil
}

// InvoicesOverTime counts all invoices per issue month.
func (s *Service) InvoicesOverTime(ctx context.Context) ([]MonthlyCountRow, error) {
	rows, err := s.repo.InvoicesOverTime(ctx)
	if err != nil {
		return nil, fmt.Errorf("invoices over time: %w", err)
	}
	if len(rows) == 0 {
		return nil, apperror.NewNoData(noData)
	}
	return rows, nil
}

// TotalProfitOverTime sums all invoice totals per issue month.
func (s *Service) TotalProfitOverTime(ctx context.Context) ([]MonthlySumRow, error) {
	rows, err := s.repo.TotalProfitOverTime(ctx)
	if err != nil {
		return nil, fmt.Errorf("total profit over time: %w", err)
	}
	if len(rows) == 0 {
		return nil, apperror.NewNoData(noData)
	}
	return rows, nil
}

// TopSellingProducts ranks products by total quantity sold.
func (s *Service) TopSellingProducts(ctx context.Context) ([]ProductQuantityRow, error) {
	rows, err := s.repo.TopSellingProducts(ctx, TopSellingProductsLimit)
	if err != nil {
		return nil, fmt.Errorf("top selling products: %w", err)
	}
	if len(rows) == 0 {
		return nil, apperror.NewNoData(noData)
	}
	return rows, nil
}

// TopIncomeProducts ranks products by total income.
func (s *Service) TopIncomeProducts(ctx context.Context) ([]ProductIncomeRow, error) {
	rows, err := s.repo.TopIncomeProducts(ctx, TopIncomeProductsLimit)
	if err != nil {
		return nil, fmt.Errorf("top income products: %w", err)
	}
	if len(rows) == 0 {
		return nil, apperror.NewNoData(noData)
	}
	return rows, nil
}

// ItemPricesForInvoice lists one invoice's item prices, highest first.
func (s *Service) ItemPricesForInvoice(ctx context.Context, invoiceID int) ([]ItemPriceRow, error) {
	rows, err := s.repo.ItemPricesForInvoice(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("item prices for invoice: %w", err)
	}
	if len(rows) == 0 {
		return nil, apperror.NewNoData(noDataForInvoice)
	}
	return rows, nil
}

// ProductQuantityOverTime folds monthly availability counts into a running
// total, left to right in chronological order. The accumulator starts at zero
// once per query and never resets mid-sequence, so re-running against an
// unchanged store yields identical output.
func (s *Service) ProductQuantityOverTime(ctx context.Context) ([]CumulativeQuantityRow, error) {
	buckets, err := s.repo.ProductAvailabilityByMonth(ctx)
	if err != nil {
		return nil, fmt.Errorf("product quantity over time: %w", err)
	}
	if len(buckets) == 0 {
		return nil, apperror.NewNoData(noData)
	}

	rows := make([]CumulativeQuantityRow, len(buckets))
	running := 0
	for i, b := range buckets {
		running += b.Count
		rows[i] = CumulativeQuantityRow{MonthBucket: b.MonthBucket, Cumulative: running}
	}
	return rows, nil
}

// ProductTransactionsOverTime counts one product's invoice items per month of
// the parent invoice's issue date.
func (s *Service) ProductTransactionsOverTime(ctx context.Context, productID int) ([]MonthlyCountRow, error) {
	rows, err := s.repo.ProductTransactionsOverTime(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("product transactions over time: %w", err)
	}
	if len(rows) == 0 {
		return nil, apperror.NewNoData(noDataForProduct)
	}
	return rows, nil
}

// ProductProfitOverTime sums one product's quantity*price per month.
func (s *Service) ProductProfitOverTime(ctx context.Context, productID int) ([]MonthlySumRow, error) {
	rows, err := s.repo.ProductProfitOverTime(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("product profit over time: %w", err)
	}
	if len(rows) == 0 {
		return nil, apperror.NewNoData(noDataForProduct)
	}
	return rows, nil
}

// ProductPurchasesByClient groups one product's sales by purchasing client.
func (s *Service) ProductPurchasesByClient(ctx context.Context, productID int) ([]ClientQuantityRow, error) {
	rows, err := s.repo.ProductPurchasesByClient(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("product purchases by client: %w", err)
	}
	if len(rows) == 0 {
		return nil, apperror.NewNoData(noDataForProduct)
	}
	return rows, nil
}

// MaxProductValues returns the catalog-wide price and quantity maxima.
func (s *Service) MaxProductValues(ctx context.Context) (*MaxValues, error) {
	vals, err := s.repo.MaxProductValues(ctx)
	if err != nil {
		return nil, fmt.Errorf("max product values: %w", err)
	}
	if vals == nil {
		return nil, apperror.NewNoData(noData)
	}
	return vals, nil
}
