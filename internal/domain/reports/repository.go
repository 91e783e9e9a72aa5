package reports

import (
	"context"
)

// Repository defines report data access. Implementations return rows already
// grouped, reduced and ordered; emptiness handling lives in the Service.
type Repository interface {
	// Client reports (scope: one client's invoices / invoice items)
	ClientTransactionsOverTime(ctx context.Context, clientID int) ([]MonthlyCountRow, error)
	ClientMoneySpentOverTime(ctx context.Context, clientID int) ([]MonthlySumRow, error)
	TopProductsByClient(ctx context.Context, clientID int, limit int) ([]NamedProductQuantityRow, error)

	// Global invoice reports
	InvoicesOverTime(ctx context.Context) ([]MonthlyCountRow, error)
	TotalProfitOverTime(ctx context.Context) ([]MonthlySumRow, error)

	// Global invoice-item reports
	TopSellingProducts(ctx context.Context, limit int) ([]ProductQuantityRow, error)
	TopIncomeProducts(ctx context.Context, limit int) ([]ProductIncomeRow, error)
	ItemPricesForInvoice(ctx context.Context, invoiceID int) ([]ItemPriceRow, error)

	// Product reports
	ProductAvailabilityByMonth(ctx context.Context) ([]MonthlyCountRow, error)
	ProductTransactionsOverTime(ctx context.Context, productID int) ([]MonthlyCountRow, error)
	ProductProfitOverTime(ctx context.Context, productID int) ([]MonthlySumRow, error)
	ProductPurchasesByClient(ctx context.Context, productID int) ([]ClientQuantityRow, error)
	MaxProductValues(ctx context.Context) (*MaxValues, error)
}
