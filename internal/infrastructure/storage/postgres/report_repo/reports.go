// Package report_repo implements the aggregation queries behind the report
// endpoints. All grouping, ordering and top-N limiting happens in SQL so the
// service layer only has to handle emptiness and the cumulative fold.
package report_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"fakturo/internal/domain/reports"
	"fakturo/internal/infrastructure/storage/postgres"
)

// ReportRepo implements reports.Repository against PostgreSQL.
type ReportRepo struct {
	txm     *postgres.TxManager
	builder squirrel.StatementBuilderType
}

func NewReportRepo(txm *postgres.TxManager) *ReportRepo {
	return &ReportRepo{
		txm:     txm,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *ReportRepo) ClientTransactionsOverTime(ctx context.Context, clientID int) ([]reports.MonthlyCountRow, error) {
	sql, args, err := r.builder.
		Select(
			"EXTRACT(YEAR FROM date_of_issue)::int AS year",
			"EXTRACT(MONTH FROM date_of_issue)::int AS month",
			"COUNT(*)::int AS count",
		).
		From("invoices").
		Where(squirrel.Eq{"client_id": clientID}).
		GroupBy("year", "month").
		OrderBy("year", "month").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []reports.MonthlyCountRow
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("client transactions over time: %w", err)
	}
	return rows, nil
}

func (r *ReportRepo) ClientMoneySpentOverTime(ctx context.Context, clientID int) ([]reports.MonthlySumRow, error) {
	sql, args, err := r.builder.
		Select(
			"EXTRACT(YEAR FROM date_of_issue)::int AS year",
			"EXTRACT(MONTH FROM date_of_issue)::int AS month",
			"SUM(total_amount) AS sum",
		).
		From("invoices").
		Where(squirrel.Eq{"client_id": clientID}).
		GroupBy("year", "month").
		OrderBy("year", "month").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []reports.MonthlySumRow
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("client money spent over time: %w", err)
	}
	return rows, nil
}

func (r *ReportRepo) TopProductsByClient(ctx context.Context, clientID int, limit int) ([]reports.NamedProductQuantityRow, error) {
	sql, args, err := r.builder.
		Select(
			"p.name AS product_name",
			"SUM(ii.quantity)::int AS total_quantity",
		).
		From("invoice_items ii").
		Join("invoices i ON ii.invoice_id = i.id").
		Join("products p ON ii.product_id = p.id").
		Where(squirrel.Eq{"i.client_id": clientID}).
		GroupBy("p.name").
		OrderBy("total_quantity DESC", "p.name ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []reports.NamedProductQuantityRow
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("top products by client: %w", err)
	}
	return rows, nil
}

func (r *ReportRepo) InvoicesOverTime(ctx context.Context) ([]reports.MonthlyCountRow, error) {
	sql, args, err := r.builder.
		Select(
			"EXTRACT(YEAR FROM date_of_issue)::int AS year",
			"EXTRACT(MONTH FROM date_of_issue)::int AS month",
			"COUNT(*)::int AS count",
		).
		From("invoices").
		GroupBy("year", "month").
		OrderBy("year", "month").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []reports.MonthlyCountRow
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("invoices over time: %w", err)
	}
	return rows, nil
}

func (r *ReportRepo) TotalProfitOverTime(ctx context.Context) ([]reports.MonthlySumRow, error) {
	sql, args, err := r.builder.
		Select(
			"EXTRACT(YEAR FROM date_of_issue)::int AS year",
			"EXTRACT(MONTH FROM date_of_issue)::int AS month",
			"SUM(total_amount) AS sum",
		).
		From("invoices").
		GroupBy("year", "month").
		OrderBy("year", "month").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []reports.MonthlySumRow
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("total profit over time: %w", err)
	}
	return rows, nil
}

func (r *ReportRepo) TopSellingProducts(ctx context.Context, limit int) ([]reports.ProductQuantityRow, error) {
	sql, args, err := r.builder.
		Select(
			"product_id",
			"SUM(quantity)::int AS total_quantity",
		).
		From("invoice_items").
		GroupBy("product_id").
		OrderBy("total_quantity DESC", "product_id ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []reports.ProductQuantityRow
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("top selling products: %w", err)
	}
	return rows, nil
}

func (r *ReportRepo) TopIncomeProducts(ctx context.Context, limit int) ([]reports.ProductIncomeRow, error) {
	sql, args, err := r.builder.
		Select(
			"product_id",
			"SUM(quantity * price) AS total_income",
		).
		From("invoice_items").
		GroupBy("product_id").
		OrderBy("total_income DESC", "product_id ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []reports.ProductIncomeRow
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("top income products: %w", err)
	}
	return rows, nil
}

func (r *ReportRepo) ItemPricesForInvoice(ctx context.Context, invoiceID int) ([]reports.ItemPriceRow, error) {
	sql, args, err := r.builder.
		Select(
			"ii.id AS invoice_item_id",
			"p.name AS product_name",
			"ii.quantity",
			"ii.price",
		).
		From("invoice_items ii").
		Join("products p ON ii.product_id = p.id").
		Where(squirrel.Eq{"ii.invoice_id": invoiceID}).
		OrderBy("ii.price DESC", "ii.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []reports.ItemPriceRow
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("item prices for invoice: %w", err)
	}
	return rows, nil
}

func (r *ReportRepo) ProductAvailabilityByMonth(ctx context.Context) ([]reports.MonthlyCountRow, error) {
	sql, args, err := r.builder.
		Select(
			"EXTRACT(YEAR FROM available_from)::int AS year",
			"EXTRACT(MONTH FROM available_from)::int AS month",
			"COUNT(*)::int AS count",
		).
		From("products").
		GroupBy("year", "month").
		OrderBy("year", "month").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []reports.MonthlyCountRow
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("product availability by month: %w", err)
	}
	return rows, nil
}

func (r *ReportRepo) ProductTransactionsOverTime(ctx context.Context, productID int) ([]reports.MonthlyCountRow, error) {
	sql, args, err := r.builder.
		Select(
			"EXTRACT(YEAR FROM i.date_of_issue)::int AS year",
			"EXTRACT(MONTH FROM i.date_of_issue)::int AS month",
			"COUNT(*)::int AS count",
		).
		From("invoice_items ii").
		Join("invoices i ON ii.invoice_id = i.id").
		Where(squirrel.Eq{"ii.product_id": productID}).
		GroupBy("year", "month").
		OrderBy("year", "month").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []reports.MonthlyCountRow
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("product transactions over time: %w", err)
	}
	return rows, nil
}

func (r *ReportRepo) ProductProfitOverTime(ctx context.Context, productID int) ([]reports.MonthlySumRow, error) {
	sql, args, err := r.builder.
		Select(
			"EXTRACT(YEAR FROM i.date_of_issue)::int AS year",
			"EXTRACT(MONTH FROM i.date_of_issue)::int AS month",
			"SUM(ii.quantity * ii.price) AS sum",
		).
		From("invoice_items ii").
		Join("invoices i ON ii.invoice_id = i.id").
		Where(squirrel.Eq{"ii.product_id": productID}).
		GroupBy("year", "month").
		OrderBy("year", "month").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []reports.MonthlySumRow
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("product profit over time: %w", err)
	}
	return rows, nil
}

func (r *ReportRepo) ProductPurchasesByClient(ctx context.Context, productID int) ([]reports.ClientQuantityRow, error) {
	sql, args, err := r.builder.
		Select(
			"c.id AS client_id",
			"c.name AS client_name",
			"SUM(ii.quantity)::int AS total_quantity",
		).
		From("invoice_items ii").
		Join("invoices i ON ii.invoice_id = i.id").
		Join("clients c ON i.client_id = c.id").
		Where(squirrel.Eq{"ii.product_id": productID}).
		GroupBy("c.id", "c.name").
		OrderBy("total_quantity DESC", "c.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []reports.ClientQuantityRow
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("product purchases by client: %w", err)
	}
	return rows, nil
}

// MaxProductValues returns nil when the catalog is empty: MAX over zero rows
// is NULL, which the query rewrites to a zero-row result via HAVING.
func (r *ReportRepo) MaxProductValues(ctx context.Context) (*reports.MaxValues, error) {
	sql, args, err := r.builder.
		Select(
			"MAX(price) AS max_price",
			"MAX(quantity)::int AS max_quantity",
		).
		From("products").
		Having("COUNT(*) > 0").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var vals reports.MaxValues
	if err := pgxscan.Get(ctx, r.txm.GetQuerier(ctx), &vals, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("max product values: %w", err)
	}
	return &vals, nil
}
