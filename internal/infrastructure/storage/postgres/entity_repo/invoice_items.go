package entity_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"fakturo/internal/core/apperror"
	"fakturo/internal/domain/invoiceitems"
	"fakturo/internal/infrastructure/storage/postgres"
)

var invoiceItemColumns = []string{"id", "invoice_id", "product_id", "quantity", "price"}

// InvoiceItemRepo implements invoiceitems.Repository.
type InvoiceItemRepo struct {
	txm     *postgres.TxManager
	batcher *postgres.BatchInserter
	builder squirrel.StatementBuilderType
}

// NewInvoiceItemRepo creates a new invoice item repository.
func NewInvoiceItemRepo(txm *postgres.TxManager) *InvoiceItemRepo {
	return &InvoiceItemRepo{
		txm:     txm,
		batcher: postgres.NewBatchInserter(txm),
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *InvoiceItemRepo) List(ctx context.Context) ([]invoiceitems.InvoiceItem, error) {
	sql, args, err := r.builder.
		Select(invoiceItemColumns...).
		From("invoice_items").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []invoiceitems.InvoiceItem
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list invoice items: %w", err)
	}
	return rows, nil
}

func (r *InvoiceItemRepo) GetByID(ctx context.Context, id int) (*invoiceitems.InvoiceItem, error) {
	sql, args, err := r.builder.
		Select(invoiceItemColumns...).
		From("invoice_items").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var item invoiceitems.InvoiceItem
	if err := pgxscan.Get(ctx, r.txm.GetQuerier(ctx), &item, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("invoice item", id)
		}
		return nil, fmt.Errorf("get invoice item: %w", err)
	}
	return &item, nil
}

func (r *InvoiceItemRepo) GetDetail(ctx context.Context, id int) (*invoiceitems.InvoiceItemDetail, error) {
	sql, args, err := r.builder.
		Select(
			"ii.id",
			"ii.invoice_id",
			"ii.product_id",
			"ii.quantity",
			"ii.price",
			"p.name AS product_name",
			"c.id AS client_id",
			"c.name AS client_name",
			"i.date_of_issue",
		).
		From("invoice_items ii").
		Join("invoices i ON ii.invoice_id = i.id").
		Join("clients c ON i.client_id = c.id").
		Join("products p ON ii.product_id = p.id").
		Where(squirrel.Eq{"ii.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var detail invoiceitems.InvoiceItemDetail
	if err := pgxscan.Get(ctx, r.txm.GetQuerier(ctx), &detail, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("invoice item", id)
		}
		return nil, fmt.Errorf("get invoice item detail: %w", err)
	}
	return &detail, nil
}

func (r *InvoiceItemRepo) Create(ctx context.Context, item *invoiceitems.InvoiceItem) error {
	sql, args, err := r.builder.
		Insert("invoice_items").
		Columns("invoice_id", "product_id", "quantity", "price").
		Values(item.InvoiceID, item.ProductID, item.Quantity, item.Price).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if err := r.txm.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&item.ID); err != nil {
		return fmt.Errorf("insert invoice item: %w", err)
	}
	return nil
}

func (r *InvoiceItemRepo) CreateMany(ctx context.Context, items []invoiceitems.InvoiceItem) (int64, error) {
	rows := make([][]any, len(items))
	for i := range items {
		rows[i] = []any{items[i].InvoiceID, items[i].ProductID, items[i].Quantity, items[i].Price}
	}
	cols := []string{"invoice_id", "product_id", "quantity", "price"}
	n, err := r.batcher.CopyFromSlice(ctx, "invoice_items", cols, rows)
	if err != nil {
		return n, fmt.Errorf("bulk insert invoice items: %w", err)
	}
	return n, nil
}

func (r *InvoiceItemRepo) Update(ctx context.Context, item *invoiceitems.InvoiceItem) error {
	sql, args, err := r.builder.
		Update("invoice_items").
		Set("invoice_id", item.InvoiceID).
		Set("product_id", item.ProductID).
		Set("quantity", item.Quantity).
		Set("price", item.Price).
		Where(squirrel.Eq{"id": item.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	tag, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update invoice item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewConcurrentModification("invoice item", item.ID)
	}
	return nil
}

func (r *InvoiceItemRepo) Delete(ctx context.Context, id int) error {
	sql, args, err := r.builder.
		Delete("invoice_items").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete invoice item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("invoice item", id)
	}
	return nil
}

func (r *InvoiceItemRepo) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.txm.GetQuerier(ctx).
		QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM invoice_items WHERE id = $1)", id).
		Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("invoice item exists: %w", err)
	}
	return exists, nil
}
