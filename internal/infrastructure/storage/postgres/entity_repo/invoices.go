package entity_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"fakturo/internal/core/apperror"
	"fakturo/internal/domain/invoiceitems"
	"fakturo/internal/domain/invoices"
	"fakturo/internal/infrastructure/storage/postgres"
)

var invoiceColumns = []string{"id", "client_id", "date_of_issue", "price", "discount", "total_amount", "number_of_products", "total_quantity"}

// InvoiceRepo implements invoices.Repository.
type InvoiceRepo struct {
	txm     *postgres.TxManager
	builder squirrel.StatementBuilderType
}

// NewInvoiceRepo creates a new invoice repository.
func NewInvoiceRepo(txm *postgres.TxManager) *InvoiceRepo {
	return &InvoiceRepo{
		txm:     txm,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *InvoiceRepo) List(ctx context.Context) ([]invoices.ListRow, error) {
	sql, args, err := r.builder.
		Select(
			"i.id",
			"c.name AS client_name",
			"i.date_of_issue",
			"i.price",
			"i.discount",
			"i.total_amount",
			"i.number_of_products",
			"i.total_quantity",
		).
		From("invoices i").
		Join("clients c ON i.client_id = c.id").
		OrderBy("i.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []invoices.ListRow
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return rows, nil
}

func (r *InvoiceRepo) GetByID(ctx context.Context, id int) (*invoices.Invoice, error) {
	sql, args, err := r.builder.
		Select(invoiceColumns...).
		From("invoices").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var inv invoices.Invoice
	if err := pgxscan.Get(ctx, r.txm.GetQuerier(ctx), &inv, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("invoice", id)
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

func (r *InvoiceRepo) GetDetail(ctx context.Context, id int) (*invoices.InvoiceDetail, error) {
	inv, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sql, args, err := r.builder.
		Select("id").
		From("invoice_items").
		Where(squirrel.Eq{"invoice_id": id}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	itemIDs := []int{}
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &itemIDs, sql, args...); err != nil {
		return nil, fmt.Errorf("invoice item ids: %w", err)
	}

	return &invoices.InvoiceDetail{Invoice: *inv, InvoiceItemIDs: itemIDs}, nil
}

func (r *InvoiceRepo) Create(ctx context.Context, inv *invoices.Invoice) error {
	q := r.builder.
		Insert("invoices").
		Columns("client_id", "date_of_issue", "price", "discount", "total_amount", "number_of_products", "total_quantity").
		Values(inv.ClientID, inv.DateOfIssue, inv.Price, inv.Discount, inv.TotalAmount, inv.NumberOfProducts, inv.TotalQuantity).
		Suffix("RETURNING id")

	// The importer assigns sequential ids explicitly; the API path lets the
	// sequence assign them.
	if inv.ID > 0 {
		q = r.builder.
			Insert("invoices").
			Columns("id", "client_id", "date_of_issue", "price", "discount", "total_amount", "number_of_products", "total_quantity").
			Values(inv.ID, inv.ClientID, inv.DateOfIssue, inv.Price, inv.Discount, inv.TotalAmount, inv.NumberOfProducts, inv.TotalQuantity).
			Suffix("RETURNING id")
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if err := r.txm.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&inv.ID); err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

func (r *InvoiceRepo) CreateWithItems(ctx context.Context, inv *invoices.Invoice, items []invoiceitems.InvoiceItem) error {
	return r.txm.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := r.Create(ctx, inv); err != nil {
			return err
		}

		rows := make([][]any, len(items))
		for i := range items {
			rows[i] = []any{inv.ID, items[i].ProductID, items[i].Quantity, items[i].Price}
		}
		cols := []string{"invoice_id", "product_id", "quantity", "price"}
		if _, err := postgres.NewBatchInserter(r.txm).CopyFromSlice(ctx, "invoice_items", cols, rows); err != nil {
			return fmt.Errorf("bulk insert invoice items: %w", err)
		}
		return nil
	})
}

func (r *InvoiceRepo) Update(ctx context.Context, inv *invoices.Invoice) error {
	sql, args, err := r.builder.
		Update("invoices").
		Set("client_id", inv.ClientID).
		Set("date_of_issue", inv.DateOfIssue).
		Set("price", inv.Price).
		Set("discount", inv.Discount).
		Set("total_amount", inv.TotalAmount).
		Set("number_of_products", inv.NumberOfProducts).
		Set("total_quantity", inv.TotalQuantity).
		Where(squirrel.Eq{"id": inv.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	tag, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewConcurrentModification("invoice", inv.ID)
	}
	return nil
}

func (r *InvoiceRepo) Delete(ctx context.Context, id int) error {
	sql, args, err := r.builder.
		Delete("invoices").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("invoice", id)
	}
	return nil
}

func (r *InvoiceRepo) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.txm.GetQuerier(ctx).
		QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM invoices WHERE id = $1)", id).
		Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("invoice exists: %w", err)
	}
	return exists, nil
}

// SyncIDSequence aligns the invoices id sequence with the highest explicitly
// assigned id. Called after the importer inserts invoices with fixed ids so
// subsequent API creates do not collide.
func (r *InvoiceRepo) SyncIDSequence(ctx context.Context) error {
	_, err := r.txm.GetQuerier(ctx).Exec(ctx,
		"SELECT setval(pg_get_serial_sequence('invoices', 'id'), COALESCE(MAX(id), 1)) FROM invoices")
	if err != nil {
		return fmt.Errorf("sync invoice id sequence: %w", err)
	}
	return nil
}
