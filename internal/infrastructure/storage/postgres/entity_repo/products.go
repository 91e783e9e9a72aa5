package entity_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"fakturo/internal/core/apperror"
	"fakturo/internal/domain/products"
	"fakturo/internal/infrastructure/storage/postgres"
)

var productColumns = []string{"id", "name", "quantity", "price", "available_from", "description", "image_url"}

// ProductRepo implements products.Repository.
type ProductRepo struct {
	txm     *postgres.TxManager
	batcher *postgres.BatchInserter
	builder squirrel.StatementBuilderType
}

// NewProductRepo creates a new product repository.
func NewProductRepo(txm *postgres.TxManager) *ProductRepo {
	return &ProductRepo{
		txm:     txm,
		batcher: postgres.NewBatchInserter(txm),
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *ProductRepo) List(ctx context.Context) ([]products.Product, error) {
	sql, args, err := r.builder.
		Select(productColumns...).
		From("products").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []products.Product
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return rows, nil
}

func (r *ProductRepo) GetByID(ctx context.Context, id int) (*products.Product, error) {
	sql, args, err := r.builder.
		Select(productColumns...).
		From("products").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var p products.Product
	if err := pgxscan.Get(ctx, r.txm.GetQuerier(ctx), &p, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("product", id)
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

func (r *ProductRepo) GetDetail(ctx context.Context, id int) (*products.ProductDetail, error) {
	p, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sql, args, err := r.builder.
		Select("id").
		From("invoice_items").
		Where(squirrel.Eq{"product_id": id}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	itemIDs := []int{}
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &itemIDs, sql, args...); err != nil {
		return nil, fmt.Errorf("product invoice item ids: %w", err)
	}

	return &products.ProductDetail{Product: *p, InvoiceItemIDs: itemIDs}, nil
}

func (r *ProductRepo) Create(ctx context.Context, p *products.Product) error {
	sql, args, err := r.builder.
		Insert("products").
		Columns("name", "quantity", "price", "available_from", "description", "image_url").
		Values(p.Name, p.Quantity, p.Price, p.AvailableFrom, p.Description, p.ImageURL).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if err := r.txm.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&p.ID); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *ProductRepo) CreateMany(ctx context.Context, ps []products.Product) (int64, error) {
	rows := make([][]any, len(ps))
	for i, p := range ps {
		rows[i] = []any{p.Name, p.Quantity, p.Price, p.AvailableFrom, p.Description, p.ImageURL}
	}
	cols := []string{"name", "quantity", "price", "available_from", "description", "image_url"}
	n, err := r.batcher.CopyFromSlice(ctx, "products", cols, rows)
	if err != nil {
		return n, fmt.Errorf("bulk insert products: %w", err)
	}
	return n, nil
}

func (r *ProductRepo) Update(ctx context.Context, p *products.Product) error {
	sql, args, err := r.builder.
		Update("products").
		Set("name", p.Name).
		Set("quantity", p.Quantity).
		Set("price", p.Price).
		Set("available_from", p.AvailableFrom).
		Set("description", p.Description).
		Set("image_url", p.ImageURL).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	tag, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewConcurrentModification("product", p.ID)
	}
	return nil
}

func (r *ProductRepo) IncreaseQuantity(ctx context.Context, id int, delta int) error {
	sql, args, err := r.builder.
		Update("products").
		Set("quantity", squirrel.Expr("quantity + ?", delta)).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	tag, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("increase product quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("product", id)
	}
	return nil
}

func (r *ProductRepo) Delete(ctx context.Context, id int) error {
	sql, args, err := r.builder.
		Delete("products").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("product", id)
	}
	return nil
}

func (r *ProductRepo) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.txm.GetQuerier(ctx).
		QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)", id).
		Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("product exists: %w", err)
	}
	return exists, nil
}
