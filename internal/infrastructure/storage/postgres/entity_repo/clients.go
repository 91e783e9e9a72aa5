// Package entity_repo provides PostgreSQL implementations for the entity
// repositories. Queries are built with squirrel and scanned with pgxscan.
package entity_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"fakturo/internal/core/apperror"
	"fakturo/internal/domain/clients"
	"fakturo/internal/infrastructure/storage/postgres"
)

var clientColumns = []string{"id", "name", "email", "phone_number"}

// ClientRepo implements clients.Repository.
type ClientRepo struct {
	txm     *postgres.TxManager
	batcher *postgres.BatchInserter
	builder squirrel.StatementBuilderType
}

// NewClientRepo creates a new client repository.
func NewClientRepo(txm *postgres.TxManager) *ClientRepo {
	return &ClientRepo{
		txm:     txm,
		batcher: postgres.NewBatchInserter(txm),
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *ClientRepo) List(ctx context.Context) ([]clients.Client, error) {
	sql, args, err := r.builder.
		Select(clientColumns...).
		From("clients").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []clients.Client
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return rows, nil
}

func (r *ClientRepo) GetByID(ctx context.Context, id int) (*clients.Client, error) {
	sql, args, err := r.builder.
		Select(clientColumns...).
		From("clients").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var c clients.Client
	if err := pgxscan.Get(ctx, r.txm.GetQuerier(ctx), &c, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("client", id)
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

func (r *ClientRepo) GetDetail(ctx context.Context, id int) (*clients.ClientDetail, error) {
	c, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sql, args, err := r.builder.
		Select("id").
		From("invoices").
		Where(squirrel.Eq{"client_id": id}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	invoiceIDs := []int{}
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &invoiceIDs, sql, args...); err != nil {
		return nil, fmt.Errorf("client invoice ids: %w", err)
	}

	return &clients.ClientDetail{Client: *c, InvoiceIDs: invoiceIDs}, nil
}

func (r *ClientRepo) Create(ctx context.Context, c *clients.Client) error {
	sql, args, err := r.builder.
		Insert("clients").
		Columns("name", "email", "phone_number").
		Values(c.Name, c.Email, c.PhoneNumber).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if err := r.txm.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&c.ID); err != nil {
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

func (r *ClientRepo) CreateMany(ctx context.Context, cs []clients.Client) (int64, error) {
	rows := make([][]any, len(cs))
	for i, c := range cs {
		rows[i] = []any{c.Name, c.Email, c.PhoneNumber}
	}
	n, err := r.batcher.CopyFromSlice(ctx, "clients", []string{"name", "email", "phone_number"}, rows)
	if err != nil {
		return n, fmt.Errorf("bulk insert clients: %w", err)
	}
	return n, nil
}

func (r *ClientRepo) Update(ctx context.Context, c *clients.Client) error {
	sql, args, err := r.builder.
		Update("clients").
		Set("name", c.Name).
		Set("email", c.Email).
		Set("phone_number", c.PhoneNumber).
		Where(squirrel.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update: %w", err)
	}

	tag, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewConcurrentModification("client", c.ID)
	}
	return nil
}

func (r *ClientRepo) Delete(ctx context.Context, id int) error {
	sql, args, err := r.builder.
		Delete("clients").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	tag, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("client", id)
	}
	return nil
}

func (r *ClientRepo) Exists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.txm.GetQuerier(ctx).
		QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM clients WHERE id = $1)", id).
		Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("client exists: %w", err)
	}
	return exists, nil
}
