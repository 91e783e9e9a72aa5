package invoices

import (
	"context"

	"fakturo/internal/domain/invoiceitems"
)

// Repository defines the interface for Invoice persistence.
type Repository interface {
	// List retrieves the denormalized list view (with client names), ordered by id.
	List(ctx context.Context) ([]ListRow, error)

	// GetByID retrieves an invoice by id.
	GetByID(ctx context.Context, id int) (*Invoice, error)

	// GetDetail retrieves an invoice together with its item ids.
	GetDetail(ctx context.Context, id int) (*InvoiceDetail, error)

	// Create inserts an invoice and assigns its id.
	Create(ctx context.Context, inv *Invoice) error

	// CreateWithItems inserts an invoice and its items atomically.
	// Used by the importer; the item rows get the invoice's id.
	CreateWithItems(ctx context.Context, inv *Invoice, items []invoiceitems.InvoiceItem) error

	// Update overwrites all fields of an existing invoice.
	Update(ctx context.Context, inv *Invoice) error

	// Delete removes an invoice by id.
	Delete(ctx context.Context, id int) error

	// Exists reports whether an invoice row is present.
	Exists(ctx context.Context, id int) (bool, error)
}
