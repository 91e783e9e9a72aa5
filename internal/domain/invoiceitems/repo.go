package invoiceitems

import (
	"context"
)

// Repository defines the interface for InvoiceItem persistence.
type Repository interface {
	// List retrieves all invoice items ordered by id.
	List(ctx context.Context) ([]InvoiceItem, error)

	// GetByID retrieves an invoice item by id.
	GetByID(ctx context.Context, id int) (*InvoiceItem, error)

	// GetDetail retrieves the flattened single-item view.
	GetDetail(ctx context.Context, id int) (*InvoiceItemDetail, error)

	// Create inserts an invoice item and assigns its id.
	Create(ctx context.Context, i *InvoiceItem) error

	// CreateMany bulk-inserts invoice items, returning the inserted count.
	CreateMany(ctx context.Context, items []InvoiceItem) (int64, error)

	// Update overwrites all fields of an existing invoice item.
	Update(ctx context.Context, i *InvoiceItem) error

	// Delete removes an invoice item by id.
	Delete(ctx context.Context, id int) error

	// Exists reports whether an invoice item row is present.
	Exists(ctx context.Context, id int) (bool, error)
}
