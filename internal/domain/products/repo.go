package products

import (
	"context"
)

// Repository defines the interface for Product persistence.
type Repository interface {
	// List retrieves all products ordered by id.
	List(ctx context.Context) ([]Product, error)

	// GetByID retrieves a product by id.
	GetByID(ctx context.Context, id int) (*Product, error)

	// GetDetail retrieves a product together with its invoice item ids.
	GetDetail(ctx context.Context, id int) (*ProductDetail, error)

	// Create inserts a product and assigns its id.
	Create(ctx context.Context, p *Product) error

	// CreateMany bulk-inserts products, returning the inserted count.
	CreateMany(ctx context.Context, ps []Product) (int64, error)

	// Update overwrites all fields of an existing product.
	Update(ctx context.Context, p *Product) error

	// IncreaseQuantity atomically adds delta to the on-hand quantity.
	IncreaseQuantity(ctx context.Context, id int, delta int) error

	// Delete removes a product by id.
	Delete(ctx context.Context, id int) error

	// Exists reports whether a product row is present.
	Exists(ctx context.Context, id int) (bool, error)
}
