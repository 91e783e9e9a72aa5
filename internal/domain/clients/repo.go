package clients

import (
	"context"
)

// Repository defines the interface for Client persistence.
type Repository interface {
	// List retrieves all clients ordered by id.
	List(ctx context.Context) ([]Client, error)

	// GetByID retrieves a client by id.
	GetByID(ctx context.Context, id int) (*Client, error)

	// GetDetail retrieves a client together with its invoice ids.
	GetDetail(ctx context.Context, id int) (*ClientDetail, error)

	// Create inserts a client and assigns its id.
	Create(ctx context.Context, c *Client) error

	// CreateMany bulk-inserts clients, returning the inserted count.
	CreateMany(ctx context.Context, cs []Client) (int64, error)

	// Update overwrites all fields of an existing client.
	Update(ctx context.Context, c *Client) error

	// Delete removes a client by id.
	Delete(ctx context.Context, id int) error

	// Exists reports whether a client row is present.
	Exists(ctx context.Context, id int) (bool, error)
}
