// Package clients provides the Client catalog: the parties invoices are issued to.
package clients

import (
	"context"

	"fakturo/internal/core/apperror"
)

// Client represents a customer that owns invoices.
type Client struct {
	ID          int    `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Email       string `db:"email" json:"email"`
	PhoneNumber string `db:"phone_number" json:"phoneNumber"`
}

// ClientDetail is the denormalized single-client view: the client plus the ids
// of its invoices.
type ClientDetail struct {
	Client
	InvoiceIDs []int `json:"invoicesId"`
}

// Validate implements entity self-validation.
func (c *Client) Validate(ctx context.Context) error {
	if c.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	return nil
}
