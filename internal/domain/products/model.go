// Package products provides the Product catalog.
package products

import (
	"context"
	"time"

	"fakturo/internal/core/apperror"
	"fakturo/internal/core/types"
)

// Product represents a sellable item. Price is the current unit price; invoice
// items snapshot their own price at time of sale.
type Product struct {
	ID            int         `db:"id" json:"id"`
	Name          string      `db:"name" json:"name"`
	Quantity      int         `db:"quantity" json:"quantity"`
	Price         types.Money `db:"price" json:"price"`
	AvailableFrom time.Time   `db:"available_from" json:"availableFrom"`
	Description   string      `db:"description" json:"description"`
	ImageURL      string      `db:"image_url" json:"imageURL"`
}

// ProductDetail is the denormalized single-product view: the product plus the
// ids of the invoice items it appears on.
type ProductDetail struct {
	Product
	InvoiceItemIDs []int `json:"invoiceItems"`
}

// Validate implements entity self-validation.
func (p *Product) Validate(ctx context.Context) error {
	if p.Name == "" {
		return apperror.NewValidation("name is required").
			WithDetail("field", "name")
	}
	if p.Quantity < 0 {
		return apperror.NewValidation("quantity must be greater than or equal to 0").
			WithDetail("field", "quantity").
			WithDetail("value", p.Quantity)
	}
	if !p.Price.IsPositive() {
		return apperror.NewValidation("price must be greater than 0").
			WithDetail("field", "price").
			WithDetail("value", p.Price.String())
	}
	if p.AvailableFrom.IsZero() {
		return apperror.NewValidation("available date is required").
			WithDetail("field", "availableFrom")
	}
	return nil
}
