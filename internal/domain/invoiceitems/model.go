// Package invoiceitems provides invoice line items.
package invoiceitems

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"fakturo/internal/core/apperror"
	"fakturo/internal/core/types"
)

// InvoiceItem is a single line on an invoice. Price is the unit price snapshot
// taken at time of sale; it is never recalculated from the product's current
// price, so historical invoices stay fixed when product pricing changes.
type InvoiceItem struct {
	ID        int         `db:"id" json:"id"`
	InvoiceID int         `db:"invoice_id" json:"invoiceId"`
	ProductID int         `db:"product_id" json:"productId"`
	Quantity  int         `db:"quantity" json:"quantity"`
	Price     types.Money `db:"price" json:"price"`
}

// InvoiceItemDetail is the denormalized single-item view: the item plus the
// product name and the owning invoice's client and issue date.
type InvoiceItemDetail struct {
	InvoiceItem
	ProductName string    `json:"productName"`
	ClientID    int       `json:"clientId"`
	ClientName  string    `json:"clientName"`
	DateOfIssue time.Time `json:"dateOfIssue"`
}

// LineTotal returns Quantity * Price.
func (i *InvoiceItem) LineTotal() types.Money {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Validate implements entity self-validation.
func (i *InvoiceItem) Validate(ctx context.Context) error {
	if i.InvoiceID <= 0 {
		return apperror.NewValidation("invoiceId is required").
			WithDetail("field", "invoiceId")
	}
	if i.ProductID <= 0 {
		return apperror.NewValidation("productId is required").
			WithDetail("field", "productId")
	}
	if i.Quantity < 1 {
		return apperror.NewValidation("quantity must be at least 1").
			WithDetail("field", "quantity").
			WithDetail("value", i.Quantity)
	}
	if !i.Price.IsPositive() {
		return apperror.NewValidation("price must be greater than 0").
			WithDetail("field", "price").
			WithDetail("value", i.Price.String())
	}
	return nil
}
