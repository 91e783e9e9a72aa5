// Package invoices provides the Invoice document: a dated sale to one client
// with denormalized totals over its line items.
package invoices

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"fakturo/internal/core/apperror"
	"fakturo/internal/core/types"
	"fakturo/internal/domain/invoiceitems"
)

// Invoice belongs to exactly one client. Price, TotalAmount, NumberOfProducts
// and TotalQuantity are denormalized from the invoice's items; the importer
// always computes them via ComputeTotals, the API accepts them as submitted.
type Invoice struct {
	ID               int         `db:"id" json:"id"`
	ClientID         int         `db:"client_id" json:"clientId"`
	DateOfIssue      time.Time   `db:"date_of_issue" json:"dateOfIssue"`
	Price            types.Money `db:"price" json:"price"`
	Discount         types.Money `db:"discount" json:"discount"`
	TotalAmount      types.Money `db:"total_amount" json:"totalAmount"`
	NumberOfProducts int         `db:"number_of_products" json:"numberOfProducts"`
	TotalQuantity    int         `db:"total_quantity" json:"totalQuantity"`
}

// ListRow is the denormalized list view with the client name flattened in.
type ListRow struct {
	ID               int         `db:"id" json:"id"`
	ClientName       string      `db:"client_name" json:"clientName"`
	DateOfIssue      time.Time   `db:"date_of_issue" json:"dateOfIssue"`
	Price            types.Money `db:"price" json:"price"`
	Discount         types.Money `db:"discount" json:"discount"`
	TotalAmount      types.Money `db:"total_amount" json:"totalAmount"`
	NumberOfProducts int         `db:"number_of_products" json:"numberOfProducts"`
	TotalQuantity    int         `db:"total_quantity" json:"totalQuantity"`
}

// InvoiceDetail is the denormalized single-invoice view: the invoice plus the
// ids of its items.
type InvoiceDetail struct {
	Invoice
	InvoiceItemIDs []int `json:"invoiceItems"`
}

// ComputeTotals fills the denormalized fields from the given items:
// Price = sum(quantity*price), TotalAmount = round(Price - Price*Discount, 2),
// TotalQuantity = sum(quantity), NumberOfProducts = count(items).
func (inv *Invoice) ComputeTotals(items []invoiceitems.InvoiceItem) {
	price := decimal.Zero
	totalQuantity := 0
	for i := range items {
		price = price.Add(items[i].LineTotal())
		totalQuantity += items[i].Quantity
	}
	inv.Price = price
	inv.TotalAmount = types.ApplyDiscount(price, inv.Discount)
	inv.TotalQuantity = totalQuantity
	inv.NumberOfProducts = len(items)
}

// Validate implements entity self-validation.
func (inv *Invoice) Validate(ctx context.Context) error {
	if inv.ClientID <= 0 {
		return apperror.NewValidation("clientId is required").
			WithDetail("field", "clientId")
	}
	if inv.Discount.IsNegative() || inv.Discount.GreaterThan(decimal.NewFromInt(1)) {
		return apperror.NewValidation("discount must be between 0 and 1").
			WithDetail("field", "discount").
			WithDetail("value", inv.Discount.String())
	}
	if inv.NumberOfProducts < 1 {
		return apperror.NewValidation("numberOfProducts must be at least 1").
			WithDetail("field", "numberOfProducts").
			WithDetail("value", inv.NumberOfProducts)
	}
	if inv.TotalQuantity < 1 {
		return apperror.NewValidation("totalQuantity must be at least 1").
			WithDetail("field", "totalQuantity").
			WithDetail("value", inv.TotalQuantity)
	}
	return nil
}
