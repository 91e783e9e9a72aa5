package dto

import (
	"time"

	"fakturo/internal/core/types"
	"fakturo/internal/domain/invoices"
)

// --- Request DTOs ---

// InvoiceRequest is the request body for creating or replacing an invoice.
// Totals are accepted as submitted; only the importer recomputes them.
type InvoiceRequest struct {
	ID               int       `json:"id"`
	ClientID         int       `json:"clientId" binding:"required"`
	DateOfIssue      time.Time `json:"dateOfIssue"`
	Price            float64   `json:"price"`
	Discount         float64   `json:"discount"`
	TotalAmount      float64   `json:"totalAmount"`
	NumberOfProducts int       `json:"numberOfProducts"`
	TotalQuantity    int       `json:"totalQuantity"`
}

// ToEntity converts DTO to domain entity.
func (r *InvoiceRequest) ToEntity() *invoices.Invoice {
	return &invoices.Invoice{
		ID:               r.ID,
		ClientID:         r.ClientID,
		DateOfIssue:      r.DateOfIssue,
		Price:            types.NewMoney(r.Price),
		Discount:         types.NewMoney(r.Discount),
		TotalAmount:      types.NewMoney(r.TotalAmount),
		NumberOfProducts: r.NumberOfProducts,
		TotalQuantity:    r.TotalQuantity,
	}
}

// --- Response DTOs ---

// InvoiceResponse is the response body for an invoice.
type InvoiceResponse struct {
	ID               int       `json:"id"`
	ClientID         int       `json:"clientId"`
	DateOfIssue      time.Time `json:"dateOfIssue"`
	Price            float64   `json:"price"`
	Discount         float64   `json:"discount"`
	TotalAmount      float64   `json:"totalAmount"`
	NumberOfProducts int       `json:"numberOfProducts"`
	TotalQuantity    int       `json:"totalQuantity"`
}

// FromInvoice creates response DTO from domain entity.
func FromInvoice(inv *invoices.Invoice) *InvoiceResponse {
	return &InvoiceResponse{
		ID:               inv.ID,
		ClientID:         inv.ClientID,
		DateOfIssue:      inv.DateOfIssue,
		Price:            inv.Price.InexactFloat64(),
		Discount:         inv.Discount.InexactFloat64(),
		TotalAmount:      inv.TotalAmount.InexactFloat64(),
		NumberOfProducts: inv.NumberOfProducts,
		TotalQuantity:    inv.TotalQuantity,
	}
}

// InvoiceListItemResponse is one row of the invoice list with the client name
// flattened in.
type InvoiceListItemResponse struct {
	ID               int       `json:"id"`
	ClientName       string    `json:"clientName"`
	DateOfIssue      time.Time `json:"dateOfIssue"`
	Price            float64   `json:"price"`
	Discount         float64   `json:"discount"`
	TotalAmount      float64   `json:"totalAmount"`
	NumberOfProducts int       `json:"numberOfProducts"`
	TotalQuantity    int       `json:"totalQuantity"`
}

// FromInvoiceList maps invoice list rows.
func FromInvoiceList(rows []invoices.ListRow) []InvoiceListItemResponse {
	out := make([]InvoiceListItemResponse, len(rows))
	for i := range rows {
		out[i] = InvoiceListItemResponse{
			ID:               rows[i].ID,
			ClientName:       rows[i].ClientName,
			DateOfIssue:      rows[i].DateOfIssue,
			Price:            rows[i].Price.InexactFloat64(),
			Discount:         rows[i].Discount.InexactFloat64(),
			TotalAmount:      rows[i].TotalAmount.InexactFloat64(),
			NumberOfProducts: rows[i].NumberOfProducts,
			TotalQuantity:    rows[i].TotalQuantity,
		}
	}
	return out
}

// InvoiceDetailResponse is the single-invoice view with its item ids.
type InvoiceDetailResponse struct {
	InvoiceResponse
	InvoiceItemIDs []int `json:"invoiceItems"`
}

// FromInvoiceDetail creates response DTO from domain detail.
func FromInvoiceDetail(d *invoices.InvoiceDetail) *InvoiceDetailResponse {
	ids := d.InvoiceItemIDs
	if ids == nil {
		ids = []int{}
	}
	return &InvoiceDetailResponse{
		InvoiceResponse: *FromInvoice(&d.Invoice),
		InvoiceItemIDs:  ids,
	}
}
