package dto

import (
	"time"

	"fakturo/internal/core/types"
	"fakturo/internal/domain/invoiceitems"
)

// --- Request DTOs ---

// InvoiceItemRequest is the request body for creating or replacing an invoice item.
type InvoiceItemRequest struct {
	ID        int     `json:"id"`
	InvoiceID int     `json:"invoiceId" binding:"required"`
	ProductID int     `json:"productId" binding:"required"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// ToEntity converts DTO to domain entity.
func (r *InvoiceItemRequest) ToEntity() *invoiceitems.InvoiceItem {
	return &invoiceitems.InvoiceItem{
		ID:        r.ID,
		InvoiceID: r.InvoiceID,
		ProductID: r.ProductID,
		Quantity:  r.Quantity,
		Price:     types.NewMoney(r.Price),
	}
}

// --- Response DTOs ---

// InvoiceItemResponse is the response body for an invoice item.
type InvoiceItemResponse struct {
	ID        int     `json:"id"`
	InvoiceID int     `json:"invoiceId"`
	ProductID int     `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// FromInvoiceItem creates response DTO from domain entity.
func FromInvoiceItem(it *invoiceitems.InvoiceItem) *InvoiceItemResponse {
	return &InvoiceItemResponse{
		ID:        it.ID,
		InvoiceID: it.InvoiceID,
		ProductID: it.ProductID,
		Quantity:  it.Quantity,
		Price:     it.Price.InexactFloat64(),
	}
}

// FromInvoiceItems maps an invoice item list.
func FromInvoiceItems(items []invoiceitems.InvoiceItem) []InvoiceItemResponse {
	out := make([]InvoiceItemResponse, len(items))
	for i := range items {
		out[i] = *FromInvoiceItem(&items[i])
	}
	return out
}

// InvoiceItemDetailResponse is the single-item view with the product name and
// the owning invoice's client and issue date flattened in.
type InvoiceItemDetailResponse struct {
	InvoiceItemResponse
	ProductName string    `json:"productName"`
	ClientID    int       `json:"clientId"`
	ClientName  string    `json:"clientName"`
	DateOfIssue time.Time `json:"dateOfIssue"`
}

// FromInvoiceItemDetail creates response DTO from domain detail.
func FromInvoiceItemDetail(d *invoiceitems.InvoiceItemDetail) *InvoiceItemDetailResponse {
	return &InvoiceItemDetailResponse{
		InvoiceItemResponse: *FromInvoiceItem(&d.InvoiceItem),
		ProductName:         d.ProductName,
		ClientID:            d.ClientID,
		ClientName:          d.ClientName,
		DateOfIssue:         d.DateOfIssue,
	}
}
