package dto

import (
	"time"

	"fakturo/internal/core/types"
	"fakturo/internal/domain/products"
)

// --- Request DTOs ---

// ProductRequest is the request body for creating or replacing a product.
type ProductRequest struct {
	ID            int       `json:"id"`
	Name          string    `json:"name" binding:"required"`
	Quantity      int       `json:"quantity"`
	Price         float64   `json:"price"`
	AvailableFrom time.Time `json:"availableFrom"`
	Description   string    `json:"description"`
	ImageURL      string    `json:"imageURL"`
}

// ToEntity converts DTO to domain entity.
func (r *ProductRequest) ToEntity() *products.Product {
	return &products.Product{
		ID:            r.ID,
		Name:          r.Name,
		Quantity:      r.Quantity,
		Price:         types.NewMoney(r.Price),
		AvailableFrom: r.AvailableFrom,
		Description:   r.Description,
		ImageURL:      r.ImageURL,
	}
}

// IncreaseQuantityRequest is the body for the stock increase operation.
// Delta is the amount to add, never the new absolute value.
type IncreaseQuantityRequest struct {
	Delta int `json:"delta"`
}

// --- Response DTOs ---

// ProductResponse is the response body for a product.
type ProductResponse struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Quantity      int       `json:"quantity"`
	Price         float64   `json:"price"`
	AvailableFrom time.Time `json:"availableFrom"`
	Description   string    `json:"description"`
	ImageURL      string    `json:"imageURL"`
}

// FromProduct creates response DTO from domain entity.
func FromProduct(p *products.Product) *ProductResponse {
	return &ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Quantity:      p.Quantity,
		Price:         p.Price.InexactFloat64(),
		AvailableFrom: p.AvailableFrom,
		Description:   p.Description,
		ImageURL:      p.ImageURL,
	}
}

// FromProducts maps a product list.
func FromProducts(ps []products.Product) []ProductResponse {
	out := make([]ProductResponse, len(ps))
	for i := range ps {
		out[i] = *FromProduct(&ps[i])
	}
	return out
}

// ProductDetailResponse is the single-product view with its invoice item ids.
type ProductDetailResponse struct {
	ProductResponse
	InvoiceItemIDs []int `json:"invoiceItems"`
}

// FromProductDetail creates response DTO from domain detail.
func FromProductDetail(d *products.ProductDetail) *ProductDetailResponse {
	ids := d.InvoiceItemIDs
	if ids == nil {
		ids = []int{}
	}
	return &ProductDetailResponse{
		ProductResponse: *FromProduct(&d.Product),
		InvoiceItemIDs:  ids,
	}
}
