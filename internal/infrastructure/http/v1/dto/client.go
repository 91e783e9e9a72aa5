package dto

import (
	"fakturo/internal/domain/clients"
)

// --- Request DTOs ---

// ClientRequest is the request body for creating or replacing a client.
type ClientRequest struct {
	ID          int    `json:"id"`
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// ToEntity converts DTO to domain entity.
func (r *ClientRequest) ToEntity() *clients.Client {
	return &clients.Client{
		ID:          r.ID,
		Name:        r.Name,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
	}
}

// --- Response DTOs ---

// ClientResponse is the response body for a client.
type ClientResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

// FromClient creates response DTO from domain entity.
func FromClient(c *clients.Client) *ClientResponse {
	return &ClientResponse{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
	}
}

// FromClients maps a client list.
func FromClients(cs []clients.Client) []ClientResponse {
	out := make([]ClientResponse, len(cs))
	for i := range cs {
		out[i] = *FromClient(&cs[i])
	}
	return out
}

// ClientDetailResponse is the single-client view with its invoice ids.
type ClientDetailResponse struct {
	ClientResponse
	InvoiceIDs []int `json:"invoicesId"`
}

// FromClientDetail creates response DTO from domain detail.
func FromClientDetail(d *clients.ClientDetail) *ClientDetailResponse {
	ids := d.InvoiceIDs
	if ids == nil {
		ids = []int{}
	}
	return &ClientDetailResponse{
		ClientResponse: *FromClient(&d.Client),
		InvoiceIDs:     ids,
	}
}
