package handlers

import (
	"github.com/gin-gonic/gin"

	"fakturo/internal/domain/invoiceitems"
	"fakturo/internal/infrastructure/http/v1/dto"
)

// InvoiceItemHandler handles invoice item CRUD requests.
type InvoiceItemHandler struct {
	*BaseHandler
	service *invoiceitems.Service
}

// NewInvoiceItemHandler creates a new invoice item handler.
func NewInvoiceItemHandler(service *invoiceitems.Service) *InvoiceItemHandler {
	return &InvoiceItemHandler{
		BaseHandler: NewBaseHandler(),
		service:     service,
	}
}

// List handles GET /api/invoiceitems
func (h *InvoiceItemHandler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromInvoiceItems(list))
}

// Get handles GET /api/invoiceitems/:id
func (h *InvoiceItemHandler) Get(c *gin.Context) {
	id, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	detail, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromInvoiceItemDetail(detail))
}

// Create handles POST /api/invoiceitems
func (h *InvoiceItemHandler) Create(c *gin.Context) {
	var req dto.InvoiceItemRequest
	if !h.BindJSON(c, &req) {
		return
	}

	item := req.ToEntity()
	if err := h.service.Create(c.Request.Context(), item); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, "/api/invoiceitems", item.ID, dto.FromInvoiceItem(item))
}

// Replace handles PUT /api/invoiceitems/:id
func (h *InvoiceItemHandler) Replace(c *gin.Context) {
	id, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	var req dto.InvoiceItemRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.service.Replace(c.Request.Context(), id, req.ToEntity()); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// Delete handles DELETE /api/invoiceitems/:id
func (h *InvoiceItemHandler) Delete(c *gin.Context) {
	id, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
