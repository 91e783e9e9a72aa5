package handlers

import (
	"github.com/gin-gonic/gin"

	"fakturo/internal/domain/invoices"
	"fakturo/internal/infrastructure/http/v1/dto"
)

// InvoiceHandler handles invoice CRUD requests.
type InvoiceHandler struct {
	*BaseHandler
	service *invoices.Service
}

// NewInvoiceHandler creates a new invoice handler.
func NewInvoiceHandler(service *invoices.Service) *InvoiceHandler {
	return &InvoiceHandler{
		BaseHandler: NewBaseHandler(),
		service:     service,
	}
}

// List handles GET /api/invoices
func (h *InvoiceHandler) List(c *gin.Context) {
	rows, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromInvoiceList(rows))
}

// Get handles GET /api/invoices/:id
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	detail, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromInvoiceDetail(detail))
}

// Create handles POST /api/invoices
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req dto.InvoiceRequest
	if !h.BindJSON(c, &req) {
		return
	}

	invoice := req.ToEntity()
	if err := h.service.Create(c.Request.Context(), invoice); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, "/api/invoices", invoice.ID, dto.FromInvoice(invoice))
}

// Replace handles PUT /api/invoices/:id
func (h *InvoiceHandler) Replace(c *gin.Context) {
	id, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	var req dto.InvoiceRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.service.Replace(c.Request.Context(), id, req.ToEntity()); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// Delete handles DELETE /api/invoices/:id
func (h *InvoiceHandler) Delete(c *gin.Context) {
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
