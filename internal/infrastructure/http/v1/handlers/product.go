package handlers

import (
	"github.com/gin-gonic/gin"

	"fakturo/internal/domain/products"
	"fakturo/internal/infrastructure/http/v1/dto"
)

// ProductHandler handles product CRUD requests.
type ProductHandler struct {
	*BaseHandler
	service *products.Service
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service *products.Service) *ProductHandler {
	return &ProductHandler{
		BaseHandler: NewBaseHandler(),
		service:     service,
	}
}

// List handles GET /api/products
func (h *ProductHandler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromProducts(list))
}

// Get handles GET /api/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	detail, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromProductDetail(detail))
}

// Create handles POST /api/products
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.ProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	product := req.ToEntity()
	if err := h.service.Create(c.Request.Context(), product); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, "/api/products", product.ID, dto.FromProduct(product))
}

// Replace handles PUT /api/products/:id
func (h *ProductHandler) Replace(c *gin.Context) {
	id, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	var req dto.ProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.service.Replace(c.Request.Context(), id, req.ToEntity()); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// IncreaseQuantity handles POST /api/products/:id/increase-quantity
func (h *ProductHandler) IncreaseQuantity(c *gin.Context) {
	id, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	var req dto.IncreaseQuantityRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.service.IncreaseQuantity(c.Request.Context(), id, req.Delta); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// Delete handles DELETE /api/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
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
