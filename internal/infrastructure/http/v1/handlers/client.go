package handlers

import (
	"github.com/gin-gonic/gin"

	"fakturo/internal/domain/clients"
	"fakturo/internal/infrastructure/http/v1/dto"
)

// ClientHandler handles client CRUD requests.
type ClientHandler struct {
	*BaseHandler
	service *clients.Service
}

// NewClientHandler creates a new client handler.
func NewClientHandler(service *clients.Service) *ClientHandler {
	return &ClientHandler{
		BaseHandler: NewBaseHandler(),
		service:     service,
	}
}

// List handles GET /api/clients
func (h *ClientHandler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromClients(list))
}

// Get handles GET /api/clients/:id
func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	detail, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromClientDetail(detail))
}

// Create handles POST /api/clients
func (h *ClientHandler) Create(c *gin.Context) {
	var req dto.ClientRequest
	if !h.BindJSON(c, &req) {
		return
	}

	client := req.ToEntity()
	if err := h.service.Create(c.Request.Context(), client); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, "/api/clients", client.ID, dto.FromClient(client))
}

// Replace handles PUT /api/clients/:id
func (h *ClientHandler) Replace(c *gin.Context) {
	id, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	var req dto.ClientRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.service.Replace(c.Request.Context(), id, req.ToEntity()); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// Delete handles DELETE /api/clients/:id
func (h *ClientHandler) Delete(c *gin.Context) {
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
