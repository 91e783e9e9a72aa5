package handlers

import (
	"github.com/gin-gonic/gin"

	"fakturo/internal/domain/reports"
	"fakturo/internal/infrastructure/http/v1/dto"
)

// ReportsHandler handles the report endpoints nested under each resource
// family. Every report returns 404 with code NO_DATA when its result set is
// empty; an empty 200 never happens.
type ReportsHandler struct {
	*BaseHandler
	service *reports.Service
}

// NewReportsHandler creates a new reports handler.
func NewReportsHandler(service *reports.Service) *ReportsHandler {
	return &ReportsHandler{
		BaseHandler: NewBaseHandler(),
		service:     service,
	}
}

// --- Client reports ---

// ClientTransactionsOverTime handles GET /api/clients/client-transactions-over-time/:id
func (h *ReportsHandler) ClientTransactionsOverTime(c *gin.Context) {
	id, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	rows, err := h.service.ClientTransactionsOverTime(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromMonthlyCounts(rows))
}

// ClientMoneySpentOverTime handles GET /api/clients/client-money-spent-over-time/:id
func (h *ReportsHandler) ClientMoneySpentOverTime(c *gin.Context) {
	id, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	rows, err := h.service.ClientMoneySpentOverTime(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromMonthlySums(rows))
}

// TopProductsByClient handles GET /api/clients/top-products/:id
func (h *ReportsHandler) TopProductsByClient(c *gin.Context) {
	id, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	rows, err := h.service.TopProductsByClient(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromNamedProductQuantities(rows))
}

// --- Product reports ---

// MaxProductValues handles GET /api/products/max-values
func (h *ReportsHandler) MaxProductValues(c *gin.Context) {
	vals, err := h.service.MaxProductValues(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromMaxValues(vals))
}

// ProductQuantityOverTime handles GET /api/products/quantity-over-time
func (h *ReportsHandler) ProductQuantityOverTime(c *gin.Context) {
	rows, err := h.service.ProductQuantityOverTime(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromCumulativeQuantities(rows))
}

// ProductTransactionsOverTime handles GET /api/products/product-transactions-over-time/:id
func (h *ReportsHandler) ProductTransactionsOverTime(c *gin.Context) {
	id, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	rows, err := h.service.ProductTransactionsOverTime(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromMonthlyCounts(rows))
}

// ProductProfitOverTime handles GET /api/products/product-profit-over-time/:id
func (h *ReportsHandler) ProductProfitOverTime(c *gin.Context) {
	id, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	rows, err := h.service.ProductProfitOverTime(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromMonthlySums(rows))
}

// ProductPurchasesByClient handles GET /api/products/purchases-by-client/:id
func (h *ReportsHandler) ProductPurchasesByClient(c *gin.Context) {
	id, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	rows, err := h.service.ProductPurchasesByClient(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromClientQuantities(rows))
}

// --- Invoice reports ---

// InvoicesOverTime handles GET /api/invoices/cumulative-invoices-over-time
func (h *ReportsHandler) InvoicesOverTime(c *gin.Context) {
	rows, err := h.service.InvoicesOverTime(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromMonthlyCounts(rows))
}

// TotalProfitOverTime handles GET /api/invoices/total-profit-over-time
func (h *ReportsHandler) TotalProfitOverTime(c *gin.Context) {
	rows, err := h.service.TotalProfitOverTime(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromMonthlySums(rows))
}

// --- Invoice item reports ---

// TopSellingProducts handles GET /api/invoiceitems/top-selling-products
func (h *ReportsHandler) TopSellingProducts(c *gin.Context) {
	rows, err := h.service.TopSellingProducts(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromProductQuantities(rows))
}

// TopIncomeProducts handles GET /api/invoiceitems/top-income-products
func (h *ReportsHandler) TopIncomeProducts(c *gin.Context) {
	rows, err := h.service.TopIncomeProducts(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromProductIncomes(rows))
}

// ItemPricesForInvoice handles GET /api/invoiceitems/item-prices/:id
func (h *ReportsHandler) ItemPricesForInvoice(c *gin.Context) {
	id, ok := h.ParseIDParam(c)
	if !ok {
		return
	}

	rows, err := h.service.ItemPricesForInvoice(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromItemPrices(rows))
}
