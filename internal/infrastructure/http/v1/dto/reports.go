package dto

import (
	"fakturo/internal/domain/reports"
)

// Report responses mirror the chart series the frontend consumes. Monthly rows
// always arrive ordered (year, month) ascending from the repository.

// MonthlyCountResponse is a per-month transaction count.
type MonthlyCountResponse struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Count int `json:"count"`
}

// FromMonthlyCounts maps monthly count rows.
func FromMonthlyCounts(rows []reports.MonthlyCountRow) []MonthlyCountResponse {
	out := make([]MonthlyCountResponse, len(rows))
	for i := range rows {
		out[i] = MonthlyCountResponse{
			Year:  rows[i].Year,
			Month: rows[i].Month,
			Count: rows[i].Count,
		}
	}
	return out
}

// MonthlySumResponse is a per-month money sum.
type MonthlySumResponse struct {
	Year  int     `json:"year"`
	Month int     `json:"month"`
	Sum   float64 `json:"sum"`
}

// FromMonthlySums maps monthly sum rows.
func FromMonthlySums(rows []reports.MonthlySumRow) []MonthlySumResponse {
	out := make([]MonthlySumResponse, len(rows))
	for i := range rows {
		out[i] = MonthlySumResponse{
			Year:  rows[i].Year,
			Month: rows[i].Month,
			Sum:   rows[i].Sum.InexactFloat64(),
		}
	}
	return out
}

// ProductQuantityResponse ranks a product by total quantity sold.
type ProductQuantityResponse struct {
	ProductID     int `json:"productId"`
	TotalQuantity int `json:"totalQuantity"`
}

// FromProductQuantities maps product quantity rows.
func FromProductQuantities(rows []reports.ProductQuantityRow) []ProductQuantityResponse {
	out := make([]ProductQuantityResponse, len(rows))
	for i := range rows {
		out[i] = ProductQuantityResponse{
			ProductID:     rows[i].ProductID,
			TotalQuantity: rows[i].TotalQuantity,
		}
	}
	return out
}

// ProductIncomeResponse ranks a product by total income.
type ProductIncomeResponse struct {
	ProductID   int     `json:"productId"`
	TotalIncome float64 `json:"totalIncome"`
}

// FromProductIncomes maps product income rows.
func FromProductIncomes(rows []reports.ProductIncomeRow) []ProductIncomeResponse {
	out := make([]ProductIncomeResponse, len(rows))
	for i := range rows {
		out[i] = ProductIncomeResponse{
			ProductID:   rows[i].ProductID,
			TotalIncome: rows[i].TotalIncome.InexactFloat64(),
		}
	}
	return out
}

// NamedProductQuantityResponse is one row of a per-client top products list.
type NamedProductQuantityResponse struct {
	ProductName   string `json:"productName"`
	TotalQuantity int    `json:"totalQuantity"`
}

// FromNamedProductQuantities maps named product quantity rows.
func FromNamedProductQuantities(rows []reports.NamedProductQuantityRow) []NamedProductQuantityResponse {
	out := make([]NamedProductQuantityResponse, len(rows))
	for i := range rows {
		out[i] = NamedProductQuantityResponse{
			ProductName:   rows[i].ProductName,
			TotalQuantity: rows[i].TotalQuantity,
		}
	}
	return out
}

// ClientQuantityResponse groups a product's sales by purchasing client.
type ClientQuantityResponse struct {
	ClientID      int    `json:"clientId"`
	ClientName    string `json:"clientName"`
	TotalQuantity int    `json:"totalQuantity"`
}

// FromClientQuantities maps client quantity rows.
func FromClientQuantities(rows []reports.ClientQuantityRow) []ClientQuantityResponse {
	out := make([]ClientQuantityResponse, len(rows))
	for i := range rows {
		out[i] = ClientQuantityResponse{
			ClientID:      rows[i].ClientID,
			ClientName:    rows[i].ClientName,
			TotalQuantity: rows[i].TotalQuantity,
		}
	}
	return out
}

// ItemPriceResponse is one line of the per-invoice price list.
type ItemPriceResponse struct {
	InvoiceItemID int     `json:"invoiceItemId"`
	ProductName   string  `json:"productName"`
	Quantity      int     `json:"quantity"`
	Price         float64 `json:"price"`
}

// FromItemPrices maps item price rows.
func FromItemPrices(rows []reports.ItemPriceRow) []ItemPriceResponse {
	out := make([]ItemPriceResponse, len(rows))
	for i := range rows {
		out[i] = ItemPriceResponse{
			InvoiceItemID: rows[i].InvoiceItemID,
			ProductName:   rows[i].ProductName,
			Quantity:      rows[i].Quantity,
			Price:         rows[i].Price.InexactFloat64(),
		}
	}
	return out
}

// CumulativeQuantityResponse is one bucket of the running availability total.
type CumulativeQuantityResponse struct {
	Year               int `json:"year"`
	Month              int `json:"month"`
	CumulativeQuantity int `json:"cumulativeQuantity"`
}

// FromCumulativeQuantities maps cumulative quantity rows.
func FromCumulativeQuantities(rows []reports.CumulativeQuantityRow) []CumulativeQuantityResponse {
	out := make([]CumulativeQuantityResponse, len(rows))
	for i := range rows {
		out[i] = CumulativeQuantityResponse{
			Year:               rows[i].Year,
			Month:              rows[i].Month,
			CumulativeQuantity: rows[i].Cumulative,
		}
	}
	return out
}

// MaxValuesResponse holds the catalog-wide maxima used to scale chart axes.
type MaxValuesResponse struct {
	MaxPrice    float64 `json:"maxPrice"`
	MaxQuantity int     `json:"maxQuantity"`
}

// FromMaxValues creates response DTO from domain values.
func FromMaxValues(v *reports.MaxValues) *MaxValuesResponse {
	return &MaxValuesResponse{
		MaxPrice:    v.MaxPrice.InexactFloat64(),
		MaxQuantity: v.MaxQuantity,
	}
}
