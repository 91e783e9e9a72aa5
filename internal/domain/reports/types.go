// Package reports provides the read-only aggregation queries behind the
// charting endpoints. Every report is deterministic given the store contents
// and surfaces an empty result set as a distinct no-data error, never as an
// empty success.
package reports

import (
	"fakturo/internal/core/types"
)

// MonthBucket is a (year, month) group key. Monthly reports are strictly
// ordered by it ascending with no duplicate pairs.
type MonthBucket struct {
	Year  int `db:"year" json:"year"`
	Month int `db:"month" json:"month"`
}

// MonthlyCountRow is a per-month transaction count.
type MonthlyCountRow struct {
	MonthBucket
	Count int `db:"count" json:"count"`
}

// MonthlySumRow is a per-month money sum. The decimal is widened to float64
// only in the response DTO.
type MonthlySumRow struct {
	MonthBucket
	Sum types.Money `db:"sum" json:"sum"`
}

// ProductQuantityRow ranks a product by total quantity sold.
type ProductQuantityRow struct {
	ProductID     int `db:"product_id" json:"productId"`
	TotalQuantity int `db:"total_quantity" json:"totalQuantity"`
}

// ProductIncomeRow ranks a product by total income (sum of quantity*price
// over its invoice items).
type ProductIncomeRow struct {
	ProductID   int         `db:"product_id" json:"productId"`
	TotalIncome types.Money `db:"total_income" json:"totalIncome"`
}

// NamedProductQuantityRow ranks a product by name for per-client top lists.
type NamedProductQuantityRow struct {
	ProductName   string `db:"product_name" json:"productName"`
	TotalQuantity int    `db:"total_quantity" json:"totalQuantity"`
}

// ClientQuantityRow groups a product's sales by purchasing client.
type ClientQuantityRow struct {
	ClientID      int    `db:"client_id" json:"clientId"`
	ClientName    string `db:"client_name" json:"clientName"`
	TotalQuantity int    `db:"total_quantity" json:"totalQuantity"`
}

// ItemPriceRow is one line of the per-invoice price list, ordered price
// descending.
type ItemPriceRow struct {
	InvoiceItemID int         `db:"invoice_item_id" json:"invoiceItemId"`
	ProductName   string      `db:"product_name" json:"productName"`
	Quantity      int         `db:"quantity" json:"quantity"`
	Price         types.Money `db:"price" json:"price"`
}

// CumulativeQuantityRow is one bucket of the running product-availability
// total: Cumulative is the sum of the month counts up to and including this
// bucket.
type CumulativeQuantityRow struct {
	MonthBucket
	Cumulative int `json:"cumulativeQuantity"`
}

// MaxValues holds the catalog-wide maxima used to scale chart axes.
type MaxValues struct {
	MaxPrice    types.Money `db:"max_price" json:"maxPrice"`
	MaxQuantity int         `db:"max_quantity" json:"maxQuantity"`
}

// Fixed top-N caps, matching the charts the frontend renders.
const (
	TopProductsPerClientLimit = 10
	TopSellingProductsLimit   = 8
	TopIncomeProductsLimit    = 10
)
