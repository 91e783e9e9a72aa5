// Package importer loads the seed spreadsheets (Clients.xlsx, Products.xlsx,
// Invoices.xlsx, InvoiceItems.xlsx) into the database. Rows with missing
// required cells are skipped and logged, never aborting the whole file; a
// failure opening or reading a file aborts that importer's run and leaves
// already committed rows in place.
package importer

import (
	"strconv"
	"strings"
	"time"

	"fakturo/internal/core/types"
)

// cell returns the trimmed cell value at index i, tolerating short rows:
// spreadsheet libraries drop trailing empty cells when reading a row.
func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// cellInt parses an integer cell, falling back to def on empty or bad input.
func cellInt(row []string, i int, def int) int {
	v, err := strconv.Atoi(cell(row, i))
	if err != nil {
		return def
	}
	return v
}

// cellMoney parses a decimal cell, falling back to zero on empty or bad input.
func cellMoney(row []string, i int) types.Money {
	m, err := types.NewMoneyFromString(cell(row, i))
	if err != nil {
		return types.Zero()
	}
	return m
}

// dateLayouts covers the date renderings excelize produces depending on the
// cell format of the source sheet.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01-02-06",
	"1/2/06 15:04",
	"1/2/2006",
}

// cellDate parses a date cell, falling back to the zero time on bad input.
func cellDate(row []string, i int) time.Time {
	raw := cell(row, i)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
