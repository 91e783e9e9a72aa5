package importer

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/xuri/excelize/v2"

	"fakturo/internal/domain/invoiceitems"
	"fakturo/internal/domain/invoices"
	"fakturo/internal/domain/products"
	"fakturo/pkg/logger"
)

// InvoiceStore is the slice of invoice persistence the importer needs:
// explicit-id inserts plus a sequence resync once all ids are placed.
type InvoiceStore interface {
	CreateWithItems(ctx context.Context, inv *invoices.Invoice, items []invoiceitems.InvoiceItem) error
	SyncIDSequence(ctx context.Context) error
}

// InvoicesImporter loads Invoices.xlsx together with InvoiceItems.xlsx.
//
// Items are grouped by their invoice id column; invoices get sequential ids
// starting at 1 in file order, so the nth invoice row owns the item group
// keyed n. Each item's price is snapshotted from the current product price.
// The issue date is drawn uniformly between the latest AvailableFrom of the
// invoice's products and 2024-12-31, and the invoice totals are recomputed
// from the items rather than read from the file.
type InvoicesImporter struct {
	store    InvoiceStore
	products products.Repository
}

// NewInvoicesImporter creates a new invoices importer.
func NewInvoicesImporter(store InvoiceStore, productRepo products.Repository) *InvoicesImporter {
	return &InvoicesImporter{store: store, products: productRepo}
}

// Run reads both files and inserts each invoice with its items in one
// transaction. A failed invoice is logged and skipped; the rest of the file
// still loads.
func (imp *InvoicesImporter) Run(ctx context.Context, invoicesPath, itemsPath string) error {
	catalog, err := imp.loadProducts(ctx)
	if err != nil {
		return err
	}

	grouped, err := imp.loadItems(ctx, itemsPath, catalog)
	if err != nil {
		return err
	}

	f, err := excelize.OpenFile(invoicesPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", invoicesPath, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return fmt.Errorf("read %s: %w", invoicesPath, err)
	}

	imported := 0
	nextID := 1
	for i, row := range rows {
		if i == 0 {
			continue // header
		}

		clientID := cellInt(row, 0, 0)
		discount := cellMoney(row, 1)

		if clientID == 0 {
			logger.Warn(ctx, "skipping invoice row with missing client id",
				"row", i+1,
			)
			continue
		}

		items := grouped[nextID]
		if len(items) == 0 {
			logger.Warn(ctx, "skipping invoice with no items",
				"row", i+1,
				"invoiceId", nextID,
			)
			nextID++
			continue
		}

		latest := time.Time{}
		for _, item := range items {
			if af := catalog[item.ProductID].AvailableFrom; af.After(latest) {
				latest = af
			}
		}

		inv := &invoices.Invoice{
			ID:          nextID,
			ClientID:    clientID,
			DateOfIssue: randomDate(latest, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)),
			Discount:    discount,
		}
		inv.ComputeTotals(items)

		for j := range items {
			items[j].InvoiceID = nextID
		}

		if err := imp.store.CreateWithItems(ctx, inv, items); err != nil {
			logger.Error(ctx, "failed to import invoice",
				"invoiceId", nextID,
				"error", err,
			)
			nextID++
			continue
		}

		imported++
		nextID++
	}

	// Explicit ids bypass the sequence; realign it so API creates keep working.
	if err := imp.store.SyncIDSequence(ctx); err != nil {
		return fmt.Errorf("sync invoice id sequence: %w", err)
	}

	logger.Info(ctx, "invoices imported", "file", invoicesPath, "rows", imported)
	return nil
}

// loadProducts indexes the product catalog by id for price snapshots and
// availability dates.
func (imp *InvoicesImporter) loadProducts(ctx context.Context) (map[int]products.Product, error) {
	list, err := imp.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	catalog := make(map[int]products.Product, len(list))
	for _, p := range list {
		catalog[p.ID] = p
	}
	return catalog, nil
}

// loadItems reads InvoiceItems.xlsx and groups the rows by invoice id.
func (imp *InvoicesImporter) loadItems(ctx context.Context, path string, catalog map[int]products.Product) (map[int][]invoiceitems.InvoiceItem, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	grouped := make(map[int][]invoiceitems.InvoiceItem)
	for i, row := range rows {
		if i == 0 {
			continue // header
		}

		productID := cellInt(row, 0, 0)
		quantity := cellInt(row, 1, 1)
		invoiceID := cellInt(row, 2, 0)

		if productID == 0 || invoiceID == 0 {
			logger.Warn(ctx, "skipping invoice item row with missing ids",
				"row", i+1,
			)
			continue
		}

		product, ok := catalog[productID]
		if !ok {
			logger.Warn(ctx, "skipping invoice item for unknown product",
				"row", i+1,
				"productId", productID,
			)
			continue
		}

		grouped[invoiceID] = append(grouped[invoiceID], invoiceitems.InvoiceItem{
			ProductID: productID,
			Quantity:  quantity,
			Price:     product.Price,
		})
	}

	return grouped, nil
}

// randomDate draws a date uniformly in [start, end). Falls back to start when
// the window is empty.
func randomDate(start, end time.Time) time.Time {
	days := int(end.Sub(start).Hours() / 24)
	if days <= 0 {
		return start
	}
	return start.AddDate(0, 0, rand.Intn(days))
}
