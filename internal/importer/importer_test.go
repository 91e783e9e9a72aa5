package importer

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"fakturo/internal/core/types"
	"fakturo/internal/domain/clients"
	"fakturo/internal/domain/invoiceitems"
	"fakturo/internal/domain/invoices"
	"fakturo/internal/domain/products"
)

// writeSheet writes rows into a fresh workbook at dir/name and returns the path.
func writeSheet(t *testing.T, dir, name string, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, val := range row {
			cellRef, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cellRef, val))
		}
	}

	path := filepath.Join(dir, name)
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestCellHelpers(t *testing.T) {
	row := []string{" Widget ", "12", "9.99", "2023-05-01"}

	assert.Equal(t, "Widget", cell(row, 0))
	assert.Equal(t, "", cell(row, 9), "short rows read as empty")
	assert.Equal(t, 12, cellInt(row, 1, 0))
	assert.Equal(t, 7, cellInt(row, 9, 7))
	assert.True(t, cellMoney(row, 2).Equal(types.MustMoney("9.99")))
	assert.True(t, cellMoney(row, 9).IsZero())
	assert.Equal(t, 2023, cellDate(row, 3).Year())
	assert.True(t, cellDate(row, 0).IsZero())
}

// --- Clients importer ---

type recordingClientRepo struct {
	clients.Repository
	inserted []clients.Client
}

func (r *recordingClientRepo) CreateMany(ctx context.Context, cs []clients.Client) (int64, error) {
	r.inserted = append(r.inserted, cs...)
	return int64(len(cs)), nil
}

func TestClientsImporterSkipsIncompleteRows(t *testing.T) {
	dir := t.TempDir()
	path := writeSheet(t, dir, "Clients.xlsx", [][]any{
		{"Acme", "acme@example.com", "555-0101"},
		{"NoEmail", "", "555-0102"},
		{"", "missing@example.com", "555-0103"},
		{"Globex", "globex@example.com", "555-0104"},
	})

	repo := &recordingClientRepo{}
	require.NoError(t, NewClientsImporter(repo).Run(context.Background(), path))

	require.Len(t, repo.inserted, 2)
	assert.Equal(t, "Acme", repo.inserted[0].Name)
	assert.Equal(t, "Globex", repo.inserted[1].Name)
}

func TestClientsImporterMissingFile(t *testing.T) {
	repo := &recordingClientRepo{}
	err := NewClientsImporter(repo).Run(context.Background(), filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.Error(t, err)
	assert.Empty(t, repo.inserted)
}

// --- Products importer ---

type recordingProductRepo struct {
	products.Repository
	list     []products.Product
	inserted []products.Product
}

func (r *recordingProductRepo) List(ctx context.Context) ([]products.Product, error) {
	return r.list, nil
}

func (r *recordingProductRepo) CreateMany(ctx context.Context, ps []products.Product) (int64, error) {
	r.inserted = append(r.inserted, ps...)
	return int64(len(ps)), nil
}

func TestProductsImporterSkipsHeaderAndNamelessRows(t *testing.T) {
	dir := t.TempDir()
	path := writeSheet(t, dir, "Products.xlsx", [][]any{
		{"Name", "Quantity", "Price", "AvailableFrom", "Description", "ImageURL"},
		{"Widget", 5, "19.99", "2023-05-01", "A widget", "http://img/1"},
		{"", 2, "5.00", "2023-06-01", "nameless", ""},
		{"Gadget", "not-a-number", "bad-price", "bad-date", "", ""},
	})

	repo := &recordingProductRepo{}
	require.NoError(t, NewProductsImporter(repo).Run(context.Background(), path))

	require.Len(t, repo.inserted, 2)

	widget := repo.inserted[0]
	assert.Equal(t, "Widget", widget.Name)
	assert.Equal(t, 5, widget.Quantity)
	assert.True(t, widget.Price.Equal(types.MustMoney("19.99")))
	assert.Equal(t, 2023, widget.AvailableFrom.Year())

	// Unparsable numeric cells fall back to zero values.
	gadget := repo.inserted[1]
	assert.Equal(t, "Gadget", gadget.Name)
	assert.Equal(t, 0, gadget.Quantity)
	assert.True(t, gadget.Price.IsZero())
	assert.True(t, gadget.AvailableFrom.IsZero())
}

// --- Invoices importer ---

type recordingInvoiceStore struct {
	invoices []invoices.Invoice
	items    [][]invoiceitems.InvoiceItem
	synced   bool
}

func (r *recordingInvoiceStore) CreateWithItems(ctx context.Context, inv *invoices.Invoice, items []invoiceitems.InvoiceItem) error {
	r.invoices = append(r.invoices, *inv)
	r.items = append(r.items, items)
	return nil
}

func (r *recordingInvoiceStore) SyncIDSequence(ctx context.Context) error {
	r.synced = true
	return nil
}

func TestInvoicesImporter(t *testing.T) {
	dir := t.TempDir()

	itemsPath := writeSheet(t, dir, "InvoiceItems.xlsx", [][]any{
		{"ProductId", "Quantity", "InvoiceId"},
		{1, 2, 1},
		{2, 1, 1},
		{1, 3, 2},
		{99, 1, 2}, // unknown product, skipped
		{"", 1, 2}, // missing product id, skipped
	})
	invoicesPath := writeSheet(t, dir, "Invoices.xlsx", [][]any{
		{"ClientId", "Discount"},
		{7, "0.1"},
		{8, "0"},
	})

	productRepo := &recordingProductRepo{list: []products.Product{
		{ID: 1, Name: "Widget", Price: types.MustMoney("10.00"),
			AvailableFrom: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Name: "Gadget", Price: types.MustMoney("4.00"),
			AvailableFrom: time.Date(2023, 8, 1, 0, 0, 0, 0, time.UTC)},
	}}
	store := &recordingInvoiceStore{}

	imp := NewInvoicesImporter(store, productRepo)
	require.NoError(t, imp.Run(context.Background(), invoicesPath, itemsPath))

	require.Len(t, store.invoices, 2)
	assert.True(t, store.synced)

	first := store.invoices[0]
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 7, first.ClientID)
	// price = 2*10.00 + 1*4.00 = 24.00; total = round(24 - 2.4, 2) = 21.60
	assert.True(t, first.Price.Equal(types.MustMoney("24.00")), "price %s", first.Price)
	assert.True(t, first.TotalAmount.Equal(types.MustMoney("21.60")), "total %s", first.TotalAmount)
	assert.Equal(t, 3, first.TotalQuantity)
	assert.Equal(t, 2, first.NumberOfProducts)

	// Issue date falls inside [latest availableFrom, 2024-12-31].
	latest := time.Date(2023, 8, 1, 0, 0, 0, 0, time.UTC)
	assert.False(t, first.DateOfIssue.Before(latest))
	assert.False(t, first.DateOfIssue.After(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)))

	// Items carry the assigned invoice id and the product price snapshot.
	require.Len(t, store.items[0], 2)
	assert.Equal(t, 1, store.items[0][0].InvoiceID)
	assert.True(t, store.items[0][0].Price.Equal(types.MustMoney("10.00")))

	second := store.invoices[1]
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, 8, second.ClientID)
	require.Len(t, store.items[1], 1)
	assert.Equal(t, 3, store.items[1][0].Quantity)
}

func TestInvoicesImporterSkipsInvoiceWithoutItems(t *testing.T) {
	dir := t.TempDir()

	itemsPath := writeSheet(t, dir, "InvoiceItems.xlsx", [][]any{
		{"ProductId", "Quantity", "InvoiceId"},
		{1, 2, 2}, // only the second invoice has items
	})
	invoicesPath := writeSheet(t, dir, "Invoices.xlsx", [][]any{
		{"ClientId", "Discount"},
		{7, "0"},
		{8, "0"},
	})

	productRepo := &recordingProductRepo{list: []products.Product{
		{ID: 1, Name: "Widget", Price: types.MustMoney("10.00"),
			AvailableFrom: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)},
	}}
	store := &recordingInvoiceStore{}

	require.NoError(t, NewInvoicesImporter(store, productRepo).
		Run(context.Background(), invoicesPath, itemsPath))

	// First invoice has no item group and is skipped; the counter still
	// advances so the second row keeps id 2.
	require.Len(t, store.invoices, 1)
	assert.Equal(t, 2, store.invoices[0].ID)
	assert.Equal(t, 8, store.invoices[0].ClientID)
}
