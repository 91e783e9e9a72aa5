package importer

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"fakturo/internal/domain/products"
	"fakturo/pkg/logger"
)

// ProductsImporter loads Products.xlsx. The first row is a header; only the
// name cell is required, the numeric cells default to zero when unparsable.
type ProductsImporter struct {
	repo products.Repository
}

// NewProductsImporter creates a new products importer.
func NewProductsImporter(repo products.Repository) *ProductsImporter {
	return &ProductsImporter{repo: repo}
}

// Run reads the file at path and bulk-inserts all valid rows.
func (imp *ProductsImporter) Run(ctx context.Context, path string) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	batch := make([]products.Product, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue // header
		}

		name := cell(row, 0)
		if name == "" {
			logger.Warn(ctx, "skipping product row with missing name",
				"row", i+1,
			)
			continue
		}

		batch = append(batch, products.Product{
			Name:          name,
			Quantity:      cellInt(row, 1, 0),
			Price:         cellMoney(row, 2),
			AvailableFrom: cellDate(row, 3),
			Description:   cell(row, 4),
			ImageURL:      cell(row, 5),
		})
	}

	if len(batch) == 0 {
		logger.Info(ctx, "no product rows to import", "file", path)
		return nil
	}

	n, err := imp.repo.CreateMany(ctx, batch)
	if err != nil {
		return fmt.Errorf("insert products: %w", err)
	}

	logger.Info(ctx, "products imported", "file", path, "rows", n)
	return nil
}
