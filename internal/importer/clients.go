package importer

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"fakturo/internal/domain/clients"
	"fakturo/pkg/logger"
)

// ClientsImporter loads Clients.xlsx. The sheet has no header row; every row
// must carry name, email and phone number or it is skipped.
type ClientsImporter struct {
	repo clients.Repository
}

// NewClientsImporter creates a new clients importer.
func NewClientsImporter(repo clients.Repository) *ClientsImporter {
	return &ClientsImporter{repo: repo}
}

// Run reads the file at path and bulk-inserts all valid rows.
func (imp *ClientsImporter) Run(ctx context.Context, path string) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	batch := make([]clients.Client, 0, len(rows))
	for i, row := range rows {
		name := cell(row, 0)
		email := cell(row, 1)
		phoneNumber := cell(row, 2)

		if name == "" || email == "" || phoneNumber == "" {
			logger.Warn(ctx, "skipping client row with missing data",
				"row", i+1,
			)
			continue
		}

		batch = append(batch, clients.Client{
			Name:        name,
			Email:       email,
			PhoneNumber: phoneNumber,
		})
	}

	if len(batch) == 0 {
		logger.Info(ctx, "no client rows to import", "file", path)
		return nil
	}

	n, err := imp.repo.CreateMany(ctx, batch)
	if err != nil {
		return fmt.Errorf("insert clients: %w", err)
	}

	logger.Info(ctx, "clients imported", "file", path, "rows", n)
	return nil
}
