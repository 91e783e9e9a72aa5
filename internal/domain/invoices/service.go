package invoices

import (
	"context"
	"fmt"
	"time"

	"fakturo/internal/core/apperror"
)

// Service provides business logic for invoices.
type Service struct {
	repo Repository
}

// NewService creates a new Invoice service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the denormalized invoice list.
func (s *Service) List(ctx context.Context) ([]ListRow, error) {
	return s.repo.List(ctx)
}

// Get returns the denormalized single-invoice view.
func (s *Service) Get(ctx context.Context, id int) (*InvoiceDetail, error) {
	return s.repo.GetDetail(ctx, id)
}

// Create validates and inserts a new invoice. The issue date is stamped
// server-side at creation time.
func (s *Service) Create(ctx context.Context, inv *Invoice) error {
	inv.DateOfIssue = time.Now().UTC()
	if err := inv.Validate(ctx); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, inv); err != nil {
		return fmt.Errorf("create invoice: %w", err)
	}
	return nil
}

// Replace overwrites all fields of the invoice identified by id.
func (s *Service) Replace(ctx context.Context, id int, inv *Invoice) error {
	if inv.ID != id {
		return apperror.NewInvalidInput("payload id does not match path id").
			WithDetail("pathId", id).
			WithDetail("bodyId", inv.ID)
	}
	if err := inv.Validate(ctx); err != nil {
		return err
	}

	err := s.repo.Update(ctx, inv)
	if err == nil {
		return nil
	}

	if appErr, ok := apperror.AsAppError(err); ok && appErr.Code == apperror.CodeConcurrentModification {
		exists, exErr := s.repo.Exists(ctx, id)
		if exErr != nil {
			return exErr
		}
		if !exists {
			return apperror.NewNotFound("invoice", id)
		}
	}
	return err
}

// Delete removes an invoice; missing rows yield NotFound.
func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
