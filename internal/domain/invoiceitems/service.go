package invoiceitems

import (
	"context"
	"fmt"

	"fakturo/internal/core/apperror"
)

// Service provides business logic for invoice items.
type Service struct {
	repo Repository
}

// NewService creates a new InvoiceItem service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all invoice items.
func (s *Service) List(ctx context.Context) ([]InvoiceItem, error) {
	return s.repo.List(ctx)
}

// Get returns the flattened single-item view.
func (s *Service) Get(ctx context.Context, id int) (*InvoiceItemDetail, error) {
	return s.repo.GetDetail(ctx, id)
}

// Create validates and inserts a new invoice item.
func (s *Service) Create(ctx context.Context, i *InvoiceItem) error {
	if err := i.Validate(ctx); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, i); err != nil {
		return fmt.Errorf("create invoice item: %w", err)
	}
	return nil
}

// Replace overwrites all fields of the invoice item identified by id.
func (s *Service) Replace(ctx context.Context, id int, i *InvoiceItem) error {
	if i.ID != id {
		return apperror.NewInvalidInput("payload id does not match path id").
			WithDetail("pathId", id).
			WithDetail("bodyId", i.ID)
	}
	if err := i.Validate(ctx); err != nil {
		return err
	}

	err := s.repo.Update(ctx, i)
	if err == nil {
		return nil
	}

	if appErr, ok := apperror.AsAppError(err); ok && appErr.Code == apperror.CodeConcurrentModification {
		exists, exErr := s.repo.Exists(ctx, id)
		if exErr != nil {
			return exErr
		}
		if !exists {
			return apperror.NewNotFound("invoice item", id)
		}
	}
	return err
}

// Delete removes an invoice item; missing rows yield NotFound.
func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
