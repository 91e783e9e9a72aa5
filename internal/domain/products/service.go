package products

import (
	"context"
	"fmt"

	"fakturo/internal/core/apperror"
)

// Service provides business logic for the Product catalog.
type Service struct {
	repo Repository
}

// NewService creates a new Product service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all products.
func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

// Get returns the denormalized single-product view.
func (s *Service) Get(ctx context.Context, id int) (*ProductDetail, error) {
	return s.repo.GetDetail(ctx, id)
}

// Create validates and inserts a new product.
func (s *Service) Create(ctx context.Context, p *Product) error {
	if err := p.Validate(ctx); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

// Replace overwrites all fields of the product identified by id.
func (s *Service) Replace(ctx context.Context, id int, p *Product) error {
	if p.ID != id {
		return apperror.NewInvalidInput("payload id does not match path id").
			WithDetail("pathId", id).
			WithDetail("bodyId", p.ID)
	}
	if err := p.Validate(ctx); err != nil {
		return err
	}

	err := s.repo.Update(ctx, p)
	if err == nil {
		return nil
	}

	if appErr, ok := apperror.AsAppError(err); ok && appErr.Code == apperror.CodeConcurrentModification {
		exists, exErr := s.repo.Exists(ctx, id)
		if exErr != nil {
			return exErr
		}
		if !exists {
			return apperror.NewNotFound("product", id)
		}
	}
	return err
}

// IncreaseQuantity adds a non-negative delta to the on-hand quantity.
func (s *Service) IncreaseQuantity(ctx context.Context, id int, delta int) error {
	if delta < 0 {
		return apperror.NewInvalidInput("delta must be non-negative").
			WithDetail("delta", delta)
	}
	return s.repo.IncreaseQuantity(ctx, id, delta)
}

// Delete removes a product; missing rows yield NotFound.
func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
