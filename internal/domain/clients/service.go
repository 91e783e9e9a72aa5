package clients

import (
	"context"
	"fmt"

	"fakturo/internal/core/apperror"
)

// Service provides business logic for the Client catalog.
type Service struct {
	repo Repository
}

// NewService creates a new Client service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all clients.
func (s *Service) List(ctx context.Context) ([]Client, error) {
	return s.repo.List(ctx)
}

// Get returns the denormalized single-client view.
func (s *Service) Get(ctx context.Context, id int) (*ClientDetail, error) {
	return s.repo.GetDetail(ctx, id)
}

// Create validates and inserts a new client.
func (s *Service) Create(ctx context.Context, c *Client) error {
	if err := c.Validate(ctx); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	return nil
}

// Replace overwrites all fields of the client identified by id.
// The payload id must match; the row must still exist at write time.
func (s *Service) Replace(ctx context.Context, id int, c *Client) error {
	if c.ID != id {
		return apperror.NewInvalidInput("payload id does not match path id").
			WithDetail("pathId", id).
			WithDetail("bodyId", c.ID)
	}
	if err := c.Validate(ctx); err != nil {
		return err
	}

	err := s.repo.Update(ctx, c)
	if err == nil {
		return nil
	}

	// Differentiate "row vanished" from a genuine write conflict.
	if appErr, ok := apperror.AsAppError(err); ok && appErr.Code == apperror.CodeConcurrentModification {
		exists, exErr := s.repo.Exists(ctx, id)
		if exErr != nil {
			return exErr
		}
		if !exists {
			return apperror.NewNotFound("client", id)
		}
	}
	return err
}

// Delete removes a client; missing rows yield NotFound.
func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
