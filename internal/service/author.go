// Package service provides the business logic layer for the bookstore:
// catalog management, order composition, reports, and exports.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pageturnapp/pageturn-server/internal/domain"
	"github.com/pageturnapp/pageturn-server/internal/store/sqlite"
	"github.com/pageturnapp/pageturn-server/internal/validation"
)

// AuthorService orchestrates author catalog operations.
type AuthorService struct {
	store     *sqlite.Store
	validator *validation.Validator
	logger    *slog.Logger
}

// NewAuthorService creates a new author service.
func NewAuthorService(store *sqlite.Store, validator *validation.Validator, logger *slog.Logger) *AuthorService {
	return &AuthorService{
		store:     store,
		validator: validator,
		logger:    logger,
	}
}

// AuthorRequest contains the author fields accepted on create and update.
type AuthorRequest struct {
	Name      string `json:"name" validate:"required,max=200"`
	BirthDate string `json:"birth_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// CreateAuthor adds a new author to the catalog.
func (s *AuthorService) CreateAuthor(ctx context.Context, req AuthorRequest) (*domain.Author, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	author := &domain.Author{
		Name:      req.Name,
		BirthDate: req.BirthDate,
	}
	id, err := s.store.CreateAuthor(ctx, author)
	if err != nil {
		return nil, fmt.Errorf("create author: %w", err)
	}
	author.ID = id

	s.logger.Info("author created", "author_id", id, "name", author.Name)
	return author, nil
}

// GetAuthor retrieves a single author by ID.
func (s *AuthorService) GetAuthor(ctx context.Context, id int64) (*domain.Author, error) {
	return s.store.GetAuthor(ctx, id)
}

// ListAuthors returns all authors.
func (s *AuthorService) ListAuthors(ctx context.Context) ([]*domain.Author, error) {
	return s.store.ListAuthors(ctx)
}

// SearchAuthors returns authors whose name or birth date matches the query.
func (s *AuthorService) SearchAuthors(ctx context.Context, query string) ([]*domain.Author, error) {
	if query == "" {
		return s.store.ListAuthors(ctx)
	}
	return s.store.SearchAuthors(ctx, query)
}

// UpdateAuthor replaces an author's fields.
func (s *AuthorService) UpdateAuthor(ctx context.Context, id int64, req AuthorRequest) (*domain.Author, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	author := &domain.Author{
		ID:        id,
		Name:      req.Name,
		BirthDate: req.BirthDate,
	}
	if err := s.store.UpdateAuthor(ctx, author); err != nil {
		return nil, fmt.Errorf("update author: %w", err)
	}

	s.logger.Info("author updated", "author_id", id)
	return author, nil
}

// DeleteAuthor removes an author. Authors with books in the catalog
// cannot be deleted.
func (s *AuthorService) DeleteAuthor(ctx context.Context, id int64) error {
	if err := s.store.DeleteAuthor(ctx, id); err != nil {
		return fmt.Errorf("delete author: %w", err)
	}

	s.logger.Info("author deleted", "author_id", id)
	return nil
}
