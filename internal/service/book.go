package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pageturnapp/pageturn-server/internal/domain"
	domainerrors "github.com/pageturnapp/pageturn-server/internal/errors"
	"github.com/pageturnapp/pageturn-server/internal/store"
	"github.com/pageturnapp/pageturn-server/internal/store/sqlite"
	"github.com/pageturnapp/pageturn-server/internal/validation"
)

// BookService orchestrates book catalog operations.
type BookService struct {
	store     *sqlite.Store
	validator *validation.Validator
	logger    *slog.Logger
}

// NewBookService creates a new book service.
func NewBookService(store *sqlite.Store, validator *validation.Validator, logger *slog.Logger) *BookService {
	return &BookService{
		store:     store,
		validator: validator,
		logger:    logger,
	}
}

// BookRequest contains the book fields accepted on create and update.
// The author is referenced by name and resolved against the catalog.
type BookRequest struct {
	Title           string  `json:"title" validate:"required,max=300"`
	AuthorName      string  `json:"author_name" validate:"required"`
	Genre           string  `json:"genre,omitempty" validate:"max=100"`
	Price           float64 `json:"price" validate:"gte=0"`
	PublicationDate string  `json:"publication_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// CreateBook adds a new book to the catalog.
func (s *BookService) CreateBook(ctx context.Context, req BookRequest) (*domain.Book, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	authorID, err := s.resolveAuthor(ctx, req.AuthorName)
	if err != nil {
		return nil, err
	}

	book := &domain.Book{
		Title:           req.Title,
		AuthorID:        authorID,
		AuthorName:      req.AuthorName,
		Genre:           req.Genre,
		Price:           domain.Round2(req.Price),
		PublicationDate: req.PublicationDate,
	}
	id, err := s.store.CreateBook(ctx, book)
	if err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}
	book.ID = id

	s.logger.Info("book created", "book_id", id, "title", book.Title)
	return book, nil
}

// GetBook retrieves a single book by ID.
func (s *BookService) GetBook(ctx context.Context, id int64) (*domain.Book, error) {
	return s.store.GetBook(ctx, id)
}

// ListBooks returns all books with their author names.
func (s *BookService) ListBooks(ctx context.Context) ([]*domain.Book, error) {
	return s.store.ListBooks(ctx)
}

// SearchBooks returns books whose title, author, or genre matches the query.
func (s *BookService) SearchBooks(ctx context.Context, query string) ([]*domain.Book, error) {
	if query == "" {
		return s.store.ListBooks(ctx)
	}
	return s.store.SearchBooks(ctx, query)
}

// UpdateBook replaces a book's fields.
func (s *BookService) UpdateBook(ctx context.Context, id int64, req BookRequest) (*domain.Book, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	authorID, err := s.resolveAuthor(ctx, req.AuthorName)
	if err != nil {
		return nil, err
	}

	book := &domain.Book{
		ID:              id,
		Title:           req.Title,
		AuthorID:        authorID,
		AuthorName:      req.AuthorName,
		Genre:           req.Genre,
		Price:           domain.Round2(req.Price),
		PublicationDate: req.PublicationDate,
	}
	if err := s.store.UpdateBook(ctx, book); err != nil {
		return nil, fmt.Errorf("update book: %w", err)
	}

	s.logger.Info("book updated", "book_id", id)
	return book, nil
}

// DeleteBook removes a book. Books that appear on existing orders
// cannot be deleted.
func (s *BookService) DeleteBook(ctx context.Context, id int64) error {
	if err := s.store.DeleteBook(ctx, id); err != nil {
		return fmt.Errorf("delete book: %w", err)
	}

	s.logger.Info("book deleted", "book_id", id)
	return nil
}

// resolveAuthor maps an author name to its catalog ID. An unknown name
// is a validation error, not a lookup failure: the caller typed it.
func (s *BookService) resolveAuthor(ctx context.Context, name string) (int64, error) {
	id, err := s.store.FindAuthorIDByName(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return 0, domainerrors.Validationf("author %q not found", name)
		}
		return 0, fmt.Errorf("resolve author: %w", err)
	}
	return id, nil
}
