package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/pageturnapp/pageturn-server/internal/domain"
	"github.com/pageturnapp/pageturn-server/internal/service"
)

func (s *Server) registerBookRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listBooks",
		Method:      http.MethodGet,
		Path:        "/api/v1/books",
		Summary:     "List books",
		Description: "Returns all books, optionally filtered by title, author, or genre",
		Tags:        []string{"Books"},
	}, s.handleListBooks)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createBook",
		Method:        http.MethodPost,
		Path:          "/api/v1/books",
		Summary:       "Create book",
		DefaultStatus: http.StatusCreated,
		Tags:          []string{"Books"},
	}, s.handleCreateBook)

	huma.Register(s.api, huma.Operation{
		OperationID: "getBook",
		Method:      http.MethodGet,
		Path:        "/api/v1/books/{id}",
		Summary:     "Get book",
		Tags:        []string{"Books"},
	}, s.handleGetBook)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateBook",
		Method:      http.MethodPut,
		Path:        "/api/v1/books/{id}",
		Summary:     "Update book",
		Tags:        []string{"Books"},
	}, s.handleUpdateBook)

	huma.Register(s.api, huma.Operation{
		OperationID:   "deleteBook",
		Method:        http.MethodDelete,
		Path:          "/api/v1/books/{id}",
		Summary:       "Delete book",
		Description:   "Deletes a book. Fails if the book appears on any order.",
		DefaultStatus: http.StatusNoContent,
		Tags:          []string{"Books"},
	}, s.handleDeleteBook)
}

// === Request/response types ===

type BookResponse struct {
	ID              int64   `json:"id" doc:"Book ID"`
	Title           string  `json:"title" doc:"Title"`
	AuthorName      string  `json:"author_name" doc:"Author name"`
	Genre           string  `json:"genre,omitempty" doc:"Genre"`
	Price           float64 `json:"price" doc:"Current catalog price"`
	PublicationDate string  `json:"publication_date,omitempty" doc:"Publication date (YYYY-MM-DD)"`
}

type ListBooksInput struct {
	Query string `query:"q" doc:"Search by title, author, or genre"`
}

type ListBooksResponse struct {
	Books []BookResponse `json:"books" doc:"List of books"`
}

type ListBooksOutput struct {
	Body ListBooksResponse
}

type BookRequestBody struct {
	Title           string  `json:"title" doc:"Title"`
	AuthorName      string  `json:"author_name" doc:"Author name, must exist in the catalog"`
	Genre           string  `json:"genre,omitempty" doc:"Genre"`
	Price           float64 `json:"price" doc:"Catalog price"`
	PublicationDate string  `json:"publication_date,omitempty" doc:"Publication date (YYYY-MM-DD)"`
}

type CreateBookInput struct {
	Body BookRequestBody
}

type BookOutput struct {
	Body BookResponse
}

type GetBookInput struct {
	ID int64 `path:"id" doc:"Book ID"`
}

type UpdateBookInput struct {
	ID   int64 `path:"id" doc:"Book ID"`
	Body BookRequestBody
}

type DeleteBookInput struct {
	ID int64 `path:"id" doc:"Book ID"`
}

// === Handlers ===

func (s *Server) handleListBooks(ctx context.Context, input *ListBooksInput) (*ListBooksOutput, error) {
	books, err := s.services.Book.SearchBooks(ctx, input.Query)
	if err != nil {
		return nil, err
	}

	resp := make([]BookResponse, len(books))
	for i, b := range books {
		resp[i] = mapBookResponse(b)
	}
	return &ListBooksOutput{Body: ListBooksResponse{Books: resp}}, nil
}

func (s *Server) handleCreateBook(ctx context.Context, input *CreateBookInput) (*BookOutput, error) {
	b, err := s.services.Book.CreateBook(ctx, bookRequestFromBody(input.Body))
	if err != nil {
		return nil, err
	}
	return &BookOutput{Body: mapBookResponse(b)}, nil
}

func (s *Server) handleGetBook(ctx context.Context, input *GetBookInput) (*BookOutput, error) {
	b, err := s.services.Book.GetBook(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &BookOutput{Body: mapBookResponse(b)}, nil
}

func (s *Server) handleUpdateBook(ctx context.Context, input *UpdateBookInput) (*BookOutput, error) {
	b, err := s.services.Book.UpdateBook(ctx, input.ID, bookRequestFromBody(input.Body))
	if err != nil {
		return nil, err
	}
	return &BookOutput{Body: mapBookResponse(b)}, nil
}

func (s *Server) handleDeleteBook(ctx context.Context, input *DeleteBookInput) (*DeleteOutput, error) {
	if err := s.services.Book.DeleteBook(ctx, input.ID); err != nil {
		return nil, err
	}
	return &DeleteOutput{}, nil
}

func bookRequestFromBody(b BookRequestBody) service.BookRequest {
	return service.BookRequest{
		Title:           b.Title,
		AuthorName:      b.AuthorName,
		Genre:           b.Genre,
		Price:           b.Price,
		PublicationDate: b.PublicationDate,
	}
}

func mapBookResponse(b *domain.Book) BookResponse {
	return BookResponse{
		ID:              b.ID,
		Title:           b.Title,
		AuthorName:      b.AuthorName,
		Genre:           b.Genre,
		Price:           b.Price,
		PublicationDate: b.PublicationDate,
	}
}
