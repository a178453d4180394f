package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/pageturnapp/pageturn-server/internal/domain"
	"github.com/pageturnapp/pageturn-server/internal/service"
)

func (s *Server) registerAuthorRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listAuthors",
		Method:      http.MethodGet,
		Path:        "/api/v1/authors",
		Summary:     "List authors",
		Description: "Returns all authors, optionally filtered by a search query",
		Tags:        []string{"Authors"},
	}, s.handleListAuthors)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createAuthor",
		Method:        http.MethodPost,
		Path:          "/api/v1/authors",
		Summary:       "Create author",
		DefaultStatus: http.StatusCreated,
		Tags:          []string{"Authors"},
	}, s.handleCreateAuthor)

	huma.Register(s.api, huma.Operation{
		OperationID: "getAuthor",
		Method:      http.MethodGet,
		Path:        "/api/v1/authors/{id}",
		Summary:     "Get author",
		Tags:        []string{"Authors"},
	}, s.handleGetAuthor)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateAuthor",
		Method:      http.MethodPut,
		Path:        "/api/v1/authors/{id}",
		Summary:     "Update author",
		Tags:        []string{"Authors"},
	}, s.handleUpdateAuthor)

	huma.Register(s.api, huma.Operation{
		OperationID:   "deleteAuthor",
		Method:        http.MethodDelete,
		Path:          "/api/v1/authors/{id}",
		Summary:       "Delete author",
		Description:   "Deletes an author. Fails if any book references the author.",
		DefaultStatus: http.StatusNoContent,
		Tags:          []string{"Authors"},
	}, s.handleDeleteAuthor)
}

// === Request/response types ===

type AuthorResponse struct {
	ID        int64  `json:"id" doc:"Author ID"`
	Name      string `json:"name" doc:"Author name"`
	BirthDate string `json:"birth_date,omitempty" doc:"Birth date (YYYY-MM-DD)"`
}

type ListAuthorsInput struct {
	Query string `query:"q" doc:"Search by name or birth date"`
}

type ListAuthorsResponse struct {
	Authors []AuthorResponse `json:"authors" doc:"List of authors"`
}

type ListAuthorsOutput struct {
	Body ListAuthorsResponse
}

type AuthorRequestBody struct {
	Name      string `json:"name" doc:"Author name"`
	BirthDate string `json:"birth_date,omitempty" doc:"Birth date (YYYY-MM-DD)"`
}

type CreateAuthorInput struct {
	Body AuthorRequestBody
}

type AuthorOutput struct {
	Body AuthorResponse
}

type GetAuthorInput struct {
	ID int64 `path:"id" doc:"Author ID"`
}

type UpdateAuthorInput struct {
	ID   int64 `path:"id" doc:"Author ID"`
	Body AuthorRequestBody
}

type DeleteAuthorInput struct {
	ID int64 `path:"id" doc:"Author ID"`
}

type DeleteOutput struct{}

// === Handlers ===

func (s *Server) handleListAuthors(ctx context.Context, input *ListAuthorsInput) (*ListAuthorsOutput, error) {
	authors, err := s.services.Author.SearchAuthors(ctx, input.Query)
	if err != nil {
		return nil, err
	}

	resp := make([]AuthorResponse, len(authors))
	for i, a := range authors {
		resp[i] = mapAuthorResponse(a)
	}
	return &ListAuthorsOutput{Body: ListAuthorsResponse{Authors: resp}}, nil
}

func (s *Server) handleCreateAuthor(ctx context.Context, input *CreateAuthorInput) (*AuthorOutput, error) {
	a, err := s.services.Author.CreateAuthor(ctx, service.AuthorRequest{
		Name:      input.Body.Name,
		BirthDate: input.Body.BirthDate,
	})
	if err != nil {
		return nil, err
	}
	return &AuthorOutput{Body: mapAuthorResponse(a)}, nil
}

func (s *Server) handleGetAuthor(ctx context.Context, input *GetAuthorInput) (*AuthorOutput, error) {
	a, err := s.services.Author.GetAuthor(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &AuthorOutput{Body: mapAuthorResponse(a)}, nil
}

func (s *Server) handleUpdateAuthor(ctx context.Context, input *UpdateAuthorInput) (*AuthorOutput, error) {
	a, err := s.services.Author.UpdateAuthor(ctx, input.ID, service.AuthorRequest{
		Name:      input.Body.Name,
		BirthDate: input.Body.BirthDate,
	})
	if err != nil {
		return nil, err
	}
	return &AuthorOutput{Body: mapAuthorResponse(a)}, nil
}

func (s *Server) handleDeleteAuthor(ctx context.Context, input *DeleteAuthorInput) (*DeleteOutput, error) {
	if err := s.services.Author.DeleteAuthor(ctx, input.ID); err != nil {
		return nil, err
	}
	return &DeleteOutput{}, nil
}

func mapAuthorResponse(a *domain.Author) AuthorResponse {
	return AuthorResponse{
		ID:        a.ID,
		Name:      a.Name,
		BirthDate: a.BirthDate,
	}
}
