package sqlite

import (
	"context"
	"database/sql"

	"github.com/pageturnapp/pageturn-server/internal/domain"
	"github.com/pageturnapp/pageturn-server/internal/store"
)

// authorColumns is the ordered list of columns selected in author queries.
// Must match the scan order in scanAuthor.
const authorColumns = `author_id, name, birth_date`

// scanAuthor scans a sql.Row (or sql.Rows via its Scan method) into a domain.Author.
func scanAuthor(scanner interface{ Scan(dest ...any) error }) (*domain.Author, error) {
	var (
		a         domain.Author
		birthDate sql.NullString
	)

	if err := scanner.Scan(&a.ID, &a.Name, &birthDate); err != nil {
		return nil, err
	}
	a.BirthDate = stringOrEmpty(birthDate)
	return &a, nil
}

// CreateAuthor inserts a new author and returns its generated id.
func (s *Store) CreateAuthor(ctx context.Context, a *domain.Author) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO authors (name, birth_date) VALUES (?, ?)`,
		a.Name, nullString(a.BirthDate))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetAuthor retrieves an author by id.
// Returns store.ErrNotFound if the author does not exist.
func (s *Store) GetAuthor(ctx context.Context, id int64) (*domain.Author, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+authorColumns+` FROM authors WHERE author_id = ?`, id)

	a, err := scanAuthor(row)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// ListAuthors returns all authors ordered by id.
func (s *Store) ListAuthors(ctx context.Context) ([]*domain.Author, error) {
	return s.queryAuthors(ctx,
		`SELECT `+authorColumns+` FROM authors ORDER BY author_id`)
}

// SearchAuthors returns authors whose name or birth date contains the given
// text, case-insensitively. Re-queried on every call; nothing is cached.
func (s *Store) SearchAuthors(ctx context.Context, q string) ([]*domain.Author, error) {
	pattern := likePattern(q)
	return s.queryAuthors(ctx,
		`SELECT `+authorColumns+` FROM authors
		WHERE LOWER(name) LIKE ? OR LOWER(COALESCE(birth_date, '')) LIKE ?
		ORDER BY author_id`,
		pattern, pattern)
}

// UpdateAuthor updates an author's fields.
// Returns store.ErrNotFound if the author does not exist.
func (s *Store) UpdateAuthor(ctx context.Context, a *domain.Author) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE authors SET name = ?, birth_date = ? WHERE author_id = ?`,
		a.Name, nullString(a.BirthDate), a.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

// DeleteAuthor deletes an author by id.
// Returns store.ErrNotFound if the author does not exist and
// store.ErrReferenced if any book still references it.
func (s *Store) DeleteAuthor(ctx context.Context, id int64) error {
	var refs int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM books WHERE author_id = ?`, id).Scan(&refs)
	if err != nil {
		return err
	}
	if refs > 0 {
		return store.ErrReferenced.WithMessage("author has books in the catalog")
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM authors WHERE author_id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) queryAuthors(ctx context.Context, query string, args ...any) ([]*domain.Author, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Author
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
