package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/pageturnapp/pageturn-server/internal/store"
)

// Name and title lookups used when translating what a user typed into row
// ids at save time, and for populating search-as-you-type candidate lists.
// Absence is always an explicit store.ErrNotFound, never a sentinel id.

// FindAuthorIDByName resolves an exact author name to its id.
func (s *Store) FindAuthorIDByName(ctx context.Context, name string) (int64, error) {
	return s.findID(ctx, `SELECT author_id FROM authors WHERE name = ?`, name)
}

// FindCustomerIDByName resolves an exact customer name to its id.
func (s *Store) FindCustomerIDByName(ctx context.Context, name string) (int64, error) {
	return s.findID(ctx, `SELECT customer_id FROM customers WHERE name = ?`, name)
}

// FindBookIDByTitle resolves an exact book title to its id.
func (s *Store) FindBookIDByTitle(ctx context.Context, title string) (int64, error) {
	return s.findID(ctx, `SELECT book_id FROM books WHERE title = ?`, title)
}

// GetBookPriceByTitle returns the current list price for an exact title.
// Callers freeze the returned price into order lines; it is never re-read.
func (s *Store) GetBookPriceByTitle(ctx context.Context, title string) (float64, error) {
	var price sql.NullFloat64
	err := s.db.QueryRowContext(ctx,
		`SELECT price FROM books WHERE title = ?`, title).Scan(&price)
	if err == sql.ErrNoRows {
		return 0, store.ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return price.Float64, nil
}

// SearchAuthorNames returns author names containing the given text,
// case-insensitively, in alphabetical order. An empty query returns all
// names. Results are re-queried on every call.
func (s *Store) SearchAuthorNames(ctx context.Context, partial string) ([]string, error) {
	return s.searchNames(ctx,
		`SELECT name FROM authors WHERE LOWER(name) LIKE ? ORDER BY name`, partial)
}

// SearchCustomerNames returns customer names containing the given text,
// case-insensitively, in alphabetical order.
func (s *Store) SearchCustomerNames(ctx context.Context, partial string) ([]string, error) {
	return s.searchNames(ctx,
		`SELECT name FROM customers WHERE LOWER(name) LIKE ? ORDER BY name`, partial)
}

// SearchBookTitles returns book titles containing the given text,
// case-insensitively, in alphabetical order.
func (s *Store) SearchBookTitles(ctx context.Context, partial string) ([]string, error) {
	return s.searchNames(ctx,
		`SELECT title FROM books WHERE LOWER(title) LIKE ? ORDER BY title`, partial)
}

func (s *Store) findID(ctx context.Context, query, arg string) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, query, arg).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, store.ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *Store) searchNames(ctx context.Context, query, partial string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, query, likePattern(partial))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

// likePattern builds a case-insensitive contains pattern for LIKE.
func likePattern(q string) string {
	return "%" + strings.ToLower(q) + "%"
}
