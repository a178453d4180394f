package sqlite

import (
	"context"
	"database/sql"

	"github.com/pageturnapp/pageturn-server/internal/domain"
	"github.com/pageturnapp/pageturn-server/internal/store"
)

// bookColumns selects book fields joined with the author name for list views.
// Must match the scan order in scanBook. LEFT JOIN keeps books visible even
// if their author row is gone.
const bookColumns = `b.book_id, b.title, b.author_id, a.name, b.genre, b.price, b.publication_date`

const bookFrom = ` FROM books b LEFT JOIN authors a ON b.author_id = a.author_id`

// scanBook scans a joined book row into a domain.Book.
func scanBook(scanner interface{ Scan(dest ...any) error }) (*domain.Book, error) {
	var (
		b          domain.Book
		authorID   sql.NullInt64
		authorName sql.NullString
		genre      sql.NullString
		price      sql.NullFloat64
		pubDate    sql.NullString
	)

	if err := scanner.Scan(&b.ID, &b.Title, &authorID, &authorName, &genre, &price, &pubDate); err != nil {
		return nil, err
	}
	if authorID.Valid {
		b.AuthorID = authorID.Int64
	}
	b.AuthorName = stringOrEmpty(authorName)
	b.Genre = stringOrEmpty(genre)
	if price.Valid {
		b.Price = price.Float64
	}
	b.PublicationDate = stringOrEmpty(pubDate)
	return &b, nil
}

// CreateBook inserts a new book and returns its generated id.
// The author reference must resolve; a missing author surfaces as a
// foreign-key constraint error from the driver.
func (s *Store) CreateBook(ctx context.Context, b *domain.Book) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO books (title, author_id, genre, price, publication_date)
		VALUES (?, ?, ?, ?, ?)`,
		b.Title, b.AuthorID, nullString(b.Genre), b.Price, nullString(b.PublicationDate))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetBook retrieves a book by id with its author name joined.
// Returns store.ErrNotFound if the book does not exist.
func (s *Store) GetBook(ctx context.Context, id int64) (*domain.Book, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+bookColumns+bookFrom+` WHERE b.book_id = ?`, id)

	b, err := scanBook(row)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// ListBooks returns all books ordered by id, with author names joined.
func (s *Store) ListBooks(ctx context.Context) ([]*domain.Book, error) {
	return s.queryBooks(ctx,
		`SELECT `+bookColumns+bookFrom+` ORDER BY b.book_id`)
}

// SearchBooks returns books whose title, author name, or genre contains the
// given text, case-insensitively.
func (s *Store) SearchBooks(ctx context.Context, q string) ([]*domain.Book, error) {
	pattern := likePattern(q)
	return s.queryBooks(ctx,
		`SELECT `+bookColumns+bookFrom+`
		WHERE LOWER(b.title) LIKE ? OR LOWER(COALESCE(a.name, '')) LIKE ? OR LOWER(COALESCE(b.genre, '')) LIKE ?
		ORDER BY b.book_id`,
		pattern, pattern, pattern)
}

// UpdateBook updates a book's fields.
// Returns store.ErrNotFound if the book does not exist.
func (s *Store) UpdateBook(ctx context.Context, b *domain.Book) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE books SET title = ?, author_id = ?, genre = ?, price = ?, publication_date = ?
		WHERE book_id = ?`,
		b.Title, b.AuthorID, nullString(b.Genre), b.Price, nullString(b.PublicationDate), b.ID)
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

// DeleteBook deletes a book by id.
// Returns store.ErrReferenced if any order item references the book, so
// historical orders stay displayable. Returns store.ErrNotFound if the book
// does not exist.
func (s *Store) DeleteBook(ctx context.Context, id int64) error {
	var refs int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM order_items WHERE book_id = ?`, id).Scan(&refs)
	if err != nil {
		return err
	}
	if refs > 0 {
		return store.ErrReferenced.WithMessage("book appears on existing orders")
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM books WHERE book_id = ?`, id)
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

func (s *Store) queryBooks(ctx context.Context, query string, args ...any) ([]*domain.Book, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Book
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
