package sqlite

import (
	"context"

	"github.com/pageturnapp/pageturn-server/internal/domain"
)

// Read-only aggregation queries behind the Reports tab. No state to protect,
// so these run outside any transaction.

// SalesByGenre returns total quantities sold per genre, best first.
func (s *Store) SalesByGenre(ctx context.Context) ([]domain.GenreSales, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT COALESCE(b.genre, ''), SUM(oi.quantity) AS total_quantity
		FROM books b JOIN order_items oi ON b.book_id = oi.book_id
		GROUP BY b.genre
		ORDER BY total_quantity DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.GenreSales
	for rows.Next() {
		var r domain.GenreSales
		if err := rows.Scan(&r.Genre, &r.QuantitySold); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// TopSellingBooks returns the ten best-selling titles with their authors.
func (s *Store) TopSellingBooks(ctx context.Context) ([]domain.BookSales, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT b.title, a.name, SUM(oi.quantity) AS total_quantity
		FROM books b
		JOIN order_items oi ON b.book_id = oi.book_id
		JOIN authors a ON b.author_id = a.author_id
		GROUP BY b.book_id, b.title, a.name
		ORDER BY total_quantity DESC
		LIMIT 10`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.BookSales
	for rows.Next() {
		var r domain.BookSales
		if err := rows.Scan(&r.Title, &r.AuthorName, &r.QuantitySold); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// CustomerSpending returns each customer's order total sum, biggest first.
func (s *Store) CustomerSpending(ctx context.Context) ([]domain.CustomerSpend, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.name, SUM(o.total_amount) AS total_spent
		FROM customers c JOIN orders o ON c.customer_id = o.customer_id
		GROUP BY c.customer_id, c.name
		ORDER BY total_spent DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.CustomerSpend
	for rows.Next() {
		var r domain.CustomerSpend
		if err := rows.Scan(&r.CustomerName, &r.TotalSpent); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
