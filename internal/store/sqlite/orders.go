package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pageturnapp/pageturn-server/internal/domain"
	"github.com/pageturnapp/pageturn-server/internal/store"
)

// orderColumns selects order header fields joined with the customer name.
// Must match the scan order in scanOrder.
const orderColumns = `o.order_id, o.customer_id, c.name, o.order_date, o.total_amount`

const orderFrom = ` FROM orders o JOIN customers c ON o.customer_id = c.customer_id`

// scanOrder scans a joined order header row into a domain.Order.
func scanOrder(scanner interface{ Scan(dest ...any) error }) (*domain.Order, error) {
	var (
		o         domain.Order
		orderDate sql.NullString
		total     sql.NullFloat64
	)

	if err := scanner.Scan(&o.ID, &o.CustomerID, &o.CustomerName, &orderDate, &total); err != nil {
		return nil, err
	}
	o.OrderDate = stringOrEmpty(orderDate)
	if total.Valid {
		o.TotalAmount = total.Float64
	}
	return &o, nil
}

// CreateOrder inserts an order header and its items in one transaction.
// The header is written first to obtain the generated order id; every item
// row then references it with its frozen unit price. On any failure no
// partial order remains.
func (s *Store) CreateOrder(ctx context.Context, o *domain.Order) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer s.rollback(tx)

	res, err := tx.ExecContext(ctx,
		`INSERT INTO orders (customer_id, order_date, total_amount) VALUES (?, ?, ?)`,
		o.CustomerID, o.OrderDate, o.TotalAmount)
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}

	orderID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if err := insertOrderItems(ctx, tx, orderID, o.Items); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return orderID, nil
}

// GetOrder retrieves an order header with its customer name and all of its
// items joined with book titles, in insertion order.
// Returns store.ErrNotFound if the order does not exist.
func (s *Store) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+orderFrom+` WHERE o.order_id = ?`, id)

	o, err := scanOrder(row)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	o.Items, err = s.loadOrderItems(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load order items: %w", err)
	}
	return o, nil
}

// ListOrders returns all order headers with customer names, ordered by id.
func (s *Store) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	return s.queryOrders(ctx,
		`SELECT `+orderColumns+orderFrom+` ORDER BY o.order_id`)
}

// SearchOrders returns order headers whose customer name, date, or total
// matches the given text, case-insensitively.
func (s *Store) SearchOrders(ctx context.Context, q string) ([]*domain.Order, error) {
	pattern := likePattern(q)
	return s.queryOrders(ctx,
		`SELECT `+orderColumns+orderFrom+`
		WHERE LOWER(c.name) LIKE ? OR LOWER(COALESCE(o.order_date, '')) LIKE ?
		OR CAST(o.total_amount AS TEXT) LIKE ?
		ORDER BY o.order_id`,
		pattern, pattern, pattern)
}

// UpdateOrder rewrites an order in one transaction: the header's date and
// total are updated, all existing item rows are deleted, and the given items
// are inserted fresh. Item ids are therefore not stable across edits, which
// is fine because nothing references them. The customer reference is left
// untouched.
// Returns store.ErrNotFound if the order does not exist.
func (s *Store) UpdateOrder(ctx context.Context, o *domain.Order) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer s.rollback(tx)

	res, err := tx.ExecContext(ctx,
		`UPDATE orders SET order_date = ?, total_amount = ? WHERE order_id = ?`,
		o.OrderDate, o.TotalAmount, o.ID)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM order_items WHERE order_id = ?`, o.ID); err != nil {
		return fmt.Errorf("clear order items: %w", err)
	}

	if err := insertOrderItems(ctx, tx, o.ID, o.Items); err != nil {
		return err
	}

	return tx.Commit()
}

// DeleteOrder deletes an order and its items, child rows first. Deleting a
// nonexistent id is a no-op: the returned count is zero and err is nil.
func (s *Store) DeleteOrder(ctx context.Context, id int64) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer s.rollback(tx)

	if _, err := tx.ExecContext(ctx, `DELETE FROM order_items WHERE order_id = ?`, id); err != nil {
		return 0, fmt.Errorf("delete order items: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM orders WHERE order_id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("delete order: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return n, nil
}

// insertOrderItems writes item rows for an order within an open transaction.
func insertOrderItems(ctx context.Context, tx *sql.Tx, orderID int64, items []domain.OrderItem) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO order_items (order_id, book_id, quantity, unit_price) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, item := range items {
		if _, err := stmt.ExecContext(ctx, orderID, item.BookID, item.Quantity, item.UnitPrice); err != nil {
			return fmt.Errorf("insert order item for book %d: %w", item.BookID, err)
		}
	}
	return nil
}

// loadOrderItems returns an order's items joined with book titles, in
// insertion order. LEFT JOIN so items survive the loss of their book row.
func (s *Store) loadOrderItems(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT oi.order_item_id, oi.order_id, oi.book_id, COALESCE(b.title, ''), oi.quantity, oi.unit_price
		FROM order_items oi LEFT JOIN books b ON oi.book_id = b.book_id
		WHERE oi.order_id = ?
		ORDER BY oi.order_item_id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.BookID, &item.BookTitle, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (s *Store) queryOrders(ctx context.Context, query string, args ...any) ([]*domain.Order, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
