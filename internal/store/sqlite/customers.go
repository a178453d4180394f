package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pageturnapp/pageturn-server/internal/domain"
	"github.com/pageturnapp/pageturn-server/internal/store"
)

// customerColumns is the ordered list of columns selected in customer queries.
// Must match the scan order in scanCustomer.
const customerColumns = `customer_id, name, email, phone`

// scanCustomer scans a customer row into a domain.Customer.
func scanCustomer(scanner interface{ Scan(dest ...any) error }) (*domain.Customer, error) {
	var (
		c     domain.Customer
		email sql.NullString
		phone sql.NullString
	)

	if err := scanner.Scan(&c.ID, &c.Name, &email, &phone); err != nil {
		return nil, err
	}
	c.Email = stringOrEmpty(email)
	c.Phone = stringOrEmpty(phone)
	return &c, nil
}

// CreateCustomer inserts a new customer and returns its generated id.
func (s *Store) CreateCustomer(ctx context.Context, c *domain.Customer) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO customers (name, email, phone) VALUES (?, ?, ?)`,
		c.Name, nullString(c.Email), nullString(c.Phone))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetCustomer retrieves a customer by id.
// Returns store.ErrNotFound if the customer does not exist.
func (s *Store) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE customer_id = ?`, id)

	c, err := scanCustomer(row)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListCustomers returns all customers ordered by id.
func (s *Store) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	return s.queryCustomers(ctx,
		`SELECT `+customerColumns+` FROM customers ORDER BY customer_id`)
}

// SearchCustomers returns customers whose name, email, or phone contains the
// given text, case-insensitively.
func (s *Store) SearchCustomers(ctx context.Context, q string) ([]*domain.Customer, error) {
	pattern := likePattern(q)
	return s.queryCustomers(ctx,
		`SELECT `+customerColumns+` FROM customers
		WHERE LOWER(name) LIKE ? OR LOWER(COALESCE(email, '')) LIKE ? OR LOWER(COALESCE(phone, '')) LIKE ?
		ORDER BY customer_id`,
		pattern, pattern, pattern)
}

// UpdateCustomer updates a customer's fields.
// Returns store.ErrNotFound if the customer does not exist.
func (s *Store) UpdateCustomer(ctx context.Context, c *domain.Customer) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE customers SET name = ?, email = ?, phone = ? WHERE customer_id = ?`,
		c.Name, nullString(c.Email), nullString(c.Phone), c.ID)
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

// DeleteCustomer deletes a customer and cascades to the customer's orders
// and their line items, all in one transaction. The cascade is performed
// explicitly, child-before-parent, rather than relying on the storage engine.
// Returns store.ErrNotFound if the customer does not exist; in that case
// nothing is deleted.
func (s *Store) DeleteCustomer(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer s.rollback(tx)

	_, err = tx.ExecContext(ctx,
		`DELETE FROM order_items
		WHERE order_id IN (SELECT order_id FROM orders WHERE customer_id = ?)`, id)
	if err != nil {
		return fmt.Errorf("delete customer order items: %w", err)
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM orders WHERE customer_id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete customer orders: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM customers WHERE customer_id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		// Rolls back via the deferred rollback, leaving orders untouched.
		return store.ErrNotFound
	}

	return tx.Commit()
}

func (s *Store) queryCustomers(ctx context.Context, query string, args ...any) ([]*domain.Customer, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
