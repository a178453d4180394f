// Package domain defines the bookstore entities and the order composition rules.
package domain

// Author represents a book author.
type Author struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	BirthDate string `json:"birth_date,omitempty"` // ISO YYYY-MM-DD, or empty
}
