package domain

import (
	"errors"
	"fmt"
	"math"
)

// Draft editor errors. Services translate these into coded API errors.
var (
	ErrQuantityNotPositive = errors.New("quantity must be positive")
	ErrNoLineSelected      = errors.New("no line item at that position")
)

// Order is the persisted order header.
type Order struct {
	ID           int64       `json:"id"`
	CustomerID   int64       `json:"customer_id"`
	CustomerName string      `json:"customer_name,omitempty"` // joined for list and detail views
	OrderDate    string      `json:"order_date"`
	TotalAmount  float64     `json:"total_amount"`
	Items        []OrderItem `json:"items,omitempty"`
}

// OrderItem is a persisted order line. UnitPrice is snapshotted from the
// book's price when the line was added; later book price changes do not
// touch existing orders.
type OrderItem struct {
	ID        int64   `json:"id"`
	OrderID   int64   `json:"order_id"`
	BookID    int64   `json:"book_id"`
	BookTitle string  `json:"book_title,omitempty"` // joined for detail views
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Subtotal returns quantity times the frozen unit price, rounded to cents.
func (i OrderItem) Subtotal() float64 {
	return Round2(float64(i.Quantity) * i.UnitPrice)
}

// OrderLine is one line of an order being composed. It carries the book
// title rather than an id because titles are what the caller selects;
// resolution to a book id happens at save time.
type OrderLine struct {
	BookTitle string  `json:"book_title"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Subtotal returns quantity times unit price, rounded to cents.
func (l OrderLine) Subtotal() float64 {
	return Round2(float64(l.Quantity) * l.UnitPrice)
}

// OrderDraft is the in-memory line-item editor used while an order is being
// composed or edited. Nothing is persisted until the draft is saved through
// the order service. The total is never stored on the draft; it is recomputed
// from the lines on every call so it cannot drift from the line data.
type OrderDraft struct {
	lines []OrderLine
}

// NewOrderDraft creates an empty draft.
func NewOrderDraft() *OrderDraft {
	return &OrderDraft{}
}

// DraftFromLines creates a draft pre-populated with existing lines,
// used when editing a saved order.
func DraftFromLines(lines []OrderLine) (*OrderDraft, error) {
	d := NewOrderDraft()
	for _, l := range lines {
		if err := d.AddLine(l.BookTitle, l.Quantity, l.UnitPrice); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// AddLine appends a line with the unit price frozen at the moment of
// addition. Quantity must be positive; the upper bound of 100 is enforced
// at the request boundary, not here.
func (d *OrderDraft) AddLine(bookTitle string, quantity int, unitPrice float64) error {
	if quantity <= 0 {
		return fmt.Errorf("add %q: %w", bookTitle, ErrQuantityNotPositive)
	}
	d.lines = append(d.lines, OrderLine{
		BookTitle: bookTitle,
		Quantity:  quantity,
		UnitPrice: unitPrice,
	})
	return nil
}

// RemoveLine removes the line at the given position.
func (d *OrderDraft) RemoveLine(index int) error {
	if index < 0 || index >= len(d.lines) {
		return ErrNoLineSelected
	}
	d.lines = append(d.lines[:index], d.lines[index+1:]...)
	return nil
}

// SetQuantity changes a line's quantity. The subtotal follows automatically
// since it is derived, not stored.
func (d *OrderDraft) SetQuantity(index, quantity int) error {
	if index < 0 || index >= len(d.lines) {
		return ErrNoLineSelected
	}
	if quantity <= 0 {
		return ErrQuantityNotPositive
	}
	d.lines[index].Quantity = quantity
	return nil
}

// Len returns the number of lines in the draft.
func (d *OrderDraft) Len() int {
	return len(d.lines)
}

// Lines returns a copy of the current lines in order.
func (d *OrderDraft) Lines() []OrderLine {
	out := make([]OrderLine, len(d.lines))
	copy(out, d.lines)
	return out
}

// Total sums the line subtotals, recomputed on demand.
func (d *OrderDraft) Total() float64 {
	var total float64
	for _, l := range d.lines {
		total += l.Subtotal()
	}
	return Round2(total)
}

// LinesTotal sums subtotals for an arbitrary line slice. Used by the order
// service so the persisted total always equals the sum of its lines.
func LinesTotal(lines []OrderLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.Subtotal()
	}
	return Round2(total)
}

// Round2 rounds a monetary amount to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
