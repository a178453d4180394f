package domain

import (
	"errors"
	"math/rand"
	"testing"
)

func TestOrderDraft_AddLine(t *testing.T) {
	d := NewOrderDraft()

	if err := d.AddLine("Dune", 2, 15.00); err != nil {
		t.Fatalf("AddLine: %v", err)
	}
	if d.Len() != 1 {
		t.Fatalf("Len: got %d, want 1", d.Len())
	}
	if got := d.Total(); got != 30.00 {
		t.Errorf("Total: got %v, want 30.00", got)
	}

	lines := d.Lines()
	if lines[0].BookTitle != "Dune" {
		t.Errorf("BookTitle: got %q, want %q", lines[0].BookTitle, "Dune")
	}
	if lines[0].Subtotal() != 30.00 {
		t.Errorf("Subtotal: got %v, want 30.00", lines[0].Subtotal())
	}
}

func TestOrderDraft_AddLine_RejectsNonPositiveQuantity(t *testing.T) {
	d := NewOrderDraft()

	for _, qty := range []int{0, -1, -100} {
		err := d.AddLine("Dune", qty, 15.00)
		if !errors.Is(err, ErrQuantityNotPositive) {
			t.Errorf("AddLine qty=%d: got %v, want ErrQuantityNotPositive", qty, err)
		}
	}
	if d.Len() != 0 {
		t.Errorf("rejected lines must not be appended, got %d lines", d.Len())
	}
}

func TestOrderDraft_RemoveLine(t *testing.T) {
	d := NewOrderDraft()
	mustAdd(t, d, "Dune", 1, 15.00)
	mustAdd(t, d, "Hyperion", 2, 10.00)

	if err := d.RemoveLine(0); err != nil {
		t.Fatalf("RemoveLine: %v", err)
	}
	if d.Len() != 1 {
		t.Fatalf("Len after remove: got %d, want 1", d.Len())
	}
	if d.Lines()[0].BookTitle != "Hyperion" {
		t.Errorf("wrong line removed: remaining is %q", d.Lines()[0].BookTitle)
	}
	if got := d.Total(); got != 20.00 {
		t.Errorf("Total after remove: got %v, want 20.00", got)
	}
}

func TestOrderDraft_RemoveLine_OutOfRange(t *testing.T) {
	d := NewOrderDraft()
	mustAdd(t, d, "Dune", 1, 15.00)

	for _, idx := range []int{-1, 1, 99} {
		if err := d.RemoveLine(idx); !errors.Is(err, ErrNoLineSelected) {
			t.Errorf("RemoveLine(%d): got %v, want ErrNoLineSelected", idx, err)
		}
	}
	if d.Len() != 1 {
		t.Errorf("failed removes must be no-ops, got %d lines", d.Len())
	}
}

func TestOrderDraft_SetQuantity(t *testing.T) {
	d := NewOrderDraft()
	mustAdd(t, d, "Dune", 2, 15.00)

	if err := d.SetQuantity(0, 5); err != nil {
		t.Fatalf("SetQuantity: %v", err)
	}
	if got := d.Total(); got != 75.00 {
		t.Errorf("Total after SetQuantity: got %v, want 75.00", got)
	}

	if err := d.SetQuantity(0, 0); !errors.Is(err, ErrQuantityNotPositive) {
		t.Errorf("SetQuantity(0, 0): got %v, want ErrQuantityNotPositive", err)
	}
	if err := d.SetQuantity(3, 1); !errors.Is(err, ErrNoLineSelected) {
		t.Errorf("SetQuantity(3, 1): got %v, want ErrNoLineSelected", err)
	}
	if got := d.Total(); got != 75.00 {
		t.Errorf("failed edits must not change the total: got %v", got)
	}
}

// TestOrderDraft_TotalInvariant drives the editor with random operation
// sequences and checks after every step that the reported total equals the
// sum of the current line subtotals.
func TestOrderDraft_TotalInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	titles := []string{"Dune", "Hyperion", "Foundation", "Neuromancer", "Solaris"}

	for trial := 0; trial < 50; trial++ {
		d := NewOrderDraft()

		for op := 0; op < 200; op++ {
			switch rng.Intn(3) {
			case 0:
				title := titles[rng.Intn(len(titles))]
				qty := rng.Intn(103) - 2 // occasionally invalid
				price := Round2(rng.Float64() * 60)
				_ = d.AddLine(title, qty, price)
			case 1:
				_ = d.RemoveLine(rng.Intn(d.Len() + 2))
			case 2:
				_ = d.SetQuantity(rng.Intn(d.Len()+2), rng.Intn(103)-2)
			}

			var want float64
			for _, l := range d.Lines() {
				want += l.Subtotal()
			}
			want = Round2(want)

			if got := d.Total(); got != want {
				t.Fatalf("trial %d op %d: Total=%v, sum of subtotals=%v", trial, op, got, want)
			}
		}
	}
}

func TestDraftFromLines(t *testing.T) {
	lines := []OrderLine{
		{BookTitle: "Dune", Quantity: 2, UnitPrice: 15.00},
		{BookTitle: "Hyperion", Quantity: 1, UnitPrice: 9.99},
	}

	d, err := DraftFromLines(lines)
	if err != nil {
		t.Fatalf("DraftFromLines: %v", err)
	}
	if d.Len() != 2 {
		t.Fatalf("Len: got %d, want 2", d.Len())
	}
	if got := d.Total(); got != 39.99 {
		t.Errorf("Total: got %v, want 39.99", got)
	}

	_, err = DraftFromLines([]OrderLine{{BookTitle: "Dune", Quantity: 0, UnitPrice: 1}})
	if !errors.Is(err, ErrQuantityNotPositive) {
		t.Errorf("invalid line: got %v, want ErrQuantityNotPositive", err)
	}
}

func TestLinesTotal_Rounding(t *testing.T) {
	// 3 * 0.10 accumulates float error without rounding.
	lines := []OrderLine{
		{BookTitle: "A", Quantity: 3, UnitPrice: 0.10},
		{BookTitle: "B", Quantity: 1, UnitPrice: 0.35},
	}
	if got := LinesTotal(lines); got != 0.65 {
		t.Errorf("LinesTotal: got %v, want 0.65", got)
	}
}

func mustAdd(t *testing.T, d *OrderDraft, title string, qty int, price float64) {
	t.Helper()
	if err := d.AddLine(title, qty, price); err != nil {
		t.Fatalf("AddLine(%q): %v", title, err)
	}
}
