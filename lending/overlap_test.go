package lending

import (
	"errors"
	"testing"
	"time"
)

func day(d int) time.Time {
	return time.Date(2026, time.November, d, 0, 0, 0, 0, time.UTC)
}

func mustRange(t *testing.T, from, to int) DateRange {
	t.Helper()
	r, err := NewDateRange(day(from), day(to))
	if err != nil {
		t.Fatalf("NewDateRange(%d, %d): %v", from, to, err)
	}
	return r
}

func TestNewDateRange(t *testing.T) {
	if _, err := NewDateRange(day(10), day(15)); err != nil {
		t.Errorf("valid range rejected: %v", err)
	}

	var ve *ValidationError
	if _, err := NewDateRange(day(10), day(10)); !errors.As(err, &ve) {
		t.Errorf("equal dates should fail with ValidationError, got %v", err)
	}
	if _, err := NewDateRange(day(15), day(10)); !errors.As(err, &ve) {
		t.Errorf("reversed dates should fail with ValidationError, got %v", err)
	}
	if _, err := NewDateRange(time.Time{}, day(10)); !errors.As(err, &ve) {
		t.Errorf("zero date should fail with ValidationError, got %v", err)
	}
}

func TestOverlaps(t *testing.T) {
	base := mustRange(t, 10, 15)

	tests := []struct {
		name string
		from int
		to   int
		want bool
	}{
		{"inside", 11, 14, true},
		{"covers", 9, 16, true},
		{"left edge shared", 5, 10, true}, // inclusive boundary
		{"right edge shared", 15, 20, true},
		{"partial left", 8, 12, true},
		{"partial right", 12, 20, true},
		{"before", 5, 9, false},
		{"after", 16, 20, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := mustRange(t, tt.from, tt.to)
			if got := base.Overlaps(other); got != tt.want {
				t.Errorf("[10,15].Overlaps([%d,%d]) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
			// Symmetric by definition.
			if got := other.Overlaps(base); got != tt.want {
				t.Errorf("[%d,%d].Overlaps([10,15]) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestCommittedQuantity(t *testing.T) {
	existing := []Commitment{
		{Status: StatusPending, Quantity: 3, Range: mustRange(t, 10, 15)},
		{Status: StatusApproved, Quantity: 2, Range: mustRange(t, 12, 20)},
		{Status: StatusRejected, Quantity: 4, Range: mustRange(t, 10, 15)}, // ignored
		{Status: StatusReturned, Quantity: 4, Range: mustRange(t, 10, 15)}, // ignored
		{Status: StatusPending, Quantity: 5, Range: mustRange(t, 20, 25)},  // outside
	}

	if got := CommittedQuantity(existing, mustRange(t, 11, 14)); got != 5 {
		t.Errorf("committed for [11,14] = %d, want 5", got)
	}
	if got := CommittedQuantity(existing, mustRange(t, 16, 19)); got != 2 {
		t.Errorf("committed for [16,19] = %d, want 2", got)
	}
	if got := CommittedQuantity(existing, mustRange(t, 26, 28)); got != 0 {
		t.Errorf("committed for [26,28] = %d, want 0", got)
	}
}

func TestCheckCapacity(t *testing.T) {
	if err := CheckCapacity(5, 3, 2); err != nil {
		t.Errorf("exact fit should succeed, got %v", err)
	}
	if err := CheckCapacity(5, 0, 5); err != nil {
		t.Errorf("full quantity on empty calendar should succeed, got %v", err)
	}

	err := CheckCapacity(5, 3, 3)
	var ce *CapacityExceededError
	if !errors.As(err, &ce) {
		t.Fatalf("CheckCapacity(5, 3, 3) = %v, want CapacityExceededError", err)
	}
	if ce.Remaining != 2 {
		t.Errorf("remaining = %d, want 2", ce.Remaining)
	}
	if got, want := ce.Error(), "only 2 units available for these dates"; got != want {
		t.Errorf("message = %q, want %q", got, want)
	}

	// Already over-committed ranges report zero, never a negative count.
	err = CheckCapacity(5, 7, 1)
	if !errors.As(err, &ce) {
		t.Fatalf("CheckCapacity(5, 7, 1) = %v, want CapacityExceededError", err)
	}
	if ce.Remaining != 0 {
		t.Errorf("remaining = %d, want 0", ce.Remaining)
	}
}

// Mirrors the two request flows from the product scenarios: an overlapping
// second request is refused while capacity is promised, and accepted again
// once the first request frees units.
func TestCapacityScenario(t *testing.T) {
	requestA := Commitment{Status: StatusPending, Quantity: 3, Range: mustRange(t, 10, 15)}
	rangeB := mustRange(t, 12, 20)

	committed := CommittedQuantity([]Commitment{requestA}, rangeB)
	err := CheckCapacity(5, committed, 3)
	var ce *CapacityExceededError
	if !errors.As(err, &ce) || ce.Remaining != 2 {
		t.Fatalf("second request for 3 units should be refused with 2 remaining, got %v", err)
	}

	// 2 units still fit alongside the promised 3.
	if err := CheckCapacity(5, committed, 2); err != nil {
		t.Errorf("second request for 2 units should fit, got %v", err)
	}

	// Once request A is returned it stops counting.
	requestA.Status = StatusReturned
	committed = CommittedQuantity([]Commitment{requestA}, rangeB)
	if err := CheckCapacity(5, committed, 5); err != nil {
		t.Errorf("full quantity should fit after return, got %v", err)
	}
}
