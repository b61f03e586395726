package lending

import "time"

// DateRange is the inclusive span a borrow request holds units for.
type DateRange struct {
	From time.Time
	To   time.Time
}

// NewDateRange builds a range, requiring To strictly after From.
func NewDateRange(from, to time.Time) (DateRange, error) {
	if from.IsZero() || to.IsZero() {
		return DateRange{}, Validationf("borrow dates are required")
	}
	if !to.After(from) {
		return DateRange{}, Validationf("borrow end date must be after the start date")
	}
	return DateRange{From: from, To: to}, nil
}

// Overlaps uses the inclusive intersection test: [a,b] and [c,d] overlap
// iff a <= d and b >= c.
func (r DateRange) Overlaps(o DateRange) bool {
	return !r.From.After(o.To) && !r.To.Before(o.From)
}

// Commitment is the slice of an existing borrow request that matters for
// capacity accounting.
type Commitment struct {
	Status   Status
	Quantity int
	Range    DateRange
}

// CommittedQuantity sums the units already promised for any part of r.
// Only pending and approved requests count; rejected and returned ones no
// longer hold units.
func CommittedQuantity(existing []Commitment, r DateRange) int {
	committed := 0
	for _, c := range existing {
		if c.Status != StatusPending && c.Status != StatusApproved {
			continue
		}
		if c.Range.Overlaps(r) {
			committed += c.Quantity
		}
	}
	return committed
}

// CheckCapacity accepts a request iff committed+requested stays within the
// item's total quantity. On failure the error carries how many units are
// still obtainable for the range.
func CheckCapacity(totalQuantity, committed, requested int) error {
	if committed+requested <= totalQuantity {
		return nil
	}
	remaining := totalQuantity - committed
	if remaining < 0 {
		remaining = 0
	}
	return &CapacityExceededError{Remaining: remaining}
}
