package lending

import "fmt"

// ValidationError marks malformed or missing input. The message is safe to
// show to the caller verbatim.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError marks a missing equipment item, borrow request or user.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("%s %s not found", e.Kind, e.ID) }

// InvalidStateTransitionError marks a lifecycle operation attempted from the
// wrong status, e.g. approving a request that was already returned.
type InvalidStateTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("cannot %s a %s request", verbFor(e.To), e.From)
}

func verbFor(to Status) string {
	switch to {
	case StatusApproved:
		return "approve"
	case StatusRejected:
		return "reject"
	case StatusReturned:
		return "return"
	}
	return string(to)
}

// InsufficientAvailabilityError marks an immediate shortfall of loanable
// units, independent of dates.
type InsufficientAvailabilityError struct {
	Available int
	Requested int
}

func (e *InsufficientAvailabilityError) Error() string {
	return fmt.Sprintf("only %d of %d requested units currently available", e.Available, e.Requested)
}

// CapacityExceededError marks a request whose date range would over-commit
// the item. Remaining is how many units can still be obtained for the range.
type CapacityExceededError struct {
	Remaining int
}

func (e *CapacityExceededError) Error() string {
	if e.Remaining == 1 {
		return "only 1 unit available for these dates"
	}
	return fmt.Sprintf("only %d units available for these dates", e.Remaining)
}

// OverReturnError marks a return that would push available above quantity.
// Seeing it means corrupted data or a duplicate return call.
type OverReturnError struct {
	Quantity  int
	Available int
	Count     int
}

func (e *OverReturnError) Error() string {
	return fmt.Sprintf("returning %d units would exceed total quantity %d (available %d)",
		e.Count, e.Quantity, e.Available)
}
