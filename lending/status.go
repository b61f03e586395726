// Package lending holds the borrow-request lifecycle rules, the equipment
// ledger invariants and the date-overlap capacity accounting. It is pure
// decision logic: the db package calls into it from inside transactions.
package lending

// Status is the lifecycle state of a borrow request.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusReturned Status = "returned"
)

// transitions lists the only edges the lifecycle permits.
var transitions = map[Status]Status{
	StatusApproved: StatusPending,
	StatusRejected: StatusPending,
	StatusReturned: StatusApproved,
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusReturned:
		return true
	}
	return false
}

// Terminal reports whether no further transition is permitted from s.
func (s Status) Terminal() bool {
	return s == StatusRejected || s == StatusReturned
}

// CanTransition checks a single lifecycle edge. Each request moves exactly
// once along pending→approved→returned or pending→rejected.
func CanTransition(from, to Status) error {
	if src, ok := transitions[to]; ok && src == from {
		return nil
	}
	return &InvalidStateTransitionError{From: from, To: to}
}
