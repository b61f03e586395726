package lending

import (
	"errors"
	"testing"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusPending, StatusApproved, true},
		{StatusPending, StatusRejected, true},
		{StatusApproved, StatusReturned, true},

		{StatusPending, StatusReturned, false},
		{StatusApproved, StatusApproved, false},
		{StatusApproved, StatusRejected, false},
		{StatusRejected, StatusApproved, false},
		{StatusRejected, StatusReturned, false},
		{StatusReturned, StatusApproved, false},
		{StatusReturned, StatusReturned, false},
		// Nothing transitions back to pending.
		{StatusApproved, StatusPending, false},
		{StatusRejected, StatusPending, false},
	}

	for _, tt := range tests {
		err := CanTransition(tt.from, tt.to)
		if (err == nil) != tt.allowed {
			t.Errorf("CanTransition(%s, %s) = %v, want allowed=%v", tt.from, tt.to, err, tt.allowed)
		}
		if err != nil {
			var ist *InvalidStateTransitionError
			if !errors.As(err, &ist) {
				t.Errorf("CanTransition(%s, %s) returned %T, want InvalidStateTransitionError", tt.from, tt.to, err)
			} else if ist.From != tt.from || ist.To != tt.to {
				t.Errorf("error names %s -> %s, want %s -> %s", ist.From, ist.To, tt.from, tt.to)
			}
		}
	}
}

func TestInvalidStateTransitionMessage(t *testing.T) {
	err := CanTransition(StatusReturned, StatusApproved)
	if err == nil {
		t.Fatal("expected error")
	}
	if got, want := err.Error(), "cannot approve a returned request"; got != want {
		t.Errorf("message = %q, want %q", got, want)
	}
}

func TestTerminal(t *testing.T) {
	if StatusPending.Terminal() || StatusApproved.Terminal() {
		t.Error("pending/approved must not be terminal")
	}
	if !StatusRejected.Terminal() || !StatusReturned.Terminal() {
		t.Error("rejected/returned must be terminal")
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusApproved, StatusRejected, StatusReturned} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if Status("cancelled").Valid() || Status("").Valid() {
		t.Error("unknown statuses should be invalid")
	}
}
