package lending

import (
	"errors"
	"testing"
)

func TestValidateCounts(t *testing.T) {
	tests := []struct {
		quantity  int
		available int
		wantErr   bool
	}{
		{1, 0, false},
		{1, 1, false},
		{5, 5, false},
		{5, 2, false},
		{0, 0, true},  // quantity below minimum
		{-1, 0, true}, // negative quantity
		{5, -1, true}, // negative available
		{5, 6, true},  // available above quantity
	}

	for _, tt := range tests {
		err := ValidateCounts(tt.quantity, tt.available)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateCounts(%d, %d) error = %v, wantErr %v", tt.quantity, tt.available, err, tt.wantErr)
		}
		if err != nil {
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("ValidateCounts(%d, %d) returned %T, want ValidationError", tt.quantity, tt.available, err)
			}
		}
	}
}

func TestCheckDecrease(t *testing.T) {
	if err := CheckDecrease(3, 3); err != nil {
		t.Errorf("taking exactly the available amount should succeed, got %v", err)
	}
	if err := CheckDecrease(3, 1); err != nil {
		t.Errorf("CheckDecrease(3, 1) = %v", err)
	}

	err := CheckDecrease(3, 4)
	var ia *InsufficientAvailabilityError
	if !errors.As(err, &ia) {
		t.Fatalf("CheckDecrease(3, 4) = %v, want InsufficientAvailabilityError", err)
	}
	if ia.Available != 3 || ia.Requested != 4 {
		t.Errorf("got available=%d requested=%d, want 3 and 4", ia.Available, ia.Requested)
	}

	var ve *ValidationError
	if err := CheckDecrease(3, 0); !errors.As(err, &ve) {
		t.Errorf("zero count should be a ValidationError, got %v", err)
	}
}

func TestCheckIncrease(t *testing.T) {
	if err := CheckIncrease(5, 2, 3); err != nil {
		t.Errorf("returning up to quantity should succeed, got %v", err)
	}

	err := CheckIncrease(5, 5, 1)
	var or *OverReturnError
	if !errors.As(err, &or) {
		t.Fatalf("CheckIncrease(5, 5, 1) = %v, want OverReturnError", err)
	}
	if or.Quantity != 5 || or.Available != 5 || or.Count != 1 {
		t.Errorf("unexpected error fields: %+v", or)
	}
}

// Approving then returning the same count must leave the ledger where it
// started and pass both checks along the way.
func TestDecreaseIncreaseRoundTrip(t *testing.T) {
	quantity, available := 5, 5
	count := 3

	if err := CheckDecrease(available, count); err != nil {
		t.Fatalf("decrease check: %v", err)
	}
	available -= count

	if err := CheckIncrease(quantity, available, count); err != nil {
		t.Fatalf("increase check: %v", err)
	}
	available += count

	if available != 5 {
		t.Errorf("round trip left available = %d, want 5", available)
	}
}

func TestConditionValid(t *testing.T) {
	for _, c := range []Condition{ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor} {
		if !c.Valid() {
			t.Errorf("%s should be valid", c)
		}
	}
	if Condition("Broken").Valid() {
		t.Error("unknown condition should be invalid")
	}
}

func TestCategoryValid(t *testing.T) {
	if !CategorySports.Valid() || !CategoryOther.Valid() {
		t.Error("known categories should be valid")
	}
	if Category("Furniture").Valid() {
		t.Error("unknown category should be invalid")
	}
}
