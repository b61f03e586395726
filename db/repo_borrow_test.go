package db

import (
	"errors"
	"strings"
	"testing"
	"time"

	"school_equipment_lending/lending"
	"school_equipment_lending/models"
)

var now = time.Date(2026, time.November, 1, 9, 30, 0, 0, time.UTC)

func validInput() CreateRequestInput {
	return CreateRequestInput{
		RequesterID: "req-1",
		EquipmentID: "eq-1",
		Quantity:    2,
		BorrowFrom:  time.Date(2026, time.November, 10, 0, 0, 0, 0, time.UTC),
		BorrowTo:    time.Date(2026, time.November, 15, 0, 0, 0, 0, time.UTC),
		Notes:       "chemistry lab session",
	}
}

func TestCreateRequestInputValidate(t *testing.T) {
	if _, err := validInput().Validate(now); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*CreateRequestInput)
	}{
		{"missing requester", func(in *CreateRequestInput) { in.RequesterID = "" }},
		{"missing equipment", func(in *CreateRequestInput) { in.EquipmentID = "" }},
		{"zero quantity", func(in *CreateRequestInput) { in.Quantity = 0 }},
		{"negative quantity", func(in *CreateRequestInput) { in.Quantity = -3 }},
		{"empty notes", func(in *CreateRequestInput) { in.Notes = "  " }},
		{"oversized notes", func(in *CreateRequestInput) { in.Notes = strings.Repeat("x", maxNotesLen+1) }},
		{"equal dates", func(in *CreateRequestInput) { in.BorrowTo = in.BorrowFrom }},
		{"reversed dates", func(in *CreateRequestInput) {
			in.BorrowFrom, in.BorrowTo = in.BorrowTo, in.BorrowFrom
		}},
		{"start in the past", func(in *CreateRequestInput) {
			in.BorrowFrom = time.Date(2026, time.October, 20, 0, 0, 0, 0, time.UTC)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			_, err := in.Validate(now)
			var ve *lending.ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("Validate() = %v, want ValidationError", err)
			}
		})
	}
}

// Borrowing starting today is allowed; the rule is day-granular, not
// instant-granular.
func TestCreateRequestInputValidateToday(t *testing.T) {
	in := validInput()
	in.BorrowFrom = time.Date(2026, time.November, 1, 0, 0, 0, 0, time.UTC)
	if _, err := in.Validate(now); err != nil {
		t.Errorf("borrowing from today should be allowed, got %v", err)
	}
}

func TestActorRequireAdmin(t *testing.T) {
	admin := Actor{ID: "a", Name: "Admin", Role: models.RoleAdmin}
	if err := admin.requireAdmin(); err != nil {
		t.Errorf("admin actor refused: %v", err)
	}

	for _, role := range []string{models.RoleStudent, models.RoleStaff, ""} {
		actor := Actor{ID: "u", Name: "User", Role: role}
		if err := actor.requireAdmin(); !errors.Is(err, ErrForbidden) {
			t.Errorf("role %q: got %v, want ErrForbidden", role, err)
		}
	}
}
