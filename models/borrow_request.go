package models

import (
	"time"

	"school_equipment_lending/lending"
)

const BorrowRequestTable = "sel_borrow_requests"

// BorrowRequest records a requester's intent to hold Quantity units of an
// equipment item for [BorrowFrom, BorrowTo]. Requester and equipment names
// are denormalized copies for display; they can go stale after a rename and
// that is accepted. The transition-specific fields stay null until the
// matching transition happens and are never reset afterwards.
type BorrowRequest struct {
	ID             string `gorm:"type:uuid;primaryKey" json:"id"`
	RequesterID    string `gorm:"type:uuid;index;not null" json:"requesterId"`
	RequesterName  string `gorm:"size:255;not null" json:"requesterName"`
	RequesterEmail string `gorm:"size:255;not null" json:"requesterEmail"`
	EquipmentID    string `gorm:"type:uuid;index;not null" json:"equipmentId"`
	EquipmentName  string `gorm:"size:200;not null" json:"equipmentName"`

	Quantity      int            `gorm:"not null" json:"quantity"`
	BorrowFrom    time.Time      `gorm:"index;not null" json:"borrowFrom"`
	BorrowTo      time.Time      `gorm:"index;not null" json:"borrowTo"`
	RequestedDate time.Time      `gorm:"not null" json:"requestedDate"`
	Notes         string         `gorm:"size:500;not null" json:"notes"`
	Status        lending.Status `gorm:"size:20;index;not null;default:'pending'" json:"status"`

	ApprovedBy     *string    `gorm:"type:uuid" json:"approvedBy,omitempty"`
	ApprovedByName *string    `gorm:"size:255" json:"approvedByName,omitempty"`
	ApprovalDate   *time.Time `json:"approvalDate,omitempty"`
	ApprovalNotes  *string    `gorm:"size:500" json:"approvalNotes,omitempty"`

	RejectionReason *string `gorm:"size:500" json:"rejectionReason,omitempty"`

	ActualReturnDate  *time.Time         `json:"actualReturnDate,omitempty"`
	ReturnedCondition *lending.Condition `gorm:"size:20" json:"returnedCondition,omitempty"`
	ReturnNotes       *string            `gorm:"size:500" json:"returnNotes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (BorrowRequest) TableName() string { return BorrowRequestTable }

// Range is the request's borrow window as a lending.DateRange.
func (r *BorrowRequest) Range() lending.DateRange {
	return lending.DateRange{From: r.BorrowFrom, To: r.BorrowTo}
}
