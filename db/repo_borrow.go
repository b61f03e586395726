package db

import (
	"context"
	"strings"
	"time"

	"school_equipment_lending/lending"
	"school_equipment_lending/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Request lifecycle engine. Every transition runs inside one transaction
// holding row locks on the request (and, via the conditional ledger update,
// on the equipment counter), so the availability check and the status write
// can never interleave with a concurrent call.

type CreateRequestInput struct {
	RequesterID string
	EquipmentID string
	Quantity    int
	BorrowFrom  time.Time
	BorrowTo    time.Time
	Notes       string
}

// maxNotesLen bounds every free-text field on a request.
const maxNotesLen = 500

// Validate checks the payload shape and returns the normalized borrow
// window. now anchors the "no borrowing in the past" rule at day
// granularity.
func (in CreateRequestInput) Validate(now time.Time) (lending.DateRange, error) {
	if in.RequesterID == "" {
		return lending.DateRange{}, lending.Validationf("requester id is required")
	}
	if in.EquipmentID == "" {
		return lending.DateRange{}, lending.Validationf("equipment id is required")
	}
	if in.Quantity < 1 {
		return lending.DateRange{}, lending.Validationf("requested quantity must be at least 1, got %d", in.Quantity)
	}
	if strings.TrimSpace(in.Notes) == "" {
		return lending.DateRange{}, lending.Validationf("notes are required")
	}
	if len(in.Notes) > maxNotesLen {
		return lending.DateRange{}, lending.Validationf("notes must not exceed %d characters", maxNotesLen)
	}

	rng, err := lending.NewDateRange(in.BorrowFrom, in.BorrowTo)
	if err != nil {
		return lending.DateRange{}, err
	}
	today := now.UTC().Truncate(24 * time.Hour)
	if rng.From.Before(today) {
		return lending.DateRange{}, lending.Validationf("borrow start date must not be in the past")
	}
	return rng, nil
}

// CreateRequest validates the payload, runs overlap accounting against the
// ledger and every open request on the same item, and inserts a pending
// record. The equipment row is locked for the duration so a concurrent
// create cannot slip past the capacity sum.
func (r *Repo) CreateRequest(ctx context.Context, in CreateRequestInput) (*models.BorrowRequest, error) {
	rng, err := in.Validate(time.Now())
	if err != nil {
		return nil, err
	}

	var req *models.BorrowRequest
	err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var eq models.Equipment
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&eq, "id = ?", in.EquipmentID).Error; err != nil {
			return asNotFound(err, "equipment", in.EquipmentID)
		}

		var requester models.User
		if err := tx.First(&requester, "id = ?", in.RequesterID).Error; err != nil {
			return asNotFound(err, "user", in.RequesterID)
		}

		// Coarse point-in-time check, independent of dates.
		if eq.Available < 1 || eq.Available < in.Quantity {
			return &lending.InsufficientAvailabilityError{Available: eq.Available, Requested: in.Quantity}
		}

		// Date-aware check: sum the units already promised for any part of
		// the window across open requests.
		var open []models.BorrowRequest
		if err := tx.
			Where("equipment_id = ? AND status IN ?", eq.ID,
				[]lending.Status{lending.StatusPending, lending.StatusApproved}).
			Find(&open).Error; err != nil {
			return err
		}
		commitments := make([]lending.Commitment, 0, len(open))
		for _, o := range open {
			commitments = append(commitments, lending.Commitment{
				Status:   o.Status,
				Quantity: o.Quantity,
				Range:    o.Range(),
			})
		}
		committed := lending.CommittedQuantity(commitments, rng)
		if err := lending.CheckCapacity(eq.Quantity, committed, in.Quantity); err != nil {
			return err
		}

		req = &models.BorrowRequest{
			ID:             uuid.NewString(),
			RequesterID:    requester.ID,
			RequesterName:  requester.Name,
			RequesterEmail: requester.Email,
			EquipmentID:    eq.ID,
			EquipmentName:  eq.Name,
			Quantity:       in.Quantity,
			BorrowFrom:     rng.From,
			BorrowTo:       rng.To,
			RequestedDate:  time.Now().UTC(),
			Notes:          strings.TrimSpace(in.Notes),
			Status:         lending.StatusPending,
		}
		return tx.Create(req).Error
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (r *Repo) FindRequestByID(ctx context.Context, id string) (*models.BorrowRequest, error) {
	var req models.BorrowRequest
	if err := r.DB.WithContext(ctx).First(&req, "id = ?", id).Error; err != nil {
		return nil, asNotFound(err, "borrow request", id)
	}
	return &req, nil
}

// lockRequest loads a request under FOR UPDATE inside tx.
func lockRequest(tx *gorm.DB, id string) (*models.BorrowRequest, error) {
	var req models.BorrowRequest
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&req, "id = ?", id).Error; err != nil {
		return nil, asNotFound(err, "borrow request", id)
	}
	return &req, nil
}

// Approve moves a pending request to approved. Availability is re-checked
// at approval time through the conditional decrement; the ledger write and
// the status write commit or roll back together.
func (r *Repo) Approve(ctx context.Context, requestID string, actor Actor, notes string) (*models.BorrowRequest, error) {
	if err := actor.requireAdmin(); err != nil {
		return nil, err
	}
	if len(notes) > maxNotesLen {
		return nil, lending.Validationf("approval notes must not exceed %d characters", maxNotesLen)
	}

	var out *models.BorrowRequest
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		req, err := lockRequest(tx, requestID)
		if err != nil {
			return err
		}
		if err := lending.CanTransition(req.Status, lending.StatusApproved); err != nil {
			return err
		}
		if err := decreaseAvailable(tx, req.EquipmentID, req.Quantity); err != nil {
			return err
		}

		now := time.Now().UTC()
		req.Status = lending.StatusApproved
		req.ApprovedBy = &actor.ID
		req.ApprovedByName = &actor.Name
		req.ApprovalDate = &now
		if s := strings.TrimSpace(notes); s != "" {
			req.ApprovalNotes = &s
		}
		if err := tx.Save(req).Error; err != nil {
			return err
		}
		out = req
		return logAction(tx, "request.approve", req.ID, actor, notes)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Reject moves a pending request to rejected. The ledger is untouched:
// pending requests never held units.
func (r *Repo) Reject(ctx context.Context, requestID string, actor Actor, reason string) (*models.BorrowRequest, error) {
	if err := actor.requireAdmin(); err != nil {
		return nil, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, lending.Validationf("rejection reason is required")
	}
	if len(reason) > maxNotesLen {
		return nil, lending.Validationf("rejection reason must not exceed %d characters", maxNotesLen)
	}

	var out *models.BorrowRequest
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		req, err := lockRequest(tx, requestID)
		if err != nil {
			return err
		}
		if err := lending.CanTransition(req.Status, lending.StatusRejected); err != nil {
			return err
		}

		req.Status = lending.StatusRejected
		req.RejectionReason = &reason
		if err := tx.Save(req).Error; err != nil {
			return err
		}
		out = req
		return logAction(tx, "request.reject", req.ID, actor, reason)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MarkReturned moves an approved request to returned and gives the units
// back to the ledger. The guarded increment refuses to push available past
// quantity, which would mean a duplicate return.
func (r *Repo) MarkReturned(ctx context.Context, requestID string, actor Actor, condition lending.Condition, notes string) (*models.BorrowRequest, error) {
	if err := actor.requireAdmin(); err != nil {
		return nil, err
	}
	if !condition.Valid() {
		return nil, lending.Validationf("unknown condition %q", condition)
	}
	if len(notes) > maxNotesLen {
		return nil, lending.Validationf("return notes must not exceed %d characters", maxNotesLen)
	}

	var out *models.BorrowRequest
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		req, err := lockRequest(tx, requestID)
		if err != nil {
			return err
		}
		if err := lending.CanTransition(req.Status, lending.StatusReturned); err != nil {
			return err
		}
		if err := increaseAvailable(tx, req.EquipmentID, req.Quantity); err != nil {
			return err
		}

		now := time.Now().UTC()
		req.Status = lending.StatusReturned
		req.ActualReturnDate = &now
		req.ReturnedCondition = &condition
		if s := strings.TrimSpace(notes); s != "" {
			req.ReturnNotes = &s
		}
		if err := tx.Save(req).Error; err != nil {
			return err
		}
		out = req
		return logAction(tx, "request.return", req.ID, actor, notes)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

type RequestQuery struct {
	RequesterID string
	EquipmentID string
	Status      string
	Page        int
	Size        int
}

type PagedRequests struct {
	Total    int64                  `json:"total"`
	Requests []models.BorrowRequest `json:"requests"`
}

func (r *Repo) ListRequests(ctx context.Context, q RequestQuery) (*PagedRequests, error) {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Size <= 0 || q.Size > 200 {
		q.Size = 20
	}
	if q.Status != "" && !lending.Status(q.Status).Valid() {
		return nil, lending.Validationf("unknown status %q", q.Status)
	}

	tx := r.DB.WithContext(ctx).Model(&models.BorrowRequest{})
	if q.RequesterID != "" {
		tx = tx.Where("requester_id = ?", q.RequesterID)
	}
	if q.EquipmentID != "" {
		tx = tx.Where("equipment_id = ?", q.EquipmentID)
	}
	if q.Status != "" {
		tx = tx.Where("status = ?", q.Status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, err
	}

	var reqs []models.BorrowRequest
	if err := tx.
		Order("requested_date DESC").
		Offset((q.Page - 1) * q.Size).
		Limit(q.Size).
		Find(&reqs).Error; err != nil {
		return nil, err
	}
	return &PagedRequests{Total: total, Requests: reqs}, nil
}
