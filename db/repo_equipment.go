package db

import (
	"context"
	"fmt"
	"strings"

	"school_equipment_lending/lending"
	"school_equipment_lending/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Equipment ledger. Available is mutated only through decreaseAvailable /
// increaseAvailable (lifecycle side effects) and UpdateEquipment (explicit
// admin edit); nothing else writes the column.

func (r *Repo) CreateEquipment(ctx context.Context, actor Actor, eq *models.Equipment) error {
	if err := actor.requireAdmin(); err != nil {
		return err
	}
	if strings.TrimSpace(eq.Name) == "" {
		return lending.Validationf("equipment name is required")
	}
	if !eq.Category.Valid() {
		return lending.Validationf("unknown category %q", eq.Category)
	}
	if !eq.Condition.Valid() {
		return lending.Validationf("unknown condition %q", eq.Condition)
	}
	if err := lending.ValidateCounts(eq.Quantity, eq.Available); err != nil {
		return err
	}
	return r.DB.WithContext(ctx).Create(eq).Error
}

func (r *Repo) FindEquipmentByID(ctx context.Context, id string) (*models.Equipment, error) {
	var eq models.Equipment
	if err := r.DB.WithContext(ctx).First(&eq, "id = ?", id).Error; err != nil {
		return nil, asNotFound(err, "equipment", id)
	}
	return &eq, nil
}

// EquipmentPatch carries an admin edit; nil fields are left untouched.
type EquipmentPatch struct {
	Name        *string            `json:"name,omitempty"`
	Category    *lending.Category  `json:"category,omitempty"`
	Description *string            `json:"description,omitempty"`
	Condition   *lending.Condition `json:"condition,omitempty"`
	Quantity    *int               `json:"quantity,omitempty"`
	Available   *int               `json:"available,omitempty"`
	Location    *string            `json:"location,omitempty"`
}

// UpdateEquipment applies a patch under a row lock. The ledger invariant is
// checked against the resulting quantity/available pair, so patching only
// one of the two still compares against the stored value of the other.
func (r *Repo) UpdateEquipment(ctx context.Context, actor Actor, id string, patch EquipmentPatch) (*models.Equipment, error) {
	if err := actor.requireAdmin(); err != nil {
		return nil, err
	}

	var eq models.Equipment
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&eq, "id = ?", id).Error; err != nil {
			return asNotFound(err, "equipment", id)
		}

		if patch.Name != nil {
			if strings.TrimSpace(*patch.Name) == "" {
				return lending.Validationf("equipment name is required")
			}
			eq.Name = *patch.Name
		}
		if patch.Category != nil {
			if !patch.Category.Valid() {
				return lending.Validationf("unknown category %q", *patch.Category)
			}
			eq.Category = *patch.Category
		}
		if patch.Description != nil {
			eq.Description = *patch.Description
		}
		if patch.Condition != nil {
			if !patch.Condition.Valid() {
				return lending.Validationf("unknown condition %q", *patch.Condition)
			}
			eq.Condition = *patch.Condition
		}
		if patch.Quantity != nil {
			eq.Quantity = *patch.Quantity
		}
		if patch.Available != nil {
			eq.Available = *patch.Available
		}
		if patch.Location != nil {
			eq.Location = *patch.Location
		}

		if err := lending.ValidateCounts(eq.Quantity, eq.Available); err != nil {
			return err
		}
		return tx.Save(&eq).Error
	})
	if err != nil {
		return nil, err
	}
	return &eq, nil
}

// DeleteEquipment removes the item. Borrow records referencing it are kept
// as-is: history survives deletion (known limitation, see DESIGN.md).
func (r *Repo) DeleteEquipment(ctx context.Context, actor Actor, id string) error {
	if err := actor.requireAdmin(); err != nil {
		return err
	}
	res := r.DB.WithContext(ctx).Delete(&models.Equipment{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &lending.NotFoundError{Kind: "equipment", ID: id}
	}
	return nil
}

type EquipmentQuery struct {
	Q        string // matches name/description
	Category string
	Page     int
	Size     int
}

type PagedEquipment struct {
	Total int64              `json:"total"`
	Items []models.Equipment `json:"items"`
}

func (r *Repo) ListEquipment(ctx context.Context, q EquipmentQuery) (*PagedEquipment, error) {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Size <= 0 || q.Size > 200 {
		q.Size = 20
	}

	tx := r.DB.WithContext(ctx).Model(&models.Equipment{})
	if s := strings.TrimSpace(q.Q); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		tx = tx.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	if q.Category != "" {
		tx = tx.Where("category = ?", q.Category)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, err
	}

	var items []models.Equipment
	if err := tx.
		Order("created_at DESC").
		Offset((q.Page - 1) * q.Size).
		Limit(q.Size).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return &PagedEquipment{Total: total, Items: items}, nil
}

// DecreaseAvailable atomically takes count units from an item's available
// pool. The guard lives in the UPDATE itself, so two concurrent approvals
// can never both pass the check.
func (r *Repo) DecreaseAvailable(ctx context.Context, id string, count int) error {
	return decreaseAvailable(r.DB.WithContext(ctx), id, count)
}

// IncreaseAvailable atomically gives count units back, refusing to exceed
// the item's total quantity.
func (r *Repo) IncreaseAvailable(ctx context.Context, id string, count int) error {
	return increaseAvailable(r.DB.WithContext(ctx), id, count)
}

func decreaseAvailable(tx *gorm.DB, id string, count int) error {
	if count < 1 {
		return lending.Validationf("decrease count must be at least 1, got %d", count)
	}
	res := tx.Model(&models.Equipment{}).
		Where("id = ? AND available >= ?", id, count).
		Update("available", gorm.Expr("available - ?", count))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var eq models.Equipment
		if err := tx.First(&eq, "id = ?", id).Error; err != nil {
			return asNotFound(err, "equipment", id)
		}
		if err := lending.CheckDecrease(eq.Available, count); err != nil {
			return err
		}
		return fmt.Errorf("decrease available: concurrent update on equipment %s", id)
	}
	return nil
}

func increaseAvailable(tx *gorm.DB, id string, count int) error {
	if count < 1 {
		return lending.Validationf("increase count must be at least 1, got %d", count)
	}
	res := tx.Model(&models.Equipment{}).
		Where("id = ? AND available + ? <= quantity", id, count).
		Update("available", gorm.Expr("available + ?", count))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var eq models.Equipment
		if err := tx.First(&eq, "id = ?", id).Error; err != nil {
			return asNotFound(err, "equipment", id)
		}
		if err := lending.CheckIncrease(eq.Quantity, eq.Available, count); err != nil {
			return err
		}
		return fmt.Errorf("increase available: concurrent update on equipment %s", id)
	}
	return nil
}
