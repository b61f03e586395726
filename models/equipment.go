package models

import (
	"time"

	"school_equipment_lending/lending"
)

const EquipmentTable = "sel_equipment"

// Equipment is a pooled item type: Quantity units owned in total, Available
// of them currently loanable. Available is only ever mutated through the
// ledger methods in the db package (approve decrements, return increments)
// or an explicit admin update; a DB CHECK constraint backs the invariant
// 0 <= available <= quantity.
type Equipment struct {
	ID          string            `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string            `gorm:"size:200;not null" json:"name"`
	Category    lending.Category  `gorm:"size:40;index;not null" json:"category"`
	Description string            `gorm:"type:text" json:"description"`
	Condition   lending.Condition `gorm:"size:20;not null" json:"condition"`
	Quantity    int               `gorm:"not null" json:"quantity"`
	Available   int               `gorm:"not null" json:"available"`
	Location    string            `gorm:"size:200" json:"location"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Equipment) TableName() string { return EquipmentTable }
