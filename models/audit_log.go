package models

import "time"

const AuditLogTable = "sel_audit_log"

// AuditLog keeps one row per lifecycle decision (approve, reject, return)
// so admin actions stay traceable even after the request reaches a terminal
// state.
type AuditLog struct {
	ID        string    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Action    string    `gorm:"size:40;index;not null" json:"action"`
	RequestID string    `gorm:"type:uuid;index;not null" json:"requestId"`
	ActorID   string    `gorm:"type:uuid;not null" json:"actorId"`
	ActorName string    `gorm:"size:255;not null" json:"actorName"`
	Detail    *string   `gorm:"size:500" json:"detail,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (AuditLog) TableName() string { return AuditLogTable }
