package db

import (
	"context"
	"fmt"
	"strings"

	"school_equipment_lending/models"

	"gorm.io/gorm"
)

// logAction records a lifecycle decision inside the same transaction as the
// decision itself.
func logAction(tx *gorm.DB, action, requestID string, actor Actor, detail string) error {
	entry := &models.AuditLog{
		Action:    action,
		RequestID: requestID,
		ActorID:   actor.ID,
		ActorName: actor.Name,
	}
	if s := strings.TrimSpace(detail); s != "" {
		entry.Detail = &s
	}
	if err := tx.Create(entry).Error; err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

type PagedAuditLogs struct {
	Total   int64             `json:"total"`
	Entries []models.AuditLog `json:"entries"`
}

func (r *Repo) ListAuditLogs(ctx context.Context, actor Actor, requestID string, page, size int) (*PagedAuditLogs, error) {
	if err := actor.requireAdmin(); err != nil {
		return nil, err
	}
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 200 {
		size = 50
	}

	tx := r.DB.WithContext(ctx).Model(&models.AuditLog{})
	if requestID != "" {
		tx = tx.Where("request_id = ?", requestID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, err
	}

	var entries []models.AuditLog
	if err := tx.
		Order("created_at DESC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return &PagedAuditLogs{Total: total, Entries: entries}, nil
}
