package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/model"
)

// AuditLogRepository is append-only: entries are created and listed, never
// updated or deleted.
type AuditLogRepository interface {
	Create(ctx context.Context, entry *model.AuditLog) error
	List(ctx context.Context) ([]model.AuditLog, error)
}

type auditRepo struct{ db *gorm.DB }

func NewAuditLogRepository(db *gorm.DB) AuditLogRepository { return &auditRepo{db: db} }

func (r *auditRepo) Create(ctx context.Context, entry *model.AuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *auditRepo) List(ctx context.Context) ([]model.AuditLog, error) {
	var entries []model.AuditLog
	err := r.db.WithContext(ctx).Order("timestamp DESC, id ASC").Find(&entries).Error
	return entries, err
}
