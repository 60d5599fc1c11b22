package model

import "time"

// Audit actions.
const (
	AuditCreate      = "create"
	AuditUpdate      = "update"
	AuditDelete      = "delete"
	AuditBatchImport = "batch-import"
)

// Audit entity kinds.
const (
	AuditEntityProduct  = "product"
	AuditEntitySale     = "sale"
	AuditEntityCustomer = "customer"
	AuditEntityGoal     = "goal"
	AuditEntitySettings = "settings"
	AuditEntityDonation = "donation"
)

// AuditLog is an append-only trail entry. Entries are created as a side
// effect of every mutation and are never updated or deleted.
type AuditLog struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	Action    string    `gorm:"not null"`
	Entity    string    `gorm:"not null;index"`
	EntityID  string    `gorm:"not null"`
	Details   string
	Timestamp time.Time `gorm:"index;not null"`
}

// TableName overrides GORM's default pluralization (audit_logs, not auditlogs).
func (AuditLog) TableName() string { return "audit_logs" }
