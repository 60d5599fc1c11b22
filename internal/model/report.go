package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Report is a cached monthly financial rollup, recomputed idempotently from
// the full sales history on every report-list request and upserted by its
// "{year}-{month:02d}" id. It never feeds back into any other computation.
type Report struct {
	ID          string `gorm:"primaryKey"`
	Month       int    `gorm:"not null"`
	Year        int    `gorm:"not null;index"`
	TotalSales  int    `gorm:"not null;default:0"`
	Revenue     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	GrossMargin decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	NetMargin   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt   time.Time
}
