package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a monthly sales/revenue target. The ID is the calendar key
// "{year}-{month:02d}" (e.g. "2025-07"), which also enforces uniqueness
// per (year, month).
type Goal struct {
	ID            string `gorm:"primaryKey"`
	Month         int    `gorm:"not null"` // 1-12
	Year          int    `gorm:"not null;index"`
	SalesTarget   int    `gorm:"not null;default:0"`
	RevenueTarget decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt     time.Time
}

// MonthKey formats a (year, month) pair as the canonical Goal/Report id.
func MonthKey(year int, month int) string {
	return fmt.Sprintf("%d-%02d", year, month)
}

// ParseMonthKey decodes a "{year}-{month:02d}" id back into its parts.
func ParseMonthKey(id string) (year int, month int, err error) {
	if _, err = fmt.Sscanf(id, "%d-%d", &year, &month); err != nil {
		return 0, 0, fmt.Errorf("invalid month key %q: %w", id, err)
	}
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("invalid month key %q: month out of range", id)
	}
	return year, month, nil
}
