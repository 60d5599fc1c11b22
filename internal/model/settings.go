package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SettingsID is the primary key of the one and only Settings row.
const SettingsID = "global"

// DefaultNetMarginFeePercentage applies when no Settings row exists yet.
const DefaultNetMarginFeePercentage = 15

// Settings is the application-wide configuration singleton.
type Settings struct {
	ID                     string          `gorm:"primaryKey"`
	NetMarginFeePercentage decimal.Decimal `gorm:"type:decimal(5,2);not null"` // 0-100
	// APIKey authenticates webhook callers (X-API-KEY header). Empty means
	// no webhook access at all.
	APIKey                      string
	DataMigration2015To2025Done bool `gorm:"not null;default:false"`
	AmazonConnected             bool `gorm:"not null;default:false"`
	AmazonLastSync              *time.Time
	UpdatedAt                   time.Time
}

// DefaultSettings is the initial state used when the singleton is absent.
func DefaultSettings() *Settings {
	return &Settings{
		ID:                     SettingsID,
		NetMarginFeePercentage: decimal.NewFromInt(DefaultNetMarginFeePercentage),
	}
}
