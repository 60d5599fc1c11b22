package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpdateSettingsRequest is a partial patch of the global settings row.
// The id stays pinned to "global" whatever the body says.
type UpdateSettingsRequest struct {
	NetMarginFeePercentage *decimal.Decimal `json:"netMarginFeePercentage" validate:"omitempty,min=0,max=100"`
	APIKey                 *string          `json:"apiKey"`
}

type AmazonIntegrationResponse struct {
	Connected bool       `json:"connected"`
	LastSync  *time.Time `json:"lastSync,omitempty"`
}

type SettingsResponse struct {
	ID                          string                    `json:"id"`
	NetMarginFeePercentage      decimal.Decimal           `json:"netMarginFeePercentage"`
	APIKey                      string                    `json:"apiKey,omitempty"`
	DataMigration2015To2025Done bool                      `json:"dataMigration2015To2025Done"`
	AmazonIntegration           AmazonIntegrationResponse `json:"amazonIntegration"`
}

type RegenerateAPIKeyResponse struct {
	APIKey string `json:"apiKey"`
}

type AmazonSyncResponse struct {
	Settings     SettingsResponse `json:"settings"`
	SalesCreated int              `json:"salesCreated"`
}
