package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale channels. Anything not recognized is stored as ChannelUnknown.
const (
	ChannelSite       = "site"
	ChannelAmazon     = "amazon"
	ChannelPharmacy   = "pharmacy"
	ChannelInfluencer = "influencer"
	ChannelReseller   = "reseller"
	ChannelCSE        = "cse"
	ChannelUnknown    = "unknown"
)

// ValidChannel reports whether ch is one of the known sale channels.
func ValidChannel(ch string) bool {
	switch ch {
	case ChannelSite, ChannelAmazon, ChannelPharmacy, ChannelInfluencer, ChannelReseller, ChannelCSE, ChannelUnknown:
		return true
	}
	return false
}

// Sale is a single sales transaction. CostOfSale is frozen at creation time
// (purchase price × quantity); later purchase-price changes never rewrite it,
// so historical margins stay accurate.
type Sale struct {
	ID         string `gorm:"type:uuid;primaryKey"`
	CustomerID string `gorm:"type:uuid;not null;index"`
	// ProductID references Product by SKU.
	ProductID  string          `gorm:"not null;index"`
	Quantity   int             `gorm:"not null"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Source     string
	SaleDate   time.Time       `gorm:"index;not null"`
	Channel    string          `gorm:"not null;default:'unknown'"`
	CostOfSale decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PromoCode  string
}

// FromAmazonStock reports which product stock bucket this sale draws from:
// amazon sales hit StockAmazon, every other channel hits StockChezMoi.
func (s *Sale) FromAmazonStock() bool { return s.Channel == ChannelAmazon }
