package model

import "time"

// Donation records product units given away for free. Creating one
// decrements the product's local stock (StockChezMoi) by Quantity.
type Donation struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	ProductID    string `gorm:"not null;index"` // SKU
	Quantity     int    `gorm:"not null"`
	Reason       string
	DonationDate time.Time `gorm:"not null"`
}
