package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable item. The SKU doubles as primary key, so the same
// value always appears in both ID and SKU.
type Product struct {
	ID            string          `gorm:"primaryKey"`
	Name          string          `gorm:"index;not null"`
	SKU           string          `gorm:"uniqueIndex;not null"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	SalePrice     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	InitialStock  int             `gorm:"not null;default:0"`
	// Stock is split by location: chez moi (local warehouse) vs the Amazon
	// marketplace. Quantities may go negative under duplicate mutation —
	// no floor is enforced, matching the historical behavior.
	StockChezMoi int `gorm:"not null;default:0"`
	StockAmazon  int `gorm:"not null;default:0"`
	CreatedAt    time.Time
}

// TotalStock is the combined stock across both locations.
func (p *Product) TotalStock() int { return p.StockChezMoi + p.StockAmazon }

// LowStockThreshold bounds the "low stock" band: total stock strictly
// between 0 and 20. Zero-stock products are out of stock, not low stock.
const LowStockThreshold = 20

// IsLowStock reports whether the product sits in the low-stock band.
func (p *Product) IsLowStock() bool {
	total := p.TotalStock()
	return total > 0 && total < LowStockThreshold
}
