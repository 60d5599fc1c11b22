package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Name          string          `json:"name"          validate:"required,min=1,max=200"`
	SKU           string          `json:"sku"           validate:"required,min=1,max=64"`
	PurchasePrice decimal.Decimal `json:"purchasePrice" validate:"min=0"`
	SalePrice     decimal.Decimal `json:"salePrice"     validate:"min=0"`
	InitialStock  int             `json:"initialStock"  validate:"min=0"`
	StockChezMoi  int             `json:"stockChezMoi"`
	StockAmazon   int             `json:"stockAmazon"`
}

// UpdateProductRequest is a partial patch. ID and SKU are immutable and
// silently preserved whatever the body says.
type UpdateProductRequest struct {
	Name          *string          `json:"name"          validate:"omitempty,min=1,max=200"`
	PurchasePrice *decimal.Decimal `json:"purchasePrice"`
	SalePrice     *decimal.Decimal `json:"salePrice"`
	InitialStock  *int             `json:"initialStock"`
	StockChezMoi  *int             `json:"stockChezMoi"`
	StockAmazon   *int             `json:"stockAmazon"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	SKU           string          `json:"sku"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	InitialStock  int             `json:"initialStock"`
	StockChezMoi  int             `json:"stockChezMoi"`
	StockAmazon   int             `json:"stockAmazon"`
	CreatedAt     time.Time       `json:"createdAt"`
}

type DeletedResponse struct {
	ID string `json:"id"`
}
