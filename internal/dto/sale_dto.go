package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CreateSaleRequest accepts either an existing customerId or a customerName
// to create the customer on the fly.
type CreateSaleRequest struct {
	CustomerID   string          `json:"customerId"   validate:"omitempty,uuid"`
	CustomerName string          `json:"customerName"`
	ProductID    string          `json:"productId"    validate:"required"`
	Quantity     int             `json:"quantity"     validate:"required,gt=0"`
	TotalPrice   decimal.Decimal `json:"totalPrice"   validate:"required"`
	Source       string          `json:"source"`
	SaleDate     time.Time       `json:"saleDate"`
	Channel      string          `json:"channel"      validate:"omitempty,oneof=site amazon pharmacy influencer reseller cse unknown"`
	PromoCode    string          `json:"promoCode"`
}

// UpdateSaleRequest is a partial patch. The product reference is immutable;
// a quantity change re-freezes costOfSale from the product's current
// purchase price and moves stock on the sale's original channel.
type UpdateSaleRequest struct {
	CustomerID *string          `json:"customerId" validate:"omitempty,uuid"`
	Quantity   *int             `json:"quantity"   validate:"omitempty,gt=0"`
	TotalPrice *decimal.Decimal `json:"totalPrice"`
	Source     *string          `json:"source"`
	SaleDate   *time.Time       `json:"saleDate"`
	Channel    *string          `json:"channel"    validate:"omitempty,oneof=site amazon pharmacy influencer reseller cse unknown"`
	PromoCode  *string          `json:"promoCode"`
}

// BatchSaleRow is one line of a batch import (JSON body or parsed XLSX).
type BatchSaleRow struct {
	CustomerName string          `json:"customerName" validate:"required"`
	ProductSKU   string          `json:"productSku"   validate:"required"`
	Quantity     int             `json:"quantity"     validate:"required,gt=0"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
	Source       string          `json:"source"`
	SaleDate     time.Time       `json:"saleDate"`
	Channel      string          `json:"channel"      validate:"omitempty,oneof=site amazon pharmacy influencer reseller cse unknown"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type SaleResponse struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customerId"`
	ProductID  string          `json:"productId"`
	Quantity   int             `json:"quantity"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	Source     string          `json:"source"`
	SaleDate   time.Time       `json:"saleDate"`
	Channel    string          `json:"channel"`
	CostOfSale decimal.Decimal `json:"costOfSale"`
	PromoCode  string          `json:"promoCode,omitempty"`
}

// CreateSaleResponse bundles the created sale with its (possibly freshly
// created) customer so the client can update both collections in one go.
type CreateSaleResponse struct {
	Sale     SaleResponse     `json:"sale"`
	Customer CustomerResponse `json:"customer"`
}

type BatchImportResponse struct {
	Message  string `json:"message"`
	Imported int    `json:"imported"`
}

type WebhookSaleResponse struct {
	Message string `json:"message"`
	SaleID  string `json:"saleId"`
}

// ─── Webhook request ─────────────────────────────────────────────────────────

type WebhookSaleRequest struct {
	Product struct {
		SKU string `json:"sku" validate:"required"`
	} `json:"product"`
	Customer struct {
		Name   string `json:"name" validate:"required"`
		Email  string `json:"email"`
		Source string `json:"source"`
	} `json:"customer"`
	Sale struct {
		Quantity   int             `json:"quantity"   validate:"required,gt=0"`
		TotalPrice decimal.Decimal `json:"totalPrice"`
		SaleDate   *time.Time      `json:"saleDate"`
		Channel    string          `json:"channel"    validate:"omitempty,oneof=site amazon pharmacy influencer reseller cse unknown"`
		PromoCode  string          `json:"promoCode"`
	} `json:"sale"`
}
