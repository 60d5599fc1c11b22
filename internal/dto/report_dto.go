package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReportResponse struct {
	ID          string          `json:"id"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
	TotalSales  int             `json:"totalSales"`
	Revenue     decimal.Decimal `json:"revenue"`
	GrossMargin decimal.Decimal `json:"grossMargin"`
	NetMargin   decimal.Decimal `json:"netMargin"`
	CreatedAt   time.Time       `json:"createdAt"`
}
