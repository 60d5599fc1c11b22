package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpsertGoalRequest creates or replaces the goal for (year, month).
type UpsertGoalRequest struct {
	Month         int             `json:"month"         validate:"required,min=1,max=12"`
	Year          int             `json:"year"          validate:"required,min=2000,max=2100"`
	SalesTarget   int             `json:"salesTarget"   validate:"min=0"`
	RevenueTarget decimal.Decimal `json:"revenueTarget" validate:"min=0"`
}

type GoalResponse struct {
	ID            string          `json:"id"`
	Month         int             `json:"month"`
	Year          int             `json:"year"`
	SalesTarget   int             `json:"salesTarget"`
	RevenueTarget decimal.Decimal `json:"revenueTarget"`
	CreatedAt     time.Time       `json:"createdAt"`
}
