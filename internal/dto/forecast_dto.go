package dto

import (
	"github.com/shopspring/decimal"

	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/analytics"
)

// ForecastTotalsResponse serializes the totals row with the derived figures
// materialized from the accessor methods at response time.
type ForecastTotalsResponse struct {
	SalesTarget               int             `json:"salesTarget"`
	RevenueTarget             decimal.Decimal `json:"revenueTarget"`
	ActualSales               int             `json:"actualSales"`
	ActualRevenue             decimal.Decimal `json:"actualRevenue"`
	RevenueAchievementPercent decimal.Decimal `json:"revenueAchievementPercent"`
	SalesVariance             int             `json:"salesVariance"`
	RevenueVariance           decimal.Decimal `json:"revenueVariance"`
}

type ForecastResponse struct {
	Year        int                         `json:"year"`
	MonthlyData []analytics.MonthlyForecast `json:"monthlyData"`
	Totals      ForecastTotalsResponse      `json:"totals"`
}

// NewForecastResponse flattens an analytics.AnnualForecast for the wire.
func NewForecastResponse(f analytics.AnnualForecast) ForecastResponse {
	return ForecastResponse{
		Year:        f.Year,
		MonthlyData: f.MonthlyData,
		Totals: ForecastTotalsResponse{
			SalesTarget:               f.Totals.SalesTarget,
			RevenueTarget:             f.Totals.RevenueTarget,
			ActualSales:               f.Totals.ActualSales,
			ActualRevenue:             f.Totals.ActualRevenue,
			RevenueAchievementPercent: f.Totals.RevenueAchievementPercent(),
			SalesVariance:             f.Totals.SalesVariance(),
			RevenueVariance:           f.Totals.RevenueVariance(),
		},
	}
}
