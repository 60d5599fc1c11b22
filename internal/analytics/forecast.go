package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/model"
)

// frMonths are the short month labels shown in the forecast table.
// The product UI is French.
var frMonths = [12]string{
	"janv.", "févr.", "mars", "avr.", "mai", "juin",
	"juil.", "août", "sept.", "oct.", "nov.", "déc.",
}

// MonthlyForecast is one row of the annual forecast table: targets from the
// month's Goal (zero when absent), actuals summed from sales, and variances.
type MonthlyForecast struct {
	Month      string `json:"month"`
	MonthIndex int    `json:"monthIndex"` // 0 = January

	SalesTarget             int             `json:"salesTarget"`
	RevenueTarget           decimal.Decimal `json:"revenueTarget"`
	CumulativeRevenueTarget decimal.Decimal `json:"cumulativeRevenueTarget"`

	ActualSales             int             `json:"actualSales"`
	ActualRevenue           decimal.Decimal `json:"actualRevenue"`
	CumulativeActualRevenue decimal.Decimal `json:"cumulativeActualRevenue"`

	RevenueAchievementPercent decimal.Decimal `json:"revenueAchievementPercent"`

	SalesVariance                    int             `json:"salesVariance"`
	RevenueVariance                  decimal.Decimal `json:"revenueVariance"`
	CumulativeRevenueVariance        decimal.Decimal `json:"cumulativeRevenueVariance"`
	CumulativeRevenueVariancePercent decimal.Decimal `json:"cumulativeRevenueVariancePercent"`
}

// ForecastTotals carries the summed columns of the forecast table. The
// derived figures (achievement percentage and variances) are accessor
// methods recomputed from the sums on every call, so they always reflect
// the current totals.
type ForecastTotals struct {
	SalesTarget   int             `json:"salesTarget"`
	RevenueTarget decimal.Decimal `json:"revenueTarget"`
	ActualSales   int             `json:"actualSales"`
	ActualRevenue decimal.Decimal `json:"actualRevenue"`
}

// RevenueAchievementPercent is actual/target × 100 over the whole year,
// or zero when there is no target at all.
func (t ForecastTotals) RevenueAchievementPercent() decimal.Decimal {
	return percentOf(t.ActualRevenue, t.RevenueTarget)
}

// SalesVariance is total actual units minus total target units.
func (t ForecastTotals) SalesVariance() int { return t.ActualSales - t.SalesTarget }

// RevenueVariance is total actual revenue minus total target revenue.
func (t ForecastTotals) RevenueVariance() decimal.Decimal {
	return t.ActualRevenue.Sub(t.RevenueTarget)
}

// AnnualForecast is the 12-month forecast for one calendar year.
type AnnualForecast struct {
	Year        int               `json:"year"`
	MonthlyData []MonthlyForecast `json:"monthlyData"`
	Totals      ForecastTotals    `json:"totals"`
}

// percentOf returns value/base × 100, or zero when base is not positive.
func percentOf(value, base decimal.Decimal) decimal.Decimal {
	if !base.IsPositive() {
		return decimal.Zero
	}
	return value.Div(base).Mul(decimal.NewFromInt(100))
}

// CalculateAnnualForecast builds the forecast table for one year from the
// full goals and sales snapshots.
//
// Sales are bucketed by the calendar year and month of their own timestamp
// (the sale's wall clock, not a UTC conversion). Goal lookup is an exact
// (year, month) match with find-first semantics; duplicates should not
// exist since the Goal id encodes the key. Cumulative columns run from
// January through each month inclusive.
func CalculateAnnualForecast(sales []model.Sale, goals []model.Goal, year int) AnnualForecast {
	monthlyData := make([]MonthlyForecast, 0, 12)
	cumTarget := decimal.Zero
	cumActual := decimal.Zero
	totals := ForecastTotals{RevenueTarget: decimal.Zero, ActualRevenue: decimal.Zero}

	for i := 0; i < 12; i++ {
		month := i + 1

		salesTarget := 0
		revenueTarget := decimal.Zero
		for _, g := range goals {
			if g.Year == year && g.Month == month {
				salesTarget = g.SalesTarget
				revenueTarget = g.RevenueTarget
				break
			}
		}

		actualSales := 0
		actualRevenue := decimal.Zero
		for _, s := range sales {
			if s.SaleDate.Year() == year && int(s.SaleDate.Month()) == month {
				actualSales += s.Quantity
				actualRevenue = actualRevenue.Add(s.TotalPrice)
			}
		}

		cumTarget = cumTarget.Add(revenueTarget)
		cumActual = cumActual.Add(actualRevenue)
		cumVariance := cumActual.Sub(cumTarget)

		monthlyData = append(monthlyData, MonthlyForecast{
			Month:      frMonths[i],
			MonthIndex: i,

			SalesTarget:             salesTarget,
			RevenueTarget:           revenueTarget,
			CumulativeRevenueTarget: cumTarget,

			ActualSales:             actualSales,
			ActualRevenue:           actualRevenue,
			CumulativeActualRevenue: cumActual,

			RevenueAchievementPercent: percentOf(actualRevenue, revenueTarget),

			SalesVariance:                    actualSales - salesTarget,
			RevenueVariance:                  actualRevenue.Sub(revenueTarget),
			CumulativeRevenueVariance:        cumVariance,
			CumulativeRevenueVariancePercent: percentOf(cumVariance, cumTarget),
		})

		totals.SalesTarget += salesTarget
		totals.RevenueTarget = totals.RevenueTarget.Add(revenueTarget)
		totals.ActualSales += actualSales
		totals.ActualRevenue = totals.ActualRevenue.Add(actualRevenue)
	}

	return AnnualForecast{Year: year, MonthlyData: monthlyData, Totals: totals}
}
