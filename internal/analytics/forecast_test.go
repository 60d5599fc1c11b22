package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/model"
)

func TestAnnualForecastEmptyYearIsAllZero(t *testing.T) {
	f := CalculateAnnualForecast(nil, nil, 2024)

	require.Len(t, f.MonthlyData, 12)
	for _, m := range f.MonthlyData {
		assert.Zero(t, m.SalesTarget)
		assert.True(t, m.RevenueTarget.IsZero())
		assert.Zero(t, m.ActualSales)
		assert.True(t, m.ActualRevenue.IsZero())
		assert.True(t, m.RevenueAchievementPercent.IsZero(), "no divide-by-zero blowup")
		assert.True(t, m.CumulativeRevenueVariancePercent.IsZero())
	}
	assert.True(t, f.Totals.RevenueAchievementPercent().IsZero())
	assert.Zero(t, f.Totals.SalesVariance())
}

func TestAnnualForecastMarchScenario(t *testing.T) {
	sales := []model.Sale{
		{ID: "s1", Quantity: 2, TotalPrice: d(50), SaleDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{ID: "s2", Quantity: 1, TotalPrice: d(30), SaleDate: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)},
	}
	goals := []model.Goal{
		{ID: model.MonthKey(2024, 3), Year: 2024, Month: 3, SalesTarget: 5, RevenueTarget: d(100)},
	}

	f := CalculateAnnualForecast(sales, goals, 2024)
	march := f.MonthlyData[2]

	assert.Equal(t, "mars", march.Month)
	assert.Equal(t, 3, march.ActualSales)
	assert.True(t, march.ActualRevenue.Equal(d(80)))
	assert.Equal(t, -2, march.SalesVariance)
	assert.True(t, march.RevenueVariance.Equal(d(-20)), "got %s", march.RevenueVariance)
	assert.True(t, march.RevenueAchievementPercent.Equal(d(80)), "got %s", march.RevenueAchievementPercent)
}

func TestAnnualForecastCumulativeColumns(t *testing.T) {
	goals := []model.Goal{
		{ID: model.MonthKey(2024, 1), Year: 2024, Month: 1, SalesTarget: 10, RevenueTarget: d(100)},
		{ID: model.MonthKey(2024, 2), Year: 2024, Month: 2, SalesTarget: 10, RevenueTarget: d(200)},
	}
	sales := []model.Sale{
		{ID: "s1", Quantity: 4, TotalPrice: d(120), SaleDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
		{ID: "s2", Quantity: 6, TotalPrice: d(90), SaleDate: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)},
	}

	f := CalculateAnnualForecast(sales, goals, 2024)

	jan, feb, dec := f.MonthlyData[0], f.MonthlyData[1], f.MonthlyData[11]
	assert.True(t, jan.CumulativeRevenueTarget.Equal(d(100)))
	assert.True(t, jan.CumulativeActualRevenue.Equal(d(120)))
	assert.True(t, jan.CumulativeRevenueVariance.Equal(d(20)))
	assert.True(t, jan.CumulativeRevenueVariancePercent.Equal(d(20)))

	assert.True(t, feb.CumulativeRevenueTarget.Equal(d(300)))
	assert.True(t, feb.CumulativeActualRevenue.Equal(d(210)))
	assert.True(t, feb.CumulativeRevenueVariance.Equal(d(-90)))
	assert.True(t, feb.CumulativeRevenueVariancePercent.Equal(d(-30)))

	// Cumulative columns carry through months with no activity.
	assert.True(t, dec.CumulativeRevenueTarget.Equal(d(300)))
	assert.True(t, dec.CumulativeActualRevenue.Equal(d(210)))
}

func TestAnnualForecastIgnoresOtherYears(t *testing.T) {
	sales := []model.Sale{
		{ID: "s1", Quantity: 5, TotalPrice: d(500), SaleDate: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)},
	}
	goals := []model.Goal{
		{ID: model.MonthKey(2023, 6), Year: 2023, Month: 6, SalesTarget: 5, RevenueTarget: d(100)},
	}

	f := CalculateAnnualForecast(sales, goals, 2024)
	for _, m := range f.MonthlyData {
		assert.Zero(t, m.ActualSales)
		assert.Zero(t, m.SalesTarget)
	}
}

func TestAnnualForecastUsesSaleWallClockMonth(t *testing.T) {
	// 2024-03-31 23:30 in UTC+2 is already April in UTC; the bucket must
	// follow the sale's own wall clock (March).
	paris := time.FixedZone("CEST", 2*60*60)
	sales := []model.Sale{
		{ID: "s1", Quantity: 1, TotalPrice: d(10), SaleDate: time.Date(2024, 3, 31, 23, 30, 0, 0, paris)},
	}

	f := CalculateAnnualForecast(sales, nil, 2024)
	assert.Equal(t, 1, f.MonthlyData[2].ActualSales)
	assert.Zero(t, f.MonthlyData[3].ActualSales)
}

func TestAnnualForecastTotalsRecomputedFromSums(t *testing.T) {
	goals := []model.Goal{
		{ID: model.MonthKey(2024, 1), Year: 2024, Month: 1, SalesTarget: 10, RevenueTarget: d(100)},
		{ID: model.MonthKey(2024, 2), Year: 2024, Month: 2, SalesTarget: 10, RevenueTarget: d(100)},
	}
	sales := []model.Sale{
		{ID: "s1", Quantity: 8, TotalPrice: d(50), SaleDate: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		{ID: "s2", Quantity: 8, TotalPrice: d(100), SaleDate: time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC)},
	}

	f := CalculateAnnualForecast(sales, goals, 2024)
	totals := f.Totals

	// 150/200 × 100 — computed from the summed totals, not averaged per month.
	assert.True(t, totals.RevenueAchievementPercent().Equal(d(75)), "got %s", totals.RevenueAchievementPercent())
	assert.Equal(t, -4, totals.SalesVariance())
	assert.True(t, totals.RevenueVariance().Equal(d(-50)))

	// Derived accessors track mutations of the summed fields.
	totals.ActualRevenue = decimal.NewFromInt(200)
	assert.True(t, totals.RevenueAchievementPercent().Equal(d(100)))
}

func TestMonthKeyRoundTrip(t *testing.T) {
	id := model.MonthKey(2024, 7)
	assert.Equal(t, "2024-07", id)

	year, month, err := model.ParseMonthKey(id)
	require.NoError(t, err)
	assert.Equal(t, 2024, year)
	assert.Equal(t, 7, month)

	_, _, err = model.ParseMonthKey("2024-13")
	assert.Error(t, err)
}
