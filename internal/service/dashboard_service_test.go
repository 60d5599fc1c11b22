package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/model"
)

func buildDashboardSvc() (*dashboardService, *stubSaleRepo, *stubProductRepo, *stubGoalRepo, *stubSettingsRepo) {
	sales := newStubSaleRepo()
	products := newStubProductRepo()
	goals := newStubGoalRepo()
	settings := &stubSettingsRepo{}
	svc := &dashboardService{
		sales:    sales,
		products: products,
		goals:    goals,
		settings: settings,
		rdb:      nil, // cache disabled
		clock:    fixedClock{time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
	}
	return svc, sales, products, goals, settings
}

func TestDashboardMetrics_Aggregates(t *testing.T) {
	svc, sales, products, _, _ := buildDashboardSvc()
	seedTestProduct(products, "FGS-LION-SITE", 100, 0)
	addSale(sales, time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC), 2, d(59.80), d(17))

	m, err := svc.Metrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, m.TotalSales)
	assert.Equal(t, "59.8", m.TotalRevenue.String())
	assert.Equal(t, 100, m.TotalProductsInStock)
}

func TestForecast_DefaultsToCurrentYear(t *testing.T) {
	svc, sales, _, goals, _ := buildDashboardSvc()
	addSale(sales, time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC), 1, d(29.90), d(8.50))
	require.NoError(t, goals.Save(context.Background(), &model.Goal{
		ID: model.MonthKey(2025, 3), Month: 3, Year: 2025, SalesTarget: 5, RevenueTarget: d(150),
	}))

	resp, err := svc.Forecast(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 2025, resp.Year) // pinned clock
	require.Len(t, resp.MonthlyData, 12)
	assert.Equal(t, 1, resp.MonthlyData[2].ActualSales)
	assert.Equal(t, 5, resp.MonthlyData[2].SalesTarget)
}

func TestForecast_ExplicitYear(t *testing.T) {
	svc, sales, _, _, _ := buildDashboardSvc()
	addSale(sales, time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), 1, d(29.90), d(8.50))

	resp, err := svc.Forecast(context.Background(), 2024)
	require.NoError(t, err)
	assert.Equal(t, 2024, resp.Year)
	assert.Equal(t, 1, resp.Totals.ActualSales)
}
