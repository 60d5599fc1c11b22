package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/model"
)

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func saleOn(date string, qty int, total float64, cost float64, channel string) model.Sale {
	t, err := time.Parse(time.RFC3339, date)
	if err != nil {
		panic(err)
	}
	return model.Sale{
		ID:         "s-" + date + "-" + channel,
		Quantity:   qty,
		TotalPrice: d(total),
		CostOfSale: d(cost),
		SaleDate:   t,
		Channel:    channel,
	}
}

func TestDashboardMetricsEmpty(t *testing.T) {
	m := CalculateDashboardMetrics(nil, nil, nil)

	assert.True(t, m.TotalRevenue.IsZero())
	assert.Zero(t, m.TotalSales)
	assert.True(t, m.GrossMargin.IsZero())
	assert.True(t, m.NetMargin.IsZero())
	assert.Zero(t, m.TotalProductsInStock)
	assert.Zero(t, m.LowStockItemsCount)
	assert.Empty(t, m.MonthlyRevenue)
	assert.Empty(t, m.SalesByChannel)
}

func TestDashboardChannelBreakdownSumsToTotalUnits(t *testing.T) {
	sales := []model.Sale{
		saleOn("2024-01-10T10:00:00Z", 3, 90, 30, model.ChannelSite),
		saleOn("2024-02-11T10:00:00Z", 2, 60, 20, model.ChannelAmazon),
		saleOn("2024-02-12T10:00:00Z", 5, 150, 50, model.ChannelAmazon),
		saleOn("2024-03-13T10:00:00Z", 1, 30, 10, model.ChannelPharmacy),
	}
	m := CalculateDashboardMetrics(sales, nil, nil)

	sum := 0
	for _, ch := range m.SalesByChannel {
		sum += ch.Value
	}
	assert.Equal(t, m.TotalSales, sum)

	// Sorted by volume descending; unseen channels produce no entry.
	require.Len(t, m.SalesByChannel, 3)
	assert.Equal(t, model.ChannelAmazon, m.SalesByChannel[0].Name)
	assert.Equal(t, 7, m.SalesByChannel[0].Value)
}

func TestDashboardLowStockExcludesOutOfStock(t *testing.T) {
	products := []model.Product{
		{ID: "A", StockChezMoi: 0, StockAmazon: 0},   // out of stock — excluded
		{ID: "B", StockChezMoi: 5, StockAmazon: 3},   // 8 — low
		{ID: "C", StockChezMoi: 19, StockAmazon: 0},  // 19 — low
		{ID: "D", StockChezMoi: 10, StockAmazon: 10}, // 20 — not low
		{ID: "E", StockChezMoi: 500, StockAmazon: 0},
	}
	m := CalculateDashboardMetrics(nil, products, nil)

	assert.Equal(t, 2, m.LowStockItemsCount)
	// Zero-stock products still count toward total stock (as zero).
	assert.Equal(t, 8+19+20+500, m.TotalProductsInStock)
}

func TestDashboardMonthlySeriesCappedAt12Ascending(t *testing.T) {
	var sales []model.Sale
	// 15 consecutive months, newest last in the expected window.
	for i := 0; i < 15; i++ {
		date := time.Date(2023, time.January+time.Month(i), 5, 12, 0, 0, 0, time.UTC)
		sales = append(sales, model.Sale{
			ID:         date.Format("2006-01"),
			Quantity:   1,
			TotalPrice: d(10),
			CostOfSale: d(4),
			SaleDate:   date,
			Channel:    model.ChannelSite,
		})
	}
	m := CalculateDashboardMetrics(sales, nil, nil)

	require.Len(t, m.MonthlyRevenue, 12)
	// The 3 oldest buckets fell off; the window starts at Apr 2023.
	assert.Equal(t, "Apr 2023", m.MonthlyRevenue[0].Name)
	assert.Equal(t, "Mar 2024", m.MonthlyRevenue[11].Name)
}

func TestDashboardGrossMarginUsesFrozenCostOfSale(t *testing.T) {
	// Product purchase price no longer matches the sale's recorded cost:
	// the metric must stick with the historical cost.
	sales := []model.Sale{saleOn("2024-05-01T00:00:00Z", 2, 50, 17, model.ChannelSite)}
	products := []model.Product{{ID: "SKU-1", PurchasePrice: d(99), StockChezMoi: 100}}

	m := CalculateDashboardMetrics(sales, products, nil)
	assert.True(t, m.GrossMargin.Equal(d(33)), "got %s", m.GrossMargin)
}

func TestDashboardNetMarginFee(t *testing.T) {
	// feePercentage=20 and grossMargin=1000 must yield netMargin=800.
	sales := []model.Sale{saleOn("2024-05-01T00:00:00Z", 10, 1500, 500, model.ChannelSite)}
	settings := &model.Settings{ID: model.SettingsID, NetMarginFeePercentage: d(20)}

	m := CalculateDashboardMetrics(sales, nil, settings)
	require.True(t, m.GrossMargin.Equal(d(1000)))
	assert.True(t, m.NetMargin.Equal(d(800)), "got %s", m.NetMargin)
}

func TestDashboardNetMarginDefaultsTo15WhenSettingsAbsent(t *testing.T) {
	sales := []model.Sale{saleOn("2024-05-01T00:00:00Z", 1, 150, 50, model.ChannelSite)}

	m := CalculateDashboardMetrics(sales, nil, nil)
	assert.True(t, m.NetMargin.Equal(d(85)), "got %s", m.NetMargin)
}
