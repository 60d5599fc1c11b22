// Package analytics holds the pure aggregation functions behind the
// dashboard and forecasting endpoints. Nothing here touches the database;
// callers pass full entity snapshots and get derived numbers back.
package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/model"
)

// MonthlyPoint is one bucket of the monthly revenue/units series.
// Name is the display label, e.g. "Mar 2024".
type MonthlyPoint struct {
	Name    string          `json:"name"`
	Revenue decimal.Decimal `json:"revenue"`
	Sales   int             `json:"sales"`
}

// ChannelCount is the unit count for one sale channel.
type ChannelCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// DashboardMetrics is the full set of numbers the dashboard renders.
type DashboardMetrics struct {
	TotalRevenue         decimal.Decimal `json:"totalRevenue"`
	TotalSales           int             `json:"totalSales"`
	GrossMargin          decimal.Decimal `json:"grossMargin"`
	NetMargin            decimal.Decimal `json:"netMargin"`
	TotalProductsInStock int             `json:"totalProductsInStock"`
	LowStockItemsCount   int             `json:"lowStockItemsCount"`
	MonthlyRevenue       []MonthlyPoint  `json:"monthlyRevenue"`
	SalesByChannel       []ChannelCount  `json:"salesByChannel"`
}

type monthKey struct {
	year  int
	month time.Month
}

// FeePercentage resolves the net-margin fee, falling back to the default
// when no settings row exists.
func FeePercentage(settings *model.Settings) decimal.Decimal {
	if settings == nil {
		return decimal.NewFromInt(model.DefaultNetMarginFeePercentage)
	}
	return settings.NetMarginFeePercentage
}

// ApplyNetMarginFee converts a gross margin into a net margin:
// gross × (1 − fee/100).
func ApplyNetMarginFee(gross decimal.Decimal, feePercentage decimal.Decimal) decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	return gross.Mul(hundred.Sub(feePercentage)).Div(hundred)
}

// CalculateDashboardMetrics aggregates the full sales and product snapshots
// into dashboard numbers.
//
// Gross margin uses each sale's frozen CostOfSale, never the product's
// current purchase price, so past months stay accurate when prices move.
// The monthly series is bucketed by calendar month of the sale date, sorted
// ascending, and truncated to the most recent 12 buckets. The channel
// breakdown counts units (not revenue) and is sorted by volume descending;
// channels with no sales produce no entry.
func CalculateDashboardMetrics(sales []model.Sale, products []model.Product, settings *model.Settings) DashboardMetrics {
	totalRevenue := decimal.Zero
	totalSales := 0
	grossMargin := decimal.Zero

	monthly := make(map[monthKey]*MonthlyPoint)
	byChannel := make(map[string]int)

	for _, sale := range sales {
		totalRevenue = totalRevenue.Add(sale.TotalPrice)
		totalSales += sale.Quantity
		grossMargin = grossMargin.Add(sale.TotalPrice.Sub(sale.CostOfSale))

		key := monthKey{year: sale.SaleDate.Year(), month: sale.SaleDate.Month()}
		bucket, ok := monthly[key]
		if !ok {
			bucket = &MonthlyPoint{
				Name:    sale.SaleDate.Format("Jan 2006"),
				Revenue: decimal.Zero,
			}
			monthly[key] = bucket
		}
		bucket.Revenue = bucket.Revenue.Add(sale.TotalPrice)
		bucket.Sales += sale.Quantity

		byChannel[sale.Channel] += sale.Quantity
	}

	keys := make([]monthKey, 0, len(monthly))
	for k := range monthly {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})
	if len(keys) > 12 {
		keys = keys[len(keys)-12:]
	}
	series := make([]MonthlyPoint, 0, len(keys))
	for _, k := range keys {
		series = append(series, *monthly[k])
	}

	channels := make([]ChannelCount, 0, len(byChannel))
	for name, count := range byChannel {
		channels = append(channels, ChannelCount{Name: name, Value: count})
	}
	sort.Slice(channels, func(i, j int) bool {
		if channels[i].Value != channels[j].Value {
			return channels[i].Value > channels[j].Value
		}
		return channels[i].Name < channels[j].Name
	})

	totalStock := 0
	lowStock := 0
	for i := range products {
		totalStock += products[i].TotalStock()
		if products[i].IsLowStock() {
			lowStock++
		}
	}

	return DashboardMetrics{
		TotalRevenue:         totalRevenue,
		TotalSales:           totalSales,
		GrossMargin:          grossMargin,
		NetMargin:            ApplyNetMarginFee(grossMargin, FeePercentage(settings)),
		TotalProductsInStock: totalStock,
		LowStockItemsCount:   lowStock,
		MonthlyRevenue:       series,
		SalesByChannel:       channels,
	}
}
