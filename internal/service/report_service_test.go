package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/model"
)

func buildReportSvc() (*reportService, *stubReportRepo, *stubSaleRepo, *stubSettingsRepo) {
	reports := newStubReportRepo()
	sales := newStubSaleRepo()
	settings := &stubSettingsRepo{}
	svc := &reportService{
		reports:  reports,
		sales:    sales,
		settings: settings,
		pdfDir:   testPDFDir,
		clock:    fixedClock{time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
	}
	return svc, reports, sales, settings
}

const testPDFDir = "/tmp/fungicount-test-pdfs"

func addSale(sales *stubSaleRepo, date time.Time, qty int, total, cost decimal.Decimal) {
	_ = sales.Create(context.Background(), &model.Sale{
		ID:         uuid.NewString(),
		CustomerID: uuid.NewString(),
		ProductID:  "FGS-LION-SITE",
		Quantity:   qty,
		TotalPrice: total,
		SaleDate:   date,
		Channel:    model.ChannelSite,
		CostOfSale: cost,
	})
}

func TestReports_BucketsByUTCMonth(t *testing.T) {
	svc, _, sales, _ := buildReportSvc()

	// 23:30 on March 31 in UTC+2 is 21:30 UTC, still March for reports.
	paris := time.FixedZone("UTC+2", 2*3600)
	addSale(sales, time.Date(2025, 3, 31, 23, 30, 0, 0, paris), 2, d(59.80), d(17))
	addSale(sales, time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC), 1, d(29.90), d(8.50))

	out, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)

	// newest first
	assert.Equal(t, "2025-04", out[0].ID)
	assert.Equal(t, "2025-03", out[1].ID)
	assert.Equal(t, 2, out[1].TotalSales)
	assert.Equal(t, "59.8", out[1].Revenue.String())
	assert.Equal(t, "42.8", out[1].GrossMargin.String())
	// default 15% fee: 42.80 × 0.85 = 36.38
	assert.Equal(t, "36.38", out[1].NetMargin.String())
}

func TestReports_RecomputeIsIdempotent(t *testing.T) {
	svc, reports, sales, _ := buildReportSvc()
	addSale(sales, time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC), 3, d(89.70), d(25.50))

	first, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, second, 1)

	assert.Equal(t, first[0].Revenue.String(), second[0].Revenue.String())
	assert.Equal(t, first[0].TotalSales, second[0].TotalSales)
	// the stored row kept its original creation timestamp
	stored, _ := reports.FindByID(context.Background(), "2025-05")
	assert.Equal(t, first[0].CreatedAt, stored.CreatedAt)
}

func TestReports_RecomputeReflectsNewSales(t *testing.T) {
	svc, _, sales, _ := buildReportSvc()
	addSale(sales, time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC), 1, d(29.90), d(8.50))

	first, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, first[0].TotalSales)

	addSale(sales, time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC), 2, d(59.80), d(17))

	second, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, second[0].TotalSales)
	assert.Equal(t, "89.7", second[0].Revenue.String())
}

func TestReports_CustomFeeApplied(t *testing.T) {
	svc, _, sales, settings := buildReportSvc()
	_, err := settings.Mutate(context.Background(), func(s *model.Settings) error {
		s.NetMarginFeePercentage = d(20)
		return nil
	})
	require.NoError(t, err)

	addSale(sales, time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC), 1, d(100), d(0))

	out, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "80", out[0].NetMargin.String())
}

func TestReportPDF_MissingReport(t *testing.T) {
	svc, _, _, _ := buildReportSvc()
	_, err := svc.GeneratePDF(context.Background(), "2025-01")
	assert.ErrorIs(t, err, ErrNotFound)
}
