package service

import (
	"context"
	"sort"

	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/analytics"
	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/dto"
	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/infra"
	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/model"
	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/repository"
)

type ReportService interface {
	// List recomputes every monthly report from the full sales history,
	// upserts the cached rows, then returns them all.
	List(ctx context.Context) ([]dto.ReportResponse, error)
	GeneratePDF(ctx context.Context, id string) (string, error)
}

type reportService struct {
	reports  repository.ReportRepository
	sales    repository.SaleRepository
	settings repository.SettingsRepository
	pdfDir   string
	clock    Clock
}

func NewReportService(
	reports repository.ReportRepository,
	sales repository.SaleRepository,
	settings repository.SettingsRepository,
	pdfDir string,
) ReportService {
	return &reportService{
		reports:  reports,
		sales:    sales,
		settings: settings,
		pdfDir:   pdfDir,
		clock:    realClock{},
	}
}

func (s *reportService) List(ctx context.Context) ([]dto.ReportResponse, error) {
	sales, err := s.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	fee := analytics.FeePercentage(settings)

	// Buckets follow the sale date's UTC month, unlike the forecast which
	// reads the wall-clock month.
	aggregates := make(map[string]*model.Report)
	for i := range sales {
		sale := &sales[i]
		utc := sale.SaleDate.UTC()
		id := model.MonthKey(utc.Year(), int(utc.Month()))
		agg, ok := aggregates[id]
		if !ok {
			agg = &model.Report{ID: id, Month: int(utc.Month()), Year: utc.Year()}
			aggregates[id] = agg
		}
		gross := sale.TotalPrice.Sub(sale.CostOfSale)
		agg.TotalSales += sale.Quantity
		agg.Revenue = agg.Revenue.Add(sale.TotalPrice)
		agg.GrossMargin = agg.GrossMargin.Add(gross)
		agg.NetMargin = agg.NetMargin.Add(analytics.ApplyNetMarginFee(gross, fee))
	}

	for _, agg := range aggregates {
		agg.CreatedAt = s.clock.Now()
		if err := s.reports.Save(ctx, agg); err != nil {
			return nil, err
		}
	}

	stored, err := s.reports.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(stored, func(i, j int) bool {
		if stored[i].Year != stored[j].Year {
			return stored[i].Year > stored[j].Year
		}
		return stored[i].Month > stored[j].Month
	})

	out := make([]dto.ReportResponse, 0, len(stored))
	for i := range stored {
		r := &stored[i]
		out = append(out, dto.ReportResponse{
			ID:          r.ID,
			Month:       r.Month,
			Year:        r.Year,
			TotalSales:  r.TotalSales,
			Revenue:     r.Revenue,
			GrossMargin: r.GrossMargin,
			NetMargin:   r.NetMargin,
			CreatedAt:   r.CreatedAt,
		})
	}
	return out, nil
}

func (s *reportService) GeneratePDF(ctx context.Context, id string) (string, error) {
	report, err := s.reports.FindByID(ctx, id)
	if err != nil {
		return "", mapNotFound(err)
	}
	return infra.GenerateReportPDF(report, s.pdfDir)
}
