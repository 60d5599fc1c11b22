package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/analytics"
	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/dto"
	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/repository"
)

const (
	dashboardCacheKey = "cache:dashboard"
	dashboardCacheTTL = 30 * time.Second
)

type DashboardService interface {
	Metrics(ctx context.Context) (*analytics.DashboardMetrics, error)
	Forecast(ctx context.Context, year int) (*dto.ForecastResponse, error)
}

type dashboardService struct {
	sales    repository.SaleRepository
	products repository.ProductRepository
	goals    repository.GoalRepository
	settings repository.SettingsRepository
	rdb      *redis.Client // nil disables caching
	clock    Clock
}

func NewDashboardService(
	sales repository.SaleRepository,
	products repository.ProductRepository,
	goals repository.GoalRepository,
	settings repository.SettingsRepository,
	rdb *redis.Client,
) DashboardService {
	return &dashboardService{
		sales:    sales,
		products: products,
		goals:    goals,
		settings: settings,
		rdb:      rdb,
		clock:    realClock{},
	}
}

// Metrics aggregates the whole sales and product history. The result is
// cached in Redis for a few seconds since the dashboard polls it; staleness
// within the TTL is acceptable.
func (s *dashboardService) Metrics(ctx context.Context) (*analytics.DashboardMetrics, error) {
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, dashboardCacheKey).Result(); err == nil {
			var cached analytics.DashboardMetrics
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	sales, err := s.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	metrics := analytics.CalculateDashboardMetrics(sales, products, settings)

	if s.rdb != nil {
		if data, err := json.Marshal(&metrics); err == nil {
			if err := s.rdb.Set(ctx, dashboardCacheKey, data, dashboardCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("dashboard cache write failed")
			}
		}
	}
	return &metrics, nil
}

func (s *dashboardService) Forecast(ctx context.Context, year int) (*dto.ForecastResponse, error) {
	if year == 0 {
		year = s.clock.Now().Year()
	}
	sales, err := s.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	goals, err := s.goals.List(ctx)
	if err != nil {
		return nil, err
	}
	forecast := analytics.CalculateAnnualForecast(sales, goals, year)
	resp := dto.NewForecastResponse(forecast)
	return &resp, nil
}
