package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/model"
	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/repository"
)

type seedSale struct {
	name     string
	date     string // YYYY-MM-DD
	total    string
	quantity int
	source   string
}

// Historical export from the first year of operation. Dates are 2015 on
// purpose: the migration below moves them to 2025.
var initialSalesData = []seedSale{
	{"Jonathan Charrier", "2015-10-06", "48.80", 2, "Inconnu"},
	{"ANDREE MILLOT", "2015-09-26", "70.00", 3, "Inconnu"},
	{"Anouk Baeckelandt", "2015-09-19", "62.20", 3, "Ecosia.org"},
	{"SOPHIE REMY", "2015-09-16", "45.40", 2, "Bing.com"},
	{"Laurent HARTICHABALET", "2015-08-02", "27.20", 1, "Yahoo"},
	{"Alain Bastard", "2015-07-14", "71.70", 2, "Direct"},
	{"Giuseppe Campo", "2015-07-14", "61.80", 2, "Direct"},
	{"Joseph Mangiavillano", "2015-07-05", "74.90", 3, "Direct"},
	{"John Doe", "2015-06-29", "100.00", 3, "Inconnu"},
	{"Jesse GIORGI", "2015-06-13", "74.90", 3, "Direct"},
	{"mahmoud nasereddine", "2015-06-05", "73.00", 3, "Office.net"},
	{"Olivier Kumer", "2015-05-30", "74.90", 3, "Google"},
	{"Benoit Richet", "2015-05-10", "74.90", 3, "Google"},
	{"Carline Kumer", "2015-05-03", "74.90", 3, "Google"},
	{"Giuseppe Campo", "2015-05-01", "61.80", 2, "Direct"},
	{"Louis PROTON", "2015-04-25", "39.80", 1, "Direct"},
}

type seedProduct struct {
	sku           string
	name          string
	initialStock  int
	purchasePrice string
	salePrice     string
}

var initialProductData = []seedProduct{
	{"FGS-LION-SITE", "Gummies Lion's Mane Site", 500, "8.50", "29.90"},
	{"FGS-LION-AMZ", "Gummies Lion's Mane AMAZON", 500, "8.50", "32.90"},
}

// BootstrapService seeds initial data and runs the one-off 2015→2025 date
// migration. Ensure is called on every request by the startup middleware;
// the first caller does the work, later callers return immediately. A
// failed run resets itself so the next request retries.
type BootstrapService interface {
	Ensure(ctx context.Context) error
}

type bootstrapService struct {
	products  repository.ProductRepository
	sales     repository.SaleRepository
	customers repository.CustomerRepository
	goals     repository.GoalRepository
	settings  repository.SettingsRepository
	seed      bool

	mu   sync.Mutex
	done bool
	clk  Clock
}

func NewBootstrapService(
	products repository.ProductRepository,
	sales repository.SaleRepository,
	customers repository.CustomerRepository,
	goals repository.GoalRepository,
	settings repository.SettingsRepository,
	seed bool,
) BootstrapService {
	return &bootstrapService{
		products:  products,
		sales:     sales,
		customers: customers,
		goals:     goals,
		settings:  settings,
		seed:      seed,
		clk:       realClock{},
	}
}

func (s *bootstrapService) Ensure(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return nil
	}
	if s.seed {
		if err := s.seedData(ctx); err != nil {
			return err
		}
	}
	if err := s.runDataMigration(ctx); err != nil {
		return err
	}
	s.done = true
	return nil
}

func (s *bootstrapService) seedData(ctx context.Context) error {
	existing, err := s.sales.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	log.Info().Msg("seeding initial data")

	productMap := make(map[string]*model.Product)
	products, err := s.products.List(ctx)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		for _, pd := range initialProductData {
			p := &model.Product{
				ID:            pd.sku,
				Name:          pd.name,
				SKU:           pd.sku,
				PurchasePrice: decimal.RequireFromString(pd.purchasePrice),
				SalePrice:     decimal.RequireFromString(pd.salePrice),
				InitialStock:  pd.initialStock,
				CreatedAt:     s.clk.Now(),
			}
			if strings.Contains(pd.sku, "AMZ") {
				p.StockAmazon = pd.initialStock
			} else {
				p.StockChezMoi = pd.initialStock
			}
			if err := s.products.Create(ctx, p); err != nil {
				return err
			}
			productMap[p.SKU] = p
		}
	} else {
		for i := range products {
			productMap[products[i].SKU] = &products[i]
		}
	}

	customerMap := make(map[string]string)
	for _, sd := range initialSalesData {
		customerID, ok := customerMap[sd.name]
		if !ok {
			c := &model.Customer{
				ID:        uuid.NewString(),
				Name:      sd.name,
				Source:    sd.source,
				CreatedAt: s.clk.Now(),
			}
			if err := s.customers.Create(ctx, c); err != nil {
				return err
			}
			customerID = c.ID
			customerMap[sd.name] = customerID
		}

		const productID = "FGS-LION-SITE"
		saleDate, err := time.ParseInLocation("2006-01-02", sd.date, time.UTC)
		if err != nil {
			return err
		}
		costOfSale := decimal.Zero
		if p, ok := productMap[productID]; ok {
			costOfSale = p.PurchasePrice.Mul(decimal.NewFromInt(int64(sd.quantity)))
		}
		sale := &model.Sale{
			ID:         uuid.NewString(),
			CustomerID: customerID,
			ProductID:  productID,
			Quantity:   sd.quantity,
			TotalPrice: decimal.RequireFromString(sd.total),
			Source:     sd.source,
			SaleDate:   saleDate,
			Channel:    model.ChannelSite,
			CostOfSale: costOfSale,
		}
		if err := s.sales.Create(ctx, sale); err != nil {
			return err
		}
		if _, ok := productMap[productID]; ok {
			if _, err := s.products.Mutate(ctx, productID, func(p *model.Product) error {
				p.StockChezMoi -= sale.Quantity
				return nil
			}); err != nil {
				return err
			}
		}
	}
	log.Info().Msg("seeding complete")
	return nil
}

// runDataMigration re-dates the 2015 seed history into 2025 so the
// dashboard shows it in the current window. Guarded by a settings flag,
// it runs at most once per database.
func (s *bootstrapService) runDataMigration(ctx context.Context) error {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return err
	}
	if settings.DataMigration2015To2025Done {
		return nil
	}
	log.Info().Msg("running data migration: 2015 -> 2025")

	sales, err := s.sales.List(ctx)
	if err != nil {
		return err
	}
	migrated := 0
	for i := range sales {
		if sales[i].SaleDate.Year() != 2015 {
			continue
		}
		id := sales[i].ID
		if _, err := s.sales.Mutate(ctx, id, func(sale *model.Sale) error {
			d := sale.SaleDate
			sale.SaleDate = time.Date(2025, d.Month(), d.Day(), d.Hour(), d.Minute(), d.Second(), d.Nanosecond(), d.Location())
			return nil
		}); err != nil {
			return err
		}
		migrated++
	}
	log.Info().Msgf("migrated %d sales records", migrated)

	goals, err := s.goals.List(ctx)
	if err != nil {
		return err
	}
	migratedGoals := 0
	for i := range goals {
		if goals[i].Year != 2015 {
			continue
		}
		old := goals[i]
		if err := s.goals.Delete(ctx, old.ID); err != nil {
			return err
		}
		moved := old
		moved.Year = 2025
		moved.ID = model.MonthKey(2025, old.Month)
		if err := s.goals.Save(ctx, &moved); err != nil {
			return err
		}
		migratedGoals++
	}
	log.Info().Msgf("migrated %d goal records", migratedGoals)

	if _, err := s.settings.Mutate(ctx, func(settings *model.Settings) error {
		settings.DataMigration2015To2025Done = true
		return nil
	}); err != nil {
		return err
	}
	log.Info().Msg("data migration complete")
	return nil
}
