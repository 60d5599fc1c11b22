package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/dto"
	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/model"
	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/repository"
)

// AmazonProductSKU is the product the mock sync sells against.
const AmazonProductSKU = "FGS-LION-AMZ"

var amazonMockCustomers = []string{
	"Olivia Martin", "Liam Dubois", "Emma Bernard", "Noah Garcia",
	"Ava Petit", "Lucas Roux", "Mia Lefebvre", "Leo Martinez",
}

type SettingsService interface {
	Get(ctx context.Context) (*dto.SettingsResponse, error)
	Update(ctx context.Context, req dto.UpdateSettingsRequest) (*dto.SettingsResponse, error)
	RegenerateAPIKey(ctx context.Context) (*dto.RegenerateAPIKeyResponse, error)
	AmazonConnect(ctx context.Context) (*dto.SettingsResponse, error)
	AmazonDisconnect(ctx context.Context) (*dto.SettingsResponse, error)
	AmazonSyncSales(ctx context.Context) (*dto.AmazonSyncResponse, error)
}

type settingsService struct {
	settings  repository.SettingsRepository
	products  repository.ProductRepository
	sales     repository.SaleRepository
	customers repository.CustomerRepository
	audit     AuditService
	clock     Clock
	randInt   func(n int) int // [0, n), swappable in tests
}

func NewSettingsService(
	settings repository.SettingsRepository,
	products repository.ProductRepository,
	sales repository.SaleRepository,
	customers repository.CustomerRepository,
	audit AuditService,
) SettingsService {
	return &settingsService{
		settings:  settings,
		products:  products,
		sales:     sales,
		customers: customers,
		audit:     audit,
		clock:     realClock{},
		randInt:   rand.Intn,
	}
}

func (s *settingsService) Get(ctx context.Context) (*dto.SettingsResponse, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	return settingsToResponse(settings), nil
}

func (s *settingsService) Update(ctx context.Context, req dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	updated, err := s.settings.Mutate(ctx, func(settings *model.Settings) error {
		if req.NetMarginFeePercentage != nil {
			settings.NetMarginFeePercentage = *req.NetMarginFeePercentage
		}
		if req.APIKey != nil {
			settings.APIKey = *req.APIKey
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := s.audit.Record(ctx, model.AuditUpdate, model.AuditEntitySettings, model.SettingsID,
		fmt.Sprintf("Paramètres mis à jour. Frais de marge nette : %s%%.", updated.NetMarginFeePercentage)); err != nil {
		return nil, err
	}
	return settingsToResponse(updated), nil
}

func (s *settingsService) RegenerateAPIKey(ctx context.Context) (*dto.RegenerateAPIKeyResponse, error) {
	key := "fungi_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	if _, err := s.settings.Mutate(ctx, func(settings *model.Settings) error {
		settings.APIKey = key
		return nil
	}); err != nil {
		return nil, err
	}
	if err := s.audit.Record(ctx, model.AuditUpdate, model.AuditEntitySettings, model.SettingsID,
		"Nouvelle clé API générée."); err != nil {
		return nil, err
	}
	return &dto.RegenerateAPIKeyResponse{APIKey: key}, nil
}

func (s *settingsService) AmazonConnect(ctx context.Context) (*dto.SettingsResponse, error) {
	return s.setAmazonConnected(ctx, true, "Intégration Amazon connectée.")
}

func (s *settingsService) AmazonDisconnect(ctx context.Context) (*dto.SettingsResponse, error) {
	return s.setAmazonConnected(ctx, false, "Intégration Amazon déconnectée.")
}

func (s *settingsService) setAmazonConnected(ctx context.Context, connected bool, details string) (*dto.SettingsResponse, error) {
	updated, err := s.settings.Mutate(ctx, func(settings *model.Settings) error {
		settings.AmazonConnected = connected
		if !connected {
			settings.AmazonLastSync = nil
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := s.audit.Record(ctx, model.AuditUpdate, model.AuditEntitySettings, model.SettingsID, details); err != nil {
		return nil, err
	}
	return settingsToResponse(updated), nil
}

// AmazonSyncSales simulates a marketplace pull: 5 to 10 sales of the Amazon
// product, 1 or 2 units each, each against a freshly created mock customer.
// Stock is decremented once at the end by the total quantity synced.
func (s *settingsService) AmazonSyncSales(ctx context.Context) (*dto.AmazonSyncResponse, error) {
	product, err := s.products.FindByID(ctx, AmazonProductSKU)
	if err != nil {
		return nil, errors.New("Produit Amazon non trouvé.")
	}

	salesToCreate := s.randInt(6) + 5
	totalQuantity := 0
	for i := 0; i < salesToCreate; i++ {
		customer := &model.Customer{
			ID:        uuid.NewString(),
			Name:      amazonMockCustomers[s.randInt(len(amazonMockCustomers))],
			Source:    "Amazon Sync",
			CreatedAt: s.clock.Now(),
		}
		if err := s.customers.Create(ctx, customer); err != nil {
			return nil, err
		}

		quantity := s.randInt(2) + 1
		qty := decimal.NewFromInt(int64(quantity))
		sale := &model.Sale{
			ID:         uuid.NewString(),
			CustomerID: customer.ID,
			ProductID:  product.SKU,
			Quantity:   quantity,
			TotalPrice: product.SalePrice.Mul(qty),
			Source:     "Amazon Sync",
			SaleDate:   s.clock.Now(),
			Channel:    model.ChannelAmazon,
			CostOfSale: product.PurchasePrice.Mul(qty),
		}
		if err := s.sales.Create(ctx, sale); err != nil {
			return nil, err
		}
		totalQuantity += quantity
	}

	if _, err := s.products.Mutate(ctx, product.ID, func(p *model.Product) error {
		p.StockAmazon -= totalQuantity
		return nil
	}); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	updated, err := s.settings.Mutate(ctx, func(settings *model.Settings) error {
		settings.AmazonLastSync = &now
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := s.audit.Record(ctx, model.AuditBatchImport, model.AuditEntitySale, "amazon-sync",
		fmt.Sprintf("%d ventes synchronisées depuis Amazon.", salesToCreate)); err != nil {
		return nil, err
	}
	return &dto.AmazonSyncResponse{
		Settings:     *settingsToResponse(updated),
		SalesCreated: salesToCreate,
	}, nil
}

func settingsToResponse(s *model.Settings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		ID:                          s.ID,
		NetMarginFeePercentage:      s.NetMarginFeePercentage,
		APIKey:                      s.APIKey,
		DataMigration2015To2025Done: s.DataMigration2015To2025Done,
		AmazonIntegration: dto.AmazonIntegrationResponse{
			Connected: s.AmazonConnected,
			LastSync:  s.AmazonLastSync,
		},
	}
}
