package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/dto"
	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/model"
)

func buildSettingsSvc() (*settingsService, *stubSettingsRepo, *stubSaleRepo, *stubProductRepo, *stubCustomerRepo, *stubAuditRepo) {
	settings := &stubSettingsRepo{}
	sales := newStubSaleRepo()
	products := newStubProductRepo()
	customers := newStubCustomerRepo()
	audit := &stubAuditRepo{}
	svc := &settingsService{
		settings:  settings,
		products:  products,
		sales:     sales,
		customers: customers,
		audit:     NewAuditService(audit),
		clock:     fixedClock{time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
		randInt:   func(n int) int { return 0 }, // deterministic: always the minimum
	}
	return svc, settings, sales, products, customers, audit
}

func TestSettings_DefaultFeeIsFifteen(t *testing.T) {
	svc, _, _, _, _, _ := buildSettingsSvc()

	resp, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "15", resp.NetMarginFeePercentage.String())
	assert.Equal(t, model.SettingsID, resp.ID)
	assert.False(t, resp.AmazonIntegration.Connected)
}

func TestSettings_UpdatePinsGlobalID(t *testing.T) {
	svc, settings, _, _, _, _ := buildSettingsSvc()

	fee := d(20)
	resp, err := svc.Update(context.Background(), dto.UpdateSettingsRequest{NetMarginFeePercentage: &fee})
	require.NoError(t, err)
	assert.Equal(t, "20", resp.NetMarginFeePercentage.String())
	assert.Equal(t, model.SettingsID, settings.settings.ID)
}

func TestRegenerateAPIKey_Format(t *testing.T) {
	svc, settings, _, _, _, audit := buildSettingsSvc()

	resp, err := svc.RegenerateAPIKey(context.Background())
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^fungi_[0-9a-f]{32}$`), resp.APIKey)
	assert.Equal(t, resp.APIKey, settings.settings.APIKey)
	require.Len(t, audit.entries, 1)
	assert.Contains(t, audit.entries[0].Details, "clé API")

	// a second regeneration replaces the key
	resp2, err := svc.RegenerateAPIKey(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, resp.APIKey, resp2.APIKey)
}

func TestAmazonConnectDisconnect(t *testing.T) {
	svc, _, _, _, _, _ := buildSettingsSvc()

	connected, err := svc.AmazonConnect(context.Background())
	require.NoError(t, err)
	assert.True(t, connected.AmazonIntegration.Connected)

	disconnected, err := svc.AmazonDisconnect(context.Background())
	require.NoError(t, err)
	assert.False(t, disconnected.AmazonIntegration.Connected)
	assert.Nil(t, disconnected.AmazonIntegration.LastSync)
}

func TestAmazonSyncSales_RequiresAmazonProduct(t *testing.T) {
	svc, _, _, _, _, _ := buildSettingsSvc()

	_, err := svc.AmazonSyncSales(context.Background())
	assert.ErrorContains(t, err, "Produit Amazon non trouvé")
}

func TestAmazonSyncSales_CreatesMockSales(t *testing.T) {
	svc, _, sales, products, customers, audit := buildSettingsSvc()
	_ = products.Create(context.Background(), &model.Product{
		ID: AmazonProductSKU, SKU: AmazonProductSKU, Name: "Gummies AMZ",
		PurchasePrice: d(8.50), SalePrice: d(32.90), StockAmazon: 500,
	})

	resp, err := svc.AmazonSyncSales(context.Background())
	require.NoError(t, err)

	// randInt always 0 → 5 sales of 1 unit each
	assert.Equal(t, 5, resp.SalesCreated)
	require.NotNil(t, resp.Settings.AmazonIntegration.LastSync)

	all, _ := sales.List(context.Background())
	require.Len(t, all, 5)
	for _, s := range all {
		assert.Equal(t, model.ChannelAmazon, s.Channel)
		assert.Equal(t, "Amazon Sync", s.Source)
		assert.Equal(t, AmazonProductSKU, s.ProductID)
		assert.Equal(t, "32.9", s.TotalPrice.String())
		assert.Equal(t, "8.5", s.CostOfSale.String())
	}
	// one mock customer per sale, no dedupe
	assert.Len(t, customers.order, 5)

	p, _ := products.FindByID(context.Background(), AmazonProductSKU)
	assert.Equal(t, 495, p.StockAmazon)

	require.Len(t, audit.entries, 1)
	assert.Equal(t, model.AuditBatchImport, audit.entries[0].Action)
	assert.Equal(t, "amazon-sync", audit.entries[0].EntityID)
	assert.Contains(t, audit.entries[0].Details, "5 ventes synchronisées depuis Amazon.")
}
