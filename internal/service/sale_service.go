package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/dto"
	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/model"
	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/repository"
	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/worker"
)

type SaleService interface {
	List(ctx context.Context) ([]dto.SaleResponse, error)
	Create(ctx context.Context, req dto.CreateSaleRequest) (*dto.CreateSaleResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateSaleRequest) (*dto.SaleResponse, error)
	Delete(ctx context.Context, id string) error
	Batch(ctx context.Context, rows []dto.BatchSaleRow, source string) (*dto.BatchImportResponse, error)
	ImportXLSX(ctx context.Context, r io.Reader) (*dto.BatchImportResponse, error)
	CreateFromWebhook(ctx context.Context, req dto.WebhookSaleRequest) (*dto.WebhookSaleResponse, error)
}

type saleService struct {
	sales     repository.SaleRepository
	products  repository.ProductRepository
	customers repository.CustomerRepository
	audit     AuditService
	alerts    *worker.Dispatcher // nil when async alerts are disabled (tests)
	clock     Clock
}

func NewSaleService(
	sales repository.SaleRepository,
	products repository.ProductRepository,
	customers repository.CustomerRepository,
	audit AuditService,
	alerts *worker.Dispatcher,
) SaleService {
	return &saleService{
		sales:     sales,
		products:  products,
		customers: customers,
		audit:     audit,
		alerts:    alerts,
		clock:     realClock{},
	}
}

func (s *saleService) List(ctx context.Context) ([]dto.SaleResponse, error) {
	sales, err := s.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for i := range sales {
		out = append(out, *saleToResponse(&sales[i]))
	}
	return out, nil
}

// adjustStock applies delta (negative = units leaving) to the stock bucket
// the channel draws from, then fires a low-stock alert when the product
// lands in the alert band. This is a mutation on Product only — the Sale
// row is written separately, with no transaction tying the two together.
func (s *saleService) adjustStock(ctx context.Context, sku, channel string, delta int) error {
	p, err := s.products.Mutate(ctx, sku, func(p *model.Product) error {
		if channel == model.ChannelAmazon {
			p.StockAmazon += delta
		} else {
			p.StockChezMoi += delta
		}
		return nil
	})
	if err != nil {
		return err
	}
	if delta < 0 {
		s.notifyLowStock(ctx, p)
	}
	return nil
}

func (s *saleService) notifyLowStock(ctx context.Context, p *model.Product) {
	if s.alerts == nil || !p.IsLowStock() {
		return
	}
	if err := s.alerts.EnqueueLowStockAlert(ctx, worker.LowStockAlertPayload{
		SKU:        p.SKU,
		Name:       p.Name,
		TotalStock: p.TotalStock(),
	}); err != nil {
		log.Error().Err(err).Str("sku", p.SKU).Msg("failed to enqueue low-stock alert")
	}
}

// resolveCustomer returns an existing customer by id, or creates one from a
// name, deduplicating case-insensitively when dedupeByName is set.
func (s *saleService) resolveCustomer(ctx context.Context, id, name, email, source string, dedupeByName bool) (*model.Customer, error) {
	if id != "" {
		c, err := s.customers.FindByID(ctx, id)
		if err != nil {
			return nil, mapNotFound(err)
		}
		return c, nil
	}
	if name == "" {
		return nil, fmt.Errorf("customerId or customerName required")
	}
	if dedupeByName {
		if c, err := s.customers.FindByName(ctx, name); err == nil {
			return c, nil
		}
	}
	c := &model.Customer{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Source:    source,
		CreatedAt: s.clock.Now(),
	}
	if err := s.customers.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *saleService) Create(ctx context.Context, req dto.CreateSaleRequest) (*dto.CreateSaleResponse, error) {
	source := req.Source
	if source == "" {
		source = "Manual Entry"
	}
	customer, err := s.resolveCustomer(ctx, req.CustomerID, req.CustomerName, "", source, false)
	if err != nil {
		return nil, err
	}

	product, err := s.products.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("product with SKU %s not found", req.ProductID)
	}

	channel := req.Channel
	if channel == "" {
		channel = model.ChannelUnknown
	}
	if err := s.adjustStock(ctx, product.ID, channel, -req.Quantity); err != nil {
		return nil, err
	}

	saleDate := req.SaleDate
	if saleDate.IsZero() {
		saleDate = s.clock.Now()
	}
	sale := &model.Sale{
		ID:         uuid.NewString(),
		CustomerID: customer.ID,
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
		TotalPrice: req.TotalPrice,
		Source:     req.Source,
		SaleDate:   saleDate,
		Channel:    channel,
		CostOfSale: product.PurchasePrice.Mul(decimal.NewFromInt(int64(req.Quantity))),
		PromoCode:  req.PromoCode,
	}
	if err := s.sales.Create(ctx, sale); err != nil {
		return nil, err
	}
	if err := s.audit.Record(ctx, model.AuditCreate, model.AuditEntitySale, sale.ID,
		fmt.Sprintf("Vente créée pour le client %s.", customer.ID)); err != nil {
		return nil, err
	}
	return &dto.CreateSaleResponse{
		Sale:     *saleToResponse(sale),
		Customer: *customerToResponse(customer),
	}, nil
}

func (s *saleService) Update(ctx context.Context, id string, req dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	old, err := s.sales.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	product, err := s.products.FindByID(ctx, old.ProductID)
	if err != nil {
		return nil, fmt.Errorf("product for sale not found")
	}

	// Stock moves only when the quantity actually changes, always against
	// the sale's original channel. costOfSale is then re-frozen from the
	// product's *current* purchase price; otherwise the historical value
	// stays untouched.
	newQuantity := old.Quantity
	if req.Quantity != nil {
		newQuantity = *req.Quantity
	}
	costOfSale := old.CostOfSale
	if diff := newQuantity - old.Quantity; diff != 0 {
		if err := s.adjustStock(ctx, old.ProductID, old.Channel, -diff); err != nil {
			return nil, err
		}
		costOfSale = product.PurchasePrice.Mul(decimal.NewFromInt(int64(newQuantity)))
	}

	updated, err := s.sales.Mutate(ctx, id, func(sale *model.Sale) error {
		if req.CustomerID != nil {
			sale.CustomerID = *req.CustomerID
		}
		sale.Quantity = newQuantity
		if req.TotalPrice != nil {
			sale.TotalPrice = *req.TotalPrice
		}
		if req.Source != nil {
			sale.Source = *req.Source
		}
		if req.SaleDate != nil {
			sale.SaleDate = *req.SaleDate
		}
		if req.Channel != nil {
			sale.Channel = *req.Channel
		}
		if req.PromoCode != nil {
			sale.PromoCode = *req.PromoCode
		}
		sale.CostOfSale = costOfSale
		return nil
	})
	if err != nil {
		return nil, mapNotFound(err)
	}
	if err := s.audit.Record(ctx, model.AuditUpdate, model.AuditEntitySale, id,
		fmt.Sprintf("Vente pour le client %s mise à jour.", old.CustomerID)); err != nil {
		return nil, err
	}
	return saleToResponse(updated), nil
}

func (s *saleService) Delete(ctx context.Context, id string) error {
	sale, err := s.sales.FindByID(ctx, id)
	if err != nil {
		return mapNotFound(err)
	}
	// Best effort: a sale against a since-deleted product is still removable.
	if err := s.adjustStock(ctx, sale.ProductID, sale.Channel, sale.Quantity); err != nil {
		log.Warn().Err(err).Str("sku", sale.ProductID).Msg("stock not restored on sale delete")
	}
	if err := s.sales.Delete(ctx, id); err != nil {
		return mapNotFound(err)
	}
	return s.audit.Record(ctx, model.AuditDelete, model.AuditEntitySale, id,
		fmt.Sprintf("Vente pour le client %s supprimée.", sale.CustomerID))
}

// Batch imports rows sequentially: one customer lookup/create, one sale
// write, one stock mutate per row. There is no partial-failure recovery —
// a failure mid-loop leaves prior rows committed (known limitation).
func (s *saleService) Batch(ctx context.Context, rows []dto.BatchSaleRow, source string) (*dto.BatchImportResponse, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	productBySKU := make(map[string]*model.Product, len(products))
	for i := range products {
		productBySKU[products[i].SKU] = &products[i]
	}

	imported := 0
	for i, row := range rows {
		rowSource := row.Source
		if rowSource == "" {
			rowSource = source
		}
		customer, err := s.resolveCustomer(ctx, "", row.CustomerName, "", rowSource, true)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		channel := row.Channel
		if channel == "" {
			channel = model.ChannelSite
		}
		costOfSale := decimal.Zero
		if p, ok := productBySKU[row.ProductSKU]; ok {
			costOfSale = p.PurchasePrice.Mul(decimal.NewFromInt(int64(row.Quantity)))
		}
		saleDate := row.SaleDate
		if saleDate.IsZero() {
			saleDate = s.clock.Now()
		}
		sale := &model.Sale{
			ID:         uuid.NewString(),
			CustomerID: customer.ID,
			ProductID:  row.ProductSKU,
			Quantity:   row.Quantity,
			TotalPrice: row.TotalPrice,
			Source:     row.Source,
			SaleDate:   saleDate,
			Channel:    channel,
			CostOfSale: costOfSale,
		}
		if err := s.sales.Create(ctx, sale); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		if _, ok := productBySKU[row.ProductSKU]; ok {
			if err := s.adjustStock(ctx, row.ProductSKU, channel, -row.Quantity); err != nil {
				return nil, fmt.Errorf("row %d: %w", i+1, err)
			}
		}
		imported++
	}

	if err := s.audit.Record(ctx, model.AuditBatchImport, model.AuditEntitySale, "multiple",
		fmt.Sprintf("%d ventes importées.", imported)); err != nil {
		return nil, err
	}
	return &dto.BatchImportResponse{
		Message:  fmt.Sprintf("%d sales imported successfully.", imported),
		Imported: imported,
	}, nil
}

func (s *saleService) ImportXLSX(ctx context.Context, r io.Reader) (*dto.BatchImportResponse, error) {
	rows, err := parseSalesWorkbook(r)
	if err != nil {
		return nil, err
	}
	return s.Batch(ctx, rows, "XLSX Import")
}

func (s *saleService) CreateFromWebhook(ctx context.Context, req dto.WebhookSaleRequest) (*dto.WebhookSaleResponse, error) {
	customer, err := s.resolveCustomer(ctx, "", req.Customer.Name, req.Customer.Email, webhookSource(req.Customer.Source), true)
	if err != nil {
		return nil, err
	}
	product, err := s.products.FindByID(ctx, req.Product.SKU)
	if err != nil {
		return nil, fmt.Errorf("product with SKU %s not found", req.Product.SKU)
	}

	channel := req.Sale.Channel
	if channel == "" {
		channel = model.ChannelSite
	}
	if err := s.adjustStock(ctx, product.ID, channel, -req.Sale.Quantity); err != nil {
		return nil, err
	}

	saleDate := s.clock.Now()
	if req.Sale.SaleDate != nil {
		saleDate = *req.Sale.SaleDate
	}
	sale := &model.Sale{
		ID:         uuid.NewString(),
		CustomerID: customer.ID,
		ProductID:  product.SKU,
		Quantity:   req.Sale.Quantity,
		TotalPrice: req.Sale.TotalPrice,
		Source:     customer.Source,
		SaleDate:   saleDate,
		Channel:    channel,
		CostOfSale: product.PurchasePrice.Mul(decimal.NewFromInt(int64(req.Sale.Quantity))),
		PromoCode:  req.Sale.PromoCode,
	}
	if err := s.sales.Create(ctx, sale); err != nil {
		return nil, err
	}
	if err := s.audit.Record(ctx, model.AuditCreate, model.AuditEntitySale, sale.ID,
		fmt.Sprintf("Vente créée via webhook pour le client %s.", customer.Name)); err != nil {
		return nil, err
	}
	return &dto.WebhookSaleResponse{Message: "Sale created successfully", SaleID: sale.ID}, nil
}

func webhookSource(source string) string {
	if strings.TrimSpace(source) == "" {
		return "Webhook"
	}
	return source
}

func saleToResponse(s *model.Sale) *dto.SaleResponse {
	return &dto.SaleResponse{
		ID:         s.ID,
		CustomerID: s.CustomerID,
		ProductID:  s.ProductID,
		Quantity:   s.Quantity,
		TotalPrice: s.TotalPrice,
		Source:     s.Source,
		SaleDate:   s.SaleDate,
		Channel:    s.Channel,
		CostOfSale: s.CostOfSale,
		PromoCode:  s.PromoCode,
	}
}

func customerToResponse(c *model.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Source:    c.Source,
		CreatedAt: c.CreatedAt,
	}
}
