package service

import (
	"context"
	"fmt"

	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/dto"
	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/model"
	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/repository"
)

type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	List(ctx context.Context) ([]dto.ProductResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id string) error
}

type productService struct {
	repo  repository.ProductRepository
	audit AuditService
	clock Clock
}

func NewProductService(repo repository.ProductRepository, audit AuditService) ProductService {
	return &productService{repo: repo, audit: audit, clock: realClock{}}
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	p := &model.Product{
		ID:            req.SKU, // the SKU doubles as id
		Name:          req.Name,
		SKU:           req.SKU,
		PurchasePrice: req.PurchasePrice,
		SalePrice:     req.SalePrice,
		InitialStock:  req.InitialStock,
		StockChezMoi:  req.StockChezMoi,
		StockAmazon:   req.StockAmazon,
		CreatedAt:     s.clock.Now(),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create product %s: %w", req.SKU, err)
	}
	if err := s.audit.Record(ctx, model.AuditCreate, model.AuditEntityProduct, p.ID,
		fmt.Sprintf("Produit %q créé.", p.Name)); err != nil {
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *productService) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, *productToResponse(&products[i]))
	}
	return out, nil
}

func (s *productService) Update(ctx context.Context, id string, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := s.repo.Mutate(ctx, id, func(p *model.Product) error {
		if req.Name != nil {
			p.Name = *req.Name
		}
		if req.PurchasePrice != nil {
			p.PurchasePrice = *req.PurchasePrice
		}
		if req.SalePrice != nil {
			p.SalePrice = *req.SalePrice
		}
		if req.InitialStock != nil {
			p.InitialStock = *req.InitialStock
		}
		if req.StockChezMoi != nil {
			p.StockChezMoi = *req.StockChezMoi
		}
		if req.StockAmazon != nil {
			p.StockAmazon = *req.StockAmazon
		}
		return nil
	})
	if err != nil {
		return nil, mapNotFound(err)
	}
	if err := s.audit.Record(ctx, model.AuditUpdate, model.AuditEntityProduct, id,
		fmt.Sprintf("Produit %q mis à jour.", p.Name)); err != nil {
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *productService) Delete(ctx context.Context, id string) error {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapNotFound(err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapNotFound(err)
	}
	return s.audit.Record(ctx, model.AuditDelete, model.AuditEntityProduct, id,
		fmt.Sprintf("Produit %q supprimé.", p.Name))
}

func productToResponse(p *model.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		SKU:           p.SKU,
		PurchasePrice: p.PurchasePrice,
		SalePrice:     p.SalePrice,
		InitialStock:  p.InitialStock,
		StockChezMoi:  p.StockChezMoi,
		StockAmazon:   p.StockAmazon,
		CreatedAt:     p.CreatedAt,
	}
}
