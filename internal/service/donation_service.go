package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/dto"
	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/model"
	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/repository"
)

type DonationService interface {
	List(ctx context.Context) ([]dto.DonationResponse, error)
	Create(ctx context.Context, req dto.CreateDonationRequest) (*dto.DonationResponse, error)
}

type donationService struct {
	donations repository.DonationRepository
	products  repository.ProductRepository
	audit     AuditService
	clock     Clock
}

func NewDonationService(
	donations repository.DonationRepository,
	products repository.ProductRepository,
	audit AuditService,
) DonationService {
	return &donationService{donations: donations, products: products, audit: audit, clock: realClock{}}
}

func (s *donationService) List(ctx context.Context) ([]dto.DonationResponse, error) {
	donations, err := s.donations.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DonationResponse, 0, len(donations))
	for i := range donations {
		out = append(out, *donationToResponse(&donations[i]))
	}
	return out, nil
}

// Create gives away units from the local stock. Donations only ever draw
// from StockChezMoi, never from the Amazon bucket.
func (s *donationService) Create(ctx context.Context, req dto.CreateDonationRequest) (*dto.DonationResponse, error) {
	if _, err := s.products.FindByID(ctx, req.ProductID); err != nil {
		return nil, fmt.Errorf("product with SKU %s not found", req.ProductID)
	}
	if _, err := s.products.Mutate(ctx, req.ProductID, func(p *model.Product) error {
		p.StockChezMoi -= req.Quantity
		return nil
	}); err != nil {
		return nil, err
	}

	donation := &model.Donation{
		ID:           uuid.NewString(),
		ProductID:    req.ProductID,
		Quantity:     req.Quantity,
		Reason:       req.Reason,
		DonationDate: s.clock.Now(),
	}
	if err := s.donations.Create(ctx, donation); err != nil {
		return nil, err
	}
	if err := s.audit.Record(ctx, model.AuditCreate, model.AuditEntityDonation, donation.ID,
		fmt.Sprintf("Don de %d unité(s) du produit %s.", donation.Quantity, donation.ProductID)); err != nil {
		return nil, err
	}
	return donationToResponse(donation), nil
}

func donationToResponse(d *model.Donation) *dto.DonationResponse {
	return &dto.DonationResponse{
		ID:           d.ID,
		ProductID:    d.ProductID,
		Quantity:     d.Quantity,
		Reason:       d.Reason,
		DonationDate: d.DonationDate,
	}
}
