package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/model"
)

type DonationRepository interface {
	Create(ctx context.Context, d *model.Donation) error
	List(ctx context.Context) ([]model.Donation, error)
}

type donationRepo struct{ db *gorm.DB }

func NewDonationRepository(db *gorm.DB) DonationRepository { return &donationRepo{db: db} }

func (r *donationRepo) Create(ctx context.Context, d *model.Donation) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *donationRepo) List(ctx context.Context) ([]model.Donation, error) {
	var donations []model.Donation
	err := r.db.WithContext(ctx).Order("donation_date DESC, id ASC").Find(&donations).Error
	return donations, err
}
