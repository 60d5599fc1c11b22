package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/model"
)

type ReportRepository interface {
	FindByID(ctx context.Context, id string) (*model.Report, error)
	List(ctx context.Context) ([]model.Report, error)
	// Save upserts by id, preserving created_at of an existing row so a
	// report keeps the timestamp of its first computation.
	Save(ctx context.Context, rep *model.Report) error
}

type reportRepo struct{ db *gorm.DB }

func NewReportRepository(db *gorm.DB) ReportRepository { return &reportRepo{db: db} }

func (r *reportRepo) FindByID(ctx context.Context, id string) (*model.Report, error) {
	var rep model.Report
	err := r.db.WithContext(ctx).First(&rep, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

func (r *reportRepo) List(ctx context.Context) ([]model.Report, error) {
	var reports []model.Report
	err := r.db.WithContext(ctx).Order("id ASC").Find(&reports).Error
	return reports, err
}

func (r *reportRepo) Save(ctx context.Context, rep *model.Report) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"month", "year", "total_sales", "revenue", "gross_margin", "net_margin"}),
	}).Create(rep).Error
}
