package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/model"
)

type GoalRepository interface {
	FindByID(ctx context.Context, id string) (*model.Goal, error)
	List(ctx context.Context) ([]model.Goal, error)
	// Save upserts by id ("{year}-{month:02d}"), leaving created_at at its
	// original value when the row already exists.
	Save(ctx context.Context, g *model.Goal) error
	Delete(ctx context.Context, id string) error
}

type goalRepo struct{ db *gorm.DB }

func NewGoalRepository(db *gorm.DB) GoalRepository { return &goalRepo{db: db} }

func (r *goalRepo) FindByID(ctx context.Context, id string) (*model.Goal, error) {
	var g model.Goal
	err := r.db.WithContext(ctx).First(&g, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *goalRepo) List(ctx context.Context) ([]model.Goal, error) {
	var goals []model.Goal
	err := r.db.WithContext(ctx).Order("id ASC").Find(&goals).Error
	return goals, err
}

func (r *goalRepo) Save(ctx context.Context, g *model.Goal) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"month", "year", "sales_target", "revenue_target"}),
	}).Create(g).Error
}

func (r *goalRepo) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&model.Goal{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
