package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Zgoubnight/new-version-thefunguy-compta/internal/model"
)

// SettingsRepository manages the single "global" settings row.
// Get falls back to the default initial state without persisting it;
// Mutate creates the row from defaults first when absent, so the first
// write materializes the singleton.
type SettingsRepository interface {
	Get(ctx context.Context) (*model.Settings, error)
	Mutate(ctx context.Context, fn func(*model.Settings) error) (*model.Settings, error)
}

type settingsRepo struct{ db *gorm.DB }

func NewSettingsRepository(db *gorm.DB) SettingsRepository { return &settingsRepo{db: db} }

func (r *settingsRepo) Get(ctx context.Context) (*model.Settings, error) {
	var s model.Settings
	err := r.db.WithContext(ctx).First(&s, "id = ?", model.SettingsID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.DefaultSettings(), nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *settingsRepo) Mutate(ctx context.Context, fn func(*model.Settings) error) (*model.Settings, error) {
	var s model.Settings
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&s, "id = ?", model.SettingsID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s = *model.DefaultSettings()
			if err := tx.Create(&s).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}
		if err := fn(&s); err != nil {
			return err
		}
		s.ID = model.SettingsID
		return tx.Save(&s).Error
	})
	if err != nil {
		return nil, err
	}
	return &s, nil
}
