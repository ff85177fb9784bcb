package repository

import (
	"context"
	"errors"

	"artspace/internal/domain/model"
	repo "artspace/internal/repository"

	"gorm.io/gorm"
)

type HomeSettingsGormRepository struct {
	db *gorm.DB
}

func NewHomeSettingsGormRepository(db *gorm.DB) *HomeSettingsGormRepository {
	return &HomeSettingsGormRepository{db: db}
}

func (r *HomeSettingsGormRepository) FindFirst(ctx context.Context) (model.HomeSettings, error) {
	var s model.HomeSettings
	err := r.db.WithContext(ctx).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.HomeSettings{}, repo.ErrNotFound
	}
	if err != nil {
		return model.HomeSettings{}, err
	}
	return s, nil
}

func (r *HomeSettingsGormRepository) Save(ctx context.Context, settings *model.HomeSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
