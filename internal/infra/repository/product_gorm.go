package repository

import (
	"context"
	"errors"

	"artspace/internal/domain/model"
	repo "artspace/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

func (r *ProductGormRepository) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *ProductGormRepository) FindByID(ctx context.Context, productID string) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("id = ?", productID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	var items []model.Product
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&items).Error
	if err != nil {
		return []model.Product{}, err
	}
	return items, nil
}

func (r *ProductGormRepository) FindByCategory(ctx context.Context, category string) ([]model.Product, error) {
	var items []model.Product
	err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("created_at desc").
		Find(&items).Error
	if err != nil {
		return []model.Product{}, err
	}
	return items, nil
}

func (r *ProductGormRepository) SearchByTitle(ctx context.Context, keyword string) ([]model.Product, error) {
	return r.searchColumn(ctx, "title", keyword)
}

func (r *ProductGormRepository) SearchByArtist(ctx context.Context, keyword string) ([]model.Product, error) {
	return r.searchColumn(ctx, "artist", keyword)
}

func (r *ProductGormRepository) searchColumn(ctx context.Context, column string, keyword string) ([]model.Product, error) {
	var items []model.Product
	err := r.db.WithContext(ctx).
		Where(column+" ILIKE ?", "%"+keyword+"%").
		Order("created_at desc").
		Find(&items).Error
	if err != nil {
		return []model.Product{}, err
	}
	return items, nil
}

func (r *ProductGormRepository) Save(ctx context.Context, product *model.Product) error {
	res := r.db.WithContext(ctx).Save(product)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ProductGormRepository) Delete(ctx context.Context, productID string) error {
	res := r.db.WithContext(ctx).Where("id = ?", productID).Delete(&model.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
