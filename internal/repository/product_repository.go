package repository

import (
	"context"

	"artspace/internal/domain/model"
)

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, productID string) (model.Product, error)
	FindAll(ctx context.Context) ([]model.Product, error)
	FindByCategory(ctx context.Context, category string) ([]model.Product, error)
	SearchByTitle(ctx context.Context, keyword string) ([]model.Product, error)
	SearchByArtist(ctx context.Context, keyword string) ([]model.Product, error)
	Save(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, productID string) error
}
