package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"artspace/internal/domain/model"
	repo "artspace/internal/repository"
)

type ProductUsecase struct {
	products repo.ProductRepository
	idGen    IDGenerator
	clock    Clock
}

func NewProductUsecase(products repo.ProductRepository, idGen IDGenerator, clock Clock) *ProductUsecase {
	return &ProductUsecase{
		products: products,
		idGen:    idGen,
		clock:    clock,
	}
}

type ListProductsInput struct {
	Keyword  string
	Category string
}

type ProductInput struct {
	Title       string
	Artist      string
	Price       int64
	Description string
	Category    string
	ImageURL    string
	Status      string
}

// Listは公開作品一覧。キーワードはまずタイトルで探し、
// ヒットしなければ作家名で探す。
func (u *ProductUsecase) List(ctx context.Context, in ListProductsInput) ([]model.Product, error) {
	if kw := strings.TrimSpace(in.Keyword); kw != "" {
		byTitle, err := u.products.SearchByTitle(ctx, kw)
		if err != nil {
			return []model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if len(byTitle) > 0 {
			return byTitle, nil
		}

		byArtist, err := u.products.SearchByArtist(ctx, kw)
		if err != nil {
			return []model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return byArtist, nil
	}

	if c := strings.TrimSpace(in.Category); c != "" {
		items, err := u.products.FindByCategory(ctx, c)
		if err != nil {
			return []model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		return items, nil
	}

	items, err := u.products.FindAll(ctx)
	if err != nil {
		return []model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *ProductUsecase) Get(ctx context.Context, productID string) (model.Product, error) {
	p, err := u.products.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *ProductUsecase) Create(ctx context.Context, in ProductInput) (model.Product, error) {
	if strings.TrimSpace(in.Title) == "" {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if in.Price < 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid price")
	}

	status := model.ProductStatus(in.Status)
	if status == "" {
		status = model.ProductStatusAvailable
	}

	now := u.clock.Now()
	p := model.Product{
		ID:          u.idGen.NewID(),
		Title:       in.Title,
		Artist:      in.Artist,
		Price:       in.Price,
		Description: in.Description,
		Category:    in.Category,
		ImageURL:    in.ImageURL,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := u.products.Create(ctx, &p); err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *ProductUsecase) Update(ctx context.Context, productID string, in ProductInput) (model.Product, error) {
	p, err := u.products.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	p.Title = in.Title
	p.Artist = in.Artist
	p.Price = in.Price
	p.Description = in.Description
	p.Category = in.Category
	p.ImageURL = in.ImageURL
	p.Status = model.ProductStatus(in.Status)
	p.UpdatedAt = u.clock.Now()

	if err := u.products.Save(ctx, &p); err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

func (u *ProductUsecase) Delete(ctx context.Context, productID string) error {
	err := u.products.Delete(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
