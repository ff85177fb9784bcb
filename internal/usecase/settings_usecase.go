package usecase

import (
	"context"
	"errors"
	"net/http"

	"artspace/internal/domain/model"
	repo "artspace/internal/repository"
)

type SettingsUsecase struct {
	settings repo.HomeSettingsRepository
	idGen    IDGenerator
}

func NewSettingsUsecase(settings repo.HomeSettingsRepository, idGen IDGenerator) *SettingsUsecase {
	return &SettingsUsecase{settings: settings, idGen: idGen}
}

type HomeSettingsInput struct {
	HeroImageURL      string
	FeaturedImageURLs []string
}

// 設定行がまだ無いときに返すデフォルト
func defaultHomeSettings() model.HomeSettings {
	return model.HomeSettings{
		HeroImageURL: "https://images.unsplash.com/photo-1579783900882-c0d3dad7b119?w=1000",
		FeaturedImageURLs: []string{
			"https://images.unsplash.com/photo-1516905041604-7935af78f572?w=800",
			"https://images.unsplash.com/photo-1549490349-8643362247b5?w=800",
			"https://images.unsplash.com/photo-1541963463532-d68292c34b19?w=800",
			"https://images.unsplash.com/photo-1579783902614-a3fb3927b6a5?w=800",
		},
	}
}

// GetHomeは唯一の設定行を返す。無ければデフォルト値を返す（保存はしない）。
func (u *SettingsUsecase) GetHome(ctx context.Context) (model.HomeSettings, error) {
	s, err := u.settings.FindFirst(ctx)
	if errors.Is(err, repo.ErrNotFound) {
		return defaultHomeSettings(), nil
	}
	if err != nil {
		return model.HomeSettings{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return s, nil
}

// UpdateHomeは設定行を上書きする。無ければ作る（1行だけ）。
func (u *SettingsUsecase) UpdateHome(ctx context.Context, in HomeSettingsInput) (model.HomeSettings, error) {
	s, err := u.settings.FindFirst(ctx)
	if errors.Is(err, repo.ErrNotFound) {
		s = model.HomeSettings{ID: u.idGen.NewID()}
	} else if err != nil {
		return model.HomeSettings{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	s.HeroImageURL = in.HeroImageURL
	s.FeaturedImageURLs = in.FeaturedImageURLs

	if err := u.settings.Save(ctx, &s); err != nil {
		return model.HomeSettings{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return s, nil
}
