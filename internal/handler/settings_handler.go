package handler

import (
	"net/http"

	"artspace/internal/config"
	"artspace/internal/middleware"
	"artspace/internal/usecase"

	"github.com/labstack/echo/v4"
)

type SettingsHandler struct {
	uc *usecase.SettingsUsecase
}

func NewSettingsHandler(uc *usecase.SettingsUsecase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

type HomeSettingsRequest struct {
	HeroImageURL      string   `json:"hero_image_url"`
	FeaturedImageURLs []string `json:"featured_image_urls"`
}

func (h *SettingsHandler) RegisterRoutes(api *echo.Group, cfg config.Config) {
	g := api.Group("/settings")

	//閲覧は公開
	g.GET("/home", h.getHome)

	//更新は管理者だけ
	g.PUT("/home", h.updateHome, middleware.AuthJWT(cfg), middleware.AdminRoleGuard())
}

func (h *SettingsHandler) getHome(c echo.Context) error {
	out, err := h.uc.GetHome(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SettingsHandler) updateHome(c echo.Context) error {
	var req HomeSettingsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.UpdateHome(c.Request().Context(), usecase.HomeSettingsInput{
		HeroImageURL:      req.HeroImageURL,
		FeaturedImageURLs: req.FeaturedImageURLs,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
