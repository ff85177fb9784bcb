package server

import (
	"artspace/internal/config"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	api := e.Group("/api")

	h.Auth.RegisterRoutes(api)
	h.Products.RegisterRoutes(api, cfg)
	h.Orders.RegisterRoutes(api, cfg)
	h.Chat.RegisterRoutes(api, cfg)
	h.Settings.RegisterRoutes(api, cfg)
	h.Upload.RegisterRoutes(api)

	//アップロード済み画像の配信
	e.Static("/uploads/images", cfg.UploadDir)
}
