package server

import (
	"artspace/internal/config"
	"artspace/internal/handler"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

type Handlers struct {
	Auth     *handler.AuthHandler
	Products *handler.ProductHandler
	Orders   *handler.OrderHandler
	Chat     *handler.ChatHandler
	Settings *handler.SettingsHandler
	Upload   *handler.UploadHandler
}

func Start(cfg config.Config, h Handlers) error {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	RegisterRoutes(e, cfg, h)

	return e.Start(":" + cfg.Port)
}
