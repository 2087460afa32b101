package server

import (
	"github.com/labstack/echo/v4"

	"telestore/internal/config"
	"telestore/internal/middleware"
)

func Start(cfg config.Config, h Handlers) error {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestID())

	RegisterRoutes(e, cfg, h)

	addr := cfg.Port
	if addr == "" {
		addr = "8080"
	}
	if addr[0] != ':' {
		addr = ":" + addr
	}
	return e.Start(addr)
}
