package server

import (
	"github.com/labstack/echo/v4"

	"telestore/internal/config"
	"telestore/internal/handler"
)

// Handlers bundles every HTTP handler the server mounts.
type Handlers struct {
	Category *handler.CategoryHandler
	Product  *handler.ProductHandler
	Cart     *handler.CartHandler
	Order    *handler.OrderHandler
	User     *handler.UserHandler
}

func RegisterRoutes(e *echo.Echo, cfg config.Config, h Handlers) {
	h.Category.RegisterRoutes(e, cfg)
	h.Product.RegisterRoutes(e, cfg)
	h.Cart.RegisterRoutes(e)
	h.Order.RegisterRoutes(e, cfg)
	h.User.RegisterRoutes(e, cfg)
}
