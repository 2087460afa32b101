package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"telestore/internal/config"
	"telestore/internal/middleware"
	"telestore/internal/usecase"
)

// Checkout and order tracking for users, order management for admins.
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

type CheckoutRequest struct {
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	DeliveryMethod string `json:"delivery_method"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	e.POST("/users/:tg_id/orders", h.checkout)
	e.GET("/users/:tg_id/orders", h.listUserOrders)
	// Tracking by the human-facing order number.
	e.GET("/orders/:order_number", h.getByNumber)

	g := e.Group("/admin/orders")
	g.Use(middleware.AuthAdmin(cfg))
	g.GET("", h.listAdmin)
	g.GET("/counts", h.counts)
	g.GET("/:id", h.getByID)
	g.PATCH("/:id/status", h.updateStatus)
	g.DELETE("/:id", h.delete)
}

func (h *OrderHandler) checkout(c echo.Context) error {
	tgID, ok := parseIDParam(c, "tg_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid tg_id"})
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Checkout(c.Request().Context(), usecase.CheckoutInput{
		TgID:           tgID,
		Name:           req.Name,
		Phone:          req.Phone,
		Address:        req.Address,
		DeliveryMethod: req.DeliveryMethod,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *OrderHandler) listUserOrders(c echo.Context) error {
	tgID, ok := parseIDParam(c, "tg_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid tg_id"})
	}

	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil || p <= 0 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
		}
		page = p
	}

	out, err := h.uc.ListUserOrders(c.Request().Context(), tgID, page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) getByNumber(c echo.Context) error {
	out, err := h.uc.GetOrderByNumber(c.Request().Context(), c.Param("order_number"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) listAdmin(c echo.Context) error {
	in := usecase.ListOrdersInput{Status: c.QueryParam("status")}

	if raw := c.QueryParam("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page <= 0 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
		}
		in.Page = page
	}
	if raw := c.QueryParam("tg_id"); raw != "" {
		tgID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || tgID <= 0 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid tg_id"})
		}
		in.TgID = &tgID
	}

	out, err := h.uc.ListOrders(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) counts(c echo.Context) error {
	out, err := h.uc.CountsByStatus(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) getByID(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.GetOrder(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) updateStatus(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) delete(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.DeleteOrder(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
