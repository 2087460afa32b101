package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"telestore/internal/config"
	"telestore/internal/middleware"
	"telestore/internal/usecase"
)

// User registration and admin user management.
type UserHandler struct {
	uc *usecase.UserUsecase
}

// DI
func NewUserHandler(uc *usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

type RegisterUserRequest struct {
	TgID int64 `json:"tg_id"`
}

func (h *UserHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	e.POST("/users", h.register)
	e.GET("/users/:tg_id", h.get)

	g := e.Group("/admin/users")
	g.Use(middleware.AuthAdmin(cfg))
	g.GET("", h.list)
	g.DELETE("/:tg_id", h.delete)
}

// register is called on first contact and is idempotent.
func (h *UserHandler) register(c echo.Context) error {
	var req RegisterUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Register(c.Request().Context(), req.TgID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *UserHandler) get(c echo.Context) error {
	tgID, ok := parseIDParam(c, "tg_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid tg_id"})
	}

	out, err := h.uc.Get(c.Request().Context(), tgID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) list(c echo.Context) error {
	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
		}
		page = v
	}

	out, err := h.uc.List(c.Request().Context(), page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// delete removes the user; the cart cascades away, orders stay with
// tg_id nulled.
func (h *UserHandler) delete(c echo.Context) error {
	tgID, ok := parseIDParam(c, "tg_id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid tg_id"})
	}

	if err := h.uc.Delete(c.Request().Context(), tgID); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
