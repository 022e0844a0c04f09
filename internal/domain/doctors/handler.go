package doctors

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hmspro/hms/internal/platform/auth"
	"github.com/hmspro/hms/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	// The provider directory is front-desk territory, reads included.
	g := api.Group("", auth.RequireRole(auth.RoleAdmin, auth.RoleReceptionist))
	g.GET("/doctors", h.List)
	g.GET("/doctors/:id", h.Get)
	g.POST("/doctors", h.Create)
	g.PUT("/doctors/:id", h.Update)
}

func (h *Handler) List(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, err := h.svc.List(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(pagination.Window(items, pg), len(items), pg.Limit, pg.Offset))
}

func (h *Handler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	d, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "doctor not found")
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) Create(c echo.Context) error {
	var d Draft
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	doc, errs, err := h.svc.Create(c.Request().Context(), d)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if errs.Any() {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": errs})
	}
	return c.JSON(http.StatusCreated, doc)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var d Draft
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	doc, errs, err := h.svc.Update(c.Request().Context(), id, d)
	if err == ErrNotFound {
		return echo.NewHTTPError(http.StatusNotFound, "doctor not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if errs.Any() {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": errs})
	}
	return c.JSON(http.StatusOK, doc)
}
