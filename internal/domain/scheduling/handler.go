package scheduling

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
	// Every signed-in role can see the book; patients follow their own
	// visits there.
	api.GET("/appointments", h.List)
	api.GET("/appointments/:id", h.Get)

	write := api.Group("", auth.RequireRole(auth.RoleAdmin, auth.RoleDoctor, auth.RoleNurse, auth.RoleReceptionist))
	write.POST("/appointments", h.Create)
	write.PUT("/appointments/:id", h.Update)
	write.POST("/appointments/:id/cancel", h.Cancel)
}

func filterFromQuery(c echo.Context) Filter {
	var f Filter
	if v, err := strconv.Atoi(c.QueryParam("patient_id")); err == nil {
		f.PatientID = v
	}
	if v, err := strconv.Atoi(c.QueryParam("doctor_id")); err == nil {
		f.DoctorID = v
	}
	f.Status = Status(c.QueryParam("status"))
	return f
}

func (h *Handler) List(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, err := h.svc.List(c.Request().Context(), filterFromQuery(c))
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
	a, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) Create(c echo.Context) error {
	var d Draft
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a, errs, err := h.svc.Create(c.Request().Context(), d)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if errs.Any() {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": errs})
	}
	return c.JSON(http.StatusCreated, a)
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
	a, errs, err := h.svc.Update(c.Request().Context(), id, d)
	switch {
	case err == ErrNotFound:
		return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
	case err == ErrCancelled:
		return echo.NewHTTPError(http.StatusConflict, "appointment is cancelled")
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if errs.Any() {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": errs})
	}
	return c.JSON(http.StatusOK, a)
}

func (h *Handler) Cancel(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	a, err := h.svc.Cancel(c.Request().Context(), id)
	if err == ErrNotFound {
		return echo.NewHTTPError(http.StatusNotFound, "appointment not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, a)
}
