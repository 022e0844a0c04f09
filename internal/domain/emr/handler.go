package emr

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
	// The chart is clinical territory; front desk and patients stay out.
	g := api.Group("", auth.RequireRole(auth.RoleAdmin, auth.RoleDoctor, auth.RoleNurse))
	g.GET("/emr/records", h.List)
	g.GET("/emr/records/:id", h.Get)
	g.POST("/emr/records", h.Create)
	g.PUT("/emr/records/:id", h.Update)
}

func author(c echo.Context) string {
	if ident := auth.IdentityFromContext(c.Request().Context()); ident != nil {
		return ident.Name
	}
	return ""
}

func (h *Handler) List(c echo.Context) error {
	pg := pagination.FromContext(c)
	patientID, _ := strconv.Atoi(c.QueryParam("patient_id"))
	items, err := h.svc.List(c.Request().Context(), patientID, RecordType(c.QueryParam("type")))
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
	rec, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "record not found")
	}
	resp := echo.Map{"record": rec}
	if rec.Type == TypeMedication {
		// Hand the edit form its fields back.
		resp["medication"] = ParseMedicationDetails(rec.Details)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) Create(c echo.Context) error {
	var d Draft
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	rec, errs, err := h.svc.Create(c.Request().Context(), d, author(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if errs.Any() {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": errs})
	}
	return c.JSON(http.StatusCreated, rec)
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
	rec, errs, err := h.svc.Update(c.Request().Context(), id, d, author(c))
	if err == ErrNotFound {
		return echo.NewHTTPError(http.StatusNotFound, "record not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if errs.Any() {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": errs})
	}
	return c.JSON(http.StatusOK, rec)
}
