package billing

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hmspro/hms/internal/platform/auth"
	"github.com/hmspro/hms/pkg/pagination"
)

// NameSource resolves a patient id to a display name for the ledger
// listing. Implementations are adapters wired in the server entry point;
// a miss must come back as a placeholder, never an error.
type NameSource interface {
	PatientName(c echo.Context, patientID int) string
}

// ListItem is an invoice joined with its resolved patient name.
type ListItem struct {
	Invoice
	PatientName string `json:"patient_name"`
}

type Handler struct {
	svc   *Service
	names NameSource
}

func NewHandler(svc *Service, names NameSource) *Handler {
	return &Handler{svc: svc, names: names}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	// Billing is front-desk territory.
	g := api.Group("", auth.RequireRole(auth.RoleAdmin, auth.RoleReceptionist))
	g.GET("/billing/invoices", h.List)
	g.GET("/billing/invoices/:id", h.Get)
	g.POST("/billing/invoices", h.Create)
	g.PUT("/billing/invoices/:id", h.Update)
	g.POST("/billing/invoices/:id/status", h.SetStatus)
}

func (h *Handler) resolve(c echo.Context, inv *Invoice) ListItem {
	name := "Unknown Patient"
	if h.names != nil {
		name = h.names.PatientName(c, inv.PatientID)
	}
	return ListItem{Invoice: *inv, PatientName: name}
}

func (h *Handler) List(c echo.Context) error {
	pg := pagination.FromContext(c)
	items, err := h.svc.List(c.Request().Context(), Status(c.QueryParam("status")))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	page := pagination.Window(items, pg)
	resolved := make([]ListItem, 0, len(page))
	for _, inv := range page {
		resolved = append(resolved, h.resolve(c, inv))
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(resolved, len(items), pg.Limit, pg.Offset))
}

func (h *Handler) Get(c echo.Context) error {
	inv, err := h.svc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "invoice not found")
	}
	return c.JSON(http.StatusOK, h.resolve(c, inv))
}

func (h *Handler) Create(c echo.Context) error {
	var d Draft
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	inv, errs, err := h.svc.Create(c.Request().Context(), d)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if errs.Any() {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": errs})
	}
	return c.JSON(http.StatusCreated, inv)
}

func (h *Handler) Update(c echo.Context) error {
	var d Draft
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	inv, errs, err := h.svc.Update(c.Request().Context(), c.Param("id"), d)
	if err == ErrNotFound {
		return echo.NewHTTPError(http.StatusNotFound, "invoice not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if errs.Any() {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": errs})
	}
	return c.JSON(http.StatusOK, inv)
}

func (h *Handler) SetStatus(c echo.Context) error {
	var body struct {
		Status Status `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	inv, errs, err := h.svc.SetStatus(c.Request().Context(), c.Param("id"), body.Status)
	if err == ErrNotFound {
		return echo.NewHTTPError(http.StatusNotFound, "invoice not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if errs.Any() {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": errs})
	}
	return c.JSON(http.StatusOK, inv)
}
