package patients

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hmspro/hms/internal/platform/auth"
	"github.com/hmspro/hms/pkg/pagination"
)

// HistoryEntry is one appointment in a patient's visit history, resolved
// for display.
type HistoryEntry struct {
	ID         int    `json:"id"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Type       string `json:"type"`
	Status     string `json:"status"`
	DoctorName string `json:"doctor_name"`
}

// RecordEntry is one EMR record in a patient's chart summary.
type RecordEntry struct {
	ID     int    `json:"id"`
	Type   string `json:"type"`
	Date   string `json:"date"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

// HistorySource and RecordSource let the detail view pull cross-domain
// data without this package importing the owning domains. Implementations
// are adapters wired in the server entry point.
type HistorySource interface {
	PatientHistory(c echo.Context, patientID int) []HistoryEntry
}

type RecordSource interface {
	PatientRecords(c echo.Context, patientID int) []RecordEntry
}

type Handler struct {
	svc     *Service
	history HistorySource
	records RecordSource
}

func NewHandler(svc *Service, history HistorySource, records RecordSource) *Handler {
	return &Handler{svc: svc, history: history, records: records}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	// Directory is visible to all staff; mutation is front-desk work.
	read := api.Group("", auth.RequireRole(auth.RoleAdmin, auth.RoleDoctor, auth.RoleNurse, auth.RoleReceptionist))
	read.GET("/patients", h.List)
	read.GET("/patients/:id", h.Get)

	write := api.Group("", auth.RequireRole(auth.RoleAdmin, auth.RoleReceptionist))
	write.POST("/patients", h.Create)
	write.PUT("/patients/:id", h.Update)
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
	p, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	}

	// The detail view derives cross-references fresh from the current
	// collections on every request.
	detail := echo.Map{"patient": p}
	if h.history != nil {
		detail["appointments"] = h.history.PatientHistory(c, p.ID)
	}
	if h.records != nil {
		detail["records"] = h.records.PatientRecords(c, p.ID)
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *Handler) Create(c echo.Context) error {
	var d Draft
	if err := c.Bind(&d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p, errs, err := h.svc.Create(c.Request().Context(), d)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if errs.Any() {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": errs})
	}
	return c.JSON(http.StatusCreated, p)
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
	p, errs, err := h.svc.Update(c.Request().Context(), id, d)
	if err == ErrNotFound {
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if errs.Any() {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": errs})
	}
	return c.JSON(http.StatusOK, p)
}
