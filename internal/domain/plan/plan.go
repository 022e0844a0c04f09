// Package plan serves the static project-plan outline shown on the plan
// page. The content is fixed at build time; the route exists so every
// role's navigation entry resolves.
package plan

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Section is one outline entry of the project plan.
type Section struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// Catalog returns the plan outline in display order.
func Catalog() []Section {
	return []Section{
		{ID: "overview", Title: "Overview", Items: []string{
			"Role-based hospital administration portal",
			"Patient, provider, scheduling, chart and billing management",
		}},
		{ID: "roles", Title: "Roles & Access", Items: []string{
			"Administrator: full access to every area",
			"Doctor: scheduling, charts and own dashboard",
			"Nurse: patients, scheduling and charts",
			"Receptionist: patients, providers, scheduling and billing",
			"Patient: own dashboard and appointments",
		}},
		{ID: "modules", Title: "Modules", Items: []string{
			"Patient directory with visit history",
			"Provider directory",
			"Appointment book with cancellation flow",
			"Electronic medical records with medication entries",
			"Invoice ledger",
		}},
		{ID: "roadmap", Title: "Roadmap", Items: []string{
			"External identity provider integration",
			"Durable storage backend",
			"Patient self-service portal",
		}},
	}
}

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/plan", h.Sections)
}

func (h *Handler) Sections(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"sections": Catalog()})
}
