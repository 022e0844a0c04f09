package dashboard

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hmspro/hms/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the dashboard for every signed-in role.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/dashboard", h.Stats)
}

func (h *Handler) Stats(c echo.Context) error {
	ident := auth.IdentityFromContext(c.Request().Context())
	if ident == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	cards, err := h.svc.Stats(c.Request().Context(), ident)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, echo.Map{"role": ident.Role, "cards": cards})
}
