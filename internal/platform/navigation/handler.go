package navigation

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hmspro/hms/internal/platform/auth"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/navigation", h.List)
}

// List returns the menu entries visible to the current identity.
func (h *Handler) List(c echo.Context) error {
	ident := auth.IdentityFromContext(c.Request().Context())
	return c.JSON(http.StatusOK, echo.Map{
		"items": VisibleItems(Catalog(), ident),
	})
}
