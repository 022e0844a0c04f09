package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hmspro/hms/pkg/validate"
)

// Handler exposes the credential flow: login, registration, logout, the
// current-identity probe, and the admin-only demo role switch.
type Handler struct {
	users    *Registry
	sessions *SessionStore
	tokens   TokenConfig
}

func NewHandler(users *Registry, sessions *SessionStore, tokens TokenConfig) *Handler {
	return &Handler{users: users, sessions: sessions, tokens: tokens}
}

// RegisterRoutes mounts the unauthenticated endpoints on public and the
// session-bound endpoints on protected.
func (h *Handler) RegisterRoutes(public, protected *echo.Group) {
	public.POST("/auth/login", h.Login)
	public.POST("/auth/register", h.Register)

	protected.POST("/auth/logout", h.Logout)
	protected.GET("/auth/me", h.Me)
	protected.POST("/auth/switch-role", h.SwitchRole, RequireRole(RoleAdmin))
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Token string    `json:"token"`
	User  *Identity `json:"user"`
}

func (h *Handler) Login(c echo.Context) error {
	var in credentials
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	user, ok := h.users.Authenticate(in.Email, in.Password)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	}
	return h.openSession(c, http.StatusOK, user)
}

type registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (h *Handler) Register(c echo.Context) error {
	var in registration
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	errs := validate.Errors{}
	if in.Name == "" {
		errs.Add("name", "name is required")
	}
	if !validate.Email(in.Email) {
		errs.Add("email", "a valid email is required")
	}
	if in.Password == "" {
		errs.Add("password", "password is required")
	}
	role, ok := ParseRole(in.Role)
	if !ok {
		errs.Add("role", "a valid role is required")
	}
	if errs.Any() {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"errors": errs})
	}

	user, err := h.users.Register(in.Name, in.Email, in.Password, role)
	if err == ErrEmailTaken {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"errors": validate.Errors{"email": "An account with this email already exists."},
		})
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	// Registration logs the new account in immediately.
	return h.openSession(c, http.StatusCreated, user)
}

func (h *Handler) Logout(c echo.Context) error {
	claims, ok := c.Get("claims").(*Claims)
	if ok {
		h.sessions.SetIdentity(claims.SessionID, nil)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, IdentityFromContext(c.Request().Context()))
}

type roleSwitch struct {
	Role string `json:"role"`
}

// SwitchRole replaces the current session's identity with a registered user
// holding the requested role. Demo operation, admin only.
func (h *Handler) SwitchRole(c echo.Context) error {
	var in roleSwitch
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	role, ok := ParseRole(in.Role)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown role")
	}
	user, ok := h.users.FindByRole(role)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "no registered user holds that role")
	}

	claims, ok := c.Get("claims").(*Claims)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "no session")
	}
	ident := user.Identity()
	h.sessions.SetIdentity(claims.SessionID, ident)

	token, err := IssueToken(h.tokens, claims.SessionID, ident)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, sessionResponse{Token: token, User: ident})
}

func (h *Handler) openSession(c echo.Context, status int, user *User) error {
	ident := user.Identity()
	sessionID := h.sessions.Create(ident)
	token, err := IssueToken(h.tokens, sessionID, ident)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(status, sessionResponse{Token: token, User: ident})
}
