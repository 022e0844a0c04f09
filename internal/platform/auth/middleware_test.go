package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

var testTokens = TokenConfig{SigningKey: []byte("test-signing-key"), TTL: time.Hour}

func parseTestToken(token string, claims *Claims) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return testTokens.SigningKey, nil
	})
}

func identityEcho(c echo.Context) error {
	ident := IdentityFromContext(c.Request().Context())
	if ident == nil {
		return c.String(http.StatusOK, "none")
	}
	return c.String(http.StatusOK, string(ident.Role))
}

func TestMiddleware_ValidToken(t *testing.T) {
	sessions := NewSessionStore()
	ident := &Identity{ID: "1", Name: "Dr. Carol Evans", Role: RoleDoctor}
	sid := sessions.Create(ident)
	token, err := IssueToken(testTokens, sid, ident)
	if err != nil {
		t.Fatalf("issuing token: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := Middleware(testTokens, sessions)(identityEcho)
	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Body.String() != "doctor" {
		t.Errorf("expected doctor identity in context, got %q", rec.Body.String())
	}
}

func TestMiddleware_MissingToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/patients", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := Middleware(testTokens, NewSessionStore())(identityEcho)
	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestMiddleware_LoggedOutSession(t *testing.T) {
	sessions := NewSessionStore()
	ident := &Identity{ID: "1", Role: RoleDoctor}
	sid := sessions.Create(ident)
	token, _ := IssueToken(testTokens, sid, ident)

	// Logout invalidates the session; the still-valid JWT must be rejected.
	sessions.SetIdentity(sid, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := Middleware(testTokens, sessions)(identityEcho)
	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 after logout, got %d", rec.Code)
	}
}

func TestMiddleware_WrongKey(t *testing.T) {
	sessions := NewSessionStore()
	ident := &Identity{ID: "1", Role: RoleDoctor}
	sid := sessions.Create(ident)
	token, _ := IssueToken(TokenConfig{SigningKey: []byte("other-key"), TTL: time.Hour}, sid, ident)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := Middleware(testTokens, sessions)(identityEcho)
	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for forged token, got %d", rec.Code)
	}
}

func TestDemoAuthMiddleware(t *testing.T) {
	admin := &Identity{ID: "0", Name: "Alex Admin", Role: RoleAdmin}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/settings", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := DemoAuthMiddleware(admin)(identityEcho)
	if err := h(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Body.String() != "admin" {
		t.Errorf("expected default admin identity, got %q", rec.Body.String())
	}
}
