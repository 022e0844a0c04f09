package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func seedUsers() []User {
	return []User{
		{ID: "0", Name: "Alex Admin", Email: "alex.admin@hms.pro", Role: RoleAdmin, Title: "System Administrator", Password: "password123"},
		{ID: "1", Name: "Dr. Carol Evans", Email: "carol.evans@hms.pro", Role: RoleDoctor, Title: "Cardiologist", Password: "password123"},
	}
}

func newAuthTest() (*Handler, *SessionStore) {
	sessions := NewSessionStore()
	h := NewHandler(NewRegistry(seedUsers()), sessions, testTokens)
	return h, sessions
}

func postJSON(path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestLogin(t *testing.T) {
	h, sessions := newAuthTest()
	c, rec := postJSON("/auth/login", `{"email":"Carol.Evans@hms.pro","password":"password123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp sessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Token == "" {
		t.Error("expected a session token")
	}
	if resp.User.Role != RoleDoctor {
		t.Errorf("expected doctor identity, got %s", resp.User.Role)
	}

	// Token resolves to a live session.
	claims := &Claims{}
	if _, err := parseTestToken(resp.Token, claims); err != nil {
		t.Fatalf("parsing token: %v", err)
	}
	if _, ok := sessions.Identity(claims.SessionID); !ok {
		t.Error("expected a live session for the issued token")
	}
}

func TestLogin_BadPassword(t *testing.T) {
	h, _ := newAuthTest()
	c, _ := postJSON("/auth/login", `{"email":"carol.evans@hms.pro","password":"nope"}`)
	err := h.Login(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	h, _ := newAuthTest()
	c, rec := postJSON("/auth/register", `{"name":"Other","email":"CAROL.EVANS@hms.pro","password":"x","role":"nurse"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	var body struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Errors["email"] == "" {
		t.Error("expected an email field error")
	}
}

func TestRegister_AutoLogin(t *testing.T) {
	h, sessions := newAuthTest()
	c, rec := postJSON("/auth/register", `{"name":"Pat Patient","email":"pat.patient@email.com","password":"secret","role":"patient"}`)
	if err := h.Register(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var resp sessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.User.Role != RolePatient || resp.User.Title != "Patient" {
		t.Errorf("unexpected registered identity: %+v", resp.User)
	}

	claims := &Claims{}
	if _, err := parseTestToken(resp.Token, claims); err != nil {
		t.Fatalf("parsing token: %v", err)
	}
	if _, ok := sessions.Identity(claims.SessionID); !ok {
		t.Error("registration should open a session")
	}
}

func TestSwitchRole(t *testing.T) {
	h, sessions := newAuthTest()
	admin := &Identity{ID: "0", Name: "Alex Admin", Role: RoleAdmin}
	sid := sessions.Create(admin)

	c, rec := postJSON("/auth/switch-role", `{"role":"doctor"}`)
	c.Set("claims", &Claims{SessionID: sid})
	if err := h.SwitchRole(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	ident, ok := sessions.Identity(sid)
	if !ok || ident.Role != RoleDoctor {
		t.Errorf("expected session identity replaced with doctor, got %+v", ident)
	}
}

func TestSwitchRole_NoUserWithRole(t *testing.T) {
	h, sessions := newAuthTest()
	sid := sessions.Create(&Identity{ID: "0", Role: RoleAdmin})

	c, _ := postJSON("/auth/switch-role", `{"role":"receptionist"}`)
	c.Set("claims", &Claims{SessionID: sid})
	err := h.SwitchRole(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 HTTPError, got %v", err)
	}
}

func TestLogout(t *testing.T) {
	h, sessions := newAuthTest()
	sid := sessions.Create(&Identity{ID: "1", Role: RoleDoctor})

	c, rec := postJSON("/auth/logout", "")
	c.Set("claims", &Claims{SessionID: sid})
	if err := h.Logout(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if _, ok := sessions.Identity(sid); ok {
		t.Error("expected session cleared after logout")
	}
}
