package doctors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hmspro/hms/internal/platform/auth"
)

func newServer(ident *auth.Identity) *echo.Echo {
	e := echo.New()
	api := e.Group("/api", auth.DemoAuthMiddleware(ident))
	NewHandler(newTestService()).RegisterRoutes(api)
	return e
}

func do(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestListEndpoint(t *testing.T) {
	e := newServer(&auth.Identity{ID: "2", Name: "Rita", Role: auth.RoleReceptionist})
	rec := do(e, http.MethodGet, "/api/doctors", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Data  []Doctor `json:"data"`
		Total int      `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Total != 3 {
		t.Errorf("expected 3 doctors, got %d", resp.Total)
	}
}

// Doctors themselves cannot browse or edit the provider directory.
func TestListEndpoint_DoctorForbidden(t *testing.T) {
	e := newServer(&auth.Identity{ID: "1", Name: "Dr. Carol Evans", Role: auth.RoleDoctor})
	rec := do(e, http.MethodGet, "/api/doctors", "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestCreateEndpoint_ValidationErrors(t *testing.T) {
	e := newServer(&auth.Identity{ID: "0", Name: "Alex", Role: auth.RoleAdmin})
	rec := do(e, http.MethodPost, "/api/doctors",
		`{"name":"Dr. X","specialty":"Oncology","contact_phone":"555-020-0299","email":"not-an-email"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Errors["email"] == "" {
		t.Errorf("expected email error, got %v", resp.Errors)
	}
}

func TestUpdateEndpoint(t *testing.T) {
	e := newServer(&auth.Identity{ID: "2", Name: "Rita", Role: auth.RoleReceptionist})
	rec := do(e, http.MethodPut, "/api/doctors/1",
		`{"name":"Dr. Carol Evans","specialty":"Cardiac Surgery","contact_phone":"555-020-0201","email":"carol.evans@hms.pro"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var d Doctor
	if err := json.Unmarshal(rec.Body.Bytes(), &d); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if d.Specialty != "Cardiac Surgery" {
		t.Errorf("expected updated specialty, got %s", d.Specialty)
	}
}
