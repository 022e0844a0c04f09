package scheduling

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

func TestListEndpoint_PatientRoleCanRead(t *testing.T) {
	e := newServer(&auth.Identity{ID: "4", Name: "Pat", Role: auth.RolePatient})
	rec := do(e, http.MethodGet, "/api/appointments", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestListEndpoint_StatusFilter(t *testing.T) {
	e := newServer(&auth.Identity{ID: "0", Name: "Alex", Role: auth.RoleAdmin})
	rec := do(e, http.MethodGet, "/api/appointments?status=Pending", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Data []Appointment `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].ID != 2 {
		t.Errorf("unexpected filtered listing: %+v", resp.Data)
	}
}

func TestCreateEndpoint_PatientRoleForbidden(t *testing.T) {
	e := newServer(&auth.Identity{ID: "4", Name: "Pat", Role: auth.RolePatient})
	rec := do(e, http.MethodPost, "/api/appointments",
		`{"patient_id":1,"doctor_id":1,"date":"2023-12-05","time":"09:30 AM","type":"Check-up"}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestCreateEndpoint_NurseAllowed(t *testing.T) {
	e := newServer(&auth.Identity{ID: "3", Name: "Nancy", Role: auth.RoleNurse})
	rec := do(e, http.MethodPost, "/api/appointments",
		`{"patient_id":1,"doctor_id":1,"date":"2023-12-05","time":"09:30 am","type":"Check-up"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var a Appointment
	if err := json.Unmarshal(rec.Body.Bytes(), &a); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if a.Time != "09:30 AM" || a.Status != StatusConfirmed {
		t.Errorf("unexpected booking: %+v", a)
	}
}

func TestCancelEndpoint(t *testing.T) {
	e := newServer(&auth.Identity{ID: "1", Name: "Dr. Carol Evans", Role: auth.RoleDoctor})
	rec := do(e, http.MethodPost, "/api/appointments/1/cancel", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var a Appointment
	if err := json.Unmarshal(rec.Body.Bytes(), &a); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if a.Status != StatusCancelled {
		t.Errorf("expected Cancelled, got %s", a.Status)
	}
}

func TestUpdateEndpoint_CancelledConflict(t *testing.T) {
	e := newServer(&auth.Identity{ID: "2", Name: "Rita", Role: auth.RoleReceptionist})
	rec := do(e, http.MethodPut, "/api/appointments/5",
		`{"patient_id":3,"doctor_id":2,"date":"2023-12-09","time":"02:00 PM","type":"Consultation"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}
