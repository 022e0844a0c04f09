package emr

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

func TestListEndpoint_ReceptionistForbidden(t *testing.T) {
	e := newServer(&auth.Identity{ID: "2", Name: "Rita", Role: auth.RoleReceptionist})
	rec := do(e, http.MethodGet, "/api/emr/records", "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestListEndpoint_PatientFilter(t *testing.T) {
	e := newServer(&auth.Identity{ID: "3", Name: "Nancy Nurse", Role: auth.RoleNurse})
	rec := do(e, http.MethodGet, "/api/emr/records?patient_id=2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Data []Record `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].Type != TypeAllergy {
		t.Errorf("unexpected listing: %+v", resp.Data)
	}
}

func TestGetEndpoint_MedicationIncludesFields(t *testing.T) {
	e := newServer(&auth.Identity{ID: "1", Name: "Dr. Carol Evans", Role: auth.RoleDoctor})
	rec := do(e, http.MethodGet, "/api/emr/records/2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Record     Record             `json:"record"`
		Medication *MedicationDetails `json:"medication"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Medication == nil {
		t.Fatal("expected parsed medication fields")
	}
	if resp.Medication.Dosage != "10mg" || resp.Medication.Frequency != "Once daily" {
		t.Errorf("unexpected medication fields: %+v", resp.Medication)
	}
}

func TestCreateEndpoint_AuthorFromIdentity(t *testing.T) {
	e := newServer(&auth.Identity{ID: "3", Name: "Nancy Nurse", Role: auth.RoleNurse})
	rec := do(e, http.MethodPost, "/api/emr/records",
		`{"patient_id":1,"type":"Progress Note","date":"2023-11-20","title":"Vitals","details":"BP 120/80."}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var r Record
	if err := json.Unmarshal(rec.Body.Bytes(), &r); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if r.Author != "Nancy Nurse" {
		t.Errorf("expected author from identity, got %q", r.Author)
	}
}

func TestCreateEndpoint_ValidationErrors(t *testing.T) {
	e := newServer(&auth.Identity{ID: "1", Name: "Dr. Carol Evans", Role: auth.RoleDoctor})
	rec := do(e, http.MethodPost, "/api/emr/records",
		`{"patient_id":1,"type":"Medication","date":"2023-11-20","title":"Aspirin"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Errors["dosage"] == "" || resp.Errors["frequency"] == "" {
		t.Errorf("expected medication field errors, got %v", resp.Errors)
	}
}
