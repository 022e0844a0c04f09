package patients

import (
	"context"
	"testing"

	"github.com/hmspro/hms/pkg/validate"
)

func seedPatients() []Patient {
	return []Patient{
		{ID: 1, Name: "John Doe", Age: 45, Gender: "Male", ContactPhone: "555-010-0101", LastVisit: "2023-10-15", Status: StatusStable},
		{ID: 2, Name: "Jane Smith", Age: 34, Gender: "Female", ContactPhone: "555-010-0102", LastVisit: "2023-11-02", Status: StatusRecovering},
		{ID: 7, Name: "David Wilson", Age: 70, Gender: "Male", ContactPhone: "555-010-0107", LastVisit: "2023-08-12", Status: StatusCritical},
	}
}

func newTestService() *Service {
	return NewService(NewMemRepository(seedPatients()))
}

func TestCreate(t *testing.T) {
	svc := newTestService()
	p, errs, err := svc.Create(context.Background(), Draft{
		Name: "A. Lee", Age: "34", Gender: "Female", ContactPhone: "555-222-3333",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if errs.Any() {
		t.Fatalf("unexpected validation errors: %v", errs)
	}
	if p.ID != 8 {
		t.Errorf("expected id max+1 = 8, got %d", p.ID)
	}
	if p.Status != StatusStable {
		t.Errorf("expected status Stable, got %s", p.Status)
	}
	if p.LastVisit != validate.Today() {
		t.Errorf("expected last visit today, got %s", p.LastVisit)
	}
	if p.InsuranceProvider != "" {
		t.Errorf("expected empty insurance, got %q", p.InsuranceProvider)
	}
}

func TestCreate_PhoneWithoutHyphens(t *testing.T) {
	svc := newTestService()
	p, errs, err := svc.Create(context.Background(), Draft{
		Name: "A. Lee", Age: "34", Gender: "Female", ContactPhone: "5551234567",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != nil {
		t.Error("validation failure must not create an entity")
	}
	if errs["contact_phone"] == "" {
		t.Errorf("expected a phone field error, got %v", errs)
	}

	// No mutation happened.
	all, _ := svc.List(context.Background(), "")
	if len(all) != 3 {
		t.Errorf("expected 3 patients, got %d", len(all))
	}
}

func TestCreate_InvalidAge(t *testing.T) {
	svc := newTestService()
	for _, age := range []string{"", "abc", "0", "-4"} {
		_, errs, _ := svc.Create(context.Background(), Draft{
			Name: "X", Age: age, Gender: "Male", ContactPhone: "555-222-3333",
		})
		if errs["age"] == "" {
			t.Errorf("age %q: expected an age field error", age)
		}
	}
}

// Submitting the same valid draft twice yields two entities with
// sequential ids; there is no duplicate detection.
func TestCreate_TwiceYieldsSequentialIDs(t *testing.T) {
	svc := newTestService()
	d := Draft{Name: "A. Lee", Age: "34", Gender: "Female", ContactPhone: "555-222-3333"}

	first, _, err := svc.Create(context.Background(), d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _, err := svc.Create(context.Background(), d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.ID != first.ID+1 {
		t.Errorf("expected sequential ids, got %d then %d", first.ID, second.ID)
	}
}

func TestUpdate_PreservesSystemFields(t *testing.T) {
	svc := newTestService()
	p, errs, err := svc.Update(context.Background(), 7, Draft{
		Name: "David Wilson", Age: "71", Gender: "Male", ContactPhone: "555-010-0107",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if errs.Any() {
		t.Fatalf("unexpected validation errors: %v", errs)
	}
	if p.Status != StatusCritical {
		t.Errorf("update must preserve status, got %s", p.Status)
	}
	if p.LastVisit != "2023-08-12" {
		t.Errorf("update must preserve last visit, got %s", p.LastVisit)
	}
	if p.Age != 71 {
		t.Errorf("expected age updated to 71, got %d", p.Age)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	svc := newTestService()
	_, _, err := svc.Update(context.Background(), 99, Draft{
		Name: "X", Age: "30", Gender: "Male", ContactPhone: "555-222-3333",
	})
	if err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdate_ValidationLeavesEntityUntouched(t *testing.T) {
	svc := newTestService()
	_, errs, err := svc.Update(context.Background(), 1, Draft{
		Name: "", Age: "45", Gender: "Male", ContactPhone: "555-010-0101",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if errs["name"] == "" {
		t.Error("expected a name field error")
	}
	p, _ := svc.Get(context.Background(), 1)
	if p.Name != "John Doe" {
		t.Errorf("failed update must not mutate, got name %q", p.Name)
	}
}

func TestList_NameFilter(t *testing.T) {
	svc := newTestService()
	got, err := svc.List(context.Background(), "jane")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Jane Smith" {
		t.Errorf("unexpected filter result: %+v", got)
	}
}

func TestList_Ordered(t *testing.T) {
	svc := newTestService()
	got, _ := svc.List(context.Background(), "")
	for i := 1; i < len(got); i++ {
		if got[i-1].ID >= got[i].ID {
			t.Errorf("expected ascending ids, got %d before %d", got[i-1].ID, got[i].ID)
		}
	}
}
