// Package dashboard derives the landing-page stat cards. Counts are
// recomputed from the live collections on every request, never cached.
package dashboard

import (
	"context"
	"time"

	"github.com/hmspro/hms/internal/platform/auth"
	"github.com/hmspro/hms/pkg/validate"
)

// Card is one stat tile on the landing page.
type Card struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// Appointment is the slice of the booking the dashboard counts over.
type Appointment struct {
	PatientID int
	DoctorID  int
	Date      string
	Status    string
}

const statusCancelled = "Cancelled"
const statusConfirmed = "Confirmed"

// PatientSource and AppointmentSource expose just enough of the owning
// collections to derive counts. Implementations are adapters wired in
// the server entry point.
type PatientSource interface {
	PatientStats(ctx context.Context) (total, critical int, err error)
	PatientIDByName(ctx context.Context, name string) (int, bool)
}

type AppointmentSource interface {
	Appointments(ctx context.Context) ([]Appointment, error)
}

// DoctorSource resolves the signed-in clinician to a directory entry.
type DoctorSource interface {
	DoctorIDByName(ctx context.Context, name string) (int, bool)
}

type Service struct {
	patients PatientSource
	appts    AppointmentSource
	doctors  DoctorSource
	now      func() time.Time
}

func NewService(patients PatientSource, appts AppointmentSource, doctors DoctorSource) *Service {
	return &Service{patients: patients, appts: appts, doctors: doctors, now: time.Now}
}

// Stats returns the cards for the given identity's role.
func (s *Service) Stats(ctx context.Context, ident *auth.Identity) ([]Card, error) {
	today := s.now().Format(validate.DateLayout)
	switch ident.Role {
	case auth.RoleDoctor:
		return s.doctorStats(ctx, ident, today)
	case auth.RolePatient:
		return s.patientStats(ctx, ident, today)
	default:
		return s.staffStats(ctx, today)
	}
}

func (s *Service) staffStats(ctx context.Context, today string) ([]Card, error) {
	total, critical, err := s.patients.PatientStats(ctx)
	if err != nil {
		return nil, err
	}
	appts, err := s.appts.Appointments(ctx)
	if err != nil {
		return nil, err
	}
	todayCount := 0
	for _, a := range appts {
		if a.Date == today && a.Status != statusCancelled {
			todayCount++
		}
	}
	return []Card{
		{Label: "Total Patients", Value: total},
		{Label: "Critical Patients", Value: critical},
		{Label: "Appointments Today", Value: todayCount},
	}, nil
}

func (s *Service) doctorStats(ctx context.Context, ident *auth.Identity, today string) ([]Card, error) {
	appts, err := s.appts.Appointments(ctx)
	if err != nil {
		return nil, err
	}
	count := 0
	// An identity without a directory entry simply sees zero.
	if id, ok := s.doctors.DoctorIDByName(ctx, ident.Name); ok {
		for _, a := range appts {
			if a.DoctorID == id && a.Date == today && a.Status != statusCancelled {
				count++
			}
		}
	}
	return []Card{{Label: "My Appointments Today", Value: count}}, nil
}

func (s *Service) patientStats(ctx context.Context, ident *auth.Identity, today string) ([]Card, error) {
	appts, err := s.appts.Appointments(ctx)
	if err != nil {
		return nil, err
	}
	count := 0
	if id, ok := s.patients.PatientIDByName(ctx, ident.Name); ok {
		for _, a := range appts {
			if a.PatientID == id && a.Status == statusConfirmed && a.Date >= today {
				count++
			}
		}
	}
	return []Card{{Label: "Upcoming Appointments", Value: count}}, nil
}
