package scheduling

import (
	"context"
	"errors"
	"strings"

	"github.com/hmspro/hms/pkg/validate"
)

// ErrCancelled rejects edits to an appointment that has already been
// cancelled. Cancellation is one-way.
var ErrCancelled = errors.New("appointment is cancelled")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func validateDraft(d Draft) (string, validate.Errors) {
	errs := validate.Errors{}
	if d.PatientID <= 0 {
		errs.Add("patient_id", "patient is required")
	}
	if d.DoctorID <= 0 {
		errs.Add("doctor_id", "doctor is required")
	}
	if _, ok := validate.Date(d.Date); !ok {
		errs.Add("date", "date must be YYYY-MM-DD")
	}
	clock := validate.NormalizeClockTime(d.Time)
	if !validate.ClockTime(clock) {
		errs.Add("time", "time must match HH:MM AM/PM")
	}
	if strings.TrimSpace(d.Type) == "" {
		errs.Add("type", "appointment type is required")
	}
	return clock, errs
}

// Create books an appointment. Bookings made through the form are
// confirmed immediately.
func (s *Service) Create(ctx context.Context, d Draft) (*Appointment, validate.Errors, error) {
	clock, errs := validateDraft(d)
	if errs.Any() {
		return nil, errs, nil
	}
	a := &Appointment{
		PatientID: d.PatientID,
		DoctorID:  d.DoctorID,
		Date:      d.Date,
		Time:      clock,
		Type:      strings.TrimSpace(d.Type),
		Status:    StatusConfirmed,
	}
	if err := s.repo.Insert(ctx, a); err != nil {
		return nil, nil, err
	}
	return a, nil, nil
}

// Update reschedules an appointment. Saving the form re-confirms a
// pending booking; a cancelled one cannot be revived.
func (s *Service) Update(ctx context.Context, id int, d Draft) (*Appointment, validate.Errors, error) {
	clock, errs := validateDraft(d)
	if errs.Any() {
		return nil, errs, nil
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if existing.Status == StatusCancelled {
		return nil, nil, ErrCancelled
	}
	a := &Appointment{
		ID:        id,
		PatientID: d.PatientID,
		DoctorID:  d.DoctorID,
		Date:      d.Date,
		Time:      clock,
		Type:      strings.TrimSpace(d.Type),
		Status:    StatusConfirmed,
	}
	if err := s.repo.Replace(ctx, a); err != nil {
		return nil, nil, err
	}
	return a, nil, nil
}

// Cancel marks the appointment cancelled. Repeat cancellation is a no-op.
func (s *Service) Cancel(ctx context.Context, id int) (*Appointment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.Status == StatusCancelled {
		return a, nil
	}
	a.Status = StatusCancelled
	if err := s.repo.Replace(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Get(ctx context.Context, id int) (*Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns the book, narrowed by the filter's non-zero fields.
func (s *Service) List(ctx context.Context, f Filter) ([]*Appointment, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, a := range all {
		if f.PatientID != 0 && a.PatientID != f.PatientID {
			continue
		}
		if f.DoctorID != 0 && a.DoctorID != f.DoctorID {
			continue
		}
		if f.Status != "" && a.Status != f.Status {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}
